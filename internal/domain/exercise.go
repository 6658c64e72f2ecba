package domain

// ExerciseCatalogEntry is one row of the static exercise catalog, loaded once
// at process start and read-only afterwards.
type ExerciseCatalogEntry struct {
	Title       string  `json:"title"`
	Description string  `json:"desc"`
	Equipment   string  `json:"equipment"`
	Level       string  `json:"level"` // Beginner, Intermediate, Expert
	Type        string  `json:"type"`  // Cardio, Strength, Stretching, Plyometrics
	Rating      float64 `json:"rating"`
}

// ExerciseSelection is an exercise placed on a calendar day, with the
// prescription attached.
type ExerciseSelection struct {
	Name        string  `json:"name" firestore:"name"`
	Description string  `json:"desc" firestore:"desc"`
	Equipment   string  `json:"equipment" firestore:"equipment"`
	Sets        int     `json:"sets" firestore:"sets"`
	Reps        int     `json:"reps" firestore:"reps"`
	Rating      float64 `json:"rating" firestore:"rating"`
	Intensity   string  `json:"intensity" firestore:"intensity"`
}
