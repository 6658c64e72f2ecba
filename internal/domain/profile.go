package domain

// MacroRatios is the fractional calorie split for a named diet archetype.
// The three fractions always sum to 1.0.
type MacroRatios struct {
	Protein  float64 `json:"protein" firestore:"protein"`
	Carbs    float64 `json:"carbs" firestore:"carbs"`
	TotalFat float64 `json:"total_fat" firestore:"total_fat"`
}

// MacroRatioTable maps macro_preference values to their fixed calorie split.
// There is no fallback entry: an unknown preference is a hard error, handled
// by the callers via LookupMacroRatios.
var MacroRatioTable = map[string]MacroRatios{
	"balanced":     {Protein: 0.3, Carbs: 0.4, TotalFat: 0.3},
	"high_protein": {Protein: 0.4, Carbs: 0.4, TotalFat: 0.2},
	"low_carb":     {Protein: 0.5, Carbs: 0.1, TotalFat: 0.4},
	"high_carb":    {Protein: 0.3, Carbs: 0.5, TotalFat: 0.2},
}

// LookupMacroRatios resolves a macro preference against the fixed table.
func LookupMacroRatios(preference string) (MacroRatios, error) {
	ratios, ok := MacroRatioTable[preference]
	if !ok {
		return MacroRatios{}, ErrUnknownMacroPreference
	}
	return ratios, nil
}

// UserProfile is the validated, type-coerced profile a plan request is built
// from. It is constructed once per request by the profile processor and not
// mutated afterwards.
type UserProfile struct {
	Weight      float64 `json:"weight" firestore:"weight"`           // kg
	Height      float64 `json:"height" firestore:"height"`           // m
	Age         int     `json:"age" firestore:"age"`
	BMI         float64 `json:"bmi" firestore:"bmi"`                 // weight / height²
	DaysPerWeek int     `json:"days_per_week" firestore:"days_per_week"`
	SleepHours  float64 `json:"sleep_hours" firestore:"sleep_hours"`

	// Intensity and ExerciseType are the categorical codes the clustering
	// model was trained on (intensity 1..3, exercise type 0..3).
	Intensity    int `json:"intensity" firestore:"intensity"`
	ExerciseType int `json:"exercise_type" firestore:"exercise_type"`

	Equipment    string `json:"equipment" firestore:"equipment"`
	FitnessLevel int    `json:"fitness_level" firestore:"fitness_level"` // 1 Beginner, 2 Intermediate, 3 Expert

	CalorieTarget   float64     `json:"calorie_target" firestore:"calorie_target"`
	MacroPreference string      `json:"macro_preference" firestore:"macro_preference"`
	MacroSplit      MacroRatios `json:"macro_split" firestore:"macro_split"`
	DietType        string      `json:"diet_type" firestore:"diet_type"`
	FiberTarget     float64     `json:"fiber_target" firestore:"fiber_target"` // g/day, derived from calories and diet type
	MealsPerDay     int         `json:"meals_per_day" firestore:"meals_per_day"`
}

// IntensityLabel maps the numeric intensity code to the label stored on
// calendar days. Unknown codes fall back to moderate.
func (p *UserProfile) IntensityLabel() string {
	switch p.Intensity {
	case 1:
		return "low"
	case 3:
		return "high"
	default:
		return "moderate"
	}
}

// FitnessGoalLabels maps the exercise_type code to a display label, used on
// the coach dashboard.
var FitnessGoalLabels = map[int]string{
	0: "Weight Loss",
	1: "Muscle Gain",
	2: "Endurance",
	3: "General Fitness",
}

// FitnessGoal returns the display label for the profile's exercise type.
func (p *UserProfile) FitnessGoal() string {
	if label, ok := FitnessGoalLabels[p.ExerciseType]; ok {
		return label
	}
	return "Not specified"
}
