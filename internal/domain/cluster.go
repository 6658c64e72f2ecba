package domain

// ClusterProfile describes one cluster of the frozen model: the descriptive
// attributes derived from its center during training.
type ClusterProfile struct {
	Size             int                `json:"size"`
	Percentage       float64            `json:"percentage"`
	Center           []float64          `json:"center"`
	Focus            string             `json:"focus"`
	IntensityLevel   string             `json:"intensity_level"`
	RecommendedDays  int                `json:"recommended_days"`
	DominantFeatures map[string]float64 `json:"dominant_features"`
}

// ClusterTable maps stringified cluster ids to their profiles, as produced by
// the training pipeline's cluster analysis artifact.
type ClusterTable map[string]ClusterProfile

// FeatureVector is a user profile flattened into the 14 features the
// clustering model was trained on, in training order.
type FeatureVector struct {
	Weight       float64
	Height       float64
	Age          float64
	BMI          float64
	DaysPerWeek  float64
	SleepHours   float64
	Calories     float64
	Protein      float64
	Carbohydrate float64
	TotalFat     float64
	Fiber        float64
	Intensity    float64
	ExerciseType float64
	Rating       float64
}

// Values returns the features in the order the scaler and model expect.
func (f FeatureVector) Values() []float64 {
	return []float64{
		f.Weight, f.Height, f.Age, f.BMI, f.DaysPerWeek, f.SleepHours,
		f.Calories, f.Protein, f.Carbohydrate, f.TotalFat, f.Fiber,
		f.Intensity, f.ExerciseType, f.Rating,
	}
}

// Features flattens a profile into the model's feature vector. The macro
// fractions stand in for absolute gram targets, matching how the training
// data was assembled. Rating is always 0 for live predictions.
func (p *UserProfile) Features() FeatureVector {
	return FeatureVector{
		Weight:       p.Weight,
		Height:       p.Height,
		Age:          float64(p.Age),
		BMI:          p.BMI,
		DaysPerWeek:  float64(p.DaysPerWeek),
		SleepHours:   p.SleepHours,
		Calories:     p.CalorieTarget,
		Protein:      p.MacroSplit.Protein,
		Carbohydrate: p.MacroSplit.Carbs,
		TotalFat:     p.MacroSplit.TotalFat,
		Fiber:        p.FiberTarget,
		Intensity:    float64(p.Intensity),
		ExerciseType: float64(p.ExerciseType),
		Rating:       0,
	}
}
