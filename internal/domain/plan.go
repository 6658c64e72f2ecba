package domain

import "time"

// Workout day types. Rest days carry no exercises.
const (
	DayTypeRest        = "Rest"
	DayTypeCardio      = "Cardio"
	DayTypeStrength    = "Strength"
	DayTypeFlexibility = "Flexibility"
)

// PlanDays is the fixed length of every generated workout plan.
const PlanDays = 30

// CalendarDay is a single day of the 30-day workout calendar, either a rest
// day (empty exercise list) or a workout day with up to three exercises.
type CalendarDay struct {
	Type      string              `json:"type" firestore:"type"`
	Exercises []ExerciseSelection `json:"exercises" firestore:"exercises"`
	Intensity string              `json:"intensity" firestore:"intensity"`
	Notes     string              `json:"notes" firestore:"notes"`
}

// WorkoutPlan maps day numbers "1".."30" to calendar days. Keys are strings
// to match the stored document shape.
type WorkoutPlan map[string]CalendarDay

// WorkoutDays counts days whose type is not Rest.
func (p WorkoutPlan) WorkoutDays() int {
	count := 0
	for _, day := range p {
		if day.Type != DayTypeRest {
			count++
		}
	}
	return count
}

// RestDays counts rest days.
func (p WorkoutPlan) RestDays() int {
	return len(p) - p.WorkoutDays()
}

// MacroTargets holds daily or per-meal gram/calorie targets.
type MacroTargets struct {
	Calories float64 `json:"calories" firestore:"calories"`
	Protein  float64 `json:"protein" firestore:"protein"`
	Carbs    float64 `json:"carbs" firestore:"carbs"`
	Fat      float64 `json:"fat" firestore:"fat"`
	Fiber    float64 `json:"fiber" firestore:"fiber"`
}

// NutritionPlan holds the daily macro targets and their even split across the
// configured meals.
type NutritionPlan struct {
	DailyTargets MacroTargets            `json:"daily_targets" firestore:"daily_targets"`
	Meals        map[string]MacroTargets `json:"meals" firestore:"meals"`
	DietType     string                  `json:"diet_type" firestore:"diet_type"`
	MacroSplit   MacroRatios             `json:"macro_split" firestore:"macro_split"`
}

// PlanOverview summarizes a complete plan.
type PlanOverview struct {
	TotalDays   int `json:"total_days" firestore:"total_days"`
	WorkoutDays int `json:"workout_days" firestore:"workout_days"`
	RestDays    int `json:"rest_days" firestore:"rest_days"`
}

// CompletePlan is the merged output handed back to the caller. It is produced
// fresh per request and not retained by the generators.
type CompletePlan struct {
	WorkoutPlan   WorkoutPlan   `json:"workout_plan"`
	NutritionPlan NutritionPlan `json:"nutrition_plan"`
	Overview      PlanOverview  `json:"overview"`
}

// Plan review lifecycle statuses.
const (
	PlanStatusNew       = "new"
	PlanStatusRequested = "requested"
	PlanStatusApproved  = "approved"
	PlanStatusRejected  = "rejected"
)

// PlanRecord is the stored plan document, owned by the plan repository.
type PlanRecord struct {
	ID            string        `json:"id" firestore:"-"`
	UserID        string        `json:"user_id" firestore:"user_id"`
	Status        string        `json:"status" firestore:"status"`
	WorkoutPlan   WorkoutPlan   `json:"workout_plan" firestore:"workout_plan"`
	NutritionPlan NutritionPlan `json:"nutrition_plan" firestore:"nutrition_plan"`
	UserData      UserProfile   `json:"user_data" firestore:"user_data"`
	Cluster       int           `json:"cluster" firestore:"cluster"`
	CoachComment  string        `json:"coach_comment" firestore:"coach_comment"`
	CoachID       string        `json:"coach_id" firestore:"coach_id"`
	SentBy        string        `json:"sent_by,omitempty" firestore:"sent_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at" firestore:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at,omitempty" firestore:"updated_at,omitempty"`
}
