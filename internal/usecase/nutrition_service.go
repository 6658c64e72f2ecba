package usecase

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// Calories per gram of each macronutrient, the standard 4/4/9 conversion.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// maxMealsPerDay bounds meals_per_day to the length of the meal name list.
const maxMealsPerDay = 5

// Meal name lists: three meals or fewer keep the classic trio, more than
// three interleave snacks.
var (
	shortMealNames = []string{"Breakfast", "Lunch", "Dinner"}
	longMealNames  = []string{"Breakfast", "Snack 1", "Lunch", "Snack 2", "Dinner"}
)

// NutritionService derives daily and per-meal macro targets from a profile.
// Pure arithmetic: no catalog, no randomness, idempotent for a fixed input.
type NutritionService struct{}

// NewNutritionService creates a nutrition plan generator.
func NewNutritionService() *NutritionService {
	return &NutritionService{}
}

// Generate computes the daily macro targets from the profile's calorie target
// and macro split, then distributes an exact 1/n share to each meal.
func (s *NutritionService) Generate(profile *domain.UserProfile) (domain.NutritionPlan, error) {
	if profile == nil {
		return domain.NutritionPlan{}, fmt.Errorf("%w: profile is required", domain.ErrInvalidArgument)
	}
	if profile.MealsPerDay <= 0 || profile.MealsPerDay > maxMealsPerDay {
		return domain.NutritionPlan{}, fmt.Errorf(
			"%w: meals_per_day must be between 1 and %d, got %d",
			domain.ErrInvalidArgument, maxMealsPerDay, profile.MealsPerDay,
		)
	}

	ratios, err := domain.LookupMacroRatios(profile.MacroPreference)
	if err != nil {
		log.WithField("macro_preference", profile.MacroPreference).Error("nutrition plan: unknown macro preference")
		return domain.NutritionPlan{}, fmt.Errorf("%w: %q", err, profile.MacroPreference)
	}

	calories := profile.CalorieTarget
	daily := domain.MacroTargets{
		Calories: calories,
		Protein:  calories * ratios.Protein / kcalPerGramProtein,
		Carbs:    calories * ratios.Carbs / kcalPerGramCarbs,
		Fat:      calories * ratios.TotalFat / kcalPerGramFat,
		Fiber:    calories * fiberRatio(profile.DietType),
	}

	share := float64(profile.MealsPerDay)
	meals := make(map[string]domain.MacroTargets, profile.MealsPerDay)
	for _, name := range mealNames(profile.MealsPerDay) {
		meals[name] = domain.MacroTargets{
			Calories: daily.Calories / share,
			Protein:  daily.Protein / share,
			Carbs:    daily.Carbs / share,
			Fat:      daily.Fat / share,
			Fiber:    daily.Fiber / share,
		}
	}

	return domain.NutritionPlan{
		DailyTargets: daily,
		Meals:        meals,
		DietType:     profile.DietType,
		MacroSplit:   ratios,
	}, nil
}

// mealNames returns the ordered meal names for n meals, 1 <= n <= 5.
func mealNames(n int) []string {
	if n <= len(shortMealNames) {
		return shortMealNames[:n]
	}
	return longMealNames[:n]
}
