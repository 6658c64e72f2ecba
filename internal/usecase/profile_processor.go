package usecase

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// ProfileForm is the raw plan-request payload as submitted by the frontend
// form. All values arrive as strings and are coerced by ProcessForm; an empty
// string counts as a missing field.
type ProfileForm struct {
	WeightInKg      string `json:"weight_in_kg" form:"weight_in_kg"`
	HeightInCm      string `json:"height_in_cm" form:"height_in_cm"`
	Age             string `json:"age" form:"age"`
	DaysPerWeek     string `json:"days_per_week" form:"days_per_week"`
	SleepHours      string `json:"sleep_hours" form:"sleep_hours"`
	Intensity       string `json:"intensity" form:"intensity"`
	ExerciseType    string `json:"exercise_type" form:"exercise_type"`
	CalorieTarget   string `json:"calorie_target" form:"calorie_target"`
	MacroPreference string `json:"macro_preference" form:"macro_preference"`
	DietType        string `json:"diet_type" form:"diet_type"`
	Equipment       string `json:"equipment" form:"equipment"`
	FitnessLevel    string `json:"fitness_level" form:"fitness_level"`
	MealsPerDay     string `json:"meals_per_day" form:"meals_per_day"`
}

// fiberRatio returns grams of fiber per daily calorie for a diet type.
func fiberRatio(dietType string) float64 {
	if dietType == "high_carb" {
		return 0.016
	}
	return 0.014
}

// ProcessForm validates and coerces a raw form into an immutable UserProfile.
// It fails fast: no generation starts until every required field is present,
// parseable, and inside its allowed range.
func ProcessForm(form *ProfileForm) (*domain.UserProfile, error) {
	required := []struct {
		name  string
		value string
	}{
		{"weight_in_kg", form.WeightInKg},
		{"height_in_cm", form.HeightInCm},
		{"age", form.Age},
		{"days_per_week", form.DaysPerWeek},
		{"sleep_hours", form.SleepHours},
		{"intensity", form.Intensity},
		{"exercise_type", form.ExerciseType},
		{"calorie_target", form.CalorieTarget},
		{"macro_preference", form.MacroPreference},
		{"diet_type", form.DietType},
		{"equipment", form.Equipment},
		{"fitness_level", form.FitnessLevel},
		{"meals_per_day", form.MealsPerDay},
	}

	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingField, strings.Join(missing, ", "))
	}

	weightKg, err := parseFloatField("weight_in_kg", form.WeightInKg)
	if err != nil {
		return nil, err
	}
	heightCm, err := parseFloatField("height_in_cm", form.HeightInCm)
	if err != nil {
		return nil, err
	}
	age, err := parseIntField("age", form.Age)
	if err != nil {
		return nil, err
	}
	daysPerWeek, err := parseIntField("days_per_week", form.DaysPerWeek)
	if err != nil {
		return nil, err
	}
	sleepHours, err := parseFloatField("sleep_hours", form.SleepHours)
	if err != nil {
		return nil, err
	}
	intensity, err := parseIntField("intensity", form.Intensity)
	if err != nil {
		return nil, err
	}
	exerciseType, err := parseIntField("exercise_type", form.ExerciseType)
	if err != nil {
		return nil, err
	}
	calorieTarget, err := parseFloatField("calorie_target", form.CalorieTarget)
	if err != nil {
		return nil, err
	}
	fitnessLevel, err := parseIntField("fitness_level", form.FitnessLevel)
	if err != nil {
		return nil, err
	}
	mealsPerDay, err := parseIntField("meals_per_day", form.MealsPerDay)
	if err != nil {
		return nil, err
	}

	if heightCm <= 0 || weightKg <= 0 {
		return nil, fmt.Errorf("%w: weight and height must be positive", domain.ErrInvalidArgument)
	}
	if calorieTarget <= 0 {
		return nil, fmt.Errorf("%w: calorie_target must be positive", domain.ErrInvalidArgument)
	}
	if daysPerWeek < 1 || daysPerWeek > 7 {
		return nil, fmt.Errorf("%w: days_per_week must be between 1 and 7", domain.ErrInvalidArgument)
	}
	if mealsPerDay < 1 || mealsPerDay > maxMealsPerDay {
		return nil, fmt.Errorf("%w: meals_per_day must be between 1 and %d", domain.ErrInvalidArgument, maxMealsPerDay)
	}

	macroSplit, err := domain.LookupMacroRatios(form.MacroPreference)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, form.MacroPreference)
	}

	heightM := heightCm / 100
	profile := &domain.UserProfile{
		Weight:          weightKg,
		Height:          heightM,
		Age:             age,
		BMI:             weightKg / (heightM * heightM),
		DaysPerWeek:     daysPerWeek,
		SleepHours:      sleepHours,
		Intensity:       intensity,
		ExerciseType:    exerciseType,
		Equipment:       form.Equipment,
		FitnessLevel:    fitnessLevel,
		CalorieTarget:   calorieTarget,
		MacroPreference: form.MacroPreference,
		MacroSplit:      macroSplit,
		DietType:        form.DietType,
		FiberTarget:     calorieTarget * fiberRatio(form.DietType),
		MealsPerDay:     mealsPerDay,
	}

	log.WithFields(log.Fields{
		"bmi":           fmt.Sprintf("%.2f", profile.BMI),
		"days_per_week": profile.DaysPerWeek,
		"macro":         profile.MacroPreference,
	}).Debug("processed profile form")

	return profile, nil
}

func parseFloatField(name, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not numeric", domain.ErrInvalidArgument, name)
	}
	return parsed, nil
}

func parseIntField(name, value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer", domain.ErrInvalidArgument, name)
	}
	return parsed, nil
}
