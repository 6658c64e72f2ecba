package usecase

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// equipmentVocabulary maps form equipment values to the catalog's equipment
// column. Anything outside the vocabulary falls back to "Body Only".
var equipmentVocabulary = map[string]string{
	"none":          "Body Only",
	"bands":         "Bands",
	"barbell":       "Barbell",
	"dumbbell":      "Dumbbell",
	"cable":         "Cable",
	"machine":       "Machine",
	"kettlebell":    "Kettlebells",
	"medicine ball": "Medicine Ball",
	"exercise ball": "Exercise Ball",
}

// levelVocabulary maps numeric fitness levels to the catalog's level column.
// Unknown levels fall back to "Intermediate".
var levelVocabulary = map[int]string{
	1: "Beginner",
	2: "Intermediate",
	3: "Expert",
}

const (
	defaultEquipment = "Body Only"
	defaultLevel     = "Intermediate"

	workoutDayNotes = "Focus on form"
	restDayNotes    = "Focus on recovery"
)

// WorkoutServiceConfig holds configuration for the workout plan generator.
type WorkoutServiceConfig struct {
	// Rand is the random source for rest-day placement and workout type
	// selection. Leave nil for the time-seeded default; inject a seeded
	// source for reproducible plans.
	Rand *rand.Rand
}

// WorkoutService generates 30-day workout calendars from the static exercise
// catalog. The catalog is read-only after construction; the random source is
// guarded because rand.Rand is not safe for concurrent use.
type WorkoutService struct {
	catalog []domain.ExerciseCatalogEntry
	rng     *rand.Rand
	mu      sync.Mutex
}

// NewWorkoutService creates a workout plan generator over the given catalog.
func NewWorkoutService(catalog []domain.ExerciseCatalogEntry, config WorkoutServiceConfig) *WorkoutService {
	rng := config.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &WorkoutService{
		catalog: catalog,
		rng:     rng,
	}
}

// Generate produces a 30-entry calendar keyed "1".."30". Rest days and
// workout types are drawn from the service's random source, so two calls with
// the same profile differ unless the source was seeded.
func (s *WorkoutService) Generate(profile *domain.UserProfile) (domain.WorkoutPlan, error) {
	if profile == nil {
		return nil, fmt.Errorf("%w: profile is required", domain.ErrInvalidArgument)
	}

	equipment := mapEquipment(profile.Equipment)
	level := mapLevel(profile.FitnessLevel)
	groups := s.partitionCatalog(equipment, level)

	restDays := restDayCount(profile.DaysPerWeek, profile.FitnessLevel)
	intensity := profile.IntensityLabel()

	s.mu.Lock()
	defer s.mu.Unlock()

	restIndices := s.drawRestDays(restDays)
	plan := make(domain.WorkoutPlan, domain.PlanDays)
	for day := 1; day <= domain.PlanDays; day++ {
		key := strconv.Itoa(day)
		if restIndices[day] {
			plan[key] = domain.CalendarDay{
				Type:      domain.DayTypeRest,
				Exercises: []domain.ExerciseSelection{},
				Intensity: "low",
				Notes:     restDayNotes,
			}
			continue
		}

		dayType := s.drawWorkoutType()
		plan[key] = domain.CalendarDay{
			Type:      dayType,
			Exercises: selectExercises(groups[dayType], dayType, intensity),
			Intensity: intensity,
			Notes:     workoutDayNotes,
		}
	}

	log.WithFields(log.Fields{
		"equipment": equipment,
		"level":     level,
		"rest_days": restDays,
	}).Info("workout plan generated")

	return plan, nil
}

// mapEquipment resolves a raw equipment value against the catalog vocabulary.
func mapEquipment(raw string) string {
	if mapped, ok := equipmentVocabulary[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return mapped
	}
	return defaultEquipment
}

// mapLevel resolves a numeric fitness level against the catalog vocabulary.
func mapLevel(level int) string {
	if mapped, ok := levelVocabulary[level]; ok {
		return mapped
	}
	return defaultLevel
}

// partitionCatalog filters the catalog by equipment substring and exact level,
// then splits the survivors into the three workout type groups, each ordered
// by rating descending. The sort is stable: catalog order breaks ties.
func (s *WorkoutService) partitionCatalog(equipment, level string) map[string][]domain.ExerciseCatalogEntry {
	groups := map[string][]domain.ExerciseCatalogEntry{
		domain.DayTypeCardio:      {},
		domain.DayTypeStrength:    {},
		domain.DayTypeFlexibility: {},
	}

	for _, entry := range s.catalog {
		if !strings.Contains(entry.Equipment, equipment) || entry.Level != level {
			continue
		}
		switch entry.Type {
		case "Cardio":
			groups[domain.DayTypeCardio] = append(groups[domain.DayTypeCardio], entry)
		case "Strength":
			groups[domain.DayTypeStrength] = append(groups[domain.DayTypeStrength], entry)
		case "Stretching", "Plyometrics":
			groups[domain.DayTypeFlexibility] = append(groups[domain.DayTypeFlexibility], entry)
		}
	}

	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Rating > group[j].Rating
		})
	}

	return groups
}

// restDayCount computes the number of rest days in the 30-day window. The
// baseline stays in float64 until the final truncation so the fitness-level
// adjustment applies to the exact fraction.
func restDayCount(daysPerWeek, fitnessLevel int) int {
	if daysPerWeek > 7 {
		daysPerWeek = 7
	}
	workoutDays := float64(domain.PlanDays) / 7.0 * float64(daysPerWeek)
	restDays := float64(domain.PlanDays) - workoutDays

	switch fitnessLevel {
	case 1:
		restDays = math.Min(restDays+2, float64(domain.PlanDays-5))
	case 3:
		restDays = math.Max(restDays-2, 2)
	}

	if restDays < 0 {
		restDays = 0
	}
	return int(restDays)
}

// drawRestDays samples n distinct day indices from 1..30 without replacement.
// Caller holds s.mu.
func (s *WorkoutService) drawRestDays(n int) map[int]bool {
	rest := make(map[int]bool, n)
	for _, idx := range s.rng.Perm(domain.PlanDays)[:n] {
		rest[idx+1] = true
	}
	return rest
}

// drawWorkoutType picks Cardio, Strength or Flexibility with fixed 0.4/0.4/0.2
// probabilities. Caller holds s.mu.
func (s *WorkoutService) drawWorkoutType() string {
	r := s.rng.Float64()
	switch {
	case r < 0.4:
		return domain.DayTypeCardio
	case r < 0.8:
		return domain.DayTypeStrength
	default:
		return domain.DayTypeFlexibility
	}
}

// selectExercises takes the top 3 ranked entries for the day's type, or a
// single bodyweight placeholder when the filtered group is empty. A non-rest
// day never carries an empty exercise list.
func selectExercises(group []domain.ExerciseCatalogEntry, dayType, intensity string) []domain.ExerciseSelection {
	if len(group) == 0 {
		return []domain.ExerciseSelection{{
			Name:        "Basic " + dayType,
			Description: "Bodyweight exercise",
			Equipment:   defaultEquipment,
			Sets:        3,
			Reps:        12,
			Rating:      0,
			Intensity:   intensity,
		}}
	}

	limit := 3
	if len(group) < limit {
		limit = len(group)
	}

	reps := 30
	if dayType == domain.DayTypeStrength {
		reps = 12
	}

	selections := make([]domain.ExerciseSelection, 0, limit)
	for _, entry := range group[:limit] {
		selections = append(selections, domain.ExerciseSelection{
			Name:        entry.Title,
			Description: entry.Description,
			Equipment:   entry.Equipment,
			Sets:        3,
			Reps:        reps,
			Rating:      entry.Rating,
			Intensity:   intensity,
		})
	}
	return selections
}
