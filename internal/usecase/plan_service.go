package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// ResolveCluster looks up a cluster id in the precomputed cluster table.
// Side-effect free; unknown ids are a hard error, never defaulted.
func ResolveCluster(clusterID int, table domain.ClusterTable) (domain.ClusterProfile, error) {
	if clusterID < 0 {
		return domain.ClusterProfile{}, fmt.Errorf("%w: cluster id must be non-negative, got %d", domain.ErrInvalidArgument, clusterID)
	}
	profile, ok := table[strconv.Itoa(clusterID)]
	if !ok {
		return domain.ClusterProfile{}, fmt.Errorf("%w: %d", domain.ErrUnknownCluster, clusterID)
	}
	return profile, nil
}

// FormatCompletePlan merges a workout and a nutrition plan, tallying workout
// vs rest days for the overview. Pure merge with no failure modes of its own.
func FormatCompletePlan(workout domain.WorkoutPlan, nutrition domain.NutritionPlan) domain.CompletePlan {
	return domain.CompletePlan{
		WorkoutPlan:   workout,
		NutritionPlan: nutrition,
		Overview: domain.PlanOverview{
			TotalDays:   domain.PlanDays,
			WorkoutDays: workout.WorkoutDays(),
			RestDays:    workout.RestDays(),
		},
	}
}

// GeneratedPlan is the response of a full plan generation: the merged plan
// plus the stored document id and the cluster descriptors.
type GeneratedPlan struct {
	domain.CompletePlan
	PlanID          string `json:"plan_id"`
	Cluster         int    `json:"cluster"`
	Focus           string `json:"focus"`
	IntensityLevel  string `json:"intensity_level"`
	RecommendedDays int    `json:"recommended_days"`
}

// CoachPlanView is a requested plan joined with the owner's display name and
// fitness goal, as shown on the coach dashboard.
type CoachPlanView struct {
	*domain.PlanRecord
	UserName    string `json:"user_name"`
	FitnessGoal string `json:"fitness_goal"`
}

// PlanService orchestrates one plan request end to end: profile processing,
// cluster prediction, the two generators, the aggregator, and the storage
// sink. A request either completes fully or fails without a partial plan.
type PlanService struct {
	workouts  *WorkoutService
	nutrition *NutritionService
	predictor domain.ClusterPredictor
	clusters  domain.ClusterTable
	plans     domain.PlanRepository
	users     domain.UserRepository
}

// NewPlanService wires the plan generation pipeline.
func NewPlanService(
	workouts *WorkoutService,
	nutrition *NutritionService,
	predictor domain.ClusterPredictor,
	clusters domain.ClusterTable,
	plans domain.PlanRepository,
	users domain.UserRepository,
) *PlanService {
	return &PlanService{
		workouts:  workouts,
		nutrition: nutrition,
		predictor: predictor,
		clusters:  clusters,
		plans:     plans,
		users:     users,
	}
}

// Generate runs the full pipeline for one user request and persists the
// resulting plan document with status "new".
func (s *PlanService) Generate(ctx context.Context, userID string, form *ProfileForm) (*GeneratedPlan, error) {
	profile, err := ProcessForm(form)
	if err != nil {
		return nil, err
	}

	cluster, err := s.predictor.Predict(profile.Features())
	if err != nil {
		log.WithError(err).Error("cluster prediction failed")
		return nil, fmt.Errorf("predict cluster: %w", err)
	}

	clusterProfile, err := ResolveCluster(cluster, s.clusters)
	if err != nil {
		log.WithError(err).WithField("cluster", cluster).Error("cluster resolution failed")
		return nil, err
	}

	workout, err := s.workouts.Generate(profile)
	if err != nil {
		log.WithError(err).Error("workout plan generation failed")
		return nil, fmt.Errorf("generate workout plan: %w", err)
	}

	nutrition, err := s.nutrition.Generate(profile)
	if err != nil {
		log.WithError(err).Error("nutrition plan generation failed")
		return nil, fmt.Errorf("generate nutrition plan: %w", err)
	}

	complete := FormatCompletePlan(workout, nutrition)

	record := &domain.PlanRecord{
		UserID:        userID,
		Status:        domain.PlanStatusNew,
		WorkoutPlan:   workout,
		NutritionPlan: nutrition,
		UserData:      *profile,
		Cluster:       cluster,
		CreatedAt:     time.Now().UTC(),
	}
	planID, err := s.plans.Create(ctx, record)
	if err != nil {
		log.WithError(err).Error("failed to store generated plan")
		return nil, fmt.Errorf("store plan: %w", err)
	}

	log.WithFields(log.Fields{
		"plan_id": planID,
		"cluster": cluster,
		"focus":   clusterProfile.Focus,
	}).Info("plan generated")

	return &GeneratedPlan{
		CompletePlan:    complete,
		PlanID:          planID,
		Cluster:         cluster,
		Focus:           clusterProfile.Focus,
		IntensityLevel:  clusterProfile.IntensityLevel,
		RecommendedDays: clusterProfile.RecommendedDays,
	}, nil
}

// CustomerPlans returns the display name and all stored plans for a customer.
func (s *PlanService) CustomerPlans(ctx context.Context, userID string) (string, []*domain.PlanRecord, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", nil, fmt.Errorf("load user: %w", err)
	}
	plans, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return "", nil, fmt.Errorf("list plans: %w", err)
	}
	return user.UserName, plans, nil
}

// RequestedPlans returns all plans awaiting coach review, joined with the
// owner's name and fitness goal. A missing owner degrades to "Unknown" rather
// than failing the whole dashboard.
func (s *PlanService) RequestedPlans(ctx context.Context) ([]CoachPlanView, error) {
	plans, err := s.plans.ListByStatus(ctx, domain.PlanStatusRequested)
	if err != nil {
		return nil, fmt.Errorf("list requested plans: %w", err)
	}

	views := make([]CoachPlanView, 0, len(plans))
	for _, plan := range plans {
		userName := "Unknown"
		if user, err := s.users.GetByID(ctx, plan.UserID); err == nil {
			userName = user.UserName
		}
		views = append(views, CoachPlanView{
			PlanRecord:  plan,
			UserName:    userName,
			FitnessGoal: plan.UserData.FitnessGoal(),
		})
	}
	return views, nil
}

// SendToCoach flags a customer's own plan for coach review.
func (s *PlanService) SendToCoach(ctx context.Context, planID, userID string) error {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan.UserID != userID {
		return domain.ErrForbidden
	}

	plan.Status = domain.PlanStatusRequested
	plan.SentBy = userID
	plan.UpdatedAt = time.Now().UTC()
	return s.plans.Update(ctx, plan)
}

// Review records a coach's verdict on a plan. Action "approve" approves, any
// other action rejects.
func (s *PlanService) Review(ctx context.Context, planID, coachID, comment, action string) (string, error) {
	if comment == "" || action == "" {
		return "", fmt.Errorf("%w: coach_comment and action are required", domain.ErrInvalidArgument)
	}

	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return "", err
	}

	status := domain.PlanStatusRejected
	if action == "approve" {
		status = domain.PlanStatusApproved
	}

	plan.Status = status
	plan.CoachComment = comment
	plan.CoachID = coachID
	plan.UpdatedAt = time.Now().UTC()
	if err := s.plans.Update(ctx, plan); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{"plan_id": planID, "status": status}).Info("plan reviewed")
	return status, nil
}

// DeletePlan removes a customer's own plan.
func (s *PlanService) DeletePlan(ctx context.Context, planID, userID string) error {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan.UserID != userID {
		return domain.ErrForbidden
	}
	return s.plans.Delete(ctx, planID)
}
