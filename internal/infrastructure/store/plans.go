package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// PlanRepository stores generated plans in the plans collection.
type PlanRepository struct {
	client *firestore.Client
}

var _ domain.PlanRepository = (*PlanRepository)(nil)

func NewPlanRepository(client *firestore.Client) *PlanRepository {
	return &PlanRepository{client: client}
}

func (r *PlanRepository) plans() *firestore.CollectionRef {
	return r.client.Collection(plansCollection)
}

// Create stores a new plan document and returns its generated id.
func (r *PlanRepository) Create(ctx context.Context, plan *domain.PlanRecord) (string, error) {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}

	if _, err := r.plans().Doc(plan.ID).Create(ctx, plan); err != nil {
		return "", fmt.Errorf("create plan: %w", err)
	}
	return plan.ID, nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id string) (*domain.PlanRecord, error) {
	snapshot, err := r.plans().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("get plan %s: %w", id, err)
	}
	return decodePlan(snapshot)
}

func (r *PlanRepository) Update(ctx context.Context, plan *domain.PlanRecord) error {
	if plan.ID == "" {
		return domain.ErrPlanNotFound
	}
	plan.UpdatedAt = time.Now().UTC()

	if _, err := r.plans().Doc(plan.ID).Set(ctx, plan); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrPlanNotFound
		}
		return fmt.Errorf("update plan %s: %w", plan.ID, err)
	}
	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.plans().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete plan %s: %w", id, err)
	}
	return nil
}

// ListByUser returns every plan owned by one customer.
func (r *PlanRepository) ListByUser(ctx context.Context, userID string) ([]*domain.PlanRecord, error) {
	return r.list(r.plans().Where("user_id", "==", userID).Documents(ctx))
}

// ListByStatus returns every plan in one lifecycle status, e.g. all plans
// awaiting coach review.
func (r *PlanRepository) ListByStatus(ctx context.Context, planStatus string) ([]*domain.PlanRecord, error) {
	return r.list(r.plans().Where("status", "==", planStatus).Documents(ctx))
}

func (r *PlanRepository) list(iter *firestore.DocumentIterator) ([]*domain.PlanRecord, error) {
	defer iter.Stop()

	var plans []*domain.PlanRecord
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list plans: %w", err)
		}
		plan, err := decodePlan(snapshot)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func decodePlan(snapshot *firestore.DocumentSnapshot) (*domain.PlanRecord, error) {
	var plan domain.PlanRecord
	if err := snapshot.DataTo(&plan); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", snapshot.Ref.ID, err)
	}
	plan.ID = snapshot.Ref.ID
	return &plan, nil
}
