package usecase

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

// CoachUpdate carries the editable coach profile fields. Nil slices and empty
// strings leave the stored value untouched.
type CoachUpdate struct {
	UserName       string   `json:"user_name"`
	Specialization string   `json:"specialization"`
	ProfilePicURL  string   `json:"profile_pic_url"`
	Services       []string `json:"services"`
}

// AdminService covers the admin dashboard's coach management.
type AdminService struct {
	users domain.UserRepository
}

func NewAdminService(users domain.UserRepository) *AdminService {
	return &AdminService{users: users}
}

// ListCoaches returns all coach accounts.
func (s *AdminService) ListCoaches(ctx context.Context) ([]*domain.User, error) {
	coaches, err := s.users.ListByType(ctx, domain.UserTypeCoach)
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	return coaches, nil
}

// GetCoach loads one coach account. Accounts of other types read as not found
// so the admin API never leaks customer documents.
func (s *AdminService) GetCoach(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.UserType != domain.UserTypeCoach {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// UpdateCoach applies the non-empty fields of the update to a coach account.
func (s *AdminService) UpdateCoach(ctx context.Context, id string, update CoachUpdate) (*domain.User, error) {
	coach, err := s.GetCoach(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.UserName != "" {
		coach.UserName = update.UserName
	}
	if update.Specialization != "" {
		coach.Specialization = update.Specialization
	}
	if update.ProfilePicURL != "" {
		coach.ProfilePicURL = update.ProfilePicURL
	}
	if update.Services != nil {
		coach.Services = update.Services
	}

	if err := s.users.Update(ctx, coach); err != nil {
		return nil, fmt.Errorf("update coach %s: %w", id, err)
	}

	log.WithField("coach_id", id).Info("coach profile updated")
	return coach, nil
}

// DeleteCoach removes a coach account.
func (s *AdminService) DeleteCoach(ctx context.Context, id string) error {
	if _, err := s.GetCoach(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete coach %s: %w", id, err)
	}
	log.WithField("coach_id", id).Info("coach deleted")
	return nil
}
