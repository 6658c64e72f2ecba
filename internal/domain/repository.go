package domain

import (
	"context"
	"time"
)

// UserRepository defines the document-store operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *User) (string, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
	ListByType(ctx context.Context, userType string) ([]*User, error)
}

// PlanRepository defines the document-store operations for generated plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *PlanRecord) (string, error)
	GetByID(ctx context.Context, id string) (*PlanRecord, error)
	Update(ctx context.Context, plan *PlanRecord) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]*PlanRecord, error)
	ListByStatus(ctx context.Context, status string) ([]*PlanRecord, error)
}

// CacheRepository is the key-value store behind sessions and reset tokens.
// Implementations: in-memory with TTL, and redis.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ClusterPredictor assigns a cluster id to a feature vector using the frozen
// model artifacts.
type ClusterPredictor interface {
	Predict(features FeatureVector) (int, error)
}

// MailSender delivers transactional mail (password resets).
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
