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

// UserRepository stores user accounts in the users collection, one document
// per account with the document id as the user id.
type UserRepository struct {
	client *firestore.Client
}

var _ domain.UserRepository = (*UserRepository)(nil)

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) users() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

// Create stores a new user document and returns its generated id.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	if _, err := r.users().Doc(user.ID).Create(ctx, user); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return "", domain.ErrUserExists
		}
		return "", fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	snapshot, err := r.users().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return decodeUser(snapshot)
}

// GetByEmail looks a user up by the unique email field.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	iter := r.users().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snapshot, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return decodeUser(snapshot)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		return domain.ErrUserNotFound
	}
	user.UpdatedAt = time.Now().UTC()

	if _, err := r.users().Doc(user.ID).Set(ctx, user); err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("update user %s: %w", user.ID, err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.users().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

// ListByType returns all accounts of one user type, e.g. every coach.
func (r *UserRepository) ListByType(ctx context.Context, userType string) ([]*domain.User, error) {
	iter := r.users().Where("user_type", "==", userType).Documents(ctx)
	defer iter.Stop()

	var users []*domain.User
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list users by type %s: %w", userType, err)
		}
		user, err := decodeUser(snapshot)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func decodeUser(snapshot *firestore.DocumentSnapshot) (*domain.User, error) {
	var user domain.User
	if err := snapshot.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", snapshot.Ref.ID, err)
	}
	user.ID = snapshot.Ref.ID
	return &user, nil
}
