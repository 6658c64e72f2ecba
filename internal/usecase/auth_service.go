package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

const (
	sessionKeyPrefix = "fitgen-session||"
	resetKeyPrefix   = "fitgen-pwreset||"

	bcryptCost = 14
)

// AuthServiceConfig holds configuration for the auth service.
type AuthServiceConfig struct {
	SessionTTL    time.Duration
	ResetTokenTTL time.Duration
	// ResetBaseURL is the frontend URL the emailed reset link points at.
	ResetBaseURL string
}

// AuthService handles account registration, credential checks, sessions and
// password resets. Every account type goes through the bcrypt password check;
// there is no passwordless login path.
type AuthService struct {
	users domain.UserRepository
	cache domain.CacheRepository
	mail  domain.MailSender

	sessionTTL   time.Duration
	resetTTL     time.Duration
	resetBaseURL string

	// TokenFunc generates session and reset tokens; injectable for tests.
	TokenFunc func() string
}

// NewAuthService creates the auth service with its dependencies.
func NewAuthService(
	users domain.UserRepository,
	cache domain.CacheRepository,
	mail domain.MailSender,
	config AuthServiceConfig,
) *AuthService {
	sessionTTL := config.SessionTTL
	if sessionTTL == 0 {
		sessionTTL = 24 * 7 * time.Hour
	}
	resetTTL := config.ResetTokenTTL
	if resetTTL == 0 {
		resetTTL = time.Hour
	}
	return &AuthService{
		users:        users,
		cache:        cache,
		mail:         mail,
		sessionTTL:   sessionTTL,
		resetTTL:     resetTTL,
		resetBaseURL: config.ResetBaseURL,
		TokenFunc:    uuid.NewString,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, email, password, userName, userType string) (*domain.User, error) {
	if email == "" || password == "" || userName == "" {
		return nil, fmt.Errorf("%w: email, password and user_name are required", domain.ErrInvalidArgument)
	}
	if userType != domain.UserTypeCustomer && userType != domain.UserTypeCoach && userType != domain.UserTypeAdmin {
		return nil, fmt.Errorf("%w: unknown user_type %q", domain.ErrInvalidArgument, userType)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		UserName:     userName,
		Email:        email,
		UserType:     userType,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	id, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	user.ID = id

	log.WithFields(log.Fields{"email": email, "user_type": userType}).Info("user registered")
	return user, nil
}

// RegisterCoach creates a coach account with the coach profile fields set.
func (s *AuthService) RegisterCoach(ctx context.Context, email, password, coachName, specialization, profilePicURL string, services []string) (*domain.User, error) {
	user, err := s.Register(ctx, email, password, coachName, domain.UserTypeCoach)
	if err != nil {
		return nil, err
	}

	user.Specialization = specialization
	user.ProfilePicURL = profilePicURL
	user.Services = services
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update coach profile: %w", err)
	}
	return user, nil
}

// Login verifies the password hash and opens a session. The password check
// applies to every account type.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.WithField("email", email).Warn("login failed: password mismatch")
		return nil, nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		Token:     s.TokenFunc(),
		UserID:    user.ID,
		UserType:  user.UserType,
		CreatedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+session.Token, string(payload), s.sessionTTL); err != nil {
		return nil, nil, fmt.Errorf("store session: %w", err)
	}

	log.WithFields(log.Fields{"email": email, "user_type": user.UserType}).Info("user logged in")
	return session, user, nil
}

// Logout drops the session for the given token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}

// SessionFromToken resolves a session token against the session store.
func (s *AuthService) SessionFromToken(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	payload, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// RequestPasswordReset issues a TTL-bound reset token and mails the reset
// link to the account's address.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := s.TokenFunc()
	if err := s.cache.Set(ctx, resetKeyPrefix+token, user.ID, s.resetTTL); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	body := fmt.Sprintf(
		"Dear User,\n\n"+
			"You have requested to reset your password. Please click the link below to reset it:\n\n"+
			"%s/reset_password?token=%s\n\n"+
			"If you did not request this, please ignore this email or contact support.\n\n"+
			"Best regards,\nFitness AI Team",
		s.resetBaseURL, token,
	)
	if err := s.mail.Send(ctx, email, "Password Reset Request", body); err != nil {
		log.WithError(err).WithField("email", email).Error("failed to send reset email")
		return fmt.Errorf("send reset email: %w", err)
	}

	log.WithField("email", email).Info("password reset email sent")
	return nil
}

// ResetPassword completes a reset: the token is exchanged for the account,
// the new password is hashed in, and the token is consumed.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return fmt.Errorf("%w: token and new password are required", domain.ErrInvalidArgument)
	}

	userID, err := s.cache.Get(ctx, resetKeyPrefix+token)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return domain.ErrSessionNotFound
		}
		return fmt.Errorf("load reset token: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return s.cache.Delete(ctx, resetKeyPrefix+token)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
