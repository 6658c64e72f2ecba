package domain

import "errors"

var (
	// ErrMissingField is returned when a required profile field is absent from the input
	ErrMissingField = errors.New("required profile field missing")

	// ErrInvalidArgument is returned when a field is present but outside its allowed range
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownMacroPreference is returned when macro_preference is not in the fixed ratio table
	ErrUnknownMacroPreference = errors.New("unknown macro preference")

	// ErrUnknownCluster is returned when a cluster id is absent from the cluster table
	ErrUnknownCluster = errors.New("cluster id not found in cluster table")

	// ErrPlanNotFound is returned when a plan document does not exist
	ErrPlanNotFound = errors.New("plan not found")

	// ErrUserNotFound is returned when a user document does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when registering an already-registered email
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned when login fails the password check
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound is returned for expired or unknown session tokens
	ErrSessionNotFound = errors.New("session not found")

	// ErrForbidden is returned when an authenticated user acts on a resource they do not own
	ErrForbidden = errors.New("operation not allowed for this user")

	// ErrCacheMiss is returned when a key is not present in the session/cache store
	ErrCacheMiss = errors.New("cache miss")

	// ErrModelDimensionMismatch is returned when a feature vector does not match the frozen model
	ErrModelDimensionMismatch = errors.New("feature count does not match model dimensions")
)
