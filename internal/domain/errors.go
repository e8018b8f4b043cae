package domain

import "errors"

var (
	// ErrInvalidActivityLevel is returned when an activity level is not one of
	// sedentary, light, moderate, active or very_active
	ErrInvalidActivityLevel = errors.New("invalid activity level")

	// ErrInvalidGoal is returned when a goal is not one of weight_loss,
	// maintain, muscle_gain or balanced
	ErrInvalidGoal = errors.New("invalid goal")

	// ErrInvalidGender is returned when a gender is not one of male, female or other
	ErrInvalidGender = errors.New("invalid gender")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrProfileNotFound is returned when a user has no stored nutrition profile
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileStoreFailure is returned when the profile database fails
	ErrProfileStoreFailure = errors.New("profile store request failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)

// IsRejection reports whether err is one of the input errors that callers must
// treat as a hard rejection (400, never retried).
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidActivityLevel) ||
		errors.Is(err, ErrInvalidGoal) ||
		errors.Is(err, ErrInvalidGender) ||
		errors.Is(err, ErrInvalidRequest)
}
