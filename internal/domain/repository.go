package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CacheRepository defines the interface for caching operations.
// Values are stored as JSON; Get returns the encoded bytes.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ProfileRepository persists nutrition profiles alongside the biometrics
// that produced them
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
	Upsert(ctx context.Context, profile *UserProfile) (*UserProfile, error)
}
