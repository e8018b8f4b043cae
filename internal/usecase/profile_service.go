package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutriplan/backend/internal/domain"
	"github.com/nutriplan/backend/internal/metrics"
	"github.com/nutriplan/backend/internal/nutrition"
	"go.uber.org/zap"
)

// ProfileServiceConfig holds configuration for the profile service
type ProfileServiceConfig struct {
	CacheTTL time.Duration
}

// ProfileService computes energy profiles and manages stored user profiles.
// The repository may be nil, in which case only Calculate is available.
type ProfileService struct {
	cache    domain.CacheRepository
	profiles domain.ProfileRepository
	logger   *zap.Logger
	cacheTTL time.Duration
	now      func() time.Time
}

// NewProfileService creates a new profile service with dependencies
func NewProfileService(
	cache domain.CacheRepository,
	profiles domain.ProfileRepository,
	logger *zap.Logger,
	config ProfileServiceConfig,
) *ProfileService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ProfileService{
		cache:    cache,
		profiles: profiles,
		logger:   logger,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// ProfilesEnabled reports whether a profile store is wired in
func (s *ProfileService) ProfilesEnabled() bool {
	return s.profiles != nil
}

// Calculate parses an untrusted request and computes the energy profile.
// Flow: parse enums -> BMR -> TDEE -> goal adjustment -> macros
func (s *ProfileService) Calculate(
	ctx context.Context,
	request *domain.CalculateRequest,
) (*domain.EnergyProfile, error) {
	biometrics, goal, err := request.Parse()
	if err != nil {
		s.reject(err)
		return nil, err
	}
	return s.calculate(biometrics, goal)
}

func (s *ProfileService) calculate(biometrics domain.Biometrics, goal domain.Goal) (*domain.EnergyProfile, error) {
	profile, err := nutrition.Calculate(biometrics, goal)
	if err != nil {
		s.reject(err)
		return nil, err
	}

	metrics.IncCalculation(goal.String())
	s.logger.Debug("energy profile calculated",
		zap.String("gender", biometrics.Gender.String()),
		zap.String("activity_level", biometrics.ActivityLevel.String()),
		zap.String("goal", goal.String()),
		zap.Int("tdee", profile.TDEE),
		zap.Int("daily_calorie_target", profile.DailyCalorieTarget))

	return &profile, nil
}

// SaveProfile recomputes targets from the request and stores them for the user.
func (s *ProfileService) SaveProfile(
	ctx context.Context,
	userID uuid.UUID,
	request *domain.ProfileRequest,
) (*domain.UserProfile, error) {
	if request == nil {
		return nil, domain.ErrInvalidRequest
	}
	if s.profiles == nil {
		return nil, fmt.Errorf("%w: no profile store configured", domain.ErrProfileStoreFailure)
	}

	system, locale, err := request.Preferences()
	if err != nil {
		s.reject(err)
		return nil, err
	}

	biometrics, goal, err := request.Parse()
	if err != nil {
		s.reject(err)
		return nil, err
	}
	energy, err := s.calculate(biometrics, goal)
	if err != nil {
		return nil, err
	}

	stored, err := s.profiles.Upsert(ctx, &domain.UserProfile{
		UserID:        userID,
		Age:           biometrics.Age,
		WeightKg:      biometrics.WeightKg,
		HeightCm:      biometrics.HeightCm,
		Gender:        biometrics.Gender,
		ActivityLevel: biometrics.ActivityLevel,
		Goal:          goal,
		UnitSystem:    system,
		CupLocale:     locale,
		Energy:        *energy,
		UpdatedAt:     s.now(),
	})
	if err != nil {
		return nil, err
	}
	metrics.IncProfileSave()

	if err := s.cache.Delete(ctx, profileCacheKey(userID)); err != nil {
		s.logger.Warn("profile cache invalidation failed", zap.String("user_id", userID.String()), zap.Error(err))
	}

	s.logger.Info("profile saved",
		zap.String("user_id", userID.String()),
		zap.String("goal", goal.String()),
		zap.Int("daily_calorie_target", stored.Energy.DailyCalorieTarget))

	return stored, nil
}

// GetProfile returns the stored profile for the user.
// Flow: check cache -> load from store -> cache -> return
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if s.profiles == nil {
		return nil, fmt.Errorf("%w: no profile store configured", domain.ErrProfileStoreFailure)
	}

	cacheKey := profileCacheKey(userID)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		metrics.IncCacheLookup("hit")
		return cached, nil
	} else if errors.Is(err, domain.ErrCacheMiss) {
		metrics.IncCacheLookup("miss")
	} else {
		metrics.IncCacheLookup("error")
		s.logger.Warn("profile cache read failed", zap.String("key", cacheKey), zap.Error(err))
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Caching is best effort
	if err := s.cache.Set(ctx, cacheKey, profile, s.cacheTTL); err != nil {
		s.logger.Warn("profile cache write failed", zap.String("key", cacheKey), zap.Error(err))
	}

	return profile, nil
}

// profileCacheKey formats "profile:{userID}"
func profileCacheKey(userID uuid.UUID) string {
	return "profile:" + userID.String()
}

func (s *ProfileService) getFromCache(ctx context.Context, key string) (*domain.UserProfile, error) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// Entry written by an older schema; drop it and reload
		_ = s.cache.Delete(ctx, key)
		return nil, domain.ErrCacheMiss
	}
	return &profile, nil
}

// reject counts a rejected request by the condition that caused it
func (s *ProfileService) reject(err error) {
	reason := "invalid_request"
	switch {
	case errors.Is(err, domain.ErrInvalidActivityLevel):
		reason = "invalid_activity_level"
	case errors.Is(err, domain.ErrInvalidGoal):
		reason = "invalid_goal"
	case errors.Is(err, domain.ErrInvalidGender):
		reason = "invalid_gender"
	}
	metrics.IncRejection(reason)
	s.logger.Debug("calculation rejected", zap.String("reason", reason), zap.Error(err))
}
