package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nutriplan/backend/internal/domain"
	"go.uber.org/zap"
)

const profileColumns = `user_id, age, weight_kg, height_cm, gender, activity_level, goal,
	unit_system, cup_locale, tdee, daily_calorie_target, target_protein, target_carbs,
	target_fats, updated_at`

// profileRow maps to user_profiles
type profileRow struct {
	UserID             uuid.UUID `db:"user_id"`
	Age                int       `db:"age"`
	WeightKg           float64   `db:"weight_kg"`
	HeightCm           float64   `db:"height_cm"`
	Gender             string    `db:"gender"`
	ActivityLevel      string    `db:"activity_level"`
	Goal               string    `db:"goal"`
	UnitSystem         string    `db:"unit_system"`
	CupLocale          string    `db:"cup_locale"`
	TDEE               int       `db:"tdee"`
	DailyCalorieTarget int       `db:"daily_calorie_target"`
	TargetProtein      int       `db:"target_protein"`
	TargetCarbs        int       `db:"target_carbs"`
	TargetFats         int       `db:"target_fats"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// ProfileRepository implements domain.ProfileRepository on PostgreSQL
type ProfileRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewProfileRepository creates a repository backed by pool
func NewProfileRepository(pool *pgxpool.Pool, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{pool: pool, logger: logger}
}

// GetByUserID loads the profile of one user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	row, err := r.queryOne(ctx,
		"SELECT "+profileColumns+" FROM user_profiles WHERE user_id = @userID",
		pgx.NamedArgs{"userID": userID})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain()
}

// Upsert inserts or replaces the profile and returns the stored row
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error) {
	row, err := r.queryOne(ctx, `
		INSERT INTO user_profiles (`+profileColumns+`)
		VALUES (@userID, @age, @weightKg, @heightCm, @gender, @activityLevel, @goal,
			@unitSystem, @cupLocale, @tdee, @dailyCalorieTarget, @targetProtein, @targetCarbs,
			@targetFats, now())
		ON CONFLICT (user_id) DO UPDATE SET
			age = EXCLUDED.age,
			weight_kg = EXCLUDED.weight_kg,
			height_cm = EXCLUDED.height_cm,
			gender = EXCLUDED.gender,
			activity_level = EXCLUDED.activity_level,
			goal = EXCLUDED.goal,
			unit_system = EXCLUDED.unit_system,
			cup_locale = EXCLUDED.cup_locale,
			tdee = EXCLUDED.tdee,
			daily_calorie_target = EXCLUDED.daily_calorie_target,
			target_protein = EXCLUDED.target_protein,
			target_carbs = EXCLUDED.target_carbs,
			target_fats = EXCLUDED.target_fats,
			updated_at = now()
		RETURNING `+profileColumns,
		upsertArgs(profile))
	if err != nil {
		return nil, err
	}
	return row.toDomain()
}

// queryOne runs a query and scans the first row by column name.
func (r *ProfileRepository) queryOne(ctx context.Context, sql string, args pgx.NamedArgs) (profileRow, error) {
	rows, err := r.pool.Query(ctx, sql, args)
	if err != nil {
		r.logger.Error("profile query failed", zap.Error(err))
		return profileRow{}, fmt.Errorf("%w: %v", domain.ErrProfileStoreFailure, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[profileRow])
	if errors.Is(err, pgx.ErrNoRows) {
		return profileRow{}, err
	}
	if err != nil {
		r.logger.Error("profile scan failed", zap.Error(err))
		return profileRow{}, fmt.Errorf("%w: %v", domain.ErrProfileStoreFailure, err)
	}
	return row, nil
}

func upsertArgs(p *domain.UserProfile) pgx.NamedArgs {
	return pgx.NamedArgs{
		"userID":             p.UserID,
		"age":                p.Age,
		"weightKg":           p.WeightKg,
		"heightCm":           p.HeightCm,
		"gender":             p.Gender.String(),
		"activityLevel":      p.ActivityLevel.String(),
		"goal":               p.Goal.String(),
		"unitSystem":         string(p.UnitSystem),
		"cupLocale":          string(p.CupLocale),
		"tdee":               p.Energy.TDEE,
		"dailyCalorieTarget": p.Energy.DailyCalorieTarget,
		"targetProtein":      p.Energy.TargetProtein,
		"targetCarbs":        p.Energy.TargetCarbs,
		"targetFats":         p.Energy.TargetFats,
	}
}

// toDomain converts a row, treating unknown enum values as corrupt data
func (row profileRow) toDomain() (*domain.UserProfile, error) {
	gender, err := domain.ParseGender(row.Gender)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileStoreFailure, err)
	}
	level, err := domain.ParseActivityLevel(row.ActivityLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileStoreFailure, err)
	}
	goal, err := domain.ParseGoal(row.Goal)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileStoreFailure, err)
	}

	return &domain.UserProfile{
		UserID:        row.UserID,
		Age:           row.Age,
		WeightKg:      row.WeightKg,
		HeightCm:      row.HeightCm,
		Gender:        gender,
		ActivityLevel: level,
		Goal:          goal,
		UnitSystem:    domain.UnitSystem(row.UnitSystem),
		CupLocale:     domain.CupLocale(row.CupLocale),
		Energy: domain.EnergyProfile{
			TDEE:               row.TDEE,
			DailyCalorieTarget: row.DailyCalorieTarget,
			TargetProtein:      row.TargetProtein,
			TargetCarbs:        row.TargetCarbs,
			TargetFats:         row.TargetFats,
		},
		UpdatedAt: row.UpdatedAt,
	}, nil
}
