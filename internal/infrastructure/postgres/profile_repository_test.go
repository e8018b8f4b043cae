package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nutriplan/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow() profileRow {
	return profileRow{
		UserID:             uuid.MustParse("7b0f7a8e-5c39-4a53-9a55-0f3f0c6a1d2e"),
		Age:                30,
		WeightKg:           80,
		HeightCm:           180,
		Gender:             "male",
		ActivityLevel:      "moderate",
		Goal:               "muscle_gain",
		UnitSystem:         "imperial",
		CupLocale:          "jp",
		TDEE:               2759,
		DailyCalorieTarget: 3035,
		TargetProtein:      228,
		TargetCarbs:        341,
		TargetFats:         84,
		UpdatedAt:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestProfileRow_ToDomain(t *testing.T) {
	p, err := sampleRow().toDomain()
	require.NoError(t, err)

	assert.Equal(t, domain.GenderMale, p.Gender)
	assert.Equal(t, domain.ActivityModerate, p.ActivityLevel)
	assert.Equal(t, domain.GoalMuscleGain, p.Goal)
	assert.Equal(t, domain.UnitSystemImperial, p.UnitSystem)
	assert.Equal(t, domain.CupLocaleJP, p.CupLocale)
	assert.Equal(t, 3035, p.Energy.DailyCalorieTarget)
	assert.Equal(t, 84, p.Energy.TargetFats)
}

func TestProfileRow_ToDomainRejectsCorruptEnums(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *profileRow)
	}{
		{"gender", func(r *profileRow) { r.Gender = "x" }},
		{"activity level", func(r *profileRow) { r.ActivityLevel = "x" }},
		{"goal", func(r *profileRow) { r.Goal = "x" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := sampleRow()
			tt.mutate(&row)
			_, err := row.toDomain()
			assert.ErrorIs(t, err, domain.ErrProfileStoreFailure)
		})
	}
}

func TestUpsertArgs(t *testing.T) {
	p, err := sampleRow().toDomain()
	require.NoError(t, err)

	args := upsertArgs(p)
	assert.Equal(t, "male", args["gender"])
	assert.Equal(t, "moderate", args["activityLevel"])
	assert.Equal(t, "muscle_gain", args["goal"])
	assert.Equal(t, "imperial", args["unitSystem"])
	assert.Equal(t, 228, args["targetProtein"])
	assert.Equal(t, p.UserID, args["userID"])
}

func TestMigrationFiles(t *testing.T) {
	files, err := MigrationFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"migrations/001_create_user_profiles.sql",
		"migrations/002_add_display_preferences.sql",
	}, files)
}
