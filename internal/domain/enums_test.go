package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivityLevel(t *testing.T) {
	tests := []struct {
		input string
		want  ActivityLevel
	}{
		{"sedentary", ActivitySedentary},
		{"light", ActivityLight},
		{"moderate", ActivityModerate},
		{"active", ActivityActive},
		{"very_active", ActivityVeryActive},
		{"  Very_Active ", ActivityVeryActive},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseActivityLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects unknown level", func(t *testing.T) {
		for _, input := range []string{"", "extreme", "very active", "1"} {
			_, err := ParseActivityLevel(input)
			assert.ErrorIs(t, err, ErrInvalidActivityLevel, "input %q", input)
		}
	})
}

func TestParseGoal(t *testing.T) {
	for _, g := range Goals {
		got, err := ParseGoal(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}

	_, err := ParseGoal("bulk")
	assert.ErrorIs(t, err, ErrInvalidGoal)
}

func TestParseGender(t *testing.T) {
	for _, g := range Genders {
		got, err := ParseGender(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, got)
	}

	_, err := ParseGender("unspecified")
	assert.ErrorIs(t, err, ErrInvalidGender)
}

func TestEnumValidity(t *testing.T) {
	assert.False(t, ActivityLevel(0).Valid())
	assert.False(t, ActivityLevel(6).Valid())
	assert.False(t, Goal(0).Valid())
	assert.False(t, Goal(5).Valid())
	assert.False(t, Gender(4).Valid())
	assert.Equal(t, "Goal(9)", Goal(9).String())
}

func TestEnumJSON(t *testing.T) {
	t.Run("marshals as names", func(t *testing.T) {
		b, err := json.Marshal(Biometrics{Gender: GenderOther, ActivityLevel: ActivityVeryActive})
		require.NoError(t, err)
		assert.Contains(t, string(b), `"gender":"other"`)
		assert.Contains(t, string(b), `"activityLevel":"very_active"`)
	})

	t.Run("round trips a profile", func(t *testing.T) {
		in := UserProfile{Gender: GenderFemale, ActivityLevel: ActivityLight, Goal: GoalMuscleGain}
		b, err := json.Marshal(in)
		require.NoError(t, err)

		var out UserProfile
		require.NoError(t, json.Unmarshal(b, &out))
		assert.Equal(t, in.Gender, out.Gender)
		assert.Equal(t, in.ActivityLevel, out.ActivityLevel)
		assert.Equal(t, in.Goal, out.Goal)
	})

	t.Run("rejects unknown goal", func(t *testing.T) {
		var out UserProfile
		err := json.Unmarshal([]byte(`{"goal":"cut"}`), &out)
		assert.ErrorIs(t, err, ErrInvalidGoal)
	})
}

func TestCalculateRequestParse(t *testing.T) {
	age, weight, height := 30, 80.0, 180.0

	t.Run("parses valid request", func(t *testing.T) {
		req := &CalculateRequest{
			Age: &age, WeightKg: &weight, HeightCm: &height,
			Gender: "male", ActivityLevel: "moderate", Goal: "maintain",
		}
		b, goal, err := req.Parse()
		require.NoError(t, err)
		assert.Equal(t, Biometrics{Age: 30, WeightKg: 80, HeightCm: 180, Gender: GenderMale, ActivityLevel: ActivityModerate}, b)
		assert.Equal(t, GoalMaintain, goal)
	})

	t.Run("missing numbers", func(t *testing.T) {
		req := &CalculateRequest{Age: &age, Gender: "male", ActivityLevel: "moderate", Goal: "maintain"}
		_, _, err := req.Parse()
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("propagates named conditions", func(t *testing.T) {
		req := &CalculateRequest{
			Age: &age, WeightKg: &weight, HeightCm: &height,
			Gender: "male", ActivityLevel: "lazy", Goal: "maintain",
		}
		_, _, err := req.Parse()
		assert.ErrorIs(t, err, ErrInvalidActivityLevel)
		assert.True(t, IsRejection(err))

		req.ActivityLevel = "light"
		req.Goal = "shred"
		_, _, err = req.Parse()
		assert.ErrorIs(t, err, ErrInvalidGoal)
	})
}

func TestProfileRequestPreferences(t *testing.T) {
	tests := []struct {
		name       string
		system     string
		locale     string
		wantSystem UnitSystem
		wantLocale CupLocale
		wantErr    bool
	}{
		{"defaults", "", "", UnitSystemMetric, CupLocaleUS, false},
		{"imperial with japanese cups", "imperial", "JP", UnitSystemImperial, CupLocaleJP, false},
		{"unknown system", "nautical", "", "", "", true},
		{"unknown locale", "metric", "uk", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &ProfileRequest{UnitSystem: tt.system, CupLocale: tt.locale}
			system, locale, err := req.Preferences()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSystem, system)
			assert.Equal(t, tt.wantLocale, locale)
		})
	}
}
