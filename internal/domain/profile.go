package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Biometrics is the body data that BMR and TDEE are computed from.
// Values are not range-checked; form validation happens before this point.
type Biometrics struct {
	Age           int           `json:"age"`
	WeightKg      float64       `json:"weightKg"`
	HeightCm      float64       `json:"heightCm"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
}

// EnergyProfile holds daily energy and macro targets. It is recomputed on
// every change and has no identity of its own.
type EnergyProfile struct {
	BMR                float64 `json:"-"`
	TDEE               int     `json:"tdee"`
	DailyCalorieTarget int     `json:"dailyCalorieTarget"`
	TargetProtein      int     `json:"targetProtein"` // grams
	TargetCarbs        int     `json:"targetCarbs"`   // grams
	TargetFats         int     `json:"targetFats"`    // grams
}

// UnitSystem is the user's preferred system for weight and height display.
type UnitSystem string

const (
	UnitSystemMetric   UnitSystem = "metric"
	UnitSystemImperial UnitSystem = "imperial"
)

// CupLocale picks the culinary cup used for volume display.
type CupLocale string

const (
	CupLocaleUS CupLocale = "us" // 240 mL
	CupLocaleJP CupLocale = "jp" // 200 mL
)

// UserProfile is the persisted nutrition profile of one user.
type UserProfile struct {
	UserID        uuid.UUID     `json:"userId"`
	Age           int           `json:"age"`
	WeightKg      float64       `json:"weightKg"`
	HeightCm      float64       `json:"heightCm"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`
	UnitSystem    UnitSystem    `json:"unitSystem"`
	CupLocale     CupLocale     `json:"cupLocale"`
	Energy        EnergyProfile `json:"energy"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Biometrics returns the biometric part of the profile.
func (p *UserProfile) Biometrics() Biometrics {
	return Biometrics{
		Age:           p.Age,
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		Gender:        p.Gender,
		ActivityLevel: p.ActivityLevel,
	}
}

// CalculateRequest is the untrusted calculator input as submitted by a client.
// Numbers are pointers so a missing field is distinguishable from zero.
type CalculateRequest struct {
	Age           *int     `json:"age" binding:"required"`
	WeightKg      *float64 `json:"weightKg" binding:"required"`
	HeightCm      *float64 `json:"heightCm" binding:"required"`
	Gender        string   `json:"gender" binding:"required"`
	ActivityLevel string   `json:"activityLevel" binding:"required"`
	Goal          string   `json:"goal" binding:"required"`
}

// Parse converts the request into typed biometrics and goal. The returned
// error wraps ErrInvalidRequest, ErrInvalidGender, ErrInvalidActivityLevel or
// ErrInvalidGoal.
func (r *CalculateRequest) Parse() (Biometrics, Goal, error) {
	if r == nil || r.Age == nil || r.WeightKg == nil || r.HeightCm == nil {
		return Biometrics{}, 0, fmt.Errorf("%w: age, weightKg and heightCm are required", ErrInvalidRequest)
	}
	gender, err := ParseGender(r.Gender)
	if err != nil {
		return Biometrics{}, 0, err
	}
	level, err := ParseActivityLevel(r.ActivityLevel)
	if err != nil {
		return Biometrics{}, 0, err
	}
	goal, err := ParseGoal(r.Goal)
	if err != nil {
		return Biometrics{}, 0, err
	}
	return Biometrics{
		Age:           *r.Age,
		WeightKg:      *r.WeightKg,
		HeightCm:      *r.HeightCm,
		Gender:        gender,
		ActivityLevel: level,
	}, goal, nil
}

// ProfileRequest updates a stored profile. Display preferences default to
// metric and US cups.
type ProfileRequest struct {
	CalculateRequest
	UnitSystem string `json:"unitSystem,omitempty"`
	CupLocale  string `json:"cupLocale,omitempty"`
}

// Preferences parses the display preferences.
func (r *ProfileRequest) Preferences() (UnitSystem, CupLocale, error) {
	system := UnitSystemMetric
	switch UnitSystem(normalizeEnum(r.UnitSystem)) {
	case "", UnitSystemMetric:
	case UnitSystemImperial:
		system = UnitSystemImperial
	default:
		return "", "", fmt.Errorf("%w: unitSystem must be metric or imperial", ErrInvalidRequest)
	}

	locale := CupLocaleUS
	switch CupLocale(normalizeEnum(r.CupLocale)) {
	case "", CupLocaleUS:
	case CupLocaleJP:
		locale = CupLocaleJP
	default:
		return "", "", fmt.Errorf("%w: cupLocale must be us or jp", ErrInvalidRequest)
	}
	return system, locale, nil
}
