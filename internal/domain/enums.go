package domain

import (
	"fmt"
	"strings"
)

// Gender selects the Mifflin-St Jeor constant used for BMR.
type Gender uint8

const (
	GenderMale Gender = iota + 1
	GenderFemale
	// GenderOther is for users who decline a binary selection. Its BMR is
	// the mean of the male and female results.
	GenderOther
)

// ActivityLevel is ordered from least to most active.
type ActivityLevel uint8

const (
	ActivitySedentary ActivityLevel = iota + 1
	ActivityLight
	ActivityModerate
	ActivityActive
	ActivityVeryActive
)

// Goal drives the calorie adjustment and macro split.
type Goal uint8

const (
	GoalWeightLoss Goal = iota + 1
	GoalMaintain
	GoalMuscleGain
	GoalBalanced
)

// ActivityLevels lists every activity level in ascending order.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive,
}

// Goals lists every goal.
var Goals = []Goal{GoalWeightLoss, GoalMaintain, GoalMuscleGain, GoalBalanced}

// Genders lists every gender.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	case GenderOther:
		return "other"
	}
	return fmt.Sprintf("Gender(%d)", uint8(g))
}

// Valid reports whether g is one of the declared genders.
func (g Gender) Valid() bool {
	return g >= GenderMale && g <= GenderOther
}

func (a ActivityLevel) String() string {
	switch a {
	case ActivitySedentary:
		return "sedentary"
	case ActivityLight:
		return "light"
	case ActivityModerate:
		return "moderate"
	case ActivityActive:
		return "active"
	case ActivityVeryActive:
		return "very_active"
	}
	return fmt.Sprintf("ActivityLevel(%d)", uint8(a))
}

// Valid reports whether a is one of the declared activity levels.
func (a ActivityLevel) Valid() bool {
	return a >= ActivitySedentary && a <= ActivityVeryActive
}

func (g Goal) String() string {
	switch g {
	case GoalWeightLoss:
		return "weight_loss"
	case GoalMaintain:
		return "maintain"
	case GoalMuscleGain:
		return "muscle_gain"
	case GoalBalanced:
		return "balanced"
	}
	return fmt.Sprintf("Goal(%d)", uint8(g))
}

// Valid reports whether g is one of the declared goals.
func (g Goal) Valid() bool {
	return g >= GoalWeightLoss && g <= GoalBalanced
}

// ParseGender converts untrusted input into a Gender.
func ParseGender(s string) (Gender, error) {
	for _, g := range Genders {
		if g.String() == normalizeEnum(s) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want male, female or other)", ErrInvalidGender, s)
}

// ParseActivityLevel converts untrusted input into an ActivityLevel.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	for _, a := range ActivityLevels {
		if a.String() == normalizeEnum(s) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want sedentary, light, moderate, active or very_active)", ErrInvalidActivityLevel, s)
}

// ParseGoal converts untrusted input into a Goal.
func ParseGoal(s string) (Goal, error) {
	for _, g := range Goals {
		if g.String() == normalizeEnum(s) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want weight_loss, maintain, muscle_gain or balanced)", ErrInvalidGoal, s)
}

func normalizeEnum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MarshalText lets the enums serialize as their names in JSON.
func (g Gender) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// MarshalText lets the enums serialize as their names in JSON.
func (a ActivityLevel) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// MarshalText lets the enums serialize as their names in JSON.
func (g Goal) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// UnmarshalText parses a gender name.
func (g *Gender) UnmarshalText(b []byte) error {
	v, err := ParseGender(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// UnmarshalText parses an activity level name.
func (a *ActivityLevel) UnmarshalText(b []byte) error {
	v, err := ParseActivityLevel(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// UnmarshalText parses a goal name.
func (g *Goal) UnmarshalText(b []byte) error {
	v, err := ParseGoal(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}
