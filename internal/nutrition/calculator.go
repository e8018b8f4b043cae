// Package nutrition converts biometrics and a goal into daily energy and
// macro-nutrient targets. Everything here is pure and safe for concurrent use.
package nutrition

import (
	"fmt"
	"math"

	"github.com/nutriplan/backend/internal/domain"
)

// Atwater factors, kcal per gram.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFats    = 9
)

// MacroRatio is the share of daily calories assigned to each macro.
type MacroRatio struct {
	Protein float64
	Carbs   float64
	Fats    float64
}

// MacroInput is the input to ComputeMacros.
type MacroInput struct {
	TDEE int
	Goal domain.Goal
	// WeightKg is accepted but not consulted by the ratio-based split.
	WeightKg float64
}

// Macros is the adjusted calorie target and its split in grams.
type Macros struct {
	Calories int
	Protein  int
	Carbs    int
	Fats     int
}

// ComputeBMR returns the Mifflin-St Jeor basal metabolic rate in kcal/day.
// GenderOther gets the mean of the male and female results. Inputs are not
// range-checked.
func ComputeBMR(age int, weightKg, heightCm float64, gender domain.Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	male := base + 5
	female := base - 161

	switch gender {
	case domain.GenderMale:
		return male
	case domain.GenderFemale:
		return female
	default:
		return (male + female) / 2
	}
}

// ActivityMultiplier returns the TDEE multiplier for a level.
func ActivityMultiplier(level domain.ActivityLevel) (float64, error) {
	switch level {
	case domain.ActivitySedentary:
		return 1.2, nil
	case domain.ActivityLight:
		return 1.375, nil
	case domain.ActivityModerate:
		return 1.55, nil
	case domain.ActivityActive:
		return 1.725, nil
	case domain.ActivityVeryActive:
		return 1.9, nil
	}
	return 0, fmt.Errorf("%w: %s", domain.ErrInvalidActivityLevel, level)
}

// ComputeTDEE scales a BMR by the activity multiplier and rounds to whole kcal.
func ComputeTDEE(bmr float64, level domain.ActivityLevel) (int, error) {
	mult, err := ActivityMultiplier(level)
	if err != nil {
		return 0, err
	}
	return round(bmr * mult), nil
}

// GoalAdjustment returns the fractional calorie change for a goal.
// maintain and balanced both leave TDEE unchanged.
func GoalAdjustment(goal domain.Goal) (float64, error) {
	switch goal {
	case domain.GoalWeightLoss:
		return -0.20, nil
	case domain.GoalMaintain, domain.GoalBalanced:
		return 0, nil
	case domain.GoalMuscleGain:
		return 0.10, nil
	}
	return 0, fmt.Errorf("%w: %s", domain.ErrInvalidGoal, goal)
}

// Ratio returns the macro split for a goal. Every row sums to 1.
func Ratio(goal domain.Goal) (MacroRatio, error) {
	switch goal {
	case domain.GoalWeightLoss:
		return MacroRatio{Protein: 0.35, Carbs: 0.35, Fats: 0.30}, nil
	case domain.GoalMaintain, domain.GoalBalanced:
		return MacroRatio{Protein: 0.30, Carbs: 0.40, Fats: 0.30}, nil
	case domain.GoalMuscleGain:
		return MacroRatio{Protein: 0.30, Carbs: 0.45, Fats: 0.25}, nil
	}
	return MacroRatio{}, fmt.Errorf("%w: %s", domain.ErrInvalidGoal, goal)
}

// ComputeMacros adjusts TDEE for the goal and splits the result into grams.
func ComputeMacros(in MacroInput) (Macros, error) {
	adjustment, err := GoalAdjustment(in.Goal)
	if err != nil {
		return Macros{}, err
	}
	ratio, err := Ratio(in.Goal)
	if err != nil {
		return Macros{}, err
	}

	calories := round(float64(in.TDEE) * (1 + adjustment))
	kcal := float64(calories)

	return Macros{
		Calories: calories,
		Protein:  round(kcal * ratio.Protein / KcalPerGramProtein),
		Carbs:    round(kcal * ratio.Carbs / KcalPerGramCarbs),
		Fats:     round(kcal * ratio.Fats / KcalPerGramFats),
	}, nil
}

// Calculate runs the whole pipeline: BMR, TDEE, goal adjustment, macros.
func Calculate(b domain.Biometrics, goal domain.Goal) (domain.EnergyProfile, error) {
	bmr := ComputeBMR(b.Age, b.WeightKg, b.HeightCm, b.Gender)

	tdee, err := ComputeTDEE(bmr, b.ActivityLevel)
	if err != nil {
		return domain.EnergyProfile{}, err
	}

	macros, err := ComputeMacros(MacroInput{TDEE: tdee, Goal: goal, WeightKg: b.WeightKg})
	if err != nil {
		return domain.EnergyProfile{}, err
	}

	return domain.EnergyProfile{
		BMR:                bmr,
		TDEE:               tdee,
		DailyCalorieTarget: macros.Calories,
		TargetProtein:      macros.Protein,
		TargetCarbs:        macros.Carbs,
		TargetFats:         macros.Fats,
	}, nil
}

// round is half-to-even, which matches the reference values on .5 boundaries
// (2860 kcal * 0.30 / 4 = 214.5 g protein -> 214).
func round(x float64) int {
	return int(math.RoundToEven(x))
}
