package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nutriplan/backend/internal/domain"
	"github.com/nutriplan/backend/internal/nutrition"
	"github.com/nutriplan/backend/internal/units"
	"github.com/spf13/cobra"
)

type targetsOptions struct {
	age      int
	weight   float64
	height   float64
	gender   string
	activity string
	goal     string
	system   string
	cups     string
	asJSON   bool
}

func newTargetsCmd() *cobra.Command {
	opts := &targetsOptions{}
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Compute BMR, TDEE, calorie target and macro grams",
		Example: `  nutriplan targets --age 30 --weight 80 --height 180 --gender male --activity moderate --goal muscle_gain
  nutriplan targets --units imperial --age 30 --weight 176 --height 71 --gender female --activity light --goal weight_loss`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTargets(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.age, "age", 0, "age in years")
	f.Float64Var(&opts.weight, "weight", 0, "body weight (kg, or lb with --units imperial)")
	f.Float64Var(&opts.height, "height", 0, "height (cm, or inches with --units imperial)")
	f.StringVar(&opts.gender, "gender", "", "male, female or other")
	f.StringVar(&opts.activity, "activity", "", "sedentary, light, moderate, active or very_active")
	f.StringVar(&opts.goal, "goal", "", "weight_loss, maintain, muscle_gain or balanced")
	f.StringVar(&opts.system, "units", "metric", "input and display units: metric or imperial")
	f.StringVar(&opts.cups, "cups", "us", "cup size for the water target: us or jp")
	f.BoolVar(&opts.asJSON, "json", false, "print the energy profile as JSON")
	for _, name := range []string{"age", "weight", "height", "gender", "activity", "goal"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func runTargets(out io.Writer, opts *targetsOptions) error {
	req := &domain.ProfileRequest{
		CalculateRequest: domain.CalculateRequest{
			Age:           &opts.age,
			WeightKg:      &opts.weight,
			HeightCm:      &opts.height,
			Gender:        opts.gender,
			ActivityLevel: opts.activity,
			Goal:          opts.goal,
		},
		UnitSystem: opts.system,
		CupLocale:  opts.cups,
	}
	system, locale, err := req.Preferences()
	if err != nil {
		return err
	}
	biometrics, goal, err := req.Parse()
	if err != nil {
		return err
	}
	if system == domain.UnitSystemImperial {
		biometrics.WeightKg = units.PoundsToKilograms(biometrics.WeightKg)
		biometrics.HeightCm = units.InchesToCentimeters(biometrics.HeightCm)
	}

	energy, err := nutrition.Calculate(biometrics, goal)
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(energy)
	}

	profile := &domain.UserProfile{
		Age:           biometrics.Age,
		WeightKg:      biometrics.WeightKg,
		HeightCm:      biometrics.HeightCm,
		Gender:        biometrics.Gender,
		ActivityLevel: biometrics.ActivityLevel,
		Goal:          goal,
		UnitSystem:    system,
		CupLocale:     locale,
		Energy:        energy,
	}
	display := units.DisplayProfile(profile)

	fmt.Fprintf(out, "Weight:         %s\n", display.Weight)
	fmt.Fprintf(out, "Height:         %s\n", display.Height)
	fmt.Fprintf(out, "BMR:            %.2f kcal\n", energy.BMR)
	fmt.Fprintf(out, "TDEE:           %d kcal\n", energy.TDEE)
	fmt.Fprintf(out, "Daily target:   %s (%s)\n", display.DailyCalories, goal)
	fmt.Fprintf(out, "Protein:        %s\n", display.Protein)
	fmt.Fprintf(out, "Carbs:          %s\n", display.Carbs)
	fmt.Fprintf(out, "Fats:           %s\n", display.Fats)
	fmt.Fprintf(out, "Water:          %s\n", display.WaterTarget)
	return nil
}
