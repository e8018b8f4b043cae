package units

import (
	"fmt"
	"math"

	"github.com/nutriplan/backend/internal/domain"
)

// FormatWeight renders a weight stored in kilograms.
func FormatWeight(kg float64, system domain.UnitSystem) string {
	if system == domain.UnitSystemImperial {
		return fmt.Sprintf("%.1f lb", KilogramsToPounds(kg))
	}
	return fmt.Sprintf("%.1f kg", kg)
}

// FormatHeight renders a height stored in centimeters, as feet and inches
// for imperial users.
func FormatHeight(cm float64, system domain.UnitSystem) string {
	if system != domain.UnitSystemImperial {
		return fmt.Sprintf("%.0f cm", cm)
	}
	totalIn := math.Round(CentimetersToInches(cm))
	feet := int(totalIn) / inchesPerFoot
	inches := int(totalIn) % inchesPerFoot
	return fmt.Sprintf("%d ft %d in", feet, inches)
}

// FormatVolume renders a volume stored in milliliters as cups of the
// user's locale.
func FormatVolume(ml float64, locale domain.CupLocale) string {
	if locale == domain.CupLocaleJP {
		return fmt.Sprintf("%.2f cups (JP)", MillilitersToJPCups(ml))
	}
	return fmt.Sprintf("%.2f cups (US)", MillilitersToUSCups(ml))
}

// Display is a profile's measurements rendered in the user's units.
type Display struct {
	Weight        string `json:"weight"`
	Height        string `json:"height"`
	DailyCalories string `json:"dailyCalories"`
	Protein       string `json:"protein"`
	Carbs         string `json:"carbs"`
	Fats          string `json:"fats"`
	// WaterTarget is a 1 mL per kcal hydration guideline, in cups.
	WaterTarget string `json:"waterTarget"`
}

// DisplayProfile formats a stored profile for rendering.
func DisplayProfile(p *domain.UserProfile) Display {
	e := p.Energy
	return Display{
		Weight:        FormatWeight(p.WeightKg, p.UnitSystem),
		Height:        FormatHeight(p.HeightCm, p.UnitSystem),
		DailyCalories: fmt.Sprintf("%d kcal", e.DailyCalorieTarget),
		Protein:       fmt.Sprintf("%d g", e.TargetProtein),
		Carbs:         fmt.Sprintf("%d g", e.TargetCarbs),
		Fats:          fmt.Sprintf("%d g", e.TargetFats),
		WaterTarget:   FormatVolume(float64(e.DailyCalorieTarget), p.CupLocale),
	}
}
