// Package units converts between the metric and imperial units used on
// profile forms, and formats values for display in a user's preferred units.
package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	kgPerPound    = 0.453592
	poundsPerKg   = 2.20462
	cmPerInch     = 2.54
	mlPerUSCup    = 240 // US legal cup
	mlPerJPCup    = 200 // Japanese cup
	inchesPerFoot = 12
)

var (
	// ErrUnsupportedUnit is returned for a unit name Convert does not know
	ErrUnsupportedUnit = errors.New("unsupported unit")

	// ErrIncompatibleUnits is returned when converting between dimensions,
	// e.g. kg to cm
	ErrIncompatibleUnits = errors.New("incompatible units")
)

// Unit is a unit name accepted by Convert.
type Unit string

const (
	Kilogram   Unit = "kg"
	Pound      Unit = "lb"
	Centimeter Unit = "cm"
	Inch       Unit = "in"
	Milliliter Unit = "ml"
	USCup      Unit = "us_cup"
	JPCup      Unit = "jp_cup"
)

type dimension int

const (
	dimMass dimension = iota + 1
	dimLength
	dimVolume
)

var unitAliases = map[string]Unit{
	"kg": Kilogram, "kgs": Kilogram, "kilogram": Kilogram, "kilograms": Kilogram,
	"lb": Pound, "lbs": Pound, "pound": Pound, "pounds": Pound,
	"cm": Centimeter, "centimeter": Centimeter, "centimeters": Centimeter,
	"in": Inch, "inch": Inch, "inches": Inch,
	"ml": Milliliter, "milliliter": Milliliter, "milliliters": Milliliter,
	"us_cup": USCup, "cup": USCup, "cups": USCup,
	"jp_cup": JPCup,
}

// ParseUnit resolves a unit name or alias, case-insensitively.
func ParseUnit(s string) (Unit, error) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedUnit, s)
	}
	return u, nil
}

func (u Unit) dimension() dimension {
	switch u {
	case Kilogram, Pound:
		return dimMass
	case Centimeter, Inch:
		return dimLength
	case Milliliter, USCup, JPCup:
		return dimVolume
	}
	return 0
}

// PoundsToKilograms converts and rounds to 2 decimals.
func PoundsToKilograms(lbs float64) float64 {
	return round2(lbs * kgPerPound)
}

// KilogramsToPounds converts and rounds to 2 decimals.
func KilogramsToPounds(kg float64) float64 {
	return round2(kg * poundsPerKg)
}

// InchesToCentimeters converts and rounds to 2 decimals.
func InchesToCentimeters(in float64) float64 {
	return round2(in * cmPerInch)
}

// CentimetersToInches converts and rounds to 2 decimals.
func CentimetersToInches(cm float64) float64 {
	return round2(cm / cmPerInch)
}

// MillilitersToUSCups converts using a 240 mL US cup.
func MillilitersToUSCups(ml float64) float64 { return ml / mlPerUSCup }

// USCupsToMilliliters converts using a 240 mL US cup.
func USCupsToMilliliters(c float64) float64 { return c * mlPerUSCup }

// MillilitersToJPCups converts using a 200 mL Japanese cup.
func MillilitersToJPCups(ml float64) float64 { return ml / mlPerJPCup }

// JPCupsToMilliliters converts using a 200 mL Japanese cup.
func JPCupsToMilliliters(c float64) float64 { return c * mlPerJPCup }

// Convert converts value between two units of the same dimension.
// Volume goes through milliliters, so us_cup to jp_cup is exact.
func Convert(value float64, from, to Unit) (float64, error) {
	if from.dimension() == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, from)
	}
	if to.dimension() == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, to)
	}
	if from.dimension() != to.dimension() {
		return 0, fmt.Errorf("%w: %s to %s", ErrIncompatibleUnits, from, to)
	}
	if from == to {
		return value, nil
	}

	switch from {
	case Kilogram:
		return KilogramsToPounds(value), nil
	case Pound:
		return PoundsToKilograms(value), nil
	case Centimeter:
		return CentimetersToInches(value), nil
	case Inch:
		return InchesToCentimeters(value), nil
	}

	ml := value
	switch from {
	case USCup:
		ml = USCupsToMilliliters(value)
	case JPCup:
		ml = JPCupsToMilliliters(value)
	}
	switch to {
	case USCup:
		return MillilitersToUSCups(ml), nil
	case JPCup:
		return MillilitersToJPCups(ml), nil
	}
	return ml, nil
}

func round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}
