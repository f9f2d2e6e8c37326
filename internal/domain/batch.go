// Package domain defines the core types for the mead ingredient calculator.
// All other packages depend on domain; domain depends on nothing.
package domain

import (
	"fmt"
	"strings"
)

// Sweetness is the desired residual-sugar level of the finished mead.
// It determines the assumed final gravity under standard fermentation.
type Sweetness int

const (
	SweetnessDry Sweetness = iota
	SweetnessSemiSweet
	SweetnessSweet
	SweetnessDessert
)

// String returns the canonical label for the sweetness level.
func (s Sweetness) String() string {
	switch s {
	case SweetnessDry:
		return "Dry"
	case SweetnessSemiSweet:
		return "Semi-Sweet"
	case SweetnessSweet:
		return "Sweet"
	case SweetnessDessert:
		return "Dessert"
	default:
		return "unknown"
	}
}

// sweetnessNames maps normalized labels to Sweetness values.
var sweetnessNames = map[string]Sweetness{
	"dry":        SweetnessDry,
	"semi-sweet": SweetnessSemiSweet,
	"sweet":      SweetnessSweet,
	"dessert":    SweetnessDessert,
}

// ParseSweetness matches a user-supplied label against the four
// sweetness levels, case-insensitively. Anything else is
// ErrInvalidSweetness — there is no default level.
func ParseSweetness(label string) (Sweetness, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	if s, ok := sweetnessNames[key]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q (use Dry, Semi-Sweet, Sweet, or Dessert)", ErrInvalidSweetness, label)
}

// SweetnessLevels lists the levels in menu order.
func SweetnessLevels() []Sweetness {
	return []Sweetness{SweetnessDry, SweetnessSemiSweet, SweetnessSweet, SweetnessDessert}
}

// FermentationMode selects the yeast profile the calculation assumes.
type FermentationMode int

const (
	// ModeStandard honors the sweetness level's final-gravity estimate.
	ModeStandard FermentationMode = iota
	// ModeTurbo assumes fermentation runs to completion, forcing the
	// final gravity to 1.000 regardless of the sweetness selection.
	ModeTurbo
)

// String returns a human-readable mode name.
func (m FermentationMode) String() string {
	if m == ModeTurbo {
		return "Turbo"
	}
	return "Standard"
}

// UnitSystem selects the measurement system for input and output.
type UnitSystem int

const (
	UnitsUS UnitSystem = iota
	UnitsMetric
)

// String returns a human-readable unit system name.
func (u UnitSystem) String() string {
	if u == UnitsMetric {
		return "Metric"
	}
	return "US Imperial"
}

// VolumeUnit returns the batch-volume unit label for the system.
func (u UnitSystem) VolumeUnit() string {
	if u == UnitsMetric {
		return "liters"
	}
	return "gallons"
}

// MassUnit returns the honey-mass unit label for the system.
func (u UnitSystem) MassUnit() string {
	if u == UnitsMetric {
		return "kg"
	}
	return "lbs"
}

// ABV domain limits. The upper bound assumes turbo yeast; ordinary
// mead yeasts give out well before 25%.
const (
	MinABV = 5
	MaxABV = 25
)

// CalculationInput collects the five values a calculation needs.
type CalculationInput struct {
	Volume    float64
	Units     UnitSystem
	ABV       int
	Sweetness Sweetness
	Mode      FermentationMode
}

// Validate checks the shell-owned input contract: volume must be
// positive and ABV within [MinABV, MaxABV]. Sweetness and mode are
// already constrained by their types.
func (in CalculationInput) Validate() error {
	if in.Volume <= 0 {
		return fmt.Errorf("%w: batch volume must be positive, got %g", ErrInvalidInput, in.Volume)
	}
	if in.ABV < MinABV || in.ABV > MaxABV {
		return fmt.Errorf("%w: ABV must be between %d%% and %d%%, got %d", ErrInvalidInput, MinABV, MaxABV, in.ABV)
	}
	return nil
}

// GravityTargets holds the resolved gravities for a batch. Derived per
// calculation, never stored.
type GravityTargets struct {
	OG float64 // original gravity, e.g. 1.117
	FG float64 // assumed final gravity, e.g. 1.010
}

// IngredientResult is the outcome of one ingredient calculation.
// Water is clamped to zero when the honey volume alone meets or
// exceeds the batch volume.
type IngredientResult struct {
	OG            float64
	Honey         float64
	HoneyUnit     string
	Water         float64
	WaterUnit     string
	GravityPoints float64
}
