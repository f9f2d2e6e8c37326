// Package gravity implements the mead gravity and ingredient formulas.
// Both entry points are pure functions over domain values: no state,
// no I/O, bounded constant-time arithmetic.
package gravity

// Brewing rules of thumb. These are empirical estimates, preserved
// exactly for compatibility with established batch records, not
// constants derivable from first principles.
const (
	// PointsPerPoundGallon is honey's assumed sugar contribution:
	// gravity points per pound per gallon. A standard estimate for
	// most floral honeys.
	PointsPerPoundGallon = 35.0

	// ABVFactor relates gravity drop to alcohol: ABV = (OG - FG) * 131.25.
	ABVFactor = 131.25

	// HoneyGalPer10Lbs is honey's volume displacement in US units:
	// 10 lbs of honey displaces about 0.65 gallons.
	HoneyGalPer10Lbs = 0.65

	// HoneyLitersPerKg is honey's volume displacement in metric units:
	// 1 kg of honey displaces about 0.74 liters.
	HoneyLitersPerKg = 0.74

	// MaxPracticalOG is the yeast-tolerance ceiling. Batches resolved
	// above it need an impractical amount of honey and exceed the
	// tolerance of most mead yeasts; callers must warn the user.
	MaxPracticalOG = 1.225
)

// Unit conversion factors.
const (
	LbsPerKg    = 2.20462  // 1 kg = 2.20462 lbs
	GalPerLiter = 0.264172 // 1 L = 0.264172 gallons
)
