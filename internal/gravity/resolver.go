package gravity

import (
	"math"

	"github.com/tlahteenmaki/meadwright/internal/domain"
)

// finalGravities maps sweetness levels to their assumed final gravity
// under standard fermentation.
var finalGravities = map[domain.Sweetness]float64{
	domain.SweetnessDry:       1.000,
	domain.SweetnessSemiSweet: 1.010,
	domain.SweetnessSweet:     1.020,
	domain.SweetnessDessert:   1.030,
}

// ResolveTargets computes the original and final gravity for a target
// ABV. Under turbo mode fermentation is assumed to run bone dry, so FG
// is 1.000 whatever the sweetness selection. The OG is rounded to
// three decimals, the convention for reporting specific gravity.
//
// ABV range and volume positivity are the caller's contract; the only
// error here is an unrecognized sweetness value.
func ResolveTargets(abv int, sweetness domain.Sweetness, mode domain.FermentationMode) (domain.GravityTargets, error) {
	var fg float64
	if mode == domain.ModeTurbo {
		fg = 1.000
	} else {
		var ok bool
		fg, ok = finalGravities[sweetness]
		if !ok {
			return domain.GravityTargets{}, domain.ErrInvalidSweetness
		}
	}

	// ABV = (OG - FG) * 131.25, rearranged for OG.
	og := fg + float64(abv)/ABVFactor

	return domain.GravityTargets{
		OG: math.Round(og*1000) / 1000,
		FG: fg,
	}, nil
}

// Impractical reports whether the resolved OG crosses the yeast
// tolerance ceiling. How to act on it is shell policy: the scripted
// contexts abort, the form warns and still renders.
func Impractical(targets domain.GravityTargets) bool {
	return targets.OG > MaxPracticalOG
}
