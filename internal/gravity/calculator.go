package gravity

import (
	"github.com/tlahteenmaki/meadwright/internal/domain"
)

// CalculateIngredients works out the honey and top-off water needed to
// hit the target gravity in the given batch volume. The gravity-point
// arithmetic always runs in US units (the 35 PPG constant is defined
// per pound per gallon); metric input is converted to gallons first
// and metric output derived from the converted honey mass.
//
// Water is clamped at zero: once the honey volume alone meets the
// batch volume there is simply nothing to top off.
func CalculateIngredients(targets domain.GravityTargets, volume float64, units domain.UnitSystem) domain.IngredientResult {
	volumeGal := volume
	if units == domain.UnitsMetric {
		volumeGal = volume * GalPerLiter
	}

	points := (targets.OG - 1.000) * 1000 * volumeGal
	honeyLbs := points / PointsPerPoundGallon

	if units == domain.UnitsMetric {
		honeyKg := honeyLbs / LbsPerKg
		waterL := volume - honeyKg*HoneyLitersPerKg
		return domain.IngredientResult{
			OG:            targets.OG,
			Honey:         honeyKg,
			HoneyUnit:     units.MassUnit(),
			Water:         max(0, waterL),
			WaterUnit:     units.VolumeUnit(),
			GravityPoints: points,
		}
	}

	waterGal := volumeGal - honeyLbs/10*HoneyGalPer10Lbs
	return domain.IngredientResult{
		OG:            targets.OG,
		Honey:         honeyLbs,
		HoneyUnit:     units.MassUnit(),
		Water:         max(0, waterGal),
		WaterUnit:     units.VolumeUnit(),
		GravityPoints: points,
	}
}
