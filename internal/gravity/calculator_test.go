package gravity

import (
	"math"
	"testing"

	"github.com/tlahteenmaki/meadwright/internal/domain"
)

// closeTo reports whether a and b agree within a relative tolerance.
func closeTo(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= relTol*scale
}

func TestCalculateIngredientsUS(t *testing.T) {
	// Reference batch: 5 gallons at OG 1.117 (14% semi-sweet).
	targets := domain.GravityTargets{OG: 1.117, FG: 1.010}
	res := CalculateIngredients(targets, 5, domain.UnitsUS)

	if !closeTo(res.GravityPoints, 585, 1e-9) {
		t.Fatalf("expected 585 gravity points, got %.4f", res.GravityPoints)
	}
	if !closeTo(res.Honey, 585.0/35.0, 1e-9) {
		t.Fatalf("expected %.4f lbs honey, got %.4f", 585.0/35.0, res.Honey)
	}
	wantWater := 5 - (585.0/35.0)/10*HoneyGalPer10Lbs
	if !closeTo(res.Water, wantWater, 1e-9) {
		t.Fatalf("expected %.4f gal water, got %.4f", wantWater, res.Water)
	}
	if res.HoneyUnit != "lbs" || res.WaterUnit != "gallons" {
		t.Fatalf("expected lbs/gallons, got %s/%s", res.HoneyUnit, res.WaterUnit)
	}
	if res.OG != 1.117 {
		t.Fatalf("expected OG 1.117 carried through, got %.3f", res.OG)
	}
}

func TestCalculateIngredientsMetric(t *testing.T) {
	// 20 liters at OG 1.117: the point arithmetic runs on the converted
	// gallon volume, the honey converts to kg, and the water derives
	// from the 0.74 L/kg displacement natively in liters.
	targets := domain.GravityTargets{OG: 1.117, FG: 1.010}
	res := CalculateIngredients(targets, 20, domain.UnitsMetric)

	volumeGal := 20 * GalPerLiter
	wantPoints := 0.117 * 1000 * volumeGal
	wantHoneyKg := wantPoints / PointsPerPoundGallon / LbsPerKg
	wantWaterL := 20 - wantHoneyKg*HoneyLitersPerKg

	if !closeTo(res.GravityPoints, wantPoints, 1e-6) {
		t.Fatalf("expected %.4f gravity points, got %.4f", wantPoints, res.GravityPoints)
	}
	if !closeTo(res.Honey, wantHoneyKg, 1e-6) {
		t.Fatalf("expected %.4f kg honey, got %.4f", wantHoneyKg, res.Honey)
	}
	if !closeTo(res.Water, wantWaterL, 1e-6) {
		t.Fatalf("expected %.4f L water, got %.4f", wantWaterL, res.Water)
	}
	if res.HoneyUnit != "kg" || res.WaterUnit != "liters" {
		t.Fatalf("expected kg/liters, got %s/%s", res.HoneyUnit, res.WaterUnit)
	}
}

func TestCalculateIngredientsIdempotent(t *testing.T) {
	targets := domain.GravityTargets{OG: 1.107, FG: 1.000}
	first := CalculateIngredients(targets, 18.9, domain.UnitsMetric)
	second := CalculateIngredients(targets, 18.9, domain.UnitsMetric)
	if first != second {
		t.Fatalf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestWaterNeverNegative(t *testing.T) {
	// Sweep the practical OG range across volumes in both systems.
	for og := 1.001; og <= MaxPracticalOG; og += 0.014 {
		targets := domain.GravityTargets{OG: og}
		for _, volume := range []float64{0.5, 1, 5, 19, 100} {
			for _, units := range []domain.UnitSystem{domain.UnitsUS, domain.UnitsMetric} {
				res := CalculateIngredients(targets, volume, units)
				if res.Water < 0 {
					t.Fatalf("og %.3f volume %g %s: negative water %.4f", og, volume, units, res.Water)
				}
			}
		}
	}
}

func TestWaterClampedAtZero(t *testing.T) {
	// An absurd gravity where the honey volume alone exceeds the batch:
	// the result reports zero top-off water, not a negative quantity.
	res := CalculateIngredients(domain.GravityTargets{OG: 1.600}, 5, domain.UnitsUS)
	if res.Water != 0 {
		t.Fatalf("expected water clamped to 0, got %.4f", res.Water)
	}
	res = CalculateIngredients(domain.GravityTargets{OG: 1.600}, 19, domain.UnitsMetric)
	if res.Water != 0 {
		t.Fatalf("expected water clamped to 0, got %.4f", res.Water)
	}
}

func TestUnitSystemsAgree(t *testing.T) {
	// The same physical batch described in gallons or liters must agree
	// on gravity points and honey mass; each system's water follows its
	// own displacement estimate.
	tests := []struct {
		name      string
		og        float64
		volumeGal float64
	}{
		{"small dry", 1.038, 1},
		{"reference", 1.117, 5},
		{"ceiling", 1.220, 6.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets := domain.GravityTargets{OG: tt.og}
			volumeL := tt.volumeGal / GalPerLiter

			us := CalculateIngredients(targets, tt.volumeGal, domain.UnitsUS)
			metric := CalculateIngredients(targets, volumeL, domain.UnitsMetric)

			if !closeTo(us.GravityPoints, metric.GravityPoints, 1e-6) {
				t.Fatalf("gravity points diverge: US %.6f vs metric %.6f", us.GravityPoints, metric.GravityPoints)
			}
			if !closeTo(us.Honey/LbsPerKg, metric.Honey, 1e-6) {
				t.Fatalf("honey mass diverges: US %.6f kg vs metric %.6f kg", us.Honey/LbsPerKg, metric.Honey)
			}
			wantMetricWater := volumeL - metric.Honey*HoneyLitersPerKg
			if !closeTo(metric.Water, wantMetricWater, 1e-6) {
				t.Fatalf("metric water off displacement model: got %.6f want %.6f", metric.Water, wantMetricWater)
			}
		})
	}
}
