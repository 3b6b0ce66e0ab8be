package finmath

import (
	"math"
	"testing"
)

func TestGrowthComparison(t *testing.T) {
	rates := map[string]float64{
		"conservative": 5,
		"moderate":     7,
		"aggressive":   9,
	}

	points := GrowthComparison(100000, rates)

	if len(points) != 7 {
		t.Fatalf("expected 7 checkpoints, got %d", len(points))
	}
	if points[0].Year != 0 || points[6].Year != 30 {
		t.Errorf("expected checkpoints 0..30, got %d..%d", points[0].Year, points[6].Year)
	}

	// Year 0 is the principal for every strategy.
	for name, v := range points[0].Values {
		if v != 100000 {
			t.Errorf("strategy %s: expected principal at year 0, got %f", name, v)
		}
	}

	// Spot check: 100000 * 1.07^10.
	want := 100000 * math.Pow(1.07, 10)
	if got := points[2].Values["moderate"]; math.Abs(got-want) > 1e-6 {
		t.Errorf("expected %f at year 10, got %f", want, got)
	}

	// Higher rates dominate at every checkpoint past year 0.
	for _, p := range points[1:] {
		if !(p.Values["aggressive"] > p.Values["moderate"] && p.Values["moderate"] > p.Values["conservative"]) {
			t.Errorf("year %d: expected aggressive > moderate > conservative, got %v", p.Year, p.Values)
		}
	}
}
