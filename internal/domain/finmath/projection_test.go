package finmath

import (
	"math"
	"testing"
)

func TestRetirementProjection_Length(t *testing.T) {
	tests := []struct {
		name          string
		currentAge    int
		retirementAge int
		wantLen       int
	}{
		{name: "thirty year horizon", currentAge: 35, retirementAge: 65, wantLen: 31},
		{name: "one year horizon", currentAge: 64, retirementAge: 65, wantLen: 2},
		{name: "already retired", currentAge: 65, retirementAge: 65, wantLen: 1},
		{name: "retirement age in the past", currentAge: 70, retirementAge: 65, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := RetirementProjection(tt.currentAge, tt.retirementAge, 100000, 1000, 7)
			if len(points) != tt.wantLen {
				t.Errorf("expected %d points, got %d", tt.wantLen, len(points))
			}
		})
	}
}

func TestRetirementProjection_FirstPointIsCurrentSavings(t *testing.T) {
	points := RetirementProjection(30, 65, 250000.50, 2000, 6.5)

	if points[0].Balance != 250000.50 {
		t.Errorf("expected first balance to equal current savings exactly, got %f", points[0].Balance)
	}
	if points[0].Contributions != 250000.50 {
		t.Errorf("expected first contributions to equal current savings, got %f", points[0].Contributions)
	}
	if points[0].Age != 30 {
		t.Errorf("expected first age 30, got %d", points[0].Age)
	}
}

func TestRetirementProjection_NonDecreasing(t *testing.T) {
	points := RetirementProjection(25, 65, 50000, 500, 8)

	for i := 1; i < len(points); i++ {
		if points[i].Balance < points[i-1].Balance {
			t.Fatalf("balance decreased at age %d: %f < %f",
				points[i].Age, points[i].Balance, points[i-1].Balance)
		}
	}
}

func TestRetirementProjection_CompoundingStep(t *testing.T) {
	// One year at 10% on 1000 with 100/month: 1000*1.10 + 1200 = 2300.
	points := RetirementProjection(40, 41, 1000, 100, 10)

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if math.Abs(points[1].Balance-2300) > 1e-9 {
		t.Errorf("expected balance 2300, got %f", points[1].Balance)
	}
	if math.Abs(points[1].Contributions-2200) > 1e-9 {
		t.Errorf("expected contributions 2200, got %f", points[1].Contributions)
	}
}

func TestRetirementProjection_ZeroRateAccumulatesContributions(t *testing.T) {
	points := RetirementProjection(60, 63, 0, 100, 0)

	want := []float64{0, 1200, 2400, 3600}
	for i, p := range points {
		if math.Abs(p.Balance-want[i]) > 1e-9 {
			t.Errorf("year %d: expected balance %f, got %f", i, want[i], p.Balance)
		}
	}
}

func TestProjectedRetirementBalance_MatchesLastPoint(t *testing.T) {
	points := RetirementProjection(35, 65, 100000, 1500, 7)
	balance := ProjectedRetirementBalance(35, 65, 100000, 1500, 7)

	if balance != points[len(points)-1].Balance {
		t.Errorf("expected %f, got %f", points[len(points)-1].Balance, balance)
	}
}
