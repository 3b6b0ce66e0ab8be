package finmath

import (
	"math"
	"testing"
)

func TestMonthlyMortgagePayment(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		down      float64
		rate      float64
		termYears int
		want      float64
		tolerance float64
	}{
		{
			// Standard amortization formula on 400k at 6.5% over 30 years.
			name:      "typical thirty year loan",
			price:     500000,
			down:      100000,
			rate:      6.5,
			termYears: 30,
			want:      2528.27,
			tolerance: 0.01,
		},
		{
			name:      "fifteen year loan",
			price:     300000,
			down:      60000,
			rate:      5.0,
			termYears: 15,
			want:      1897.91,
			tolerance: 0.05,
		},
		{
			name:      "zero rate degenerates to straight line",
			price:     360000,
			down:      0,
			rate:      0,
			termYears: 30,
			want:      1000,
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyMortgagePayment(tt.price, tt.down, tt.rate, tt.termYears)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("payment is not finite: %f", got)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("expected %f (±%f), got %f", tt.want, tt.tolerance, got)
			}
		})
	}
}

func TestMonthlyMortgagePayment_ZeroRateExact(t *testing.T) {
	principal := 240000.0
	got := MonthlyMortgagePayment(principal, 0, 0, 20)

	if got != principal/240 {
		t.Errorf("expected exact %f, got %f", principal/240, got)
	}
}
