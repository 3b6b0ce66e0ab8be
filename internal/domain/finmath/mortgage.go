package finmath

import "math"

// MonthlyMortgagePayment computes the fixed monthly payment of an amortized
// loan for the given purchase price, down payment, annual interest rate
// percentage and term in years:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with P = price - downPayment, r the monthly rate and n the number of
// monthly payments. A zero interest rate degenerates to straight-line
// repayment P/n; the closed formula divides by zero there.
func MonthlyMortgagePayment(price, downPayment, annualRatePct float64, termYears int) float64 {
	principal := price - downPayment
	months := float64(termYears * 12)

	if annualRatePct == 0 {
		return principal / months
	}

	monthlyRate := annualRatePct / 100 / 12
	factor := math.Pow(1+monthlyRate, months)
	return principal * monthlyRate * factor / (factor - 1)
}
