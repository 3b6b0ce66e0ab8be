package scenario

import (
	"github.com/wealth-advisor/backend/internal/domain/finmath"
)

// MortgageQuoteInput are the home-purchase scenario parameters.
type MortgageQuoteInput struct {
	PurchasePrice float64
	DownPayment   float64
	InterestRate  float64 // annual percentage
	TermYears     int
}

// MortgageQuoteOutput is the computed financing breakdown.
type MortgageQuoteOutput struct {
	Principal      float64
	MonthlyPayment float64
	TotalPaid      float64
	TotalInterest  float64
}

// MortgageQuoteUseCase computes a fixed-rate mortgage quote. Pure
// computation, no dependencies.
type MortgageQuoteUseCase struct{}

// NewMortgageQuoteUseCase creates a new MortgageQuoteUseCase instance.
func NewMortgageQuoteUseCase() *MortgageQuoteUseCase {
	return &MortgageQuoteUseCase{}
}

// Execute computes the quote.
func (uc *MortgageQuoteUseCase) Execute(input MortgageQuoteInput) *MortgageQuoteOutput {
	principal := input.PurchasePrice - input.DownPayment
	payment := finmath.MonthlyMortgagePayment(
		input.PurchasePrice,
		input.DownPayment,
		input.InterestRate,
		input.TermYears,
	)
	totalPaid := payment * float64(input.TermYears*12)

	return &MortgageQuoteOutput{
		Principal:      principal,
		MonthlyPayment: payment,
		TotalPaid:      totalPaid,
		TotalInterest:  totalPaid - principal,
	}
}
