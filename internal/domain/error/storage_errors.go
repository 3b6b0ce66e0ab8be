package error

import "errors"

// Not-found sentinels for the remaining entity families.
var (
	ErrPortfolioNotFound = errors.New("portfolio not found")
	ErrInsightNotFound   = errors.New("insight not found")
	ErrScenarioNotFound  = errors.New("scenario not found")
	ErrActionNotFound    = errors.New("action not found")
)

const (
	ErrCodePortfolioNotFound ErrorCode = "PRT-020001"
	ErrCodeInsightNotFound   ErrorCode = "INS-020001"
	ErrCodeScenarioNotFound  ErrorCode = "SCN-020001"
	ErrCodeActionNotFound    ErrorCode = "ACT-020001"

	ErrCodeInvalidActionFields   ErrorCode = "ACT-010001"
	ErrCodeInvalidScenarioFields ErrorCode = "SCN-010001"
)
