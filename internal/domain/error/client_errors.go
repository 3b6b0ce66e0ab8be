package error

import "errors"

// Client domain errors.
var (
	// ErrClientNotFound is returned when a client id does not exist.
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidRiskProfile is returned when the risk profile is not one of
	// conservative, moderate or aggressive.
	ErrInvalidRiskProfile = errors.New("invalid risk profile")
)

// Client error codes.
const (
	ErrCodeClientNotFound      ErrorCode = "CLI-020001"
	ErrCodeInvalidClientFields ErrorCode = "CLI-010001"
	ErrCodeInvalidRiskProfile  ErrorCode = "CLI-010002"
)
