package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal id does not exist.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalType is returned when the goal type is not supported.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrInvalidPriority is returned when a priority tier is not one of
	// low, medium or high.
	ErrInvalidPriority = errors.New("invalid priority")
)

// Goal error codes.
const (
	ErrCodeGoalNotFound      ErrorCode = "GOL-020001"
	ErrCodeInvalidGoalFields ErrorCode = "GOL-010001"
)
