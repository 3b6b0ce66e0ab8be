// Package error defines domain-specific errors for the wealth advisor
// backend.
package error

// ErrorCode identifies a domain error for API consumers.
// Format: XXX-YYZZZZ where XXX is the entity family, YY the category
// (01 validation, 02 state) and ZZZZ the specific error.
type ErrorCode string

// DomainError carries a stable code alongside a human-readable message and
// the underlying cause.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// New creates a DomainError with the given code, message and cause.
func New(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
