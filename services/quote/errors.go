package quote

import "fmt"

// ValidationError signals a missing required input. The calculator raises it
// only for an absent service definition; every other ambiguity resolves
// through a documented fallback instead.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}
