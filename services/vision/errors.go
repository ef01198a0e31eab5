package vision

import "fmt"

// ValidationError signals a missing required input, such as an empty photo
// batch. Not retried.
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

// ExternalServiceError signals that the vision inference call failed after
// exhausting its model fallback chain, or that every photo in a batch failed.
type ExternalServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

func NewExternalServiceError(msg string, err error) error {
	return &ExternalServiceError{
		Code:    "externalServiceError",
		Message: msg,
		Err:     err,
	}
}

// SchemaError signals that a model response did not match the expected
// analysis schema. The offending photo is counted as failed rather than
// coerced into the aggregate.
type SchemaError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema mismatch on %s: %s", e.Field, e.Message)
}
