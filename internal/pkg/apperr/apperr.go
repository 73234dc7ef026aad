// Package apperr defines the error taxonomy shared by all handlers:
// validation errors are the client's fault, schema errors are the model's
// fault, upstream errors cover everything a collaborator got wrong.
package apperr

import "fmt"

// ValidationError marks a bad or incomplete request body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError.
func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// SchemaError marks an LLM response that parsed as JSON but does not satisfy
// the documented result shape.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string { return e.Message }

// Schemaf builds a SchemaError.
func Schemaf(format string, args ...interface{}) *SchemaError {
	return &SchemaError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError marks a failed call to an external collaborator (LLM or
// database) or an unparseable collaborator response.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

// Upstream wraps err as an UpstreamError. Nil stays nil.
func Upstream(err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamError{Err: err}
}
