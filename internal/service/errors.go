package service

import (
	"errors"
	"fmt"

	"alumet/api/internal/repository"
)

var (
	// ErrNotFound is the repository sentinel, re-exported so handlers
	// only deal in service errors.
	ErrNotFound = repository.ErrNotFound

	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotConfigured means the admin credentials or session secret are
	// missing from the environment. Login must fail hard rather than
	// match against empty strings.
	ErrNotConfigured = errors.New("admin credentials not configured")
)

// ValidationError reports a rejected request field. Field is the JSON
// field name as the client sent (or omitted) it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func missingField(name string) *ValidationError {
	return &ValidationError{Field: name, Reason: "required field is missing"}
}

// requiredField pairs a JSON field name with its submitted value, in the
// resource's declared order. Validation fails on the first empty value.
type requiredField struct {
	name  string
	value string
}

func checkRequired(fields []requiredField) error {
	for _, f := range fields {
		if f.value == "" {
			return missingField(f.name)
		}
	}
	return nil
}
