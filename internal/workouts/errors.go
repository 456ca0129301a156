package workouts

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means no user identity came with the call.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFoundOrUnauthorized covers both a missing row and a row owned by someone else.
	ErrNotFoundOrUnauthorized = errors.New("not found or unauthorized")
	ErrValidation             = errors.New("validation error")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func validationErr(field, format string, args ...any) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
