package models

import (
	"errors"
	"fmt"
)

// ValidationError reports invalid caller input or a broken data invariant
// (score out of range, weights not summing to 100, missing justification).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// StateError reports an illegal lifecycle transition (mutating a final
// record, advancing past the last negotiation round).
type StateError struct {
	Msg string
}

func (e *StateError) Error() string { return e.Msg }

func NewStateError(format string, args ...any) error {
	return &StateError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an absent vendor, criterion, document, offer or
// event reference.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NewNotFoundError(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}

func IsNotFoundError(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
