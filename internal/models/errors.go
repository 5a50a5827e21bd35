package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error constants for registration and workspace operations
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrDuplicateCPF        = errors.New("cpf already registered")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrSubmissionInFlight  = errors.New("a submission for this form is already in progress")
	ErrSubmissionDone      = errors.New("this form has already been submitted")
	ErrStoreUnavailable    = errors.New("registration store unavailable")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrPhotoNotFound       = errors.New("photo not found")
	ErrPhotoLimitReached   = errors.New("photo limit reached")
	ErrPhotoNotEditable    = errors.New("photo can no longer be edited")
	ErrPhotoNotDeletable   = errors.New("approved photos cannot be deleted")
	ErrInvalidPhotoType    = errors.New("unsupported image type")
	ErrPhotoTooLarge       = errors.New("photo exceeds the maximum size")
	ErrInvalidPhotoStatus  = errors.New("invalid photo status")
	ErrStorageNotAvailable = errors.New("photo storage not configured")
)

// FieldErrors maps a field name to a human readable message
type FieldErrors map[string]string

// Add records a message for field, keeping the first one
func (f FieldErrors) Add(field, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

// Fields returns the failing field names in sorted order
func (f FieldErrors) Fields() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FieldValidationError is returned when one or more fields are invalid. It
// is always recoverable by correcting the named fields.
type FieldValidationError struct {
	Fields FieldErrors
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("validation failed for fields: %s", strings.Join(e.Fields.Fields(), ", "))
}

// NewFieldValidationError wraps fields, or returns nil when there are none
func NewFieldValidationError(fields FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}
	return &FieldValidationError{Fields: fields}
}

// SubmissionError is a recoverable failure of a submit attempt. Retrying
// with the same or corrected data is always allowed.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return "submission failed: " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// NewSubmissionError wraps err as a SubmissionError
func NewSubmissionError(err error) error {
	return &SubmissionError{Err: err}
}
