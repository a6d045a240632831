package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
	ErrResource      = errors.New("resource exhausted")
)

// Command-level errors. Each one wraps the category it belongs to so callers
// can match either the exact failure or its class.
var (
	ErrTooManyBatches    = fmt.Errorf("%w: too many batches", ErrConflict)
	ErrDuplicateBatch    = fmt.Errorf("%w: duplicate batch", ErrAlreadyExists)
	ErrInvalidBatchID    = fmt.Errorf("%w: invalid batch id", ErrValidation)
	ErrInvalidName       = fmt.Errorf("%w: invalid name", ErrValidation)
	ErrInvalidDate       = fmt.Errorf("%w: invalid date", ErrValidation)
	ErrInvalidQuantity   = fmt.Errorf("%w: invalid quantity", ErrValidation)
	ErrNoSuchVaccine     = fmt.Errorf("%w: no such vaccine", ErrNotFound)
	ErrNoStock           = fmt.Errorf("%w: no stock", ErrConflict)
	ErrAlreadyVaccinated = fmt.Errorf("%w: already vaccinated", ErrConflict)
	ErrNoSuchBatch       = fmt.Errorf("%w: no such batch", ErrNotFound)
	ErrNoSuchUser        = fmt.Errorf("%w: no such user", ErrNotFound)
	ErrOutOfMemory       = fmt.Errorf("%w: out of memory", ErrResource)
)

// codes maps every command-level error to a stable identifier.
var codes = []struct {
	err  error
	code string
}{
	{ErrTooManyBatches, "too_many_batches"},
	{ErrDuplicateBatch, "duplicate_batch"},
	{ErrInvalidBatchID, "invalid_batch_id"},
	{ErrInvalidName, "invalid_name"},
	{ErrInvalidDate, "invalid_date"},
	{ErrInvalidQuantity, "invalid_quantity"},
	{ErrNoSuchVaccine, "no_such_vaccine"},
	{ErrNoStock, "no_stock"},
	{ErrAlreadyVaccinated, "already_vaccinated"},
	{ErrNoSuchBatch, "no_such_batch"},
	{ErrNoSuchUser, "no_such_user"},
	{ErrOutOfMemory, "out_of_memory"},
}

// Code returns the stable identifier of a command-level error, "ok" for nil
// and "internal" for anything outside the taxonomy.
func Code(err error) string {
	if err == nil {
		return "ok"
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "internal"
}

// SubjectError attaches the offending name or id to a command-level error.
// The subject is echoed in front of the message when the error is reported.
type SubjectError struct {
	Subject string
	Err     error
}

func (e *SubjectError) Error() string {
	return fmt.Sprintf("%s: %v", e.Subject, e.Err)
}

func (e *SubjectError) Unwrap() error { return e.Err }

// NewSubjectError creates a SubjectError for the given subject.
func NewSubjectError(subject string, err error) *SubjectError {
	return &SubjectError{Subject: subject, Err: err}
}
