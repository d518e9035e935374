package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTitle         = errors.New("task title is empty")
	ErrTaskNotFound       = errors.New("task not found")
	ErrWriteFailed        = errors.New("write failed")
	ErrReadFailed         = errors.New("read failed")
	ErrParseFailed        = errors.New("stored data is corrupt")
	ErrNoSession          = errors.New("no current user")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidUser        = errors.New("name, email and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidTheme       = errors.New("invalid theme")
	ErrInvalidViewState   = errors.New("invalid view state")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidEnum        = errors.New("invalid value")
)

// StoreError describes a failed durable storage operation. It matches both
// its Kind sentinel and the underlying cause with errors.Is.
type StoreError struct {
	Op   string // "read", "write", "decode", "encode"
	Key  string
	Kind error
	Err  error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("store %s [%s]: %v: %v", e.Op, e.Key, e.Kind, e.Err)
	}
	return fmt.Sprintf("store %s [%s]: %v", e.Op, e.Key, e.Kind)
}

func (e *StoreError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
