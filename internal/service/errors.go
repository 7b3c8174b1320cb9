package service

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateAccount   = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is locked due to too many failed attempts")
)

// InvalidPasswordError is returned for a wrong password on an unlocked
// account. Attempt is the counter after this failure, so callers can show
// "attempt 3/5" style feedback.
type InvalidPasswordError struct {
	Attempt int
	Max     int
}

func (e *InvalidPasswordError) Error() string {
	return fmt.Sprintf("invalid password: attempt %d/%d", e.Attempt, e.Max)
}

// ValidationError reports a malformed input before any store access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
