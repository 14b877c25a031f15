package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyOrBlank       = errors.New("empty or blank")
	ErrTooLong            = errors.New("too long")
	ErrForbiddenCharacter = errors.New("contains a forbidden character")
	ErrInvalidEncoding    = errors.New("not valid UTF-8")
	ErrInvalidEmail       = errors.New("not a valid email address")
)

// ValidationError reports which form field was refused and why.
//
// The reason is one of the Err* sentinels above and can be matched with errors.Is.
type ValidationError struct {
	Field string // form field name, e.g. "name" or "email"
	Err   error  // reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
