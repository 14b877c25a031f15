package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// MaxNameLength is the maximum number of grapheme clusters in a subscriber name.
const MaxNameLength = 256

const forbiddenNameChars = `/()"<>\{}`

// SubscriberName is a validated, trimmed display name.
type SubscriberName struct {
	value string
}

// ParseSubscriberName trims raw and validates it as a subscriber name.
//
// The trimmed value is what gets stored.
func ParseSubscriberName(raw string) (SubscriberName, error) {
	if !utf8.ValidString(raw) {
		return SubscriberName{}, &ValidationError{Field: "name", Err: ErrInvalidEncoding}
	}

	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return SubscriberName{}, &ValidationError{Field: "name", Err: ErrEmptyOrBlank}
	}

	if uniseg.GraphemeClusterCount(trimmed) > MaxNameLength {
		return SubscriberName{}, &ValidationError{Field: "name", Err: ErrTooLong}
	}

	// postgres text columns cannot hold NUL
	if strings.ContainsAny(raw, forbiddenNameChars) || strings.ContainsRune(raw, 0) {
		return SubscriberName{}, &ValidationError{Field: "name", Err: ErrForbiddenCharacter}
	}

	return SubscriberName{value: trimmed}, nil
}

func (n SubscriberName) String() string {
	return n.value
}
