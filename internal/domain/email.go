package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// EmailPolicy decides whether a string is an acceptable email address.
type EmailPolicy interface {
	Valid(address string) bool
}

// EmailPolicyFunc adapts a plain function to EmailPolicy.
type EmailPolicyFunc func(address string) bool

func (f EmailPolicyFunc) Valid(address string) bool {
	return f(address)
}

// ValidatorPolicy checks addresses against the go-playground "email" rule.
type ValidatorPolicy struct {
	validate *validator.Validate
}

// NewValidatorPolicy returns a policy backed by v, or by a fresh validator when v is nil.
func NewValidatorPolicy(v *validator.Validate) *ValidatorPolicy {
	if v == nil {
		v = validator.New()
	}

	return &ValidatorPolicy{validate: v}
}

func (p *ValidatorPolicy) Valid(address string) bool {
	return p.validate.Var(address, "required,email") == nil
}

var defaultEmailPolicy EmailPolicy = NewValidatorPolicy(nil)

// SubscriberEmail is an email address accepted by an EmailPolicy.
// The original input is kept verbatim.
type SubscriberEmail struct {
	value string
}

// ParseSubscriberEmail validates raw with the default policy.
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	return ParseSubscriberEmailWith(raw, defaultEmailPolicy)
}

// ParseSubscriberEmailWith validates raw with the given policy.
//
// Independently of the policy, the address must have a non-empty local part
// and a domain containing at least one dot.
func ParseSubscriberEmailWith(raw string, policy EmailPolicy) (SubscriberEmail, error) {
	if !utf8.ValidString(raw) || strings.ContainsRune(raw, 0) {
		return SubscriberEmail{}, &ValidationError{Field: "email", Err: ErrInvalidEmail}
	}

	at := strings.LastIndex(raw, "@")
	if at <= 0 {
		return SubscriberEmail{}, &ValidationError{Field: "email", Err: ErrInvalidEmail}
	}

	if !strings.Contains(raw[at+1:], ".") {
		return SubscriberEmail{}, &ValidationError{Field: "email", Err: ErrInvalidEmail}
	}

	if !policy.Valid(raw) {
		return SubscriberEmail{}, &ValidationError{Field: "email", Err: ErrInvalidEmail}
	}

	return SubscriberEmail{value: raw}, nil
}

func (e SubscriberEmail) String() string {
	return e.value
}
