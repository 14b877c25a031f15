package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriberEmail_Valid(t *testing.T) {
	tests := []string{
		"b3nj4m1n@gmx.net",
		"ursula_le_guin@gmail.com",
		"Some.One+news@Example.COM",
		"a@b.co",
		"first.last@mail.sub.example.org",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			got, err := ParseSubscriberEmail(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, got.String(), "address must be stored verbatim")
		})
	}
}

func TestParseSubscriberEmail_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"missing at symbol", "ursuladomain.com"},
		{"missing local part", "@domain.com"},
		{"domain without dot", "user@localhost"},
		{"not an email", "not-an-email"},
		{"garbage", "bla"},
		{"spaces", "some one@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubscriberEmail(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEmail)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "email", vErr.Field)
		})
	}
}

func TestParseSubscriberEmailWith_CustomPolicy(t *testing.T) {
	onlyExampleOrg := EmailPolicyFunc(func(address string) bool {
		return address == "allowed@example.org"
	})

	_, err := ParseSubscriberEmailWith("allowed@example.org", onlyExampleOrg)
	assert.NoError(t, err)

	_, err = ParseSubscriberEmailWith("other@example.org", onlyExampleOrg)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	// structural checks apply regardless of policy
	acceptAll := EmailPolicyFunc(func(string) bool { return true })
	_, err = ParseSubscriberEmailWith("user@localhost", acceptAll)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = ParseSubscriberEmailWith("us\xffer@example.com", acceptAll)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = ParseSubscriberEmailWith("us\x00er@example.com", acceptAll)
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestParseSubscriberEmail_SameInputSameValue(t *testing.T) {
	a, err := ParseSubscriberEmail("b3nj4m1n@gmx.net")
	require.NoError(t, err)

	b, err := ParseSubscriberEmail("b3nj4m1n@gmx.net")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
