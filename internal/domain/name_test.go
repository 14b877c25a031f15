package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubscriberName_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "benjamin", "benjamin"},
		{"with space", "le guin", "le guin"},
		{"surrounding whitespace is trimmed", "  Ursula K. Le Guin \t\n", "Ursula K. Le Guin"},
		{"unicode", "Zoë Ōtsuka", "Zoë Ōtsuka"},
		{"exactly max length", strings.Repeat("a", MaxNameLength), strings.Repeat("a", MaxNameLength)},
		{"combining marks count as one grapheme", strings.Repeat("e\u0301", MaxNameLength), strings.Repeat("e\u0301", MaxNameLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSubscriberName(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseSubscriberName_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"empty", "", ErrEmptyOrBlank},
		{"whitespace only", " \t \n ", ErrEmptyOrBlank},
		{"too long", strings.Repeat("a", MaxNameLength+1), ErrTooLong},
		{"too long after trimming", " " + strings.Repeat("ё", MaxNameLength+1) + " ", ErrTooLong},
		{"invalid utf-8", "bob\xff", ErrInvalidEncoding},
		{"truncated multibyte sequence", "zo\xc3", ErrInvalidEncoding},
		{"nul byte", "bob\x00by", ErrForbiddenCharacter},
	}

	for _, r := range forbiddenNameChars {
		tests = append(tests, struct {
			name    string
			raw     string
			wantErr error
		}{"forbidden " + string(r), "bob" + string(r) + "by", ErrForbiddenCharacter})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubscriberName(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "name", vErr.Field)
		})
	}
}

func TestParseSubscriberName_SameInputSameValue(t *testing.T) {
	a, err := ParseSubscriberName(" benjamin ")
	require.NoError(t, err)

	b, err := ParseSubscriberName(" benjamin ")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
