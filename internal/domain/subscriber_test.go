package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscriberFromForm(t *testing.T) {
	s, err := NewSubscriberFromForm(" benjamin ", "b3nj4m1n@gmx.net")
	require.NoError(t, err)

	assert.Equal(t, "benjamin", s.Name.String())
	assert.Equal(t, "b3nj4m1n@gmx.net", s.Email.String())
}

func TestNewSubscriberFromForm_NameCheckedFirst(t *testing.T) {
	_, err := NewSubscriberFromForm("", "bla")
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
	assert.ErrorIs(t, err, ErrEmptyOrBlank)
}

func TestNewSubscriberFromForm_InvalidEmail(t *testing.T) {
	_, err := NewSubscriberFromForm("someone", "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}
