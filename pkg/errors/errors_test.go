package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarriesCodeAndMessage(t *testing.T) {
	err := New(CodeValidation, "quantity must be positive")

	assert.Equal(t, CodeValidation, err.Code())
	assert.Equal(t, "quantity must be positive", err.Message())
	assert.Equal(t, "VALIDATION_ERROR: quantity must be positive", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(CodeDependency, cause, "persisting cart")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, CodeDependency, err.Code())
}

func TestWrapNilCauseBehavesLikeNew(t *testing.T) {
	err := Wrap(CodeNotFound, nil, "order missing")
	assert.Nil(t, err.Unwrap())
	assert.Equal(t, CodeNotFound, err.Code())
}

func TestAsFindsTypedErrorThroughWrapping(t *testing.T) {
	inner := New(CodeConflict, "email already registered")
	outer := fmt.Errorf("register: %w", inner)

	typed := As(outer)
	require.NotNil(t, typed)
	assert.Equal(t, CodeConflict, typed.Code())

	assert.Nil(t, As(fmt.Errorf("plain")))
	assert.Nil(t, As(nil))
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeUnauthorized, "incorrect password"))

	assert.True(t, HasCode(err, CodeUnauthorized))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(nil, CodeInternal))
}
