package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNoInputAvailable", ErrNoInputAvailable},
		{"ErrRenderFailure", ErrRenderFailure},
		{"ErrEventChannelClosed", ErrEventChannelClosed},
		{"ErrBusClosed", ErrBusClosed},
		{"ErrInvalidOptions", ErrInvalidOptions},
		{"ErrInvalidInput", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Distinct tests that the fatal session errors are distinguishable
func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNoInputAvailable, ErrRenderFailure))
	assert.False(t, errors.Is(ErrRenderFailure, ErrEventChannelClosed))
	assert.False(t, errors.Is(ErrEventChannelClosed, ErrBusClosed))
}

// TestErrors_Wrapped tests that wrapped errors still match their sentinel
func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("%w: open /dev/tty: permission denied", ErrRenderFailure)

	assert.True(t, errors.Is(wrapped, ErrRenderFailure))
	assert.Contains(t, wrapped.Error(), "unable to draw")
}
