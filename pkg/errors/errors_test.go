package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/Petka17/observable/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestSourceError(t *testing.T) {
	t.Run("message is verbatim", func(t *testing.T) {
		err := pkgerrors.NewSourceError("boom")
		assert.Equal(t, "boom", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrSourceFailed))
		assert.False(t, pkgerrors.IsOperatorPanic(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("stream: %w", pkgerrors.NewSourceError("boom"))
		assert.True(t, pkgerrors.IsSourceFailed(wrapped))
	})
}

func TestPanicError(t *testing.T) {
	t.Run("string value", func(t *testing.T) {
		err := pkgerrors.NewPanicError("bad element")
		assert.Equal(t, "bad element", err.Error())
		assert.True(t, pkgerrors.IsOperatorPanic(err))
		assert.Nil(t, err.Unwrap())
	})

	t.Run("error value", func(t *testing.T) {
		base := errors.New("division by zero")
		err := pkgerrors.NewPanicError(base)
		assert.Equal(t, "division by zero", err.Error())
		assert.True(t, errors.Is(err, base))
		assert.True(t, errors.Is(err, pkgerrors.ErrOperatorPanic))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("map", "cube", "unknown projection")
		assert.Equal(t, "validation failed for field map: unknown projection", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "no values"}
		assert.Equal(t, "validation failed: no values", err.Error())
	})
}
