package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run fn and return the GeometryError it panics with, if any.
func recoverError(fn func()) (err error) {
	defer func() {
		err = HandleGeometryPanicRecover(recover())
	}()
	fn()
	return nil
}

func TestHandleGeometryPanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleGeometryPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
		var geometryError GeometryError
		assert.True(t, errors.As(err, &geometryError))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestStrictMode(t *testing.T) {
	assert.Equal(t, "strict", Strict.String())
	assert.Equal(t, "lenient", Lenient.String())

	t.Run("strict reports", func(t *testing.T) {
		broken := errors.New("broken")
		err := recoverError(func() {
			Strict.check("widget", func() error { return broken })
		})
		require.Error(t, err)
		assert.EqualError(t, err, "invalid widget: broken")
		assert.ErrorIs(t, err, broken)
	})

	t.Run("lenient skips the check entirely", func(t *testing.T) {
		called := false
		Lenient.check("widget", func() error {
			called = true
			return errors.New("broken")
		})
		assert.False(t, called)
	})

	t.Run("valid shapes pass", func(t *testing.T) {
		assert.NoError(t, recoverError(func() {
			Strict.check("widget", func() error { return nil })
		}))
	})
}
