package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrIncompatibleType,
		ErrInvalidOrdering,
		ErrInvalidTolerance,
		ErrOverflow,
		ErrDivisionByZero,
		ErrEmpty,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}

			assert.NotErrorIs(t, a, b)
		}
	}
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("keeps non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrInvalidTolerance)
		c.Add(ErrOverflow)

		err := c.GetError()
		require.ErrorIs(t, err, ErrInvalidTolerance)
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.NoError(t, c.GetError())
	})
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		assert.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrEmpty)

		assert.Equal(t, ErrEmpty, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		relErr := fmt.Errorf("%w: relative is negative", ErrInvalidTolerance)
		absErr := errors.New("absolute is NaN") //nolint:err113

		c.Add(relErr)
		c.Add(absErr)

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidTolerance)
		require.ErrorIs(t, err, absErr)
		assert.Contains(t, err.Error(), "relative is negative")
	})
}
