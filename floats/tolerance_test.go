package floats_test

import (
	"math"
	"testing"

	"github.com/mossy2100/galaxon-core/errors"
	"github.com/mossy2100/galaxon-core/floats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTolerance_Constructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, floats.Tolerance{Relative: 1e-6}, floats.RelativeOnly(1e-6))
	assert.Equal(t, floats.Tolerance{Absolute: 1e-3}, floats.AbsoluteOnly(1e-3))
	assert.Equal(t, floats.Tolerance{}, floats.Exact())
}

func TestTolerance_ApproxEqual(t *testing.T) {
	t.Parallel()

	tol := floats.DefaultTolerance()
	a, b := 0.1, 0.2
	sum := a + b

	assert.True(t, tol.ApproxEqual(sum, 0.3))
	assert.False(t, floats.Exact().ApproxEqual(sum, 0.3))
	assert.Equal(t, 0, tol.ApproxCompare(sum, 0.3))
	assert.Equal(t, 1, floats.Exact().ApproxCompare(sum, 0.3))
}

func TestTolerance_Validate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, floats.DefaultTolerance().Validate())
		require.NoError(t, floats.Exact().Validate())
		require.NoError(t, floats.AbsoluteOnly(math.Inf(1)).Validate())
	})

	t.Run("negative relative", func(t *testing.T) {
		t.Parallel()

		err := floats.RelativeOnly(-1).Validate()
		require.ErrorIs(t, err, errors.ErrInvalidTolerance)
		assert.Contains(t, err.Error(), "relative tolerance -1 is negative")
	})

	t.Run("both components reported", func(t *testing.T) {
		t.Parallel()

		err := floats.Tolerance{Relative: math.NaN(), Absolute: -0.5}.Validate()
		require.ErrorIs(t, err, errors.ErrInvalidTolerance)
		assert.Contains(t, err.Error(), "relative tolerance is NaN")
		assert.Contains(t, err.Error(), "absolute tolerance -0.5 is negative")
	})
}

func TestTolerance_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "relative=1e-09 absolute=2.220446049250313e-16", floats.DefaultTolerance().String())
}
