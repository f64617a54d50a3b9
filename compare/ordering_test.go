package compare_test

import (
	"strings"
	"testing"

	"github.com/mossy2100/galaxon-core/compare"
	"github.com/stretchr/testify/assert"
)

func TestFromInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, compare.Less, compare.FromInt(-42))
	assert.Equal(t, compare.Equal, compare.FromInt(0))
	assert.Equal(t, compare.Greater, compare.FromInt(7))
	assert.Equal(t, compare.Less, compare.FromInt(strings.Compare("a", "b")))
}

func TestOrdering_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, compare.Less.Valid())
	assert.True(t, compare.Equal.Valid())
	assert.True(t, compare.Greater.Valid())
	assert.False(t, compare.Ordering(2).Valid())
	assert.False(t, compare.Ordering(-5).Valid())
}

func TestOrdering_Reverse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, compare.Greater, compare.Less.Reverse())
	assert.Equal(t, compare.Equal, compare.Equal.Reverse())
	assert.Equal(t, compare.Less, compare.Greater.Reverse())
}

func TestOrdering_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "less", compare.Less.String())
	assert.Equal(t, "equal", compare.Equal.String())
	assert.Equal(t, "greater", compare.Greater.String())
	assert.Equal(t, "Ordering(9)", compare.Ordering(9).String())
}
