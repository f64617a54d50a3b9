// Package version implements dotted major.minor.patch versions ordered
// lexicographically by component.
package version

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mossy2100/galaxon-core/assert"
	"github.com/mossy2100/galaxon-core/compare"
)

// ErrInvalidVersion is returned by Parse for malformed input.
var ErrInvalidVersion = errors.New("invalid version")

// Version is a comparable major.minor.patch triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

var _ compare.Comparable = Version{}

// New returns the version major.minor.patch.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse reads "1", "1.2" or "1.2.3", optionally prefixed with "v".
// Missing components are zero. Components must be non-negative decimals.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")

	parts := strings.Split(trimmed, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q has more than three components", ErrInvalidVersion, s)
	}

	var nums [3]int

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || strings.HasPrefix(part, "+") {
			return Version{}, fmt.Errorf("%w: %q component %d is not a non-negative integer", ErrInvalidVersion, s, i+1)
		}

		nums[i] = n
	}

	return New(nums[0], nums[1], nums[2]), nil
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// Compare orders by major, then minor, then patch.
func (v Version) Compare(other any) (compare.Ordering, error) {
	o, err := assert.Type[Version](other)
	if err != nil {
		return compare.Equal, err
	}

	return compare.FromInt(cmp.Or(
		cmp.Compare(v.Major, o.Major),
		cmp.Compare(v.Minor, o.Minor),
		cmp.Compare(v.Patch, o.Patch),
	)), nil
}

func (v Version) Equals(other any) bool {
	return compare.Equals(v, other)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
