package floats

import (
	"fmt"
	"math"

	"github.com/mossy2100/galaxon-core/errors"
)

// Tolerance is the (relative, absolute) pair that governs approximate
// comparison. It is a plain value; nothing in this module keeps one as
// hidden state.
type Tolerance struct {
	Relative float64
	Absolute float64
}

// DefaultTolerance returns DefaultRelativeTolerance and DefaultAbsoluteTolerance
// as a Tolerance.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Relative: DefaultRelativeTolerance,
		Absolute: DefaultAbsoluteTolerance,
	}
}

// RelativeOnly returns a tolerance with no absolute safety net.
func RelativeOnly(rel float64) Tolerance {
	return Tolerance{Relative: rel}
}

// AbsoluteOnly returns a tolerance that ignores magnitude.
func AbsoluteOnly(abs float64) Tolerance {
	return Tolerance{Absolute: abs}
}

// Exact returns the zero tolerance. Under it only equal values match.
func Exact() Tolerance {
	return Tolerance{}
}

// ApproxEqual applies the tolerance to a and b. See the package-level ApproxEqual.
func (t Tolerance) ApproxEqual(a, b float64) bool {
	return ApproxEqual(a, b, t.Relative, t.Absolute)
}

// ApproxCompare applies the tolerance to a and b. See the package-level ApproxCompare.
func (t Tolerance) ApproxCompare(a, b float64) int {
	return ApproxCompare(a, b, t.Relative, t.Absolute)
}

// Validate reports every component that is negative or NaN.
// Infinite tolerances are allowed; they make everything finite match.
func (t Tolerance) Validate() error {
	var errs errors.Collection

	errs.Add(checkComponent("relative", t.Relative))
	errs.Add(checkComponent("absolute", t.Absolute))

	return errs.GetError()
}

func (t Tolerance) String() string {
	return fmt.Sprintf("relative=%g absolute=%g", t.Relative, t.Absolute)
}

func checkComponent(name string, value float64) error {
	if math.IsNaN(value) {
		return fmt.Errorf("%w: %s tolerance is NaN", errors.ErrInvalidTolerance, name)
	}

	if value < 0 {
		return fmt.Errorf("%w: %s tolerance %g is negative", errors.ErrInvalidTolerance, name, value)
	}

	return nil
}
