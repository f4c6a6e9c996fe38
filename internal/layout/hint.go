package layout

import (
	"fmt"
	"math"
)

// MaxHint bounds the magnitude of a hint. Anything larger cannot produce a
// meaningful integer coordinate.
const MaxHint = 1e6

// Hint is an optional fraction of a parent dimension.
type Hint struct {
	Value float64
	Set   bool
}

// NoHint is the absent hint.
var NoHint = Hint{}

// Frac returns a hint of v.
func Frac(v float64) Hint {
	return Hint{Value: v, Set: true}
}

// String returns "none" or the fraction.
func (h Hint) String() string {
	if !h.Set {
		return "none"
	}
	return fmt.Sprintf("%g", h.Value)
}

// Of returns round(hint * dim), rounding half away from zero.
func (h Hint) Of(dim int) int {
	return int(math.Round(h.Value * float64(dim)))
}

func (h Hint) validate(field string) error {
	if !h.Set {
		return nil
	}
	if math.IsNaN(h.Value) || math.IsInf(h.Value, 0) {
		return &SpecError{Field: field, Message: "hint must be finite", Value: h.Value}
	}
	if math.Abs(h.Value) > MaxHint {
		return &SpecError{Field: field, Message: "hint out of range", Value: h.Value}
	}
	return nil
}
