package amount

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultStep is used when no step is configured.
const DefaultStep = 1.0

// Bounds is an inclusive range where either side may be open.
type Bounds struct {
	Min *float64
	Max *float64
}

// Clamp limits v to [min, max]; a nil bound leaves that side open. When both
// bounds are set but min > max the value is returned untouched.
func Clamp(v float64, min, max *float64) float64 {
	if min != nil && max != nil && *min > *max {
		return v
	}
	if min != nil && v < *min {
		return *min
	}
	if max != nil && v > *max {
		return *max
	}
	return v
}

// Clamp applies the bounds to v.
func (b Bounds) Clamp(v float64) float64 {
	return Clamp(v, b.Min, b.Max)
}

// Contains reports whether v lies inside the bounds.
func (b Bounds) Contains(v float64) bool {
	return Clamp(v, b.Min, b.Max) == v
}

// Quantize snaps v to the nearest multiple of step, ties away from zero.
// The division runs in decimal so steps like 0.05 land on exact multiples.
// A non-positive or non-finite step leaves v unchanged.
func Quantize(v, step float64) float64 {
	if !(step > 0) || math.IsInf(step, 0) || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	d := decimal.NewFromFloat(step)
	q := decimal.NewFromFloat(v).Div(d).Round(0).Mul(d)
	f, _ := q.Float64()
	return f
}

// Commit runs the bounds stage applied whenever an amount is committed:
// quantize first when forceStep is set, then clamp.
func Commit(v float64, b Bounds, step float64, forceStep bool) float64 {
	if forceStep {
		v = Quantize(v, step)
	}
	return b.Clamp(v)
}
