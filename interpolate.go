package easing

import "golang.org/x/exp/constraints"

// Function describes easing functions. All values of [Easing] implement it,
// and [Func] adapts arbitrary functions.
type Function interface {
	// Apply maps progress t, normally in [0, 1], to eased progress.
	Apply(t float64) float64
}

var (
	_ Function = Linear
	_ Function = Func(nil)
)

// Func is an adapter that allows the use of ordinary functions as easing
// functions. For example:
//
//	easing.Func(func(t float64) float64 { return t * t * (3 - 2*t) })
type Func func(t float64) float64

// Apply returns f(t).
func (f Func) Apply(t float64) float64 {
	return f(t)
}

// Interpolate interpolates between a and b using f. See [Interpolate].
func (f Func) Interpolate(a, b, t float64) float64 {
	return Interpolate(f, a, b, t)
}

// Interpolate interpolates between a and b using e. See [Interpolate].
func (e Easing) Interpolate(a, b, t float64) float64 {
	return Interpolate(e, a, b, t)
}

// Interpolate blends a and b, using the easing function f to turn t into a
// weight. It computes a + (b-a)·f(t), which is a at f(t) = 0 and b at f(t) = 1.
//
// Like [Easing.Apply], t isn't clamped, and easing functions that overshoot
// produce results outside of [a, b].
func Interpolate[T constraints.Float](f Function, a, b T, t float64) T {
	return a + (b-a)*T(f.Apply(t))
}
