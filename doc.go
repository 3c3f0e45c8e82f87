// Package easing provides the standard catalog of easing functions. Easing
// functions map linear progress t ∈ [0, 1] to eased progress, controlling the
// rate of change of animated or interpolated values.
//
// # Catalog
//
// [Easing] enumerates the 31 functions popularized by Robert Penner and
// documented at [easings.net]: [Linear], and the "in", "out" and "in-out"
// variants of the sine, quad, cubic, quart, quint, expo, circ, back, elastic
// and bounce families. "In" functions start slowly, "out" functions end
// slowly, and "in-out" functions do both, with the halves meeting at (0.5,
// 0.5).
//
// All functions map 0 to 0 and 1 to 1, up to rounding. The back and elastic
// functions overshoot, producing values outside of [0, 1] in between.
//
// Use [All] to iterate over the catalog and [ParseEasing] to look up functions
// by name. Easing implements [encoding.TextMarshaler] and
// [encoding.TextUnmarshaler], so it can be used directly in configuration
// files.
//
// # Domain
//
// The input is not clamped. Values of t outside of [0, 1] are passed through
// the same formulas, which allows extrapolation. Some formulas are undefined
// for such values, for example [CircIn] takes the square root of 1 - t², in
// which case the result is NaN. NaN and infinite inputs propagate as usual.
//
// # Interpolation
//
// [Interpolate] blends two values using any [Function], which includes all
// values of [Easing] as well as ordinary functions wrapped in [Func].
//
// All functions in this package are pure and safe for concurrent use.
//
// [easings.net]: https://easings.net
package easing
