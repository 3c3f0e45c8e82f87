package easing

import (
	"fmt"
	"math"
)

const (
	// back
	c1 = 1.70158
	c2 = c1 * 1.525
	c3 = c1 + 1

	// elastic
	c4 = 2 * math.Pi / 3
	c5 = 2 * math.Pi / 4.5

	// bounce
	n1 = 7.5625
	d1 = 2.75
)

// Apply evaluates the easing function at t.
//
// t is normally in the range [0, 1], but it is neither clamped nor checked.
// Values outside the range are extrapolated by the same formula. The back and
// elastic functions overshoot [0, 1] even for t inside the range.
//
// Apply panics if e isn't a valid easing function.
func (e Easing) Apply(t float64) float64 {
	switch e {
	case Linear:
		return t

	case SineIn:
		return 1 - math.Cos(t*math.Pi/2)
	case SineOut:
		return math.Sin(t * math.Pi / 2)
	case SineInOut:
		return -0.5 * (math.Cos(math.Pi*t) - 1)

	case QuadIn:
		return t * t
	case QuadOut:
		return 1 - (1-t)*(1-t)
	case QuadInOut:
		return inOutPow(t, 2)

	case CubicIn:
		return t * t * t
	case CubicOut:
		return 1 - math.Pow(1-t, 3)
	case CubicInOut:
		return inOutPow(t, 3)

	case QuartIn:
		return t * t * t * t
	case QuartOut:
		return 1 - math.Pow(1-t, 4)
	case QuartInOut:
		return inOutPow(t, 4)

	case QuintIn:
		return t * t * t * t * t
	case QuintOut:
		return 1 - math.Pow(1-t, 5)
	case QuintInOut:
		return inOutPow(t, 5)

	case ExpoIn:
		return expoIn(t)
	case ExpoOut:
		return expoOut(t)
	case ExpoInOut:
		return expoInOut(t)

	case CircIn:
		return 1 - math.Sqrt(1-t*t)
	case CircOut:
		return math.Sqrt(1 - (t-1)*(t-1))
	case CircInOut:
		return circInOut(t)

	case BackIn:
		return c3*t*t*t - c1*t*t
	case BackOut:
		return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
	case BackInOut:
		return backInOut(t)

	case ElasticIn:
		return elasticIn(t)
	case ElasticOut:
		return elasticOut(t)
	case ElasticInOut:
		return elasticInOut(t)

	case BounceIn:
		return 1 - bounceOut(1-t)
	case BounceOut:
		return bounceOut(t)
	case BounceInOut:
		return bounceInOut(t)

	default:
		panic(fmt.Sprintf("invalid easing function %d", int(e)))
	}
}

// inOutPow is the in-out variant of the polynomial easings of degree n. The
// first half is 2ⁿ⁻¹·tⁿ, the second half mirrors it.
func inOutPow(t float64, n float64) float64 {
	if t < 0.5 {
		return math.Pow(2, n-1) * math.Pow(t, n)
	}
	return 1 - 0.5*math.Pow(-2*t+2, n)
}

// The exponential and elastic functions compare against 0 and 1 exactly. Only
// the exact endpoints are special; anything else, however close, goes through
// the general formula.

func expoIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

func expoOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func expoInOut(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return 0.5 * math.Pow(2, 20*t-10)
	default:
		return 0.5 * (2 - math.Pow(2, -20*t+10))
	}
}

func circInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * (1 - math.Sqrt(1-(2*t)*(2*t)))
	}
	return 0.5 * (1 + math.Sqrt(1-(-2*t+2)*(-2*t+2)))
}

func backInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * ((2 * t) * (2 * t) * ((c2+1)*2*t - c2))
	}
	return 0.5 * ((2*t-2)*(2*t-2)*((c2+1)*(2*t-2)+c2) + 2)
}

func elasticIn(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return -math.Pow(2, 10*t-10) * math.Sin((10*t-10.75)*c4)
	}
}

func elasticOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return math.Pow(2, -10*t)*math.Sin((10*t-0.75)*c4) + 1
	}
}

func elasticInOut(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return -0.5 * math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*c5)
	default:
		return 0.5*math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c5) + 1
	}
}

// bounceOut is a sequence of four parabolic arcs that meet at 1, each one
// shallower than the previous.
func bounceOut(t float64) float64 {
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

func bounceInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * (1 - bounceOut(1-2*t))
	}
	return 0.5 * (1 + bounceOut(2*t-1))
}
