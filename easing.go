package easing

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Easing identifies one of the easing functions in the catalog.
//
// The zero value is not a valid easing function.
type Easing int

const (
	Linear Easing = iota + 1

	SineIn
	SineOut
	SineInOut

	QuadIn
	QuadOut
	QuadInOut

	CubicIn
	CubicOut
	CubicInOut

	QuartIn
	QuartOut
	QuartInOut

	QuintIn
	QuintOut
	QuintInOut

	ExpoIn
	ExpoOut
	ExpoInOut

	CircIn
	CircOut
	CircInOut

	BackIn
	BackOut
	BackInOut

	ElasticIn
	ElasticOut
	ElasticInOut

	BounceIn
	BounceOut
	BounceInOut

	numEasings = iota + 1
)

var names = [numEasings]string{
	"",
	"linear",
	"sine-in", "sine-out", "sine-in-out",
	"quad-in", "quad-out", "quad-in-out",
	"cubic-in", "cubic-out", "cubic-in-out",
	"quart-in", "quart-out", "quart-in-out",
	"quint-in", "quint-out", "quint-in-out",
	"expo-in", "expo-out", "expo-in-out",
	"circ-in", "circ-out", "circ-in-out",
	"back-in", "back-out", "back-in-out",
	"elastic-in", "elastic-out", "elastic-in-out",
	"bounce-in", "bounce-out", "bounce-in-out",
}

// ErrUnknownEasing is returned, possibly wrapped, when a name doesn't match
// any easing function.
var ErrUnknownEasing = errors.New("unknown easing function")

// All returns an iterator over all easing functions, in declaration order.
func All() iter.Seq[Easing] {
	return func(yield func(Easing) bool) {
		for e := Linear; e < numEasings; e++ {
			if !yield(e) {
				return
			}
		}
	}
}

// Valid reports whether e is one of the defined easing functions.
func (e Easing) Valid() bool {
	return e >= Linear && e < numEasings
}

// String returns the name of the easing function, such as "quad-in-out".
func (e Easing) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Easing(%d)", int(e))
	}
	return names[e]
}

// ParseEasing returns the easing function with the given name.
//
// Names are matched case-insensitively, and hyphens, underscores and spaces
// are ignored, so "quad-in-out", "QUAD_IN_OUT" and "QuadInOut" all refer to
// [QuadInOut].
func ParseEasing(s string) (Easing, error) {
	key := normalize(s)
	for e := range All() {
		if normalize(names[e]) == key {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEasing, s)
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// MarshalText implements [encoding.TextMarshaler].
func (e Easing) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("can't marshal invalid easing function %d", int(e))
	}
	return []byte(names[e]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts the same
// names as [ParseEasing].
func (e *Easing) UnmarshalText(text []byte) error {
	v, err := ParseEasing(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
