package model

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how stroke colors are chosen.
type Mode string

const (
	// ModeSpectrum spreads hues evenly around the color wheel, proportional
	// to the stroke count. Consecutive strokes get similar colors.
	ModeSpectrum Mode = "spectrum"

	// ModeContrast steps the hue by the golden ratio conjugate so that any run
	// of consecutive strokes is as far apart in hue as possible.
	ModeContrast Mode = "contrast"

	// ModeIndexed takes colors from a fixed palette, wrapping around when the
	// kanji has more strokes than the palette has colors.
	ModeIndexed Mode = "indexed"
)

// DefaultMode is used when no mode is configured.
const DefaultMode = ModeSpectrum

// ErrUnknownMode is returned by ParseMode for unrecognized mode names.
var ErrUnknownMode = errors.New("unknown color mode")

// Modes lists every supported mode in display order.
func Modes() []Mode {
	return []Mode{ModeSpectrum, ModeContrast, ModeIndexed}
}

// ParseMode converts a mode name into a Mode. Matching is case-insensitive and
// an empty string yields DefaultMode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultMode, nil
	}
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of spectrum, contrast, indexed)", ErrUnknownMode, s)
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// Next returns the mode following m in Modes, wrapping at the end.
func (m Mode) Next() Mode {
	modes := Modes()
	for i, candidate := range modes {
		if candidate == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return DefaultMode
}
