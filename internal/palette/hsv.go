package palette

import (
	"fmt"
	"math"
)

// HSVToHex converts a hue, saturation, value triple to a "#rrggbb" string.
//
// All three components are in [0, 1]; the hue wraps, so 1.25 is the same as
// 0.25. Each RGB channel is scaled to [0, 255] and truncated, not rounded.
func HSVToHex(h, s, v float64) string {
	h -= math.Floor(h)
	r, g, b := hsvToRGB(h, s, v)
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

// hsvToRGB is the six-sector transform. Operation order matters for
// truncation; the float64 conversions keep the compiler from fusing them.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}

	i := int(h * 6)
	f := float64(h*6) - float64(i)
	p := v * float64(1-s)
	q := v * float64(1-float64(s*f))
	t := v * float64(1-float64(s*float64(1-f)))

	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func channel(f float64) int {
	n := int(f * 255)
	switch {
	case n < 0:
		return 0
	case n > 255:
		return 255
	}
	return n
}
