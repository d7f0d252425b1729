package palette

import (
	"errors"
	"math"

	"github.com/handiism/kanji-colorize/internal/model"
)

// GoldenRatioConjugate is the hue step used in contrast mode.
const GoldenRatioConjugate = 0.618033988749895

// ErrExhausted is returned by Next once every color has been handed out.
var ErrExhausted = errors.New("color sequence exhausted")

// Options holds the color settings a Generator needs.
type Options struct {
	Mode       model.Mode
	Saturation float64
	Value      float64

	// Palette is used in indexed mode. Nil means Default.
	Palette []string
}

// Generator hands out the colors for one diagram.
//
// A diagram with n strokes gets 2n colors: the first n color the stroke
// paths and the second n, an identical run, color the stroke numbers. The
// sequence is computed up front and Next walks a cursor over it.
type Generator struct {
	colors []string
	pos    int
}

// NewGenerator builds the color sequence for a diagram with n strokes.
// Unknown modes fall back to spectrum; callers validate the mode first.
func NewGenerator(opts Options, n int) *Generator {
	if n < 0 {
		n = 0
	}

	colors := make([]string, 2*n)
	for i := range colors {
		colors[i] = strokeColor(opts, i%n, n)
	}

	return &Generator{colors: colors}
}

func strokeColor(opts Options, k, n int) string {
	switch opts.Mode {
	case model.ModeContrast:
		hue := math.Mod(float64(k)*GoldenRatioConjugate, 1)
		return HSVToHex(hue, opts.Saturation, opts.Value)
	case model.ModeIndexed:
		p := opts.Palette
		if len(p) == 0 {
			p = Default
		}
		return p[k%len(p)]
	default:
		return HSVToHex(float64(k)/float64(n), opts.Saturation, opts.Value)
	}
}

// Next returns the next color, or ErrExhausted after the last one.
func (g *Generator) Next() (string, error) {
	if g.pos >= len(g.colors) {
		return "", ErrExhausted
	}
	c := g.colors[g.pos]
	g.pos++
	return c, nil
}

// Reset rewinds the generator to the first color.
func (g *Generator) Reset() {
	g.pos = 0
}

// Len returns the total number of colors in the sequence.
func (g *Generator) Len() int {
	return len(g.colors)
}

// Colors returns a copy of the full sequence.
func (g *Generator) Colors() []string {
	out := make([]string, len(g.colors))
	copy(out, g.colors)
	return out
}
