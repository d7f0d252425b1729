// Package palette produces the stroke colors for a diagram.
//
// # Generator
//
// A Generator yields 2n colors for a kanji with n strokes, once for the
// stroke paths and once more, in the same order, for the stroke numbers:
//
//	g := palette.NewGenerator(palette.Options{
//	    Mode:       model.ModeContrast,
//	    Saturation: 0.95,
//	    Value:      0.75,
//	}, strokes)
//	for {
//	    c, err := g.Next()
//	    if errors.Is(err, palette.ErrExhausted) {
//	        break
//	    }
//	    // use c
//	}
//
// # Modes
//
//   - spectrum: stroke k of n gets hue k/n
//   - contrast: stroke k gets hue k*0.618033988749895 mod 1
//   - indexed: stroke k gets palette[k mod len(palette)]
//
// # Palettes
//
// Default holds the built-in 32 color palette. Parse accepts hex colors and
// SVG color keywords for user supplied palettes.
package palette
