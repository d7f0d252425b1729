package kanjivg

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/handiism/kanji-colorize/internal/model"
	"github.com/handiism/kanji-colorize/internal/palette"
)

// CanvasSize is the width and height of a KanjiVG drawing in user units.
const CanvasSize = 109

// ProjectURL is quoted in the note added to every converted file.
const ProjectURL = "http://github.com/cayennes/kanji-colorize"

// CopyrightMarker is the text the provenance note is inserted in front of.
const CopyrightMarker = "Copyright (C)"

const (
	strokeTag    = "<path "
	canvasHeader = `109" height="109" viewBox="0 0 109 109`
)

var (
	coloredTag  = regexp.MustCompile(`<path |<text `)
	strokeGroup = regexp.MustCompile(`(<g id="kvg:Stroke.*?)(>)`)
)

// Options carries the settings that shape a converted diagram.
type Options struct {
	Mode       model.Mode
	Saturation float64
	Value      float64
	Size       int
	Palette    []string
}

// Colors returns the palette options for these settings.
func (o Options) Colors() palette.Options {
	return palette.Options{
		Mode:       o.Mode,
		Saturation: o.Saturation,
		Value:      o.Value,
		Palette:    o.Palette,
	}
}

// StrokeCount returns the number of strokes in svg, counted as occurrences
// of "<path " exactly.
func StrokeCount(svg string) int {
	return strings.Count(svg, strokeTag)
}

// Colorize adds a stroke style to every "<path " and "<text " tag, in
// document order, taking one color from colors per tag. Tags left over once
// colors runs out are not changed. Existing style attributes are not merged.
func Colorize(svg string, colors *palette.Generator) string {
	return coloredTag.ReplaceAllStringFunc(svg, func(tag string) string {
		c, err := colors.Next()
		if errors.Is(err, palette.ErrExhausted) {
			return tag
		}
		return tag + `style="stroke:` + c + `" `
	})
}

// Resize rescales a 109x109 KanjiVG drawing to size pixels. The root
// element's width, height and viewBox are rewritten and every stroke group
// gets a scale transform. Input without the canonical header keeps its
// header.
func Resize(svg string, size int) string {
	s := strconv.Itoa(size)
	svg = strings.ReplaceAll(svg, canvasHeader, s+`" height="`+s+`" viewBox="0 0 `+s+` `+s)

	ratio := formatFloat(float64(size) / CanvasSize)
	return strokeGroup.ReplaceAllString(svg, `${1} transform="scale(`+ratio+`,`+ratio+`)"${2}`)
}

// CommentCopyright puts a note describing this conversion in front of the
// first copyright notice. Without a notice svg is returned unchanged.
func CommentCopyright(svg string, opts Options) string {
	return strings.Replace(svg, CopyrightMarker, Note(opts)+CopyrightMarker, 1)
}

// Note returns the provenance text inserted by CommentCopyright.
func Note(opts Options) string {
	var b strings.Builder
	b.WriteString("This file has been modified from the original version by the kanji-colorize\n")
	fmt.Fprintf(&b, "script (available at %s) with these\n", ProjectURL)
	b.WriteString("settings:\n")
	fmt.Fprintf(&b, "    mode: %s\n", opts.Mode)
	fmt.Fprintf(&b, "    saturation: %s\n", formatFloat(opts.Saturation))
	fmt.Fprintf(&b, "    value: %s\n", formatFloat(opts.Value))
	fmt.Fprintf(&b, "    image_size: %d\n", opts.Size)
	b.WriteString("It remains under a Creative Commons-Attribution-Share Alike 3.0 License.\n")
	b.WriteString("\n")
	b.WriteString("The original SVG has the following copyright:\n")
	b.WriteString("\n")
	return b.String()
}

// Transform runs the full rewrite chain on one document and returns the
// result together with its stroke count.
func Transform(svg string, opts Options) (string, int) {
	n := StrokeCount(svg)
	svg = Colorize(svg, palette.NewGenerator(opts.Colors(), n))
	svg = Resize(svg, opts.Size)
	svg = CommentCopyright(svg, opts)
	return svg, n
}

// formatFloat prints the shortest representation that round-trips, always
// with a decimal point (3 prints as "3.0").
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
