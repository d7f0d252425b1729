// Package kanjivg rewrites KanjiVG stroke order diagrams.
//
// The functions here work on the raw SVG text with plain string and regexp
// matching. There is no XML parse: every byte outside the rewritten spots
// is preserved as is.
//
//	out, strokes := kanjivg.Transform(svg, kanjivg.Options{
//	    Mode:       model.ModeIndexed,
//	    Saturation: 0.95,
//	    Value:      0.75,
//	    Size:       327,
//	})
//
// Transform chains StrokeCount, Colorize, Resize and CommentCopyright.
// ConvertFileName maps "04e00.svg" style names to "一.svg".
package kanjivg
