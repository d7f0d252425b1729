// Package model defines the core data structures used throughout
// kanji-colorize.
//
// # Mode
//
// Mode selects the coloring strategy:
//
//	mode, err := model.ParseMode("contrast")
//	// model.ModeSpectrum, model.ModeContrast or model.ModeIndexed
//
// An empty name selects model.DefaultMode (spectrum). Any other name fails
// with an error wrapping model.ErrUnknownMode.
//
// # Diagram
//
// Diagram represents one KanjiVG file with its computed input and output paths:
//
//	d := model.NewDiagram("kanji", "04e00.svg", "kanji-colorize-spectrum", "一.svg")
//	fmt.Println(d.SrcPath) // kanji/04e00.svg
//	fmt.Println(d.DstPath) // kanji-colorize-spectrum/一.svg
package model
