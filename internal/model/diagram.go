package model

import (
	"path/filepath"
)

// Diagram is one stroke order diagram moving through the pipeline.
//
// Diagram records where a KanjiVG file was read from and where its colorized
// copy is written. The destination name is computed by the caller (it may be
// the source name or the renamed character form), and NewDiagram joins it
// with the output directory.
//
// Example:
//
//	d := NewDiagram("kanjivg/kanji", "04e00.svg", "kanji-colorize-spectrum", "一.svg")
//	// d.SrcPath = "kanjivg/kanji/04e00.svg"
//	// d.DstPath = "kanji-colorize-spectrum/一.svg"
type Diagram struct {
	// SrcName is the file name inside the input directory.
	SrcName string

	// SrcPath is the full path of the input file.
	SrcPath string

	// DstName is the output file name, after optional renaming.
	DstName string

	// DstPath is the full path of the output file.
	DstPath string

	// Strokes is the number of strokes found in the source SVG.
	// Zero until the file has been read.
	Strokes int
}

// NewDiagram creates a Diagram with computed source and destination paths.
func NewDiagram(srcDir, srcName, dstDir, dstName string) *Diagram {
	return &Diagram{
		SrcName: srcName,
		SrcPath: filepath.Join(srcDir, srcName),
		DstName: dstName,
		DstPath: filepath.Join(dstDir, dstName),
	}
}

// Renamed reports whether the output file name differs from the input name.
func (d *Diagram) Renamed() bool {
	return d.SrcName != d.DstName
}
