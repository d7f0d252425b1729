// Package ioutils provides file system utilities for kanji-colorize.
//
// This package contains functions for:
//   - File reading and writing
//   - Listing the files of an input directory
//   - Input and output directory resolution
//
// Every function takes an afero.Fs so callers can run against the real disk
// (afero.NewOsFs) or an in-memory tree (afero.NewMemMapFs).
//
// # File Operations
//
//	svg, err := ioutils.ReadFile(fs, "kanji/04e00.svg")
//
//	err := ioutils.WriteFile(ctx, fs, "kanji-colorize-spectrum/一.svg", []byte(svg))
//
//	names, err := ioutils.ListFiles(fs, "kanji") // sorted, files only
//
// # Directory Resolution
//
// ResolveInputDir tries, in order: the explicit path, ./kanji,
// ./kanjivg/kanji, ../kanjivg/kanji and finally the current directory:
//
//	in, err := ioutils.ResolveInputDir(fs, "")
//
// ResolveOutputDir defaults to kanji-colorize-<mode> and creates it:
//
//	out, err := ioutils.ResolveOutputDir(fs, "", model.ModeContrast)
//	// out = "kanji-colorize-contrast"
package ioutils
