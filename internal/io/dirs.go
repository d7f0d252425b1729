package ioutils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/handiism/kanji-colorize/internal/model"
)

// OutputDirPrefix is the default output directory name, followed by the mode.
const OutputDirPrefix = "kanji-colorize"

// DirectoryNotFoundError is returned when the input directory cannot be
// resolved.
type DirectoryNotFoundError struct {
	// Path is the directory that was asked for, if any.
	Path string

	// Tried lists every location that was checked, in order.
	Tried []string
}

func (e *DirectoryNotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("input directory not found: %s", e.Path)
	}
	return fmt.Sprintf("input directory not found (tried %s)", strings.Join(e.Tried, ", "))
}

// InputDirCandidates returns the locations searched for KanjiVG files when no
// input directory is given, in priority order.
func InputDirCandidates() []string {
	return []string{
		"kanji",
		filepath.Join("kanjivg", "kanji"),
		filepath.Join("..", "kanjivg", "kanji"),
	}
}

// ResolveInputDir picks the directory to read SVG files from.
//
// An explicit path wins and must be an existing directory. Otherwise the
// first existing directory among InputDirCandidates is used, falling back to
// the current directory.
func ResolveInputDir(fs afero.Fs, explicit string) (string, error) {
	if explicit != "" {
		if ok, _ := afero.DirExists(fs, explicit); !ok {
			return "", &DirectoryNotFoundError{Path: explicit, Tried: []string{explicit}}
		}
		return explicit, nil
	}

	for _, dir := range InputDirCandidates() {
		if ok, _ := afero.DirExists(fs, dir); ok {
			return dir, nil
		}
	}

	return ".", nil
}

// DefaultOutputDir returns the output directory used for mode when none is
// given, e.g. "kanji-colorize-contrast".
func DefaultOutputDir(mode model.Mode) string {
	return OutputDirPrefix + "-" + string(mode)
}

// ResolveOutputDir picks the directory to write to and creates it if needed.
// Calling it for a directory that already exists is not an error.
func ResolveOutputDir(fs afero.Fs, explicit string, mode model.Mode) (string, error) {
	dir := explicit
	if dir == "" {
		dir = DefaultOutputDir(mode)
	}

	if err := EnsureDir(fs, dir); err != nil {
		return "", err
	}
	return dir, nil
}
