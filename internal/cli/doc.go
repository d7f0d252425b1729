// Package cli implements the kanji-colorize command line.
//
// Settings are layered: built-in defaults, then the --config file and
// KANJI_COLORIZE_* environment variables, then flags given on the command
// line. Progress events from the colorize.Manager are written through
// zerolog's console writer.
package cli
