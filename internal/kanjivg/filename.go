package kanjivg

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var leadingHex = regexp.MustCompile(`^[0-9a-fA-F]*`)

// ConvertFileName replaces the hex code point at the start of a KanjiVG file
// name with the character it stands for, so "04e00.svg" becomes "一.svg" and
// "04e00-Kaisho.svg" becomes "一-Kaisho.svg". Names that do not start with a
// hex digit are returned unchanged. The rest of the name is kept byte for
// byte; only a converted character that cannot appear in a path (a
// separator, NUL or another control character) is written as "_".
func ConvertFileName(name string) (string, error) {
	code := leadingHex.FindString(name)
	if code == "" {
		return name, nil
	}

	n, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		return "", fmt.Errorf("convert file name %q: %w", name, err)
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return "", fmt.Errorf("convert file name %q: U+%X is not a valid character", name, n)
	}

	return pathSafe(r) + name[len(code):], nil
}

func pathSafe(r rune) string {
	if r == '/' || r == '\\' || unicode.IsControl(r) {
		return "_"
	}
	return string(r)
}

// OutputFileName returns the name a converted file is written under.
func OutputFileName(name string, rename bool) (string, error) {
	if !rename {
		return name, nil
	}
	return ConvertFileName(name)
}
