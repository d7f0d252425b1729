package palette

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Default is the palette used in indexed mode: one color for stroke 1, one
// for stroke 2, and so on, starting over after the last entry.
var Default = []string{
	"#bf0909", "#bfbf09", "#09bf09", "#09bfbf", "#0909bf", "#bf09bf",
	"#ff850c", "#85ff0c", "#0cff85", "#0c85ff", "#850cff", "#ff0c85",
	"#bf8f2f", "#5fbf2f", "#2fbf8f", "#2f5fbf", "#8f2fbf", "#bf2f5f",
	"#ff0000", "#ffcc00", "#65ff00", "#00ff66", "#00cbff", "#0000ff",
	"#cc00ff", "#ff0066",
	"#ff6600", "#cbff00", "#00ff00", "#00ffcb", "#0066ff", "#6500ff",
}

// ErrEmptyPalette is returned by Parse when no colors are given.
var ErrEmptyPalette = errors.New("palette has no colors")

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Parse normalizes a list of color entries into lowercase "#rrggbb" strings.
//
// Each entry may be a six digit hex color ("#BF0909"), a three digit hex
// color ("#f80") or an SVG color keyword ("crimson").
func Parse(entries []string) ([]string, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyPalette
	}

	colors := make([]string, 0, len(entries))
	for i, entry := range entries {
		c, err := parseColor(entry)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i+1, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func parseColor(entry string) (string, error) {
	entry = strings.TrimSpace(entry)

	if hexColor.MatchString(entry) {
		c, err := colorful.Hex(entry)
		if err != nil {
			return "", fmt.Errorf("parse color %q: %w", entry, err)
		}
		return c.Hex(), nil
	}

	if c, ok := colornames.Map[strings.ToLower(entry)]; ok {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
	}

	return "", fmt.Errorf("unrecognized color %q", entry)
}
