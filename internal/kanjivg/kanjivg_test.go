package kanjivg

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/kanji-colorize/internal/model"
	"github.com/handiism/kanji-colorize/internal/palette"
)

const kawa = `<?xml version="1.0" encoding="UTF-8"?>
<!--
Copyright (C) 2009/2010/2011 Ulrich Apel.
This work is distributed under the conditions of the Creative Commons
Attribution-Share Alike 3.0 Licence. This means you are free:
-->
<svg xmlns="http://www.w3.org/2000/svg" width="109" height="109" viewBox="0 0 109 109">
<g id="kvg:StrokePaths_05ddd" style="fill:none;stroke:#000000;stroke-width:3;">
<g id="kvg:05ddd" kvg:element="川">
	<path id="kvg:05ddd-s1" kvg:type="㇒" d="M28.5,17.5c0.5,1.5,0.5,3.5,0.5,5"/>
	<path id="kvg:05ddd-s2" kvg:type="㇑" d="M53.75,22.5c0.5,1,0.5,2,0.5,3"/>
	<path id="kvg:05ddd-s3" kvg:type="㇑" d="M81.75,15.5c0.5,1,0.5,2,0.5,3"/>
</g>
</g>
<g id="kvg:StrokeNumbers_05ddd" style="font-size:8;fill:#808080">
	<text transform="matrix(1 0 0 1 21.50 18.50)">1</text>
	<text transform="matrix(1 0 0 1 45.50 25.50)">2</text>
	<text transform="matrix(1 0 0 1 73.50 18.50)">3</text>
</g>
</svg>
`

func indexedOptions() Options {
	return Options{Mode: model.ModeIndexed, Saturation: 0.95, Value: 0.75, Size: 327}
}

func TestStrokeCount(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want int
	}{
		{"kawa", kawa, 3},
		{"empty", "", 0},
		{"self closing", `<path/>`, 0},
		{"newline after tag", "<path\nd=\"M0,0\"/>", 0},
		{"text only", `<text x="1">1</text>`, 0},
		{"two", `<path d="a"/><path d="b"/>`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StrokeCount(tt.svg))
		})
	}
}

func TestColorize_Indexed(t *testing.T) {
	g := palette.NewGenerator(indexedOptions().Colors(), StrokeCount(kawa))
	out := Colorize(kawa, g)

	assert.Contains(t, out, `<path style="stroke:#bf0909" id="kvg:05ddd-s1"`)
	assert.Contains(t, out, `<path style="stroke:#bfbf09" id="kvg:05ddd-s2"`)
	assert.Contains(t, out, `<path style="stroke:#09bf09" id="kvg:05ddd-s3"`)
	assert.Contains(t, out, `<text style="stroke:#bf0909" transform="matrix(1 0 0 1 21.50 18.50)">1</text>`)
	assert.Contains(t, out, `<text style="stroke:#bfbf09" transform="matrix(1 0 0 1 45.50 25.50)">2</text>`)
	assert.Contains(t, out, `<text style="stroke:#09bf09" transform="matrix(1 0 0 1 73.50 18.50)">3</text>`)

	stripped := strings.ReplaceAll(out, `style="stroke:#bf0909" `, "")
	stripped = strings.ReplaceAll(stripped, `style="stroke:#bfbf09" `, "")
	stripped = strings.ReplaceAll(stripped, `style="stroke:#09bf09" `, "")
	assert.Equal(t, kawa, stripped, "nothing else changes")
}

func TestColorize_DocumentOrder(t *testing.T) {
	opts := indexedOptions().Colors()
	svg := `<text a/><path b/><text c/><path d/>`

	out := Colorize(svg, palette.NewGenerator(opts, StrokeCount(svg)))

	want := `<text style="stroke:#bf0909" a/>` +
		`<path style="stroke:#bfbf09" b/>` +
		`<text style="stroke:#bf0909" c/>` +
		`<path style="stroke:#bfbf09" d/>`
	assert.Equal(t, want, out)
}

func TestColorize_ExhaustedLeavesTags(t *testing.T) {
	svg := `<path a/><text 1/><text 2/><text 3/>`

	out := Colorize(svg, palette.NewGenerator(indexedOptions().Colors(), StrokeCount(svg)))

	assert.Equal(t, `<path style="stroke:#bf0909" a/><text style="stroke:#bf0909" 1/><text 2/><text 3/>`, out)
}

func TestColorize_ExistingStyleNotMerged(t *testing.T) {
	svg := `<path style="fill:none" d="M0"/>`

	out := Colorize(svg, palette.NewGenerator(indexedOptions().Colors(), 1))

	assert.Equal(t, `<path style="stroke:#bf0909" style="fill:none" d="M0"/>`, out)
}

func TestResize(t *testing.T) {
	out := Resize(kawa, 327)

	assert.Contains(t, out, `width="327" height="327" viewBox="0 0 327 327"`)
	assert.NotContains(t, out, "109")
	assert.Contains(t, out, `<g id="kvg:StrokePaths_05ddd" style="fill:none;stroke:#000000;stroke-width:3;" transform="scale(3.0,3.0)">`)
	assert.Contains(t, out, `<g id="kvg:StrokeNumbers_05ddd" style="font-size:8;fill:#808080" transform="scale(3.0,3.0)">`)
	assert.Equal(t, 2, strings.Count(out, "transform=\"scale("))
	assert.Contains(t, out, `<g id="kvg:05ddd" kvg:element="川">`, "non stroke groups untouched")
}

func TestResize_RatioPrecision(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{327, "3.0"},
		{200, "1.834862385321101"},
		{100, "0.9174311926605505"},
		{109, "1.0"},
	}

	scale := regexp.MustCompile(`scale\(([^,]+),([^)]+)\)`)
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.size), func(t *testing.T) {
			out := Resize(kawa, tt.size)
			m := scale.FindStringSubmatch(out)
			require.NotNil(t, m)
			assert.Equal(t, tt.want, m[1])
			assert.Equal(t, m[1], m[2])

			r, err := strconv.ParseFloat(m[1], 64)
			require.NoError(t, err)
			assert.InDelta(t, float64(tt.size)/109, r, 1e-9)
		})
	}
}

func TestResize_NoCanonicalHeader(t *testing.T) {
	svg := `<svg width="50" height="50"><g id="other">x</g></svg>`
	assert.Equal(t, svg, Resize(svg, 327))
}

func TestCommentCopyright(t *testing.T) {
	out := CommentCopyright(kawa, indexedOptions())

	note := Note(indexedOptions())
	assert.Contains(t, out, note+"Copyright (C) 2009/2010/2011 Ulrich Apel.")
	assert.Contains(t, note, ProjectURL)
	assert.Contains(t, note, "    mode: indexed\n")
	assert.Contains(t, note, "    saturation: 0.95\n")
	assert.Contains(t, note, "    value: 0.75\n")
	assert.Contains(t, note, "    image_size: 327\n")
	assert.Equal(t, kawa, strings.Replace(out, note, "", 1))
}

func TestCommentCopyright_FirstMarkerOnly(t *testing.T) {
	svg := "Copyright (C) a\nCopyright (C) b"
	out := CommentCopyright(svg, indexedOptions())
	assert.Equal(t, 1, strings.Count(out, "This file has been modified"))
	assert.Equal(t, 2, strings.Count(out, CopyrightMarker))
	assert.True(t, strings.HasPrefix(out, "This file has been modified"))
}

func TestCommentCopyright_NoMarker(t *testing.T) {
	svg := `<svg><!-- no notice --></svg>`
	assert.Equal(t, svg, CommentCopyright(svg, indexedOptions()))
}

func TestTransform_EndToEnd(t *testing.T) {
	out, strokes := Transform(kawa, indexedOptions())

	assert.Equal(t, 3, strokes)
	assert.Contains(t, out, `327" height="327" viewBox="0 0 327 327`)
	for _, c := range []string{"#bf0909", "#bfbf09", "#09bf09"} {
		assert.Equal(t, 2, strings.Count(out, `style="stroke:`+c+`" `), c)
	}
	assert.Less(t, strings.Index(out, "This file has been modified"), strings.Index(out, CopyrightMarker))
	assert.Equal(t, 1, strings.Count(out, CopyrightMarker))
}

func TestTransform_NoStrokes(t *testing.T) {
	svg := strings.NewReplacer("<path ", "<line ", "<text ", "<tspan ").Replace(kawa)

	out, strokes := Transform(svg, indexedOptions())

	assert.Equal(t, 0, strokes)
	assert.NotContains(t, out, `style="stroke:`)

	expected := Resize(svg, 327)
	expected = CommentCopyright(expected, indexedOptions())
	assert.Equal(t, expected, out)
}

func TestConvertFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"4e00.svg", "一.svg"},
		{"04e00.svg", "一.svg"},
		{"05ddd.svg", "川.svg"},
		{"04e00-Kaisho.svg", "一-Kaisho.svg"},
		{"05DDD.svg", "川.svg"},
		{"kanji.svg", "kanji.svg"},
		{"", ""},
		{"add.svg", "૝.svg"},
		{"04e00  Kaisho.svg", "一  Kaisho.svg"},
		{"04e00 Kaisho. ", "一 Kaisho. "},
		{"2e.svg", "..svg"},
		{"2f.svg", "_.svg"},
		{"5c.svg", "_.svg"},
		{"0a.svg", "_.svg"},
		{"0.svg", "_.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ConvertFileName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertFileName_Invalid(t *testing.T) {
	for _, name := range []string{"d800.svg", "110000.svg", "123456789.svg"} {
		t.Run(name, func(t *testing.T) {
			_, err := ConvertFileName(name)
			assert.Error(t, err)
		})
	}
}

func TestOutputFileName(t *testing.T) {
	got, err := OutputFileName("4e00.svg", true)
	require.NoError(t, err)
	assert.Equal(t, "一.svg", got)

	got, err = OutputFileName("4e00.svg", false)
	require.NoError(t, err)
	assert.Equal(t, "4e00.svg", got)
}
