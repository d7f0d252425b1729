package ioutils

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/kanji-colorize/internal/model"
)

func TestReadWriteFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, EnsureDir(fs, "out"))

	require.NoError(t, WriteFile(context.Background(), fs, filepath.Join("out", "一.svg"), []byte("<svg/>")))

	got, err := ReadFile(fs, filepath.Join("out", "一.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(afero.NewMemMapFs(), "missing.svg")
	assert.ErrorContains(t, err, "missing.svg")
}

func TestWriteFile_Cancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteFile(ctx, fs, "a.svg", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)

	exists, _ := afero.Exists(fs, "a.svg")
	assert.False(t, exists)
}

func TestWriteFile_ReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	assert.Error(t, WriteFile(context.Background(), fs, "a.svg", []byte("x")))
}

func TestListFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"05ddd.svg", "04e00.svg", "04e8c.svg"} {
		require.NoError(t, afero.WriteFile(fs, filepath.Join("kanji", name), []byte("<svg/>"), 0644))
	}
	require.NoError(t, fs.MkdirAll(filepath.Join("kanji", "sub"), 0755))

	names, err := ListFiles(fs, "kanji")
	require.NoError(t, err)
	assert.Equal(t, []string{"04e00.svg", "04e8c.svg", "05ddd.svg"}, names)
}

func TestResolveInputDir(t *testing.T) {
	tests := []struct {
		name string
		dirs []string
		want string
	}{
		{"kanji first", []string{"kanji", filepath.Join("kanjivg", "kanji")}, "kanji"},
		{"kanjivg checkout", []string{filepath.Join("kanjivg", "kanji"), filepath.Join("..", "kanjivg", "kanji")}, filepath.Join("kanjivg", "kanji")},
		{"sibling checkout", []string{filepath.Join("..", "kanjivg", "kanji")}, filepath.Join("..", "kanjivg", "kanji")},
		{"current directory", nil, "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			for _, d := range tt.dirs {
				require.NoError(t, fs.MkdirAll(d, 0755))
			}

			got, err := ResolveInputDir(fs, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveInputDir_Explicit(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("kanji", 0755))
	require.NoError(t, fs.MkdirAll("mine", 0755))

	got, err := ResolveInputDir(fs, "mine")
	require.NoError(t, err)
	assert.Equal(t, "mine", got)
}

func TestResolveInputDir_ExplicitMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("kanji", 0755))
	require.NoError(t, afero.WriteFile(fs, "file.svg", []byte("x"), 0644))

	for _, path := range []string{"missing", "file.svg"} {
		_, err := ResolveInputDir(fs, path)

		var notFound *DirectoryNotFoundError
		require.True(t, errors.As(err, &notFound), "got %v", err)
		assert.Equal(t, path, notFound.Path)
	}
}

func TestResolveOutputDir(t *testing.T) {
	fs := afero.NewMemMapFs()

	got, err := ResolveOutputDir(fs, "", model.ModeIndexed)
	require.NoError(t, err)
	assert.Equal(t, "kanji-colorize-indexed", got)

	exists, _ := afero.DirExists(fs, got)
	assert.True(t, exists)

	again, err := ResolveOutputDir(fs, "", model.ModeIndexed)
	require.NoError(t, err, "existing directory is fine")
	assert.Equal(t, got, again)

	got, err = ResolveOutputDir(fs, filepath.Join("a", "b"), model.ModeSpectrum)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("a", "b"), got)
}

func TestResolveOutputDir_Failure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := ResolveOutputDir(fs, "", model.ModeSpectrum)
	assert.Error(t, err)
}
