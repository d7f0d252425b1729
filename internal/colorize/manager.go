package colorize

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/spf13/afero"

	"github.com/handiism/kanji-colorize/internal/config"
	ioutils "github.com/handiism/kanji-colorize/internal/io"
	"github.com/handiism/kanji-colorize/internal/kanjivg"
	"github.com/handiism/kanji-colorize/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a conversion progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager coordinates a batch conversion.
type Manager struct {
	settings *config.Settings
	fs       afero.Fs
	opts     kanjivg.Options

	inDir    string
	outDir   string
	diagrams []*model.Diagram

	totalFiles     int32
	convertedFiles int32
	totalStrokes   int64

	onProgress func(ProgressEvent)
}

// NewManager creates a new conversion Manager working on fs.
func NewManager(settings *config.Settings, fs afero.Fs, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		fs:         fs,
		onProgress: onProgress,
	}
}

// Initialize validates the settings, resolves the input and output
// directories and plans one Diagram per input file. Nothing is written
// except the output directory itself. Calling it again replaces the plan.
func (m *Manager) Initialize(ctx context.Context) error {
	m.diagrams = nil
	m.totalFiles = 0
	atomic.StoreInt32(&m.convertedFiles, 0)
	atomic.StoreInt64(&m.totalStrokes, 0)

	if err := m.settings.Validate(); err != nil {
		return err
	}
	m.opts = m.settings.ToTransformOptions()

	inDir, err := ioutils.ResolveInputDir(m.fs, m.settings.InDir)
	if err != nil {
		return err
	}
	m.inDir = inDir
	m.progress(ProgressEvent{Message: fmt.Sprintf("Reading from %s", inDir), Level: LevelInfo})

	if m.settings.DryRun {
		m.outDir = m.settings.OutDir
		if m.outDir == "" {
			m.outDir = ioutils.DefaultOutputDir(m.settings.Mode)
		}
	} else {
		outDir, err := ioutils.ResolveOutputDir(m.fs, m.settings.OutDir, m.settings.Mode)
		if err != nil {
			return err
		}
		m.outDir = outDir
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Writing to %s", m.outDir), Level: LevelInfo})

	names, err := ioutils.ListFiles(m.fs, inDir)
	if err != nil {
		return err
	}

	seen := make(map[string]string, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		dstName, err := kanjivg.OutputFileName(name, m.settings.Rename)
		if err != nil {
			return err
		}

		if prev, ok := seen[dstName]; ok {
			m.progress(ProgressEvent{Message: fmt.Sprintf("%s and %s both map to %s; the later file wins", prev, name, dstName), Level: LevelWarning})
		}
		seen[dstName] = name

		m.diagrams = append(m.diagrams, model.NewDiagram(inDir, name, m.outDir, dstName))
	}

	m.totalFiles = int32(len(m.diagrams))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d file(s) to convert with %s colors", len(m.diagrams), m.settings.Mode), Level: LevelInfo})

	return nil
}

// Run converts every planned diagram, one at a time, in file name order.
// The first read or write error aborts the batch. A cancelled context stops
// the loop before the next file.
func (m *Manager) Run(ctx context.Context) error {
	for _, d := range m.diagrams {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.convert(ctx, d); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error converting %s: %v", d.SrcName, err), Level: LevelError})
			return err
		}
	}

	verb := "Converted"
	if m.settings.DryRun {
		verb = "Checked"
	}
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("%s %d file(s), %d strokes", verb, atomic.LoadInt32(&m.convertedFiles), atomic.LoadInt64(&m.totalStrokes)),
		Level:   LevelSuccess,
	})
	return nil
}

func (m *Manager) convert(ctx context.Context, d *model.Diagram) error {
	svg, err := ioutils.ReadFile(m.fs, d.SrcPath)
	if err != nil {
		return err
	}

	out, strokes := kanjivg.Transform(svg, m.opts)
	d.Strokes = strokes

	if m.settings.DryRun {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Would write %s (%d strokes)", d.DstPath, strokes), Level: LevelVerbose})
	} else {
		if err := ioutils.WriteFile(ctx, m.fs, d.DstPath, []byte(out)); err != nil {
			return err
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Converted %s -> %s (%d strokes)", d.SrcName, d.DstName, strokes), Level: LevelVerbose})
	}

	atomic.AddInt32(&m.convertedFiles, 1)
	atomic.AddInt64(&m.totalStrokes, int64(strokes))
	return nil
}

// GetProgress returns current conversion progress.
func (m *Manager) GetProgress() (converted, total int32) {
	return atomic.LoadInt32(&m.convertedFiles), m.totalFiles
}

// TotalStrokes returns the number of strokes colored so far.
func (m *Manager) TotalStrokes() int64 {
	return atomic.LoadInt64(&m.totalStrokes)
}

// InputDir returns the resolved input directory. Empty before Initialize.
func (m *Manager) InputDir() string {
	return m.inDir
}

// OutputDir returns the resolved output directory. Empty before Initialize.
func (m *Manager) OutputDir() string {
	return m.outDir
}

// Diagrams returns the planned conversions in processing order.
func (m *Manager) Diagrams() []*model.Diagram {
	return m.diagrams
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
