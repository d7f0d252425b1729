// Package tui provides a Bubble Tea terminal user interface for kanji-colorize.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/handiism/kanji-colorize/internal/colorize"
	"github.com/handiism/kanji-colorize/internal/config"
	"github.com/handiism/kanji-colorize/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BF0909")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#09BFBF"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#09BF09"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0066"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFCC00"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#09BFBF")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateInitializing
	StateConverting
	StateComplete
	StateError
)

const maxLogs = 10

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   colorize.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	fs        afero.Fs
	logs      []LogEntry
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	manager *colorize.Manager
	events  chan colorize.ProgressEvent

	convertedFiles int32
	totalFiles     int32
	inDir          string
	outDir         string

	// Options
	mode    model.Mode
	rename  bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model working on fs.
func NewModel(fs afero.Fs) Model {
	ti := textinput.New()
	ti.Placeholder = "kanji (leave empty to search ./kanji, ./kanjivg/kanji, ../kanjivg/kanji)"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#BF0909"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())
	defaults := config.DefaultSettings()

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  defaults,
		fs:        fs,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		events:    make(chan colorize.ProgressEvent, 64),
		mode:      defaults.Mode,
		rename:    defaults.Rename,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForEvent(m.events))
}

// Message types
type (
	// ProgressMsg carries one event from the manager.
	ProgressMsg struct {
		Event colorize.ProgressEvent
	}

	// InitDoneMsg is sent when directory resolution and planning complete.
	InitDoneMsg struct {
		Manager *colorize.Manager
		Err     error
	}

	// ConvertDoneMsg is sent when the batch finishes.
	ConvertDoneMsg struct {
		Converted int32
		Total     int32
		Err       error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateConverting || m.state == StateInitializing {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput {
				m.state = StateInitializing
				return m, tea.Batch(m.initializeConversion(), m.spinner.Tick)
			}

		case "tab":
			if m.state == StateInput {
				m.mode = m.mode.Next()
			}
			return m, nil

		case "ctrl+n":
			if m.state == StateInput {
				m.rename = !m.rename
			}
			return m, nil

		case "ctrl+b":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}
			return m, nil

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.convertedFiles = 0
				m.totalFiles = 0
				m.manager = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.Focus()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, waitForEvent(m.events))
		if msg.Event.Level == colorize.LevelVerbose && !m.verbose {
			return m, tea.Batch(cmds...)
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case InitDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.manager = msg.Manager
			m.inDir = msg.Manager.InputDir()
			m.outDir = msg.Manager.OutputDir()
			m.convertedFiles, m.totalFiles = msg.Manager.GetProgress()
			m.state = StateConverting
			cmds = append(cmds, m.startConversion(), m.tickProgress())
		}

	case ConvertDoneMsg:
		m.convertedFiles = msg.Converted
		m.totalFiles = msg.Total
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateConverting {
			m.convertedFiles, m.totalFiles = m.manager.GetProgress()

			var percent float64
			if m.totalFiles > 0 {
				percent = float64(m.convertedFiles) / float64(m.totalFiles)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// waitForEvent blocks until the manager reports something.
func waitForEvent(events <-chan colorize.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		return ProgressMsg{Event: <-events}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("漢 kanji-colorize"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Color KanjiVG stroke order diagrams"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateInitializing:
		b.WriteString(m.viewInitializing())
	case StateConverting:
		b.WriteString(m.viewConverting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Input directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	renameCheck := "[ ]"
	if m.rename {
		renameCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Colors: %s (tab)\n", m.mode))
	b.WriteString(fmt.Sprintf("  %s Name files after the character (ctrl+n)\n", renameCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+b)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Size: %dpx  Saturation: %.2f  Value: %.2f", m.settings.Size, m.settings.Saturation, m.settings.Value)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewInitializing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Looking for KanjiVG files..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewConverting() string {
	var b strings.Builder

	b.WriteString(infoStyle.Render(fmt.Sprintf("%s -> %s", m.inDir, m.outDir)))
	b.WriteString("\n\n")

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.convertedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.convertedFiles, m.totalFiles)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var strokes int64
	if m.manager != nil {
		strokes = m.manager.TotalStrokes()
	}

	return boxStyle.Render(fmt.Sprintf(
		"Done!\n\n"+
			"Files: %d\n"+
			"Strokes: %d\n"+
			"Output: %s",
		m.convertedFiles,
		strokes,
		m.outDir,
	))
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case colorize.LevelError:
			style = errorStyle
			prefix = "✗"
		case colorize.LevelWarning:
			style = warningStyle
			prefix = "!"
		case colorize.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case colorize.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • tab: colors • ctrl+n: rename • ctrl+b: verbose • esc: quit"
	case StateInitializing, StateConverting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: convert again • q: quit"
	}
	return ""
}

// currentSettings applies the on-screen options to a copy of the defaults.
func (m Model) currentSettings() *config.Settings {
	s := *m.settings
	s.InDir = strings.TrimSpace(m.textInput.Value())
	s.Mode = m.mode
	s.Rename = m.rename
	s.Verbose = m.verbose
	return &s
}

// initializeConversion resolves directories and plans the batch.
func (m Model) initializeConversion() tea.Cmd {
	settings := m.currentSettings()
	ctx := m.ctx
	events := m.events
	fs := m.fs

	return func() tea.Msg {
		manager := colorize.NewManager(settings, fs, func(event colorize.ProgressEvent) {
			select {
			case events <- event:
			default:
				// the UI is behind, drop the event
			}
		})

		if err := manager.Initialize(ctx); err != nil {
			return InitDoneMsg{Err: err}
		}
		return InitDoneMsg{Manager: manager}
	}
}

// startConversion runs the batch in the background.
func (m Model) startConversion() tea.Cmd {
	manager := m.manager
	ctx := m.ctx

	return func() tea.Msg {
		if manager == nil {
			return ConvertDoneMsg{Err: fmt.Errorf("no manager")}
		}

		err := manager.Run(ctx)
		converted, total := manager.GetProgress()

		return ConvertDoneMsg{
			Converted: converted,
			Total:     total,
			Err:       err,
		}
	}
}

// Run starts the TUI application on the local file system.
func Run() error {
	p := tea.NewProgram(NewModel(afero.NewOsFs()), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
