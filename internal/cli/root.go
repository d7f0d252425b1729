package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/handiism/kanji-colorize/internal/colorize"
	"github.com/handiism/kanji-colorize/internal/config"
	"github.com/handiism/kanji-colorize/internal/model"
)

// Version is reported by --version.
var Version = "0.3.0"

// Exit codes.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitInterrupted = 130
)

// NewRootCmd builds the kanji-colorize command. Output and logs go to
// stderr, which tests replace with a buffer.
func NewRootCmd(fs afero.Fs, stderr io.Writer) *cobra.Command {
	var (
		configFile string
		saveConfig string
	)

	cmd := &cobra.Command{
		Use:     "kanji-colorize [flags]",
		Version: Version,
		Short:   "Color KanjiVG stroke order diagrams by stroke",
		Long: `kanji-colorize reads KanjiVG SVG files and writes copies in which every
stroke and its number share a distinct color.

Color modes:
  spectrum  hues progress evenly through the spectrum
  contrast  consecutive strokes are spaced by the golden ratio
  indexed   colors come from a fixed palette`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(fs, configFile)
			if err != nil {
				return err
			}
			applyFlags(cmd.Flags(), settings)

			setupLogger(stderr, settings.Verbose)

			for _, arg := range args {
				log.Warn().Str("arg", arg).Msg("Ignoring unrecognized argument")
			}

			if saveConfig != "" {
				if err := settings.Save(fs, saveConfig); err != nil {
					return fmt.Errorf("save config: %w", err)
				}
				log.Info().Str("path", saveConfig).Msg("Saved settings")
			}

			return run(cmd.Context(), fs, settings)
		},
	}

	flags := cmd.Flags()
	defaults := config.DefaultSettings()
	flags.StringP("in-dir", "i", "", "directory containing KanjiVG SVG files (default: ./kanji, ./kanjivg/kanji, ../kanjivg/kanji or .)")
	flags.StringP("out-dir", "o", "", "directory to write colored files to (default: kanji-colorize-<mode>)")
	flags.StringP("colors", "c", string(defaults.Mode), "color mode: spectrum, contrast or indexed")
	flags.Float64("saturation", defaults.Saturation, "color saturation, 0 to 1")
	flags.Float64("value", defaults.Value, "color value (brightness), 0 to 1")
	flags.IntP("size", "s", defaults.Size, "output image size in pixels")
	flags.Bool("rename", defaults.Rename, "name output files after the character instead of its code")
	flags.Bool("no-rename", false, "keep the input file names")
	flags.Bool("dry-run", false, "convert without writing any files")
	flags.BoolP("verbose", "v", false, "log every converted file")
	flags.StringVar(&configFile, "config", "", "settings file (YAML, JSON or TOML)")
	flags.StringVar(&saveConfig, "save-config", "", "write the effective settings to this YAML file")
	cmd.MarkFlagsMutuallyExclusive("rename", "no-rename")

	return cmd
}

// applyFlags copies explicitly set flags over the loaded settings, so a
// config file value survives unless the flag was given.
func applyFlags(flags *pflag.FlagSet, s *config.Settings) {
	if flags.Changed("in-dir") {
		s.InDir, _ = flags.GetString("in-dir")
	}
	if flags.Changed("out-dir") {
		s.OutDir, _ = flags.GetString("out-dir")
	}
	if flags.Changed("colors") {
		mode, _ := flags.GetString("colors")
		s.Mode = model.Mode(mode)
	}
	if flags.Changed("saturation") {
		s.Saturation, _ = flags.GetFloat64("saturation")
	}
	if flags.Changed("value") {
		s.Value, _ = flags.GetFloat64("value")
	}
	if flags.Changed("size") {
		s.Size, _ = flags.GetInt("size")
	}
	if flags.Changed("rename") {
		s.Rename, _ = flags.GetBool("rename")
	}
	if noRename, _ := flags.GetBool("no-rename"); noRename {
		s.Rename = false
	}
	if flags.Changed("dry-run") {
		s.DryRun, _ = flags.GetBool("dry-run")
	}
	if flags.Changed("verbose") {
		s.Verbose, _ = flags.GetBool("verbose")
	}
}

func setupLogger(w io.Writer, verbose bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, NoColor: w != os.Stderr})

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func run(ctx context.Context, fs afero.Fs, settings *config.Settings) error {
	manager := colorize.NewManager(settings, fs, logEvent)

	if err := manager.Initialize(ctx); err != nil {
		return err
	}
	return manager.Run(ctx)
}

// logEvent maps progress levels onto log levels. Verbose events are debug
// output and only show with --verbose.
func logEvent(event colorize.ProgressEvent) {
	var e *zerolog.Event
	switch event.Level {
	case colorize.LevelError:
		e = log.Error()
	case colorize.LevelWarning:
		e = log.Warn()
	case colorize.LevelVerbose:
		e = log.Debug()
	case colorize.LevelSuccess:
		e = log.Info().Bool("done", true)
	default:
		e = log.Info()
	}
	e.Msg(event.Message)
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupLogger(os.Stderr, false)
	cmd := NewRootCmd(afero.NewOsFs(), os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn().Msg("Interrupted, stopping")
			return ExitInterrupted
		}
		log.Error().Err(err).Msg("kanji-colorize failed")
		return ExitError
	}
	return ExitOK
}
