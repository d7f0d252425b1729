package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/handiism/kanji-colorize/internal/kanjivg"
	"github.com/handiism/kanji-colorize/internal/model"
	"github.com/handiism/kanji-colorize/internal/palette"
)

// EnvPrefix is the prefix for environment overrides, e.g. KANJI_COLORIZE_SIZE.
const EnvPrefix = "KANJI_COLORIZE"

// Settings holds all configuration options.
type Settings struct {
	// Coloring
	Mode       model.Mode `mapstructure:"mode" yaml:"mode"`
	Saturation float64    `mapstructure:"saturation" yaml:"saturation"`
	Value      float64    `mapstructure:"value" yaml:"value"`
	Palette    []string   `mapstructure:"palette" yaml:"palette"`

	// Output
	Size   int  `mapstructure:"size" yaml:"size"`
	Rename bool `mapstructure:"rename" yaml:"rename"`

	// Directories. Empty means resolve at run time.
	InDir  string `mapstructure:"in_dir" yaml:"in_dir,omitempty"`
	OutDir string `mapstructure:"out_dir" yaml:"out_dir,omitempty"`

	// Run behavior
	DryRun  bool `mapstructure:"dry_run" yaml:"dry_run"`
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	p := make([]string, len(palette.Default))
	copy(p, palette.Default)

	return &Settings{
		Mode:       model.DefaultMode,
		Saturation: 0.95,
		Value:      0.75,
		Palette:    p,

		Size:   327,
		Rename: true,
	}
}

// Load reads settings from a YAML, JSON or TOML file on fs, layered over the
// defaults and under KANJI_COLORIZE_* environment variables. An empty path
// yields the defaults; a path that cannot be read is an error. The result is
// not validated.
func Load(fs afero.Fs, path string) (*Settings, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v, DefaultSettings())

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	return settings, nil
}

func setDefaults(v *viper.Viper, s *Settings) {
	v.SetDefault("mode", string(s.Mode))
	v.SetDefault("saturation", s.Saturation)
	v.SetDefault("value", s.Value)
	v.SetDefault("palette", s.Palette)
	v.SetDefault("size", s.Size)
	v.SetDefault("rename", s.Rename)
	v.SetDefault("in_dir", s.InDir)
	v.SetDefault("out_dir", s.OutDir)
	v.SetDefault("dry_run", s.DryRun)
	v.SetDefault("verbose", s.Verbose)
}

// Save writes settings to a YAML file on fs, creating parent directories.
func (s *Settings) Save(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return afero.WriteFile(fs, path, data, 0644)
}

// Validate checks every field and normalizes the mode name and palette
// colors in place. Errors are *ConfigurationError.
func (s *Settings) Validate() error {
	mode, err := model.ParseMode(string(s.Mode))
	if err != nil {
		return &ConfigurationError{Field: "mode", Value: s.Mode, Err: err}
	}
	s.Mode = mode

	if s.Saturation < 0 || s.Saturation > 1 {
		return &ConfigurationError{Field: "saturation", Value: s.Saturation, Err: errors.New("must be between 0 and 1")}
	}
	if s.Value < 0 || s.Value > 1 {
		return &ConfigurationError{Field: "value", Value: s.Value, Err: errors.New("must be between 0 and 1")}
	}
	if s.Size <= 0 {
		return &ConfigurationError{Field: "size", Value: s.Size, Err: errors.New("must be a positive number of pixels")}
	}

	colors, err := palette.Parse(s.Palette)
	if err != nil {
		return &ConfigurationError{Field: "palette", Value: s.Palette, Err: err}
	}
	s.Palette = colors

	return nil
}

// ToTransformOptions converts settings to kanjivg.Options.
func (s *Settings) ToTransformOptions() kanjivg.Options {
	return kanjivg.Options{
		Mode:       s.Mode,
		Saturation: s.Saturation,
		Value:      s.Value,
		Size:       s.Size,
		Palette:    s.Palette,
	}
}
