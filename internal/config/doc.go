// Package config provides configuration management for kanji-colorize.
//
// This package handles:
//   - Default configuration values
//   - Loading settings from YAML, JSON or TOML files and the environment
//   - Validation, reported as *ConfigurationError
//   - Saving the effective settings as YAML
//   - Conversion to kanjivg.Options for the rewrite chain
//
// # Default Settings
//
// Use DefaultSettings() to get the stock configuration:
//
//	settings := config.DefaultSettings()
//	// spectrum mode, saturation 0.95, value 0.75
//	// 327 pixel output, files renamed to their character
//
// # Loading from File
//
//	settings, err := config.Load(afero.NewOsFs(), "/path/to/kanji-colorize.yaml")
//	if err != nil {
//	    // the file is missing or malformed
//	}
//
// An empty path skips the file and returns the defaults plus environment
// overrides.
//
// Keys are mode, saturation, value, palette, size, rename, in_dir, out_dir,
// dry_run and verbose. Each can also be set through the environment with the
// KANJI_COLORIZE_ prefix, e.g. KANJI_COLORIZE_MODE=contrast.
//
// # Validation
//
// Settings are checked once, before any file is processed:
//
//	if err := settings.Validate(); err != nil {
//	    var cfgErr *config.ConfigurationError
//	    errors.As(err, &cfgErr) // true
//	}
//
// After Validate the settings are treated as read-only.
package config
