// Package config holds runtime configuration: defaults, optional config-file
// loading, and validation. Flag binding lives with the CLI commands; this
// package only defines the knobs and their legal values.
package config

import (
	"errors"
	"fmt"

	"github.com/backmassage/migforge/internal/naming"
)

// --- Enum types for validated string fields ---

// OverwritePolicy decides what happens when a repeatable migration collides
// with an existing file. Versioned collisions are never overwritten.
type OverwritePolicy string

const (
	OverwriteError   OverwritePolicy = "error"   // Refuse and report the collision (default).
	OverwriteConfirm OverwritePolicy = "confirm" // Ask interactively before replacing.
	OverwriteForce   OverwritePolicy = "force"   // Replace without asking.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [Load], and then mutated by CLI flags before being
// passed (by pointer) to packages that need it.
type Config struct {
	// TargetDir is the default migrations directory. Empty means the user
	// is prompted (or, non-interactively, must pass --dir).
	TargetDir string `mapstructure:"target_dir" yaml:"target_dir"`

	// Precision selects the version token granularity. Millisecond
	// precision avoids collisions when two migrations are cut within the
	// same second.
	Precision naming.Precision `mapstructure:"precision" yaml:"precision"`

	// Overwrite is the repeatable-migration collision policy.
	Overwrite OverwritePolicy `mapstructure:"overwrite" yaml:"overwrite"`

	// CopyPath copies the created file path to the system clipboard.
	CopyPath bool `mapstructure:"copy_path" yaml:"copy_path"`

	// NonInteractive disables all prompts; operations that would need one
	// fail instead. Intended for scripts and CI.
	NonInteractive bool `mapstructure:"non_interactive" yaml:"non_interactive"`

	// Display and logging.
	ColorMode ColorMode `mapstructure:"color" yaml:"color"`
	LogFile   string    `mapstructure:"log_file" yaml:"log_file"`
	Verbose   bool      `mapstructure:"verbose" yaml:"verbose"`
}

// DefaultConfig returns a Config with the safe defaults: second-precision
// tokens, collisions refused, prompts enabled.
func DefaultConfig() Config {
	return Config{
		TargetDir:      "",
		Precision:      naming.PrecisionSecond,
		Overwrite:      OverwriteError,
		CopyPath:       false,
		NonInteractive: false,
		ColorMode:      ColorAuto,
		LogFile:        "",
		Verbose:        false,
	}
}

// Validate checks enum fields. It is called after file and flag overlays so
// it sees the effective configuration.
func (c *Config) Validate() error {
	switch c.Precision {
	case naming.PrecisionSecond, naming.PrecisionMilli:
		// valid
	default:
		return fmt.Errorf("invalid precision %q (use 'second' or 'milli')", c.Precision)
	}

	switch c.Overwrite {
	case OverwriteError, OverwriteConfirm, OverwriteForce:
		// valid
	default:
		return fmt.Errorf("invalid overwrite policy %q (use 'error', 'confirm' or 'force')", c.Overwrite)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.NonInteractive && c.Overwrite == OverwriteConfirm {
		return errors.New("overwrite policy 'confirm' requires an interactive session")
	}
	return nil
}
