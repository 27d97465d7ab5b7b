// Package term resolves the color mode and owns the lipgloss styles shared
// by the logging and display packages. [Configure] sets the profile once
// during startup; with colors disabled every style renders to plain text.
package term

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/migforge/internal/config"
)

// Shared styles. Zero-value lipgloss styles render plain text, so packages
// using these before Configure simply produce uncolored output.
var (
	Info    lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Debug   lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Banner  lipgloss.Style
)

var enabled bool

// Configure resolves the color mode and initializes the package styles.
// Call once during startup, before the logger is created.
func Configure(mode config.ColorMode) {
	profile := resolve(mode)
	lipgloss.SetColorProfile(profile)
	enabled = profile != termenv.Ascii

	Info = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	Success = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	Warn = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	Error = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	Debug = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	Accent = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	Muted = lipgloss.NewStyle().Faint(true)
	Banner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return enabled }

// resolve maps the configured mode to a termenv profile, honoring TTY
// detection and the NO_COLOR convention (https://no-color.org) in auto mode.
func resolve(mode config.ColorMode) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		p := termenv.ColorProfile()
		if p == termenv.Ascii {
			p = termenv.ANSI
		}
		return p
	case config.ColorNever:
		return termenv.Ascii
	default: // ColorAuto
		if termenv.EnvNoColor() || !IsTerminal(os.Stdout) {
			return termenv.Ascii
		}
		return termenv.ColorProfile()
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
