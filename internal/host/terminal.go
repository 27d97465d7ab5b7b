package host

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/backmassage/migforge/internal/display"
	"github.com/backmassage/migforge/internal/logging"
	"github.com/backmassage/migforge/internal/naming"
)

// TerminalUI implements UI with interactive terminal forms. With
// NonInteractive set, every prompt fails instead of blocking a script.
type TerminalUI struct {
	Log            *logging.Logger
	DefaultDir     string
	NonInteractive bool
}

// ErrNonInteractive is returned when a prompt would be needed but prompts
// are disabled. The caller should suggest the corresponding flag.
var ErrNonInteractive = errors.New("input required but running non-interactively")

func (u *TerminalUI) PromptDescription() (string, bool, error) {
	if u.NonInteractive {
		return "", false, fmt.Errorf("%w: pass --name", ErrNonInteractive)
	}

	var desc string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Migration description").
			Description("Becomes part of the filename; letters and digits survive, the rest turns into underscores.").
			Placeholder("e.g., Add customers table").
			Value(&desc).
			Validate(func(s string) error {
				if naming.Sanitize(s) == "" {
					return errors.New("need at least one letter or digit")
				}
				return nil
			}),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, err
	}
	return desc, true, nil
}

func (u *TerminalUI) PromptTarget(kind naming.Kind) (string, bool, error) {
	if u.NonInteractive {
		return "", false, fmt.Errorf("%w: pass --dir", ErrNonInteractive)
	}

	dir := u.DefaultDir
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Target directory for the %s migration", kind)).
			Placeholder("db/migrations").
			Value(&dir).
			Validate(func(s string) error {
				if s == "" {
					return errors.New("directory must not be empty")
				}
				fi, err := os.Stat(s)
				if err != nil {
					return fmt.Errorf("not found: %s", s)
				}
				if !fi.IsDir() {
					return fmt.Errorf("not a directory: %s", s)
				}
				return nil
			}),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, err
	}
	return dir, true, nil
}

func (u *TerminalUI) ConfirmOverwrite(filename string) (bool, error) {
	if u.NonInteractive {
		return false, fmt.Errorf("%w: set overwrite policy to 'force' or 'error'", ErrNonInteractive)
	}

	overwrite := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("%s already exists. Overwrite?", filename)).
			Affirmative("Overwrite").
			Negative("Keep existing").
			Value(&overwrite),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return overwrite, nil
}

func (u *TerminalUI) ReportSuccess(path string) {
	u.Log.Success("Created %s", display.Path(path))
}

func (u *TerminalUI) ReportError(err error) {
	u.Log.Error("%s", display.ErrorMessage(err))
}
