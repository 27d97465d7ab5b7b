// Package display renders user-facing output: the banner, file sizes,
// styled paths, and the friendly form of the core error taxonomy.
package display

import (
	"errors"
	"fmt"

	"github.com/backmassage/migforge/internal/naming"
	"github.com/backmassage/migforge/internal/term"
	"github.com/backmassage/migforge/internal/writer"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// Path styles a filesystem path for terminal output.
func Path(p string) string {
	return term.Accent.Render(p)
}

// ErrorMessage maps the core error taxonomy to the message shown to the
// user. Unknown errors are passed through verbatim.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, naming.ErrEmptyDescription):
		return "The description is empty after sanitization. Please use at least one letter or digit."
	case errors.Is(err, writer.ErrCollision):
		return fmt.Sprintf("%v. Use a different name, or an overwrite policy for repeatable migrations.", err)
	case errors.Is(err, writer.ErrDirectoryNotFound):
		return fmt.Sprintf("%v. Create it first or point --dir elsewhere.", err)
	case errors.Is(err, writer.ErrPermission):
		return fmt.Sprintf("%v.", err)
	default:
		return err.Error()
	}
}
