package host

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LiteralSource wraps SQL passed directly (e.g. via a --sql flag).
type LiteralSource struct {
	SQL string
}

func (s LiteralSource) SelectedText() (string, error) { return s.SQL, nil }
func (s LiteralSource) Label() string                 { return "" }

// FileSource reads SQL from a file. Its label is the file basename without
// extension, so exported objects keep their names.
type FileSource struct {
	Path string
}

func (s FileSource) SelectedText() (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.Path, err)
	}
	return string(b), nil
}

func (s FileSource) Label() string {
	base := filepath.Base(s.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReaderSource reads SQL from an arbitrary stream, typically stdin piped
// from the editor's "copy selection" action.
type ReaderSource struct {
	Reader io.Reader
}

func (s ReaderSource) SelectedText() (string, error) {
	b, err := io.ReadAll(s.Reader)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

func (s ReaderSource) Label() string { return "" }
