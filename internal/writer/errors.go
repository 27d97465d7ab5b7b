package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Sentinel errors returned by Write. Each is distinguishable via errors.Is
// so the caller can render a specific message or decide on a retry instead
// of treating every failure the same way.
var (
	// ErrDirectoryNotFound means the target directory does not exist.
	ErrDirectoryNotFound = errors.New("target directory does not exist")

	// ErrNotADirectory means the target path exists but is not a directory.
	ErrNotADirectory = errors.New("target path is not a directory")

	// ErrPermission means the directory or file could not be accessed.
	ErrPermission = errors.New("permission denied")

	// ErrCollision means a file already exists at the resolved path. For a
	// versioned migration this signals a token collision (recoverable with
	// a fresh token); for a repeatable one it may be an intentional update,
	// which requires the explicit Overwrite option.
	ErrCollision = errors.New("migration file already exists")
)

// classifyDir maps a stat failure on the target directory onto the sentinel
// taxonomy, keeping the original error in the chain.
func classifyDir(dir string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermission, dir)
	default:
		return fmt.Errorf("stat %s: %w", dir, err)
	}
}

// classifyWrite maps a file creation/write failure onto the taxonomy.
func classifyWrite(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) || os.IsPermission(err) {
		return fmt.Errorf("%w: %s", ErrPermission, path)
	}
	return fmt.Errorf("write %s: %w", path, err)
}
