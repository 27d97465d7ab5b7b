// Package writer materializes a computed migration filename on disk. The
// write is atomic with respect to partial content (temp file plus
// link/rename in the same directory) and never silently overwrites an
// existing migration: the filesystem, not any in-process state, is the sole
// arbiter of collisions.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Options controls collision behavior. The zero value is the safe default:
// an existing file at the target path is an error.
type Options struct {
	// Overwrite replaces an existing file at the target path. Only the
	// repeatable flow ever sets this, and only after the caller's policy
	// (config or interactive confirmation) allowed it.
	Overwrite bool
}

// Write places content at dir/filename and returns the resolved absolute
// path. On any failure the target is left exactly as it was: either the
// full content lands at the path, or the prior file (or absence of one)
// remains untouched.
func Write(dir, filename string, content []byte, opts Options) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}

	fi, err := os.Stat(abs)
	if err != nil {
		return "", classifyDir(dir, err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	dest := filepath.Join(abs, filename)

	// Advisory pre-check for a friendly early error. The authoritative
	// no-clobber check happens again at placement time (hard link), so a
	// file appearing between here and there is still caught.
	if !opts.Overwrite {
		if _, err := os.Lstat(dest); err == nil {
			return "", fmt.Errorf("%w: %s", ErrCollision, dest)
		}
	}

	tmp := filepath.Join(abs, tempName(filename))
	if err := writeTemp(tmp, content); err != nil {
		return "", err
	}

	if err := place(tmp, dest, opts.Overwrite); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return dest, nil
}

// tempName builds a hidden, unique sibling name so concurrent invocations
// never contend on the temp file itself.
func tempName(filename string) string {
	return fmt.Sprintf(".%s.%s.tmp", filename, uuid.NewString()[:8])
}

// writeTemp creates the temp file, writes the full content, and syncs it.
// The temp file is removed on any failure.
func writeTemp(tmp string, content []byte) error {
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return classifyWrite(tmp, err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return classifyWrite(tmp, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return classifyWrite(tmp, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return classifyWrite(tmp, err)
	}
	return nil
}

// place moves tmp to dest. With overwrite, a plain rename (retried for
// transient locking, see retry.go) replaces whatever is there. Without it,
// a hard link is used because link(2) fails atomically when dest exists:
// the exists-check is re-validated at placement time, closing the
// time-of-check/time-of-use gap a pre-check alone would leave.
func place(tmp, dest string, overwrite bool) error {
	if overwrite {
		if err := renameWithRetry(tmp, dest); err != nil {
			return classifyWrite(dest, err)
		}
		return nil
	}

	err := os.Link(tmp, dest)
	if err == nil {
		_ = os.Remove(tmp)
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrCollision, dest)
	}

	// Some filesystems refuse hard links entirely. Fall back to an
	// exists-checked rename; the check window is the best those
	// filesystems allow.
	if _, statErr := os.Lstat(dest); statErr == nil {
		return fmt.Errorf("%w: %s", ErrCollision, dest)
	}
	if err := renameWithRetry(tmp, dest); err != nil {
		return classifyWrite(dest, err)
	}
	return nil
}
