package writer

import (
	"os"
	"runtime"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// renameWithRetry renames with exponential backoff on Windows, where a
// rename can fail transiently with "Access is denied" while an editor,
// indexer, or antivirus holds a handle on the target. On other platforms a
// rename failure is permanent and returned immediately.
func renameWithRetry(oldPath, newPath string) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	bo.MaxElapsedTime = 2 * time.Second

	return backoff.Retry(func() error {
		err := os.Rename(oldPath, newPath)
		if err == nil {
			return nil
		}
		if runtime.GOOS != "windows" {
			return backoff.Permanent(err)
		}
		return err
	}, bo)
}
