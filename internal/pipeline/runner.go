package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/backmassage/migforge/internal/config"
	"github.com/backmassage/migforge/internal/host"
	"github.com/backmassage/migforge/internal/logging"
	"github.com/backmassage/migforge/internal/naming"
	"github.com/backmassage/migforge/internal/writer"
)

// ErrEmptySelection is returned for input that is empty (or whitespace
// only).
var ErrEmptySelection = errors.New(
	"cowardly refusing to create an empty migration: select some SQL and try again")

// ErrMultiCombined rejects combining --also-versioned with multiple inputs:
// a batch of versioned migrations cut in one instant has no meaningful order.
var ErrMultiCombined = errors.New(
	"combining repeatable and versioned migrations is not supported for multiple inputs")

// errCancelled is an internal marker for a user cancellation mid-operation.
var errCancelled = errors.New("cancelled")

// Options are the per-invocation settings, resolved from CLI flags.
type Options struct {
	Kind          naming.Kind
	Dir           string // target directory; "" means prompt
	Description   string // migration description; "" means derive or prompt
	AlsoVersioned bool   // repeatable only: additionally write a versioned copy
	CopyPath      bool   // copy the created path to the clipboard
}

// Runner wires the pipeline's collaborators. Now is swappable for tests and
// defaults to time.Now.
type Runner struct {
	Cfg *config.Config
	Log *logging.Logger
	UI  host.UI
	Now func() time.Time
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Run processes the batch. Target directory and description prompts happen
// at most once; a cancellation at any prompt aborts the remainder cleanly
// (no writes, no error). The returned stats drive the exit code.
func (r *Runner) Run(ctx context.Context, sources []host.Source, opts Options) RunStats {
	stats := RunStats{Total: len(sources)}

	if opts.AlsoVersioned && len(sources) > 1 {
		r.UI.ReportError(ErrMultiCombined)
		stats.Failed = len(sources)
		return stats
	}

	dir, ok, err := r.resolveDir(opts)
	if err != nil {
		r.UI.ReportError(err)
		stats.Failed = len(sources)
		return stats
	}
	if !ok {
		r.Log.Debug("target prompt cancelled")
		stats.Cancelled = len(sources)
		return stats
	}

	for _, src := range sources {
		if ctx.Err() != nil {
			r.Log.Warn("Interrupted")
			stats.Cancelled += stats.Total - stats.Written - stats.Failed - stats.Cancelled
			break
		}

		err := r.process(src, dir, opts)
		switch {
		case err == nil:
			stats.Written++
		case errors.Is(err, errCancelled):
			stats.Cancelled++
		default:
			r.UI.ReportError(err)
			stats.Failed++
		}
	}

	r.summarize(&stats)
	return stats
}

// resolveDir picks the target directory: flag, else configured default,
// else prompt.
func (r *Runner) resolveDir(opts Options) (string, bool, error) {
	if opts.Dir != "" {
		return opts.Dir, true, nil
	}
	if r.Cfg.TargetDir != "" && r.Cfg.NonInteractive {
		return r.Cfg.TargetDir, true, nil
	}
	return r.UI.PromptTarget(opts.Kind)
}

// process handles one source end to end.
func (r *Runner) process(src host.Source, dir string, opts Options) error {
	text, err := src.SelectedText()
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptySelection
	}

	desc, err := r.resolveDescription(src, opts)
	if err != nil {
		return err
	}

	content := []byte(text)

	path, err := r.writeKind(opts.Kind, desc, dir, content)
	if err != nil {
		return err
	}
	r.deliver(path, opts)

	if opts.AlsoVersioned && opts.Kind == naming.KindRepeatable {
		vpath, err := r.writeKind(naming.KindVersioned, desc, dir, content)
		if err != nil {
			return err
		}
		r.deliver(vpath, opts)
	}
	return nil
}

func (r *Runner) resolveDescription(src host.Source, opts Options) (string, error) {
	if opts.Description != "" {
		return opts.Description, nil
	}
	if label := src.Label(); label != "" {
		return label, nil
	}
	desc, ok, err := r.UI.PromptDescription()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errCancelled
	}
	return desc, nil
}

// writeKind computes the filename and materializes it, applying the
// kind-specific collision handling. Retrying is decided here, by the
// writer's caller, never inside the writer.
func (r *Runner) writeKind(kind naming.Kind, desc, dir string, content []byte) (string, error) {
	name, err := naming.Compute(kind, desc, r.now(), r.Cfg.Precision)
	if err != nil {
		return "", err
	}
	r.Log.Debug("computed filename %s", name)

	path, err := writer.Write(dir, name, content, writer.Options{})
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, writer.ErrCollision) {
		return "", err
	}

	if kind == naming.KindVersioned {
		return r.retryVersioned(desc, dir, content, err)
	}
	return r.overwriteRepeatable(name, dir, content, err)
}

// retryVersioned handles a versioned collision. With millisecond precision
// a single fresh token is attempted; at second precision the collision is
// surfaced as-is (a retry within the same second would collide again).
func (r *Runner) retryVersioned(desc, dir string, content []byte, collision error) (string, error) {
	if r.Cfg.Precision != naming.PrecisionMilli {
		return "", collision
	}
	r.Log.Warn("Version token collision, retrying with a fresh token")

	name, err := naming.Compute(naming.KindVersioned, desc, r.now(), r.Cfg.Precision)
	if err != nil {
		return "", err
	}
	return writer.Write(dir, name, content, writer.Options{})
}

// overwriteRepeatable applies the configured collision policy for
// repeatable migrations.
func (r *Runner) overwriteRepeatable(name, dir string, content []byte, collision error) (string, error) {
	switch r.Cfg.Overwrite {
	case config.OverwriteForce:
		return writer.Write(dir, name, content, writer.Options{Overwrite: true})
	case config.OverwriteConfirm:
		yes, err := r.UI.ConfirmOverwrite(name)
		if err != nil {
			return "", err
		}
		if !yes {
			return "", errCancelled
		}
		return writer.Write(dir, name, content, writer.Options{Overwrite: true})
	default:
		return "", collision
	}
}

// deliver reports a created file and optionally places its path on the
// clipboard. Clipboard trouble is a warning, not a failure: the file is
// already safely on disk.
func (r *Runner) deliver(path string, opts Options) {
	r.UI.ReportSuccess(path)
	if !opts.CopyPath {
		return
	}
	if err := clipboard.WriteAll(path); err != nil {
		r.Log.Warn("Could not copy path to clipboard: %v", err)
	}
}

// summarize logs the batch outcome for multi-input runs; single-input runs
// already reported their one result.
func (r *Runner) summarize(stats *RunStats) {
	if stats.Total <= 1 {
		return
	}
	r.Log.Info("Exported %d of %d migration(s), %d failed, %d cancelled",
		stats.Written, stats.Total, stats.Failed, stats.Cancelled)
}
