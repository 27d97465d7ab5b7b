package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/migforge/internal/config"
	"github.com/backmassage/migforge/internal/host"
	"github.com/backmassage/migforge/internal/logging"
	"github.com/backmassage/migforge/internal/naming"
	"github.com/backmassage/migforge/internal/writer"
)

var march5 = time.Date(2024, 3, 5, 10, 15, 30, 0, time.UTC)

func newRunner(t *testing.T, cfg config.Config, ui *host.MockUI) *Runner {
	t.Helper()
	cfg.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = log.Close() })
	return &Runner{Cfg: &cfg, Log: log, UI: ui, Now: func() time.Time { return march5 }}
}

func TestRun_VersionedHappyPath(t *testing.T) {
	dir := t.TempDir()
	ui := &host.MockUI{}
	r := newRunner(t, config.DefaultConfig(), ui)

	stats := r.Run(context.Background(), []host.Source{
		host.LiteralSource{SQL: "create table customers (id int);\n"},
	}, Options{Kind: naming.KindVersioned, Dir: dir, Description: "Add Customers Table!!"})

	assert.Equal(t, RunStats{Total: 1, Written: 1}, stats)
	assert.True(t, stats.OK())
	require.Len(t, ui.Successes, 1)
	assert.Equal(t, "V20240305101530__Add_Customers_Table.sql", filepath.Base(ui.Successes[0]))

	// Flags satisfied everything; the host must not have been prompted.
	assert.Zero(t, ui.DescriptionPrompts)
	assert.Zero(t, ui.TargetPrompts)

	got, err := os.ReadFile(ui.Successes[0])
	require.NoError(t, err)
	assert.Equal(t, "create table customers (id int);\n", string(got))
}

func TestRun_TargetCancellationIsCleanNoOp(t *testing.T) {
	ui := &host.MockUI{TargetOK: false}
	r := newRunner(t, config.DefaultConfig(), ui)

	stats := r.Run(context.Background(), []host.Source{
		host.LiteralSource{SQL: "select 1;"},
	}, Options{Kind: naming.KindVersioned, Description: "x"})

	assert.Equal(t, RunStats{Total: 1, Cancelled: 1}, stats)
	assert.True(t, stats.OK())
	assert.Empty(t, ui.Successes)
	assert.Empty(t, ui.Errors)
	assert.Equal(t, 1, ui.TargetPrompts)
}

func TestRun_EmptySelection(t *testing.T) {
	dir := t.TempDir()
	ui := &host.MockUI{}
	r := newRunner(t, config.DefaultConfig(), ui)

	for _, sql := range []string{"", "   \n\t "} {
		stats := r.Run(context.Background(), []host.Source{
			host.LiteralSource{SQL: sql},
		}, Options{Kind: naming.KindVersioned, Dir: dir, Description: "x"})

		assert.Equal(t, 1, stats.Failed)
		assert.False(t, stats.OK())
	}
	require.Len(t, ui.Errors, 2)
	assert.ErrorIs(t, ui.Errors[0], ErrEmptySelection)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing may be written for empty input")
}

func TestRun_DescriptionFromPrompt(t *testing.T) {
	dir := t.TempDir()
	ui := &host.MockUI{Description: "from prompt", DescriptionOK: true}
	r := newRunner(t, config.DefaultConfig(), ui)

	stats := r.Run(context.Background(), []host.Source{
		host.LiteralSource{SQL: "select 1;"},
	}, Options{Kind: naming.KindRepeatable, Dir: dir})

	assert.Equal(t, RunStats{Total: 1, Written: 1}, stats)
	assert.Equal(t, 1, ui.DescriptionPrompts)
	assert.Equal(t, "R__from_prompt.sql", filepath.Base(ui.Successes[0]))
}

func TestRun_DescriptionPromptCancelled(t *testing.T) {
	dir := t.TempDir()
	ui := &host.MockUI{DescriptionOK: false}
	r := newRunner(t, config.DefaultConfig(), ui)

	stats := r.Run(context.Background(), []host.Source{
		host.LiteralSource{SQL: "select 1;"},
	}, Options{Kind: naming.KindRepeatable, Dir: dir})

	assert.Equal(t, RunStats{Total: 1, Cancelled: 1}, stats)
	assert.Empty(t, ui.Errors)
}

func TestRun_DescriptionFromFileLabel(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "V_ALL_OBJECTS.sql")
	require.NoError(t, os.WriteFile(src, []byte("create or replace view v as select 1;"), 0o644))

	ui := &host.MockUI{}
	r := newRunner(t, config.DefaultConfig(), ui)

	stats := r.Run(context.Background(), []host.Source{
		host.FileSource{Path: src},
	}, Options{Kind: naming.KindRepeatable, Dir: dir})

	assert.Equal(t, RunStats{Total: 1, Written: 1}, stats)
	assert.Zero(t, ui.DescriptionPrompts)
	assert.Equal(t, "R__V_ALL_OBJECTS.sql", filepath.Base(ui.Successes[0]))
}

func TestRun_RepeatableCollisionDefaultPolicy(t *testing.T) {
	dir := t.TempDir()
	original := []byte("-- keep me\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "R__demo.sql"), original, 0o644))

	ui := &host.MockUI{}
	r := newRunner(t, config.DefaultConfig(), ui)

	stats := r.Run(context.Background(), []host.Source{
		host.LiteralSource{SQL: "select 2;"},
	}, Options{Kind: naming.KindRepeatable, Dir: dir, Description: "demo"})

	assert.Equal(t, 1, stats.Failed)
	require.Len(t, ui.Errors, 1)
	assert.ErrorIs(t, ui.Errors[0], writer.ErrCollision)

	got, err := os.ReadFile(filepath.Join(dir, "R__demo.sql"))
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestRun_RepeatableCollisionForce(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "R__demo.sql"), []byte("old"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Overwrite = config.OverwriteForce
	ui := &host.MockUI{}
	r := newRunner(t, cfg, ui)

	stats := r.Run(context.Background(), []host.Source{
		host.LiteralSource{SQL: "select 2;"},
	}, Options{Kind: naming.KindRepeatable, Dir: dir, Description: "demo"})

	assert.Equal(t, RunStats{Total: 1, Written: 1}, stats)
	got, err := os.ReadFile(filepath.Join(dir, "R__demo.sql"))
	require.NoError(t, err)
	assert.Equal(t, "select 2;", string(got))
}

func TestRun_RepeatableCollisionConfirm(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Overwrite = config.OverwriteConfirm

	t.Run("accepted", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "R__demo.sql"), []byte("old"), 0o644))
		ui := &host.MockUI{Overwrite: true}
		r := newRunner(t, cfg, ui)

		stats := r.Run(context.Background(), []host.Source{
			host.LiteralSource{SQL: "new"},
		}, Options{Kind: naming.KindRepeatable, Dir: dir, Description: "demo"})

		assert.Equal(t, 1, stats.Written)
		assert.Equal(t, 1, ui.OverwritePrompts)
		got, _ := os.ReadFile(filepath.Join(dir, "R__demo.sql"))
		assert.Equal(t, "new", string(got))
	})

	t.Run("declined", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "R__demo.sql"), []byte("old"), 0o644))
		ui := &host.MockUI{Overwrite: false}
		r := newRunner(t, cfg, ui)

		stats := r.Run(context.Background(), []host.Source{
			host.LiteralSource{SQL: "new"},
		}, Options{Kind: naming.KindRepeatable, Dir: dir, Description: "demo"})

		assert.Equal(t, RunStats{Total: 1, Cancelled: 1}, stats)
		got, _ := os.ReadFile(filepath.Join(dir, "R__demo.sql"))
		assert.Equal(t, "old", string(got))
	})
}

func TestRun_MultiFileRepeatable(t *testing.T) {
	dir := t.TempDir()
	srcDir := t.TempDir()
	for _, name := range []string{"PKG_ORDERS.sql", "V_CUSTOMERS.sql"} {
		require.NoError(t, os.WriteFile(filepath.Join(srcDir, name), []byte("create or replace ...;"), 0o644))
	}

	ui := &host.MockUI{}
	r := newRunner(t, config.DefaultConfig(), ui)

	stats := r.Run(context.Background(), []host.Source{
		host.FileSource{Path: filepath.Join(srcDir, "PKG_ORDERS.sql")},
		host.FileSource{Path: filepath.Join(srcDir, "V_CUSTOMERS.sql")},
	}, Options{Kind: naming.KindRepeatable, Dir: dir})

	assert.Equal(t, RunStats{Total: 2, Written: 2}, stats)
	for _, want := range []string{"R__PKG_ORDERS.sql", "R__V_CUSTOMERS.sql"} {
		_, err := os.Stat(filepath.Join(dir, want))
		assert.NoError(t, err, want)
	}
}

func TestRun_AlsoVersioned(t *testing.T) {
	dir := t.TempDir()
	ui := &host.MockUI{}
	r := newRunner(t, config.DefaultConfig(), ui)

	stats := r.Run(context.Background(), []host.Source{
		host.LiteralSource{SQL: "create view v as select 1;"},
	}, Options{Kind: naming.KindRepeatable, Dir: dir, Description: "demo", AlsoVersioned: true})

	assert.Equal(t, RunStats{Total: 1, Written: 1}, stats)
	require.Len(t, ui.Successes, 2)
	assert.Equal(t, "R__demo.sql", filepath.Base(ui.Successes[0]))
	assert.Equal(t, "V20240305101530__demo.sql", filepath.Base(ui.Successes[1]))
}

func TestRun_AlsoVersionedRefusedForMultipleInputs(t *testing.T) {
	ui := &host.MockUI{}
	r := newRunner(t, config.DefaultConfig(), ui)

	stats := r.Run(context.Background(), []host.Source{
		host.LiteralSource{SQL: "a"},
		host.LiteralSource{SQL: "b"},
	}, Options{Kind: naming.KindRepeatable, Dir: t.TempDir(), Description: "x", AlsoVersioned: true})

	assert.Equal(t, 2, stats.Failed)
	require.Len(t, ui.Errors, 1)
	assert.ErrorIs(t, ui.Errors[0], ErrMultiCombined)
}

func TestRun_VersionedCollisionSecondPrecision(t *testing.T) {
	dir := t.TempDir()
	ui := &host.MockUI{}
	r := newRunner(t, config.DefaultConfig(), ui)
	opts := Options{Kind: naming.KindVersioned, Dir: dir, Description: "same"}

	stats := r.Run(context.Background(), []host.Source{host.LiteralSource{SQL: "a"}}, opts)
	require.Equal(t, 1, stats.Written)

	// Same frozen clock, same token: must surface as a collision.
	stats = r.Run(context.Background(), []host.Source{host.LiteralSource{SQL: "b"}}, opts)
	assert.Equal(t, 1, stats.Failed)
	require.Len(t, ui.Errors, 1)
	assert.ErrorIs(t, ui.Errors[0], writer.ErrCollision)
}

func TestRun_VersionedCollisionMilliRetries(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Precision = naming.PrecisionMilli

	ui := &host.MockUI{}
	r := newRunner(t, cfg, ui)
	tick := 0
	r.Now = func() time.Time {
		t := march5.Add(time.Duration(tick) * time.Millisecond)
		tick++
		return t
	}
	opts := Options{Kind: naming.KindVersioned, Dir: dir, Description: "same"}

	// Pre-create the file the first computed token would claim.
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "V20240305101530000__same.sql"), []byte("x"), 0o644))

	stats := r.Run(context.Background(), []host.Source{host.LiteralSource{SQL: "y"}}, opts)
	assert.Equal(t, RunStats{Total: 1, Written: 1}, stats)
	require.Len(t, ui.Successes, 1)
	assert.Equal(t, "V20240305101530001__same.sql", filepath.Base(ui.Successes[0]))
}

func TestRun_ContextCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := &host.MockUI{}
	r := newRunner(t, config.DefaultConfig(), ui)

	stats := r.Run(ctx, []host.Source{
		host.LiteralSource{SQL: "a"},
		host.LiteralSource{SQL: "b"},
	}, Options{Kind: naming.KindRepeatable, Dir: t.TempDir(), Description: "x"})

	assert.Equal(t, 2, stats.Cancelled)
	assert.Zero(t, stats.Written)
}
