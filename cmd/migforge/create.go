package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/migforge/internal/config"
	"github.com/backmassage/migforge/internal/host"
	"github.com/backmassage/migforge/internal/naming"
	"github.com/backmassage/migforge/internal/pipeline"
)

// Flags shared by the versioned and repeatable commands.
var (
	flagName        string
	flagDir         string
	flagSQL         string
	flagCopy        bool
	flagPrecision   string
	flagOnCollision string

	// repeatable only
	flagAlsoVersioned bool
)

var versionedCmd = &cobra.Command{
	Use:   "versioned [file...]",
	Short: "Create a versioned migration (V<timestamp>__<description>.sql)",
	Long: `Creates versioned migration files from the given SQL files, from --sql,
or from stdin. Each file gets a timestamp-derived version token; the
description comes from --name, the input filename, or a prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, args, naming.KindVersioned)
	},
}

var repeatableCmd = &cobra.Command{
	Use:   "repeatable [file...]",
	Short: "Create a repeatable migration (R__<description>.sql)",
	Long: `Creates repeatable migration files from the given SQL files, from --sql,
or from stdin. Repeatable migrations carry no version token; creating
one that already exists follows the configured overwrite policy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, args, naming.KindRepeatable)
	},
}

func runCreate(cmd *cobra.Command, args []string, kind naming.Kind) error {
	applyCreateFlags(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	sources := gatherSources(args)

	ui := &host.TerminalUI{
		Log:            log,
		DefaultDir:     cfg.TargetDir,
		NonInteractive: cfg.NonInteractive,
	}
	runner := &pipeline.Runner{Cfg: &cfg, Log: log, UI: ui}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats := runner.Run(ctx, sources, pipeline.Options{
		Kind:          kind,
		Dir:           flagDir,
		Description:   flagName,
		AlsoVersioned: flagAlsoVersioned,
		CopyPath:      flagCopy || cfg.CopyPath,
	})
	if !stats.OK() {
		return errExit
	}
	return nil
}

// applyCreateFlags overlays explicitly set create flags onto cfg. Validation
// re-runs afterwards since --precision and --on-collision take raw strings.
func applyCreateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Precision = naming.Precision(flagPrecision)
	}
	if flags.Changed("on-collision") {
		cfg.Overwrite = config.OverwritePolicy(flagOnCollision)
	}
}

// gatherSources decides where the SQL comes from: --sql wins, then file
// arguments, then stdin.
func gatherSources(args []string) []host.Source {
	if flagSQL != "" {
		return []host.Source{host.LiteralSource{SQL: flagSQL}}
	}
	if len(args) > 0 {
		sources := make([]host.Source, 0, len(args))
		for _, path := range args {
			sources = append(sources, host.FileSource{Path: path})
		}
		return sources
	}
	return []host.Source{host.ReaderSource{Reader: os.Stdin}}
}

func addCreateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&flagName, "name", "n", "", "Migration description (otherwise derived from the filename or prompted)")
	f.StringVarP(&flagDir, "dir", "d", "", "Target directory (otherwise configured default or prompted)")
	f.StringVar(&flagSQL, "sql", "", "SQL text to write instead of reading files or stdin")
	f.BoolVar(&flagCopy, "copy", false, "Copy the created file path to the clipboard")
	f.StringVar(&flagPrecision, "precision", "", "Version token precision: second | milli")
	f.StringVar(&flagOnCollision, "on-collision", "", "Repeatable collision policy: error | confirm | force")
}

func init() {
	addCreateFlags(versionedCmd)
	addCreateFlags(repeatableCmd)
	repeatableCmd.Flags().BoolVar(&flagAlsoVersioned, "also-versioned", false,
		"Additionally write a versioned copy of the same SQL")

	rootCmd.AddCommand(versionedCmd)
	rootCmd.AddCommand(repeatableCmd)
}
