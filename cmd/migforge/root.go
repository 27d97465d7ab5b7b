package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/migforge/internal/config"
	"github.com/backmassage/migforge/internal/logging"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

// errExit signals a failure that was already reported to the user; main
// exits non-zero without printing it again.
var errExit = errors.New("exit status 1")

// Shared state initialized by the root PersistentPreRunE and used by every
// subcommand.
var (
	cfg config.Config
	log *logging.Logger
)

// Root-level flag values, applied onto cfg after the config file overlay so
// flags always win.
var (
	flagConfig         string
	flagColor          string
	flagLogFile        string
	flagVerbose        bool
	flagNonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "migforge",
	Short: "Create Flyway-style migration files from ad-hoc SQL",
	Long: `migforge turns SQL you just wrote into migration script files the
schema-migration tool will accept: versioned migrations named
V<timestamp>__<description>.sql and repeatable migrations named
R__<description>.sql. Files are written atomically and existing
migrations are never silently overwritten.`,
	Version:       fmt.Sprintf("%s (%s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.DefaultConfig()
		if err := config.Load(&cfg, flagConfig); err != nil {
			return err
		}
		applyRootFlags(cmd)

		if err := cfg.Validate(); err != nil {
			return err
		}

		var err error
		log, err = logging.NewLogger(&cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Close()
		}
	},
}

// applyRootFlags overlays explicitly set root flags onto cfg.
func applyRootFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.ColorMode = config.ColorMode(flagColor)
	}
	if flags.Changed("log") {
		cfg.LogFile = flagLogFile
	}
	if flags.Changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	if flags.Changed("non-interactive") {
		cfg.NonInteractive = flagNonInteractive
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default: ./migforge.yaml, then the user config dir)")
	pf.StringVar(&flagColor, "color", string(config.ColorAuto), "Color output: auto | always | never")
	pf.StringVar(&flagLogFile, "log", "", "Append logs to file")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")
	pf.BoolVar(&flagNonInteractive, "non-interactive", false, "Fail instead of prompting (for scripts and CI)")
}
