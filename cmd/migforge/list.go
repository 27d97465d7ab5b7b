package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/migforge/internal/display"
	"github.com/backmassage/migforge/internal/naming"
	"github.com/backmassage/migforge/internal/scan"
	"github.com/backmassage/migforge/internal/term"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List the migrations in a directory, in apply order",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveListDir(args)
		if err != nil {
			return err
		}

		inv, err := scan.Dir(dir)
		if err != nil {
			return err
		}
		if len(inv.Migrations) == 0 && len(inv.Strays) == 0 {
			log.Info("No files in %s", display.Path(dir))
			return nil
		}

		for _, m := range inv.Migrations {
			marker := "R"
			if m.Kind == naming.KindVersioned {
				marker = m.Token
			}
			fmt.Fprintf(os.Stdout, "%s  %s  %s\n",
				term.Accent.Render(fmt.Sprintf("%-17s", marker)),
				fmt.Sprintf("%9s", display.FormatBytes(m.Size)),
				m.Name)
		}
		if len(inv.Strays) > 0 {
			fmt.Fprintln(os.Stdout)
			log.Warn("%d file(s) not matching the migration naming convention:", len(inv.Strays))
			for _, s := range inv.Strays {
				fmt.Fprintf(os.Stdout, "  %s\n", term.Muted.Render(s))
			}
		}
		return nil
	},
}

// resolveListDir picks the directory to inspect: positional argument, then
// the configured default, then the working directory.
func resolveListDir(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.TargetDir != "" {
		return cfg.TargetDir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.New("no directory given and working directory unavailable")
	}
	return dir, nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
