package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/migforge/internal/check"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [dir]",
	Short: "Check a migrations directory for naming problems",
	Long: `Scans the directory and reports duplicate version tokens and filenames
that almost match the migration naming convention. Read-only; nothing
is modified.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveListDir(args)
		if err != nil {
			return err
		}
		if !check.RunDoctor(dir, log) {
			return errExit
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
