package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/migforge/internal/config"
	"github.com/backmassage/migforge/internal/display"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Long: `Writes ` + config.FileName + ` with the default settings to the working
directory. Refuses to overwrite an existing file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		display.PrintBanner()
		if err := config.WriteDefault(config.FileName); err != nil {
			return err
		}
		log.Success("Wrote %s", display.Path(config.FileName))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
