package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/backmassage/migforge/internal/export"
)

var flagWikiCopy bool

var wikitableCmd = &cobra.Command{
	Use:   "wikitable [file]",
	Short: "Convert CSV query results to wiki table markup",
	Long: `Reads CSV from the given file or stdin and writes wiki table markup:
the first record becomes the ||header|| row, the rest become |data|
rows. Useful for pasting query results into a wiki page.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		table, err := export.FromCSV(in)
		if err != nil {
			return err
		}
		markup := table.Wiki()

		fmt.Fprint(os.Stdout, markup)
		if flagWikiCopy {
			if err := clipboard.WriteAll(markup); err != nil {
				log.Warn("Could not copy markup to clipboard: %v", err)
			}
		}
		return nil
	},
}

func init() {
	wikitableCmd.Flags().BoolVar(&flagWikiCopy, "copy", false, "Also copy the markup to the clipboard")
	rootCmd.AddCommand(wikitableCmd)
}
