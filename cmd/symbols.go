// Copyright © 2026 The chill-lsp authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zaneham/Chill-lsp/analysis"
)

// symbolsCmd represents the symbols command
var symbolsCmd = &cobra.Command{
	Use:   "symbols FILE",
	Short: "Print the symbol outline of a CHILL source file",
	Long: `Scan a CHILL source file and print every declared symbol with its
line number, kind, and a short detail string, sorted by line.

Examples:
  chill-lsp symbols switch.chl
  chill-lsp symbols spec/signals.chl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0]) // #nosec G304 -- user-supplied source path
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, sym := range analysis.Parse(string(data)).AllSymbols() {
			fmt.Fprintf(out, "%4d  %-8s %-20s %s\n", sym.Line, sym.Kind, sym.Name, sym.Detail)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}
