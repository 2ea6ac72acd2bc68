// Copyright © 2026 The chill-lsp authors

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Zaneham/Chill-lsp/explore"
)

// exploreCmd represents the explore command
var exploreCmd = &cobra.Command{
	Use:   "explore FILE",
	Short: "Inspect a CHILL source file interactively",
	Long: `Open an interactive console over a CHILL source file. The console
answers the same queries the language server does: symbol outline, hover
documentation, completion candidates, and reference search.

Console commands: symbols, hover WORD, complete PREFIX, refs WORD,
reload, help, quit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return explore.Run(args[0])
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
