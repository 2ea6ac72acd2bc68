// Copyright © 2026 The chill-lsp authors

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/Zaneham/Chill-lsp/lsp"

	_ "github.com/tliron/commonlog/simple"
)

var (
	lspStdio   bool
	lspPort    int
	lspVerbose int
)

// lspCmd represents the lsp command
var lspCmd = &cobra.Command{
	Use:   "lsp [flags]",
	Short: "Start the CHILL Language Server Protocol server",
	Long: `Start an LSP server for CHILL source files.

The language server provides hover documentation, go-to-definition, find
references, completion, document symbols, and folding ranges.

Transport modes:
  --stdio      Use stdin/stdout for LSP communication (default)
  --port N     Listen for an LSP client on TCP port N

Examples:
  chill-lsp lsp                    Start with stdio transport
  chill-lsp lsp --stdio            Same as above (explicit)
  chill-lsp lsp --port 7998        Start with TCP on port 7998`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		commonlog.Configure(lspVerbose, nil)

		srv := lsp.New()

		if !lspStdio && lspPort > 0 {
			addr := fmt.Sprintf("localhost:%d", lspPort)
			log.Printf("CHILL LSP server listening on %s", addr)
			if err := srv.RunTCP(addr); err != nil {
				fmt.Fprintf(os.Stderr, "lsp server error: %v\n", err)
				os.Exit(1)
			}
		} else {
			if err := srv.RunStdio(); err != nil {
				fmt.Fprintf(os.Stderr, "lsp server error: %v\n", err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(lspCmd)

	lspCmd.Flags().BoolVar(&lspStdio, "stdio", false, "use stdio transport (default)")
	lspCmd.Flags().IntVar(&lspPort, "port", 0, "listen for an LSP client on this TCP port")
	lspCmd.Flags().IntVar(&lspVerbose, "verbose", 0, "log verbosity (0=errors, 1=info, 2=debug)")
}
