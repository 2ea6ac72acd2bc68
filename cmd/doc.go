// Copyright © 2026 The chill-lsp authors

package cmd

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/Zaneham/Chill-lsp/analysis"
)

var docListWords bool

// docCmd represents the doc command
var docCmd = &cobra.Command{
	Use:   "doc [flags] WORD",
	Short: "Show documentation for CHILL keywords and predefined names",
	Long: `Show built-in documentation for CHILL reserved words and predefined
names (Z.200 Appendix III plus implementation extensions).

Examples:
  chill-lsp doc MODULE             Show docs for the MODULE keyword
  chill-lsp doc newmode            Lookups are case-insensitive
  chill-lsp doc ABS                Show docs for a predefined name
  chill-lsp doc -l                 List every reserved word and
                                   predefined name`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if docListWords {
			fmt.Fprintln(out, "Reserved words:")
			fmt.Fprintln(out, indent.String(wordwrap.String(strings.Join(analysis.ReservedWords(), " "), 72), 2))
			fmt.Fprintln(out, "Predefined names:")
			fmt.Fprintln(out, indent.String(wordwrap.String(strings.Join(analysis.PredefinedNames(), " "), 72), 2))
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("doc requires a WORD argument (or -l)")
		}

		// Keyword and predefined docs are static, so an empty model serves.
		md := analysis.Hover(analysis.NewModel(), args[0])
		if md == "" {
			return fmt.Errorf("no documentation for %q", args[0])
		}
		fmt.Fprintln(out, indent.String(wordwrap.String(md, 72), 2))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(docCmd)

	docCmd.Flags().BoolVarP(&docListWords, "list", "l", false, "list all documented words")
}
