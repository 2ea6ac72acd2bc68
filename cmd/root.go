// Copyright © 2026 The chill-lsp authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chill-lsp",
	Short: "IDE tooling for the CHILL language",
	Long: `chill-lsp provides IDE tooling for CHILL (ITU-T Z.200), the CCITT
High Level Language used in telecommunication switching systems.

It scans CHILL source for declarations (DCL), mode definitions (NEWMODE,
SYNMODE), synonyms (SYN), procedures, processes, modules, and signals, and
answers editor queries against the resulting symbol table.

Getting started:
  chill-lsp lsp                    Start the language server on stdio
  chill-lsp lsp --port 7998        Start the language server on TCP
  chill-lsp symbols file.chl       Print a file's symbol outline
  chill-lsp doc MODULE             Show documentation for a keyword
  chill-lsp explore file.chl       Inspect a file interactively

The scanner is line-oriented and best-effort: it never rejects input, so
every query works even on incomplete or malformed source.

Editor configuration (VS Code):
  Install a generic LSP client extension and configure it to run
  "chill-lsp lsp --stdio" for .chl files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chill-lsp.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".chill-lsp" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".chill-lsp")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
