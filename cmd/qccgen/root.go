package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wbumiller/gmqcc/internal/logging"
)

var (
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "qccgen",
	Short: "Lower a QuakeC-family program description to basic-block IR",
	Long: `qccgen reads a small JSON program description, builds it into an
AST, lowers the AST to basic-block IR, and prints the result. It is a
driver for the AST/lowering pipeline, not a language front-end: it does
not lex or parse QuakeC source.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	// Flags are parsed inside Execute, so logging is configured from them
	// just before the selected subcommand runs.
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		logging.Init(logging.Options{Verbose: verbose, JSON: false, Quiet: quiet})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
