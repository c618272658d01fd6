package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/internal/logging"
	"github.com/wbumiller/gmqcc/internal/lower"
	"github.com/wbumiller/gmqcc/internal/printer"
	"github.com/wbumiller/gmqcc/internal/program"
)

var lowerOutputFormat string

func init() {
	cmd := newLowerCmd()
	cmd.Flags().StringVar(&lowerOutputFormat, "format", "text", "Output format (text, json)")
	rootCmd.AddCommand(cmd)
}

func newLowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lower <program.json>",
		Short: "Lower a program description to IR and print it",
		Long: `The lower command reads a JSON program description, builds it into
an AST, lowers every global, field and function body to basic-block IR,
and prints the resulting module.

Example:
  qccgen lower program.json
  qccgen lower program.json --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLower(args[0])
		},
	}
}

func runLower(path string) error {
	printVerbose("reading program description: %s\n", path)

	desc, err := readDescription(path)
	if err != nil {
		return err
	}

	prog, err := program.Build(path, desc)
	if err != nil {
		printError("%v\n", err)
		return err
	}

	module := ir.NewModule()
	lw := lower.New(module)
	lw.Log = logging.L

	for _, g := range prog.Globals {
		if err := lw.LowerGlobal(g); err != nil {
			printError("%v\n", err)
			return err
		}
	}
	for _, f := range prog.Fields {
		if err := lw.LowerGlobal(f); err != nil {
			printError("%v\n", err)
			return err
		}
	}
	for _, fn := range prog.Functions {
		if err := lw.LowerGlobal(fn.Signature()); err != nil {
			printError("lowering signature %q: %v\n", fn.Name(), err)
			return err
		}
	}
	for _, fn := range prog.Functions {
		if err := lw.LowerFunctionBody(fn); err != nil {
			printError("lowering %q: %v\n", fn.Name(), err)
			return err
		}
	}

	opts := printer.DefaultOptions()
	if lowerOutputFormat == "json" || jsonOut {
		opts.Format = printer.FormatJSON
	}
	p := printer.New(os.Stdout, opts)
	return p.PrintModule(module)
}

func readDescription(path string) (*program.Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	var desc program.Description
	if err := json.NewDecoder(f).Decode(&desc); err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return &desc, nil
}
