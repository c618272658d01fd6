package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wbumiller/gmqcc/pkg/ast"
	"github.com/wbumiller/gmqcc/internal/program"
)

var validateLimits string

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateLimits, "limits", "default", "Limits preset to use (default, strict)")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <program.json>",
		Short: "Build a program description and check it against construction limits",
		Long: `The validate command builds a program description into an AST and
checks every function signature against the selected Limits preset,
without lowering anything to IR.

Limits presets:
  default - generous bounds for ordinary programs
  strict  - conservative bounds for untrusted input

Example:
  qccgen validate program.json
  qccgen validate program.json --limits strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runValidate(path string) error {
	desc, err := readDescription(path)
	if err != nil {
		return err
	}

	prog, err := program.Build(path, desc)
	if err != nil {
		printError("%v\n", err)
		return err
	}

	var limits ast.Limits
	switch validateLimits {
	case "default":
		limits = ast.DefaultLimits()
	case "strict":
		limits = ast.StrictLimits()
	default:
		return fmt.Errorf("unknown limits preset: %s (must be default or strict)", validateLimits)
	}

	var failed []string
	for _, fn := range prog.Functions {
		if err := limits.ValidateFunction(fn); err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", fn.Name(), err))
		}
	}

	if len(failed) > 0 {
		for _, msg := range failed {
			printInfo("  x %s\n", msg)
		}
		return fmt.Errorf("%d function(s) failed validation", len(failed))
	}

	printInfo("all %d function(s) satisfy %s limits\n", len(prog.Functions), validateLimits)
	return nil
}
