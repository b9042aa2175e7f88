package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fluxo-lang/fluxo/internal/ast"
	"github.com/fluxo-lang/fluxo/internal/config"
	"github.com/fluxo-lang/fluxo/internal/ide"
	"github.com/fluxo-lang/fluxo/internal/parser"
	"github.com/fluxo-lang/fluxo/internal/typesystem"
)

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Open the interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runShell()
		},
	}
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show EXP",
		Short: "Print the beta-normal form of an expression",
		Long: `Print the beta-normal form of an expression.

The expression is judged against an empty context. Escape sequences are
accepted in place of the calculus glyphs: \l for λ, \p for Π, \u for □.`,
		Example: `  fluxo show '(\lx : t . x) y'
  fluxo show 'λx : * . x'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := parseArgs(args)
			if err != nil {
				return err
			}
			res, err := typesystem.ReduceWithin(exp, typesystem.NewCtx(), maxSteps())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newTypeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "type EXP",
		Short: "Print the derived type of an expression",
		Long: `Print the derived type of an expression.

The expression is judged against an empty context, so every variable it
mentions must be bound by a binder inside the expression itself.`,
		Example: `  fluxo type '*'
  fluxo type 'λx : * . x'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := parseArgs(args)
			if err != nil {
				return err
			}
			typ, err := typesystem.CalculateType(exp, typesystem.NewCtx())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), typ)
			return nil
		},
	}
}

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter fluxo.yaml with the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := "fluxo.yaml"
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", config.AppName, Version, GitCommit)
			fmt.Fprintln(cmd.OutOrStdout(), config.Description)
		},
	}
}

func parseArgs(args []string) (ast.Exp, error) {
	return parser.Parse(ide.ExpandEscapes(strings.Join(args, " ")))
}

func maxSteps() int {
	if cfg != nil && cfg.Reduce.MaxSteps > 0 {
		return cfg.Reduce.MaxSteps
	}
	return typesystem.DefaultMaxSteps
}
