// Package cli provides the command-line interface for fluxo.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fluxo-lang/fluxo/internal/config"
	"github.com/fluxo-lang/fluxo/internal/ide"
)

// Version information (set at build time).
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
)

var (
	cfgFile     string
	noColor     bool
	interactive bool
	cfg         *config.Config
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     config.AppName,
		Short:   config.AppName + " - " + config.Description,
		Long: config.AppName + ` is ` + config.Description + `: a kernel for a
Calculus-of-Constructions style core with an interactive shell for reducing
expressions and deriving their types.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			initLogger(cfg)
			if cfg.Verbose {
				if used := config.FileUsed(); used != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", used)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interactive {
				return runShell()
			}
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}} (%s)
`, GitCommit))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./fluxo.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose (debug) logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the interactive shell")

	rootCmd.AddCommand(newReplCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newTypeCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

var verboseFlag bool

// Execute runs the root command, printing failures with the shell's failure
// glyph.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		styles := ide.NewStyles(colorEnabled())
		fmt.Fprint(os.Stderr, styles.Prefix(ide.StatusFailure, err.Error()))
		return err
	}
	return nil
}

func colorEnabled() bool {
	if noColor {
		return false
	}
	mode := config.DefaultColor
	if cfg != nil {
		mode = cfg.Color
	}
	return ide.ColorEnabled(mode)
}

func initLogger(cfg *config.Config) {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func runShell() error {
	session := ide.NewSession(cfg, ide.NewStyles(colorEnabled()), slog.Default(), Version)
	return session.Run()
}
