package app

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mnimmny/starlarky/internal/lexer"
)

// Domain: CLI Application Structure
// This file contains the main CLI application setup with Cobra
// commands and flags.

// App represents the CLI application.
type App struct {
	version string
	commit  string
	date    string

	rootCmd *cobra.Command

	configFile string
	jsonOutput bool
	errorsOnly bool
}

// NewApp creates a new CLI application.
func NewApp(version, commit, date string) *App {
	a := &App{version: version, commit: commit, date: date}

	a.rootCmd = &cobra.Command{
		Use:           "starlex",
		Short:         "starlex tokenizes Starlark-family source files",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	a.rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "optional YAML settings file")

	a.setupCommands()
	return a
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

func (a *App) setupCommands() {
	a.rootCmd.AddCommand(a.createTokenizeCommand())
	a.rootCmd.AddCommand(a.createVersionCommand())
}

func (a *App) createTokenizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Scan a file and print its token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(a.configFile)
			if err != nil {
				return err
			}
			restrict := cfg.EffectiveRestrictStringEscapes(lexer.DefaultOptions().RestrictStringEscapes)
			return RunTokenize(afero.NewOsFs(), cmd.OutOrStdout(), args[0], restrict, a.jsonOutput, a.errorsOnly)
		},
	}
	cmd.Flags().BoolVar(&a.jsonOutput, "json", false, "emit one JSON object per token")
	cmd.Flags().BoolVar(&a.errorsOnly, "errors-only", false, "print only the accumulated error list")
	return cmd
}

func (a *App) createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ShowVersion(a.version, a.commit, a.date)
		},
	}
}

// Run executes the root command and returns the process exit code.
func Run(version, commit, date string) int {
	app := NewApp(version, commit, date)
	if err := app.Execute(); err != nil {
		if err == errExitNonZero {
			return 1
		}
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	return 0
}
