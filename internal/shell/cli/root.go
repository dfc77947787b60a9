// Package cli implements sloganctl, the command-line front end of the slogan
// generator and the export renderers.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// App carries the process dependencies of the commands.
type App struct {
	Version string

	Stdout io.Writer
	Stderr io.Writer

	// Prompter asks for values the flags left out. Interactive decides
	// whether it may be used.
	Prompter    Prompter
	Interactive func() bool

	logger *slog.Logger
}

// DefaultApp wires the commands to the real terminal.
func DefaultApp(version string) *App {
	return &App{
		Version:     version,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Prompter:    NewSurveyPrompter(),
		Interactive: StdinIsTerminal,
	}
}

// Execute runs sloganctl with the process arguments.
func Execute(ctx context.Context, app *App) error {
	return NewRoot(app).ExecuteContext(ctx)
}

// NewRoot builds the command tree.
func NewRoot(app *App) *cobra.Command {
	if app.Stdout == nil {
		app.Stdout = io.Discard
	}
	if app.Stderr == nil {
		app.Stderr = io.Discard
	}
	if app.Interactive == nil {
		app.Interactive = func() bool { return false }
	}

	var verbose bool
	root := &cobra.Command{
		Use:           "sloganctl",
		Short:         "Generate and export company slogans",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.logger = newLogger(app.Stderr, verbose)
		},
	}
	root.SetOut(app.Stdout)
	root.SetErr(app.Stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(
		generateCmd(app),
		exportCmd(app),
		versionCmd(app),
	)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (a *App) log() *slog.Logger {
	if a.logger == nil {
		a.logger = newLogger(a.Stderr, false)
	}
	return a.logger
}

func versionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "sloganctl %s\n", app.Version)
			return err
		},
	}
}
