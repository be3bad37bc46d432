// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/monchin/pdm/internal/config"
	"github.com/monchin/pdm/internal/issue"
	"github.com/monchin/pdm/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlagValues holds the persistent flags shared by every subcommand.
type rootFlagValues struct {
	projectDir string
	configPath string
	verbose    bool
}

// NewRootCommand builds the command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlagValues{}

	rootCmd := &cobra.Command{
		Use:   "pdm",
		Short: "Create Python virtual environments for a project",
		Long: TitleStyle.Render("pdm") + SubtitleStyle.Render(" - Python virtual environments for your project") + `

pdm creates virtual environments for the project in the current directory
(or the one given with --project) using one of several tools:
virtualenv, the built-in venv module, conda or uv.

` + SubtitleStyle.Render("Examples:") + `
  pdm venv create                 Create .venv with the default backend
  pdm venv create 3.11 -n test    Create a named environment for Python 3.11
  pdm venv create -w uv -- --seed Pass extra arguments to uv
  pdm venv backends               List supported backends
  pdm config show                 Show current configuration`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.projectDir, "project", "p", "", "project root directory (default is the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "stream tool output and log executed commands")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $HOME/.config/pdm/config.cue)")

	rootCmd.AddCommand(newVenvCommand(app, flags))
	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with the code derived from the returned error.
// This is called by main.main().
func Execute() {
	os.Exit(int(run(context.Background(), os.Args[1:])))
}

// run executes the command tree with args and returns the exit code.
func run(ctx context.Context, args []string) types.ExitCode {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		return types.ExitFailure
	}

	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(args)

	// fang.WithVersion is required because fang overrides rootCmd.Version.
	if err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		return exitCodeFor(err)
	}
	return types.ExitSuccess
}

// fail renders err for the user and converts it to an ExitError, silencing
// Cobra's own error printing.
func (a *App) fail(ctx context.Context, cmd *cobra.Command, flags *rootFlagValues, err error) error {
	style := "dark"
	if cfg, loadErr := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath}); loadErr == nil {
		style = glamourStyle(cfg.UI.ColorScheme)
	}

	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(a.stderr, svcErr, style)
	}
	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, flags.verbose))

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: exitCodeFor(err), Err: err}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
