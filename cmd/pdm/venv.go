// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/monchin/pdm/internal/config"
	"github.com/monchin/pdm/internal/issue"
	"github.com/monchin/pdm/internal/venv"
	"github.com/monchin/pdm/pkg/types"

	"github.com/spf13/cobra"
)

// newVenvCommand creates the `pdm venv` command tree.
func newVenvCommand(app *App, flags *rootFlagValues) *cobra.Command {
	venvCmd := &cobra.Command{
		Use:   "venv",
		Short: "Manage the project's virtual environments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	venvCmd.AddCommand(newVenvCreateCommand(app, flags))
	venvCmd.AddCommand(newVenvBackendsCommand(app, flags))

	return venvCmd
}

func newVenvCreateCommand(app *App, flags *rootFlagValues) *cobra.Command {
	var (
		backend   string
		name      string
		venvName  string
		force     bool
		withPip   bool
		prompt    string
		inProject bool
	)

	createCmd := &cobra.Command{
		Use:   "create [PYTHON] [-- ARGS...]",
		Short: "Create a virtual environment",
		Long: `Create a virtual environment for the project.

PYTHON selects the interpreter: a version ("3.11"), an executable name
or a path. Without it, the pinned interpreter is used, or the newest one
matching the project's requires-python.

Arguments after "--" are passed to the backend tool unchanged.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if positional, _ := splitAtDash(cmd, args); len(positional) > 1 {
				return &ExitError{Code: types.ExitUsage, Err: fmt.Errorf("accepts at most one PYTHON argument before \"--\", received %d", len(positional))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req := CreateRequest{
				ProjectRoot: flags.projectDir,
				ConfigPath:  flags.configPath,
				Backend:     config.BackendName(backend),
				Name:        name,
				VenvName:    venvName,
				Force:       force,
				Verbose:     flags.verbose,
			}
			positional, extra := splitAtDash(cmd, args)
			if len(positional) == 1 {
				req.Python = positional[0]
			}
			req.Args = extra
			if cmd.Flags().Changed("in-project") {
				req.InProject = &inProject
			}
			if cmd.Flags().Changed("with-pip") {
				req.WithPip = &withPip
			}
			if cmd.Flags().Changed("prompt") {
				req.Prompt = &prompt
			}

			location, err := app.Venv.Create(ctx, req)
			if err != nil {
				return app.fail(ctx, cmd, flags, err)
			}

			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Virtualenv"), CmdStyle.Render(location)+SuccessStyle.Render(" is created successfully"))
			return nil
		},
	}

	createCmd.Flags().StringVarP(&backend, "with", "w", "", "backend used to create the environment (virtualenv, venv, conda, uv)")
	createCmd.Flags().StringVarP(&name, "name", "n", "", "environment name, appended to the project prefix")
	createCmd.Flags().StringVar(&venvName, "venv-name", "", "environment directory name, used as is")
	createCmd.Flags().BoolVarP(&force, "force", "f", false, "recreate the environment if the location is occupied")
	createCmd.Flags().BoolVar(&withPip, "with-pip", false, "install pip into the environment")
	createCmd.Flags().StringVar(&prompt, "prompt", "", "prompt template; {project_name} and {python_version} are substituted")
	createCmd.Flags().BoolVar(&inProject, "in-project", false, "create the environment at <project>/.venv")

	return createCmd
}

// splitAtDash separates positional arguments from those after "--".
func splitAtDash(cmd *cobra.Command, args []string) (positional, extra []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}
	return args[:dash], args[dash:]
}

func newVenvBackendsCommand(app *App, flags *rootFlagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List supported virtual environment backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
			if err != nil {
				return app.fail(ctx, cmd, flags, newServiceError(err, issue.ConfigLoadFailedId, ""))
			}

			fmt.Fprintln(app.stdout, TitleStyle.Render("Backends"))
			for _, name := range venv.Names() {
				backend, err := venv.New(name, nil, venv.Options{Config: cfg})
				if err != nil {
					return app.fail(ctx, cmd, flags, err)
				}
				marker := "  "
				if name == cfg.Venv.Backend {
					marker = SuccessStyle.Render("* ")
				}
				fmt.Fprintf(app.stdout, "%s%s %s %s  %s %s\n",
					marker,
					CmdStyle.Render(fmt.Sprintf("%-10s", name)),
					SubtitleStyle.Render("with pip:"),
					formatArgs(backend.PipArgs(true)),
					SubtitleStyle.Render("without pip:"),
					formatArgs(backend.PipArgs(false)),
				)
			}
			return nil
		},
	}
}

func formatArgs(args []string) string {
	if len(args) == 0 {
		return "(none)"
	}
	return strings.Join(args, " ")
}
