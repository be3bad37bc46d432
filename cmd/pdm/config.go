// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/monchin/pdm/internal/config"
	"github.com/monchin/pdm/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `pdm config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App, flags *rootFlagValues) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pdm configuration",
		Long: `Manage pdm configuration.

Configuration is stored in:
  - Linux: ~/.config/pdm/config.cue
  - macOS: ~/Library/Application Support/pdm/config.cue
  - Windows: %APPDATA%\pdm\config.cue

Every key can be overridden with a PDM_ environment variable,
e.g. PDM_VENV_BACKEND=uv.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), cmd, app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := config.CreateDefaultConfig()
			if err != nil {
				return app.fail(cmd.Context(), cmd, flags, err)
			}
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Configuration file:"), CmdStyle.Render(cfgPath))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := flags.configPath
			if cfgPath == "" {
				var err error
				if cfgPath, err = config.ConfigFilePath(); err != nil {
					return app.fail(cmd.Context(), cmd, flags, err)
				}
			}
			fmt.Fprintln(app.stdout, cfgPath)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.configPath})
			if err != nil {
				return app.fail(cmd.Context(), cmd, flags, newServiceError(err, issue.ConfigLoadFailedId, ""))
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, cmd *cobra.Command, app *App, flags *rootFlagValues) error {
	cfg, source, err := app.Config.LoadWithSource(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return app.fail(ctx, cmd, flags, newServiceError(err, issue.ConfigLoadFailedId, ""))
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	out := app.stdout

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if source != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), source)
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s:\n", keyStyle.Render("venv"))
	fmt.Fprintf(out, "  location: %s\n", valueStyle.Render(cfg.Venv.Location))
	fmt.Fprintf(out, "  backend: %s\n", valueStyle.Render(cfg.Venv.Backend.String()))
	fmt.Fprintf(out, "  in_project: %s\n", valueStyle.Render(strconv.FormatBool(cfg.Venv.InProject)))
	fmt.Fprintf(out, "  with_pip: %s\n", valueStyle.Render(strconv.FormatBool(cfg.Venv.WithPip)))
	fmt.Fprintf(out, "  prompt: %s\n", valueStyle.Render(cfg.Venv.Prompt))
	fmt.Fprintf(out, "  launcher: %s\n", valueStyle.Render(cfg.Venv.Launcher.String()))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("python"))
	fmt.Fprintf(out, "  use_python_version: %s\n", valueStyle.Render(strconv.FormatBool(cfg.Python.UsePythonVersion)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("uv.command"), valueStyle.Render(cfg.Uv.Command.String()))
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("conda.command"), valueStyle.Render(cfg.Conda.Command.String()))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(out, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(out, "  verbose: %s\n", valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))

	return nil
}
