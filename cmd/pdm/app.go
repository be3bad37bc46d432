// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/monchin/pdm/internal/config"
	"github.com/monchin/pdm/internal/issue"
	"github.com/monchin/pdm/internal/project"
	"github.com/monchin/pdm/internal/python"
	"github.com/monchin/pdm/internal/venv"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: all Cobra command handlers receive an App reference and delegate
	// business logic through its service interfaces.
	App struct {
		Config ConfigProvider
		Venv   VenvService
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Venv   VenvService
		Stdout io.Writer
		Stderr io.Writer
		// ExecCommand replaces process spawning for interpreter probes and
		// backend tools. Nil means real processes.
		ExecCommand venv.ExecCommandFunc
	}

	// CreateRequest captures one `venv create` invocation as an immutable value.
	CreateRequest struct {
		// ProjectRoot is the project directory; "" means the working directory.
		ProjectRoot string
		// ConfigPath is the explicit --config flag value.
		ConfigPath string
		// Backend overrides venv.backend when non-empty.
		Backend config.BackendName
		// Python is the interpreter spec, "" to let the project decide.
		Python string
		// Args are forwarded to the backend tool.
		Args []string
		// Name is appended to the project's environment prefix.
		Name string
		// VenvName is used verbatim as the environment directory name.
		VenvName string
		// Force empties an occupied location.
		Force bool
		// InProject overrides venv.in_project when non-nil.
		InProject *bool
		// WithPip overrides venv.with_pip when non-nil.
		WithPip *bool
		// Prompt overrides venv.prompt when non-nil.
		Prompt *string
		// Verbose streams tool output and logs executed commands.
		Verbose bool
	}

	// VenvService creates virtual environments.
	VenvService interface {
		Create(ctx context.Context, req CreateRequest) (string, error)
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		LoadWithSource(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}

	// appVenvService implements VenvService on top of internal/venv.
	appVenvService struct {
		config      ConfigProvider
		stdout      io.Writer
		stderr      io.Writer
		execCommand venv.ExecCommandFunc
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Venv == nil {
		deps.Venv = &appVenvService{
			config:      deps.Config,
			stdout:      deps.Stdout,
			stderr:      deps.Stderr,
			execCommand: deps.ExecCommand,
		}
	}

	return &App{
		Config: deps.Config,
		Venv:   deps.Venv,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}, nil
}

// Create loads configuration and the project, builds the requested backend
// and creates the environment. Errors are returned as *ServiceError.
func (s *appVenvService) Create(ctx context.Context, req CreateRequest) (string, error) {
	cfg, err := s.config.Load(ctx, config.LoadOptions{ConfigFilePath: req.ConfigPath})
	if err != nil {
		return "", newServiceError(issue.WrapWithContext(err, "load configuration", req.ConfigPath), issue.ConfigLoadFailedId, "")
	}

	root := req.ProjectRoot
	if root == "" {
		root = "."
	}
	var projectOpts []project.Option
	if s.execCommand != nil {
		projectOpts = append(projectOpts, project.WithProber(python.NewProber(python.WithProbeExecCommand(python.ExecCommandFunc(s.execCommand)))))
	}
	proj, err := project.Load(root, cfg, projectOpts...)
	if err != nil {
		wrapped := issue.NewErrorContext().
			WithOperation("load project").
			WithResource(root).
			WithSuggestion("Pass the project directory with --project").
			Wrap(err).
			BuildError()
		return "", newServiceError(wrapped, issue.ProjectLoadFailedId, "")
	}

	backendName := req.Backend
	if backendName == "" {
		backendName = cfg.Venv.Backend
	}

	runnerOpts := []venv.RunnerOption{
		venv.WithVerbose(req.Verbose || cfg.UI.Verbose),
		venv.WithOutput(s.stdout, s.stderr),
	}
	if s.execCommand != nil {
		runnerOpts = append(runnerOpts, venv.WithExecCommand(s.execCommand))
	}
	backend, err := venv.New(backendName, proj, venv.Options{
		Spec:   req.Python,
		Config: cfg,
		Runner: venv.NewRunner(runnerOpts...),
	})
	if err != nil {
		return "", classifyVenvError(err)
	}

	opts := venv.CreateOptions{
		Name:      req.Name,
		VenvName:  req.VenvName,
		Args:      req.Args,
		Force:     req.Force,
		InProject: cfg.Venv.InProject && req.Name == "" && req.VenvName == "",
		WithPip:   cfg.Venv.WithPip,
		Prompt:    cfg.Venv.Prompt,
	}
	if req.InProject != nil {
		opts.InProject = *req.InProject
	}
	if req.WithPip != nil {
		opts.WithPip = *req.WithPip
	}
	if req.Prompt != nil {
		opts.Prompt = *req.Prompt
	}

	location, err := venv.Create(ctx, backend, opts)
	if err != nil {
		return "", classifyVenvError(err)
	}
	return location, nil
}
