// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
)

type Id int

const (
	InterpreterNotFoundId Id = iota + 1
	LocationOccupiedId
	CreationFailedId
	ConfigLoadFailedId
	UnknownBackendId
	InvalidUsageId
	ProjectLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // pdm documentation pages for this issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
		for _, link := range i.extLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# No Python interpreter found!

pdm could not find an interpreter matching your request.

## How interpreters are selected
1. The explicit argument, e.g. ` + "`pdm venv create 3.12`" + `
2. The interpreter pinned for the project in ` + "`.pdm-python`" + `
3. The first interpreter on PATH satisfying ` + "`requires-python`" + ` in pyproject.toml

## Things you can try:
- Pass a path to an interpreter:
~~~
$ pdm venv create /usr/bin/python3.12
~~~

- Check which interpreters are on your PATH:
~~~
$ which -a python3 python
~~~

- Relax ` + "`requires-python`" + ` in pyproject.toml`,
		docLinks: []HttpLink{"https://pdm-project.org/latest/usage/project/#choose-a-python-interpreter"},
	}

	locationOccupiedIssue = &Issue{
		id: LocationOccupiedId,
		mdMsg: `
# The environment location is not empty!

pdm refuses to write into a non-empty directory unless asked to.

## Things you can try:
- Recreate the environment, deleting what is there:
~~~
$ pdm venv create --force
~~~

- Pick another name for a centrally stored environment:
~~~
$ pdm venv create --name other
~~~`,
	}

	creationFailedIssue = &Issue{
		id: CreationFailedId,
		mdMsg: `
# Virtual environment creation failed!

The backend tool exited with an error. Its output is shown above.

## Common causes:
- The backend tool is not installed (virtualenv, uv, conda)
- The interpreter is broken or lacks the venv module
- The disk is full or the location is not writable

## Things you can try:
- Run with verbose mode to see the command and its output:
~~~
$ pdm -v venv create
~~~

- Switch backend:
~~~
$ pdm venv create --with venv
~~~`,
		extLinks: []HttpLink{"https://virtualenv.pypa.io/", "https://docs.astral.sh/uv/"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the pdm configuration file.

## Configuration file locations:
- Linux: ~/.config/pdm/config.cue
- macOS: ~/Library/Application Support/pdm/config.cue
- Windows: %APPDATA%\pdm\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ pdm config init
~~~

- Check the configuration syntax and unset stray PDM_* variables

## Example configuration:
~~~cue
venv: {
  backend: "uv"
  in_project: true
  prompt: "{project_name}-{python_version}"
}
~~~`,
	}

	unknownBackendIssue = &Issue{
		id: UnknownBackendId,
		mdMsg: `
# Unknown venv backend!

## Supported backends:
- **virtualenv**: the virtualenv package, run by ` + "`venv.launcher`" + `
- **venv**: the interpreter's built-in venv module
- **uv**: Astral's uv
- **conda**: conda, mamba or micromamba

## Things you can try:
~~~
$ pdm venv backends
~~~`,
	}

	invalidUsageIssue = &Issue{
		id: InvalidUsageId,
		mdMsg: `
# Invalid arguments!

## Things you can try:
- ` + "`--name`" + ` and ` + "`--venv-name`" + ` cannot be combined
- Names must not contain path separators
- See the command help:
~~~
$ pdm venv create --help
~~~`,
	}

	projectLoadFailedIssue = &Issue{
		id: ProjectLoadFailedId,
		mdMsg: `
# Failed to read the project!

pdm reads ` + "`[project]`" + ` from pyproject.toml in the project root.

## Things you can try:
- Point at the project explicitly:
~~~
$ pdm -p path/to/project venv create
~~~

- Validate the TOML syntax of pyproject.toml`,
		extLinks: []HttpLink{"https://packaging.python.org/en/latest/specifications/pyproject-toml/"},
	}

	issues = map[Id]*Issue{
		interpreterNotFoundIssue.Id(): interpreterNotFoundIssue,
		locationOccupiedIssue.Id():    locationOccupiedIssue,
		creationFailedIssue.Id():      creationFailedIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		unknownBackendIssue.Id():      unknownBackendIssue,
		invalidUsageIssue.Id():        invalidUsageIssue,
		projectLoadFailedIssue.Id():   projectLoadFailedIssue,
	}
)

func Get(id Id) *Issue {
	return issues[id]
}
