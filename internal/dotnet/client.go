package dotnet

import (
	osexec "os/exec"

	"github.com/joaompneves/nx-dotnet/internal/sdk"
	"github.com/joaompneves/nx-dotnet/pkg/exec"
)

// Client drives a loaded .NET SDK. The SDK version is read once from the
// loader and cached for the client's lifetime; the working directory
// defaults to the process cwd and can be overridden per instance.
type Client struct {
	cli     sdk.LoadedCLI
	Workdir string
}

// NewClient wraps a loaded CLI.
func NewClient(cli sdk.LoadedCLI) *Client {
	return &Client{cli: cli}
}

// Version returns the SDK version probed at load time.
func (c *Client) Version() string { return c.cli.Info.Version }

// Command returns the resolved toolchain binary path.
func (c *Client) Command() string { return c.cli.Command }

func (c *Client) run(args []string) error {
	return exec.Run(c.Workdir, c.cli.Command, args)
}

func (c *Client) output(args []string) (string, error) {
	return exec.RunOutput(c.Workdir, c.cli.Command, args)
}

// New creates a project or item from a template.
func (c *Client) New(template string, opts Options, extraParams string) error {
	return c.run(newArgs(template, opts, extraParams))
}

// ListInstalledTemplates returns the raw template listing output. The
// argument grammar depends on the installed SDK version; parsing the output
// belongs to internal/templates.
func (c *Client) ListInstalledTemplates(search string) (string, error) {
	return c.output(listTemplatesArgs(c.cli.Info.Version, search))
}

// Build compiles a project.
func (c *Client) Build(project string, opts Options, extraParams string) error {
	return c.run(buildArgs(project, opts, extraParams))
}

// Run builds and runs a project. With watch enabled the invocation goes
// through `dotnet watch`.
func (c *Client) Run(project string, watch bool, opts Options, extraParams string) error {
	return c.run(runArgs(project, watch, opts, extraParams))
}

// RunBackground spawns the project without waiting for completion and
// returns the live process handle. Failure detection is the caller's
// responsibility; this never inspects the exit status.
func (c *Client) RunBackground(project string, watch bool, opts Options, extraParams string) (*osexec.Cmd, error) {
	return exec.Spawn(c.Workdir, c.cli.Command, runArgs(project, watch, opts, extraParams))
}

// Test runs the project's test suite, optionally under `dotnet watch`.
func (c *Client) Test(project string, watch bool, opts Options, extraParams string) error {
	return c.run(testArgs(project, watch, opts, extraParams))
}

// Publish publishes a project. A non-empty publishProfile is forwarded as
// the PublishProfile MSBuild property.
func (c *Client) Publish(project string, opts Options, publishProfile, extraParams string) error {
	return c.run(publishArgs(project, opts, publishProfile, extraParams))
}

// AddPackageReference adds a NuGet package reference to a project.
func (c *Client) AddPackageReference(project, pkg string, opts Options) error {
	return c.run(addPackageArgs(project, pkg, opts))
}

// AddProjectReference adds a project-to-project reference.
func (c *Client) AddProjectReference(host, target string) error {
	return c.run(addReferenceArgs(host, target))
}

// InstallTool installs a .NET tool; version and source are optional.
func (c *Client) InstallTool(tool, version, source string) error {
	return c.run(installToolArgs(tool, version, source))
}

// RunTool invokes an installed .NET tool with the given arguments.
func (c *Client) RunTool(tool string, args []string) error {
	return c.run(runToolArgs(tool, args))
}

// RestorePackages restores NuGet dependencies for a project, or for the
// current directory when project is empty.
func (c *Client) RestorePackages(project string) error {
	return c.run(restoreArgs(project))
}

// RestoreTools restores the tools declared in the local tool manifest.
func (c *Client) RestoreTools() error {
	return c.run(restoreToolsArgs())
}

// Format runs the code formatter. On SDK 6.0+ with legacy fix flags the
// request fans out into per-category invocations; see format.go.
func (c *Client) Format(project string, opts Options, extraParams string, forceToolUsage bool) error {
	for _, args := range formatInvocations(c.cli.Info.Version, project, opts, extraParams, forceToolUsage) {
		if err := c.run(args); err != nil {
			return err
		}
	}
	return nil
}

// AddProjectToSolution adds a project to a solution file.
func (c *Client) AddProjectToSolution(solution, project string) error {
	return c.run(slnAddArgs(solution, project))
}

// PrintVersion runs `dotnet --version` with inherited stdio.
func (c *Client) PrintVersion() error {
	return c.run([]string{"--version"})
}
