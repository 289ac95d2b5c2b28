package cli

import (
	"github.com/joaompneves/nx-dotnet/internal/cli/commands"
	"github.com/joaompneves/nx-dotnet/internal/config"
)

// Thin adapters binding the registry to the handlers in the commands
// subpackage.

type newCmd struct{ cfg *config.Config }

func (newCmd) Name() string          { return "new" }
func (newCmd) Description() string   { return "Create a project from a template" }
func (c newCmd) Run(a []string) error { return commands.New(c.cfg, a) }

type templatesCmd struct{ cfg *config.Config }

func (templatesCmd) Name() string          { return "templates" }
func (templatesCmd) Description() string   { return "List installed project templates" }
func (c templatesCmd) Run(a []string) error { return commands.Templates(c.cfg, a) }

type buildCmd struct{ cfg *config.Config }

func (buildCmd) Name() string          { return "build" }
func (buildCmd) Description() string   { return "Build a project" }
func (c buildCmd) Run(a []string) error { return commands.Build(c.cfg, a) }

type runCmd struct{ cfg *config.Config }

func (runCmd) Name() string          { return "run" }
func (runCmd) Description() string   { return "Build and run a project" }
func (c runCmd) Run(a []string) error { return commands.Run(c.cfg, a) }

type testCmd struct{ cfg *config.Config }

func (testCmd) Name() string          { return "test" }
func (testCmd) Description() string   { return "Run a project's tests" }
func (c testCmd) Run(a []string) error { return commands.Test(c.cfg, a) }

type publishCmd struct{ cfg *config.Config }

func (publishCmd) Name() string          { return "publish" }
func (publishCmd) Description() string   { return "Publish a project" }
func (c publishCmd) Run(a []string) error { return commands.Publish(c.cfg, a) }

type addCmd struct{ cfg *config.Config }

func (addCmd) Name() string          { return "add" }
func (addCmd) Description() string   { return "Add a package or project reference" }
func (c addCmd) Run(a []string) error { return commands.Add(c.cfg, a) }

type restoreCmd struct{ cfg *config.Config }

func (restoreCmd) Name() string          { return "restore" }
func (restoreCmd) Description() string   { return "Restore packages or tools" }
func (c restoreCmd) Run(a []string) error { return commands.Restore(c.cfg, a) }

type toolCmd struct{ cfg *config.Config }

func (toolCmd) Name() string          { return "tool" }
func (toolCmd) Description() string   { return "Install, restore or run .NET tools" }
func (c toolCmd) Run(a []string) error { return commands.Tool(c.cfg, a) }

type formatCmd struct{ cfg *config.Config }

func (formatCmd) Name() string          { return "format" }
func (formatCmd) Description() string   { return "Format a project" }
func (c formatCmd) Run(a []string) error { return commands.Format(c.cfg, a) }

type slnCmd struct{ cfg *config.Config }

func (slnCmd) Name() string          { return "sln" }
func (slnCmd) Description() string   { return "Manage solution files" }
func (c slnCmd) Run(a []string) error { return commands.Sln(c.cfg, a) }

type sdkCmd struct{ cfg *config.Config }

func (sdkCmd) Name() string          { return "sdk" }
func (sdkCmd) Description() string   { return "Show the installed SDK version" }
func (c sdkCmd) Run(a []string) error { return commands.Sdk(c.cfg, a) }

type doctorCmd struct{}

func (doctorCmd) Name() string        { return "doctor" }
func (doctorCmd) Description() string { return "Environment health check" }
func (doctorCmd) Run(a []string) error { return commands.Doctor(a) }

// Command factory functions
func NewNewCommand(cfg *config.Config) Command       { return newCmd{cfg} }
func NewTemplatesCommand(cfg *config.Config) Command { return templatesCmd{cfg} }
func NewBuildCommand(cfg *config.Config) Command     { return buildCmd{cfg} }
func NewRunCommand(cfg *config.Config) Command       { return runCmd{cfg} }
func NewTestCommand(cfg *config.Config) Command      { return testCmd{cfg} }
func NewPublishCommand(cfg *config.Config) Command   { return publishCmd{cfg} }
func NewAddCommand(cfg *config.Config) Command       { return addCmd{cfg} }
func NewRestoreCommand(cfg *config.Config) Command   { return restoreCmd{cfg} }
func NewToolCommand(cfg *config.Config) Command      { return toolCmd{cfg} }
func NewFormatCommand(cfg *config.Config) Command    { return formatCmd{cfg} }
func NewSlnCommand(cfg *config.Config) Command       { return slnCmd{cfg} }
func NewSdkCommand(cfg *config.Config) Command       { return sdkCmd{cfg} }
func NewDoctorCommand() Command                      { return doctorCmd{} }
