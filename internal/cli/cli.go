// Package cli provides the command-line interface for dotnetctl. Commands
// register themselves in a small registry; the CLI routes execution by the
// first argument and funnels failures through a central error handler.
package cli

import (
	"fmt"
	"sort"

	"github.com/joaompneves/nx-dotnet/internal/config"
	"github.com/joaompneves/nx-dotnet/pkg/version"
)

// Command represents a CLI command.
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// CLI routes arguments to registered commands.
type CLI struct {
	config   *config.Config
	commands map[string]Command
}

// New creates a CLI instance with all commands registered.
func New(cfg *config.Config) *CLI {
	c := &CLI{config: cfg, commands: make(map[string]Command)}
	c.registerCommands()
	return c
}

func (c *CLI) register(cmd Command) {
	c.commands[cmd.Name()] = cmd
}

func (c *CLI) registerCommands() {
	c.register(NewNewCommand(c.config))
	c.register(NewTemplatesCommand(c.config))
	c.register(NewBuildCommand(c.config))
	c.register(NewRunCommand(c.config))
	c.register(NewTestCommand(c.config))
	c.register(NewPublishCommand(c.config))
	c.register(NewAddCommand(c.config))
	c.register(NewRestoreCommand(c.config))
	c.register(NewToolCommand(c.config))
	c.register(NewFormatCommand(c.config))
	c.register(NewSlnCommand(c.config))
	c.register(NewSdkCommand(c.config))
	c.register(NewDoctorCommand())
}

// Run executes the CLI with the given argv (including program name).
func (c *CLI) Run(args []string) error {
	if len(args) < 2 {
		c.printUsage()
		return nil
	}
	switch args[1] {
	case "help", "--help", "-h":
		c.printUsage()
		return nil
	case "version", "--version":
		fmt.Printf("dotnetctl %s\n", version.Version)
		return nil
	default:
		if cmd, ok := c.commands[args[1]]; ok {
			return cmd.Run(args[2:])
		}
		c.printUsage()
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func (c *CLI) printUsage() {
	fmt.Println("Usage: dotnetctl <command> [args]")
	fmt.Println("Commands:")
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-10s %s\n", name, c.commands[name].Description())
	}
	fmt.Println("  version    Show dotnetctl version")
	fmt.Println("  help       Show this help")
}
