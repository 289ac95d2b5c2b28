package commands

import (
	"github.com/joaompneves/nx-dotnet/internal/config"
)

// New creates a project or item from a template.
// Usage: dotnetctl new <template> [--name X --output Y ...] [-- extra args]
func New(cfg *config.Config, args []string) error {
	p := parseArgs(args)
	if len(p.positionals) != 1 {
		return usageError("A template name is required", "dotnetctl new <template> [options] [-- extra args]")
	}

	client, err := loadClient(cfg)
	if err != nil {
		return err
	}
	return client.New(p.positionals[0], p.opts, p.extra)
}
