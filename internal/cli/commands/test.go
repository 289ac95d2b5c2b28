package commands

import (
	"github.com/joaompneves/nx-dotnet/internal/config"
)

// Test runs a project's test suite, optionally under `dotnet watch`.
// Usage: dotnetctl test [project] [--watch] [options] [-- extra args]
func Test(cfg *config.Config, args []string) error {
	p := parseArgs(args)
	project := "."
	if len(p.positionals) > 0 {
		project = p.positionals[0]
	}
	watch := p.popBool("watch")
	applyVerbosity(cfg, p.opts)

	client, err := loadClient(cfg)
	if err != nil {
		return err
	}
	return client.Test(project, watch, p.opts, p.extra)
}
