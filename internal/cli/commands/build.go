package commands

import (
	"github.com/joaompneves/nx-dotnet/internal/config"
)

// Build compiles a project.
// Usage: dotnetctl build [project] [options] [-- extra args]
func Build(cfg *config.Config, args []string) error {
	p := parseArgs(args)
	project := "."
	if len(p.positionals) > 0 {
		project = p.positionals[0]
	}
	applyVerbosity(cfg, p.opts)

	client, err := loadClient(cfg)
	if err != nil {
		return err
	}
	return client.Build(project, p.opts, p.extra)
}
