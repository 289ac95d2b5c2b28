package commands

import (
	"github.com/joaompneves/nx-dotnet/internal/config"
)

// Publish publishes a project. --profile selects a publish profile.
// Usage: dotnetctl publish [project] [--profile name] [options] [-- extra args]
func Publish(cfg *config.Config, args []string) error {
	p := parseArgs(args)
	project := "."
	if len(p.positionals) > 0 {
		project = p.positionals[0]
	}
	profile := p.popString("profile")
	applyVerbosity(cfg, p.opts)

	client, err := loadClient(cfg)
	if err != nil {
		return err
	}
	return client.Publish(project, p.opts, profile, p.extra)
}
