package commands

import (
	"github.com/joaompneves/nx-dotnet/internal/config"
)

const addUsage = "dotnetctl add <project> package <name> [options] | dotnetctl add <project> reference <target>"

// Add adds a package or project reference to a project.
func Add(cfg *config.Config, args []string) error {
	p := parseArgs(args)
	if len(p.positionals) != 3 {
		return usageError("Expected a project, a kind (package|reference) and a target", addUsage)
	}
	project, kind, target := p.positionals[0], p.positionals[1], p.positionals[2]

	client, err := loadClient(cfg)
	if err != nil {
		return err
	}

	switch kind {
	case "package":
		return client.AddPackageReference(project, target, p.opts)
	case "reference":
		return client.AddProjectReference(project, target)
	default:
		return usageError("Unknown reference kind: "+kind, addUsage)
	}
}
