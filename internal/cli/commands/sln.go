package commands

import (
	"github.com/joaompneves/nx-dotnet/internal/config"
)

const slnUsage = "dotnetctl sln <solution> add <project>"

// Sln manages solution files. Only `add` is supported.
func Sln(cfg *config.Config, args []string) error {
	p := parseArgs(args)
	if len(p.positionals) != 3 || p.positionals[1] != "add" {
		return usageError("Expected a solution, 'add' and a project", slnUsage)
	}

	client, err := loadClient(cfg)
	if err != nil {
		return err
	}
	return client.AddProjectToSolution(p.positionals[0], p.positionals[2])
}
