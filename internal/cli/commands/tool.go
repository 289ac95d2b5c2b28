package commands

import (
	"strings"

	"github.com/joaompneves/nx-dotnet/internal/config"
)

const toolUsage = "dotnetctl tool install <name> [--version v] [--source s] | dotnetctl tool run <name> [-- args] | dotnetctl tool restore"

// Tool manages .NET tools: install, run, restore.
func Tool(cfg *config.Config, args []string) error {
	p := parseArgs(args)
	if len(p.positionals) == 0 {
		return usageError("A tool action is required", toolUsage)
	}

	client, err := loadClient(cfg)
	if err != nil {
		return err
	}

	action := p.positionals[0]
	switch action {
	case "install":
		if len(p.positionals) != 2 {
			return usageError("A tool name is required", toolUsage)
		}
		return client.InstallTool(p.positionals[1], p.popString("version"), p.popString("source"))
	case "run":
		if len(p.positionals) != 2 {
			return usageError("A tool name is required", toolUsage)
		}
		var toolArgs []string
		if p.extra != "" {
			toolArgs = strings.Fields(p.extra)
		}
		return client.RunTool(p.positionals[1], toolArgs)
	case "restore":
		return client.RestoreTools()
	default:
		return usageError("Unknown tool action: "+action, toolUsage)
	}
}
