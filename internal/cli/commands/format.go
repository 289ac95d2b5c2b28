package commands

import (
	"github.com/joaompneves/nx-dotnet/internal/config"
)

// Format runs the code formatter. --force-tool always routes through
// `dotnet tool run dotnet-format`, which also honors the configured default.
// Usage: dotnetctl format [project] [--fix-whitespace[=false]] [--fix-style[=sev]] [--fix-analyzers[=sev]] [options] [-- extra args]
func Format(cfg *config.Config, args []string) error {
	p := parseArgs(args)
	project := "."
	if len(p.positionals) > 0 {
		project = p.positionals[0]
	}
	forceTool := p.popBool("forceTool")
	if cfg != nil && cfg.ForceFormatTool {
		forceTool = true
	}
	applyVerbosity(cfg, p.opts)

	client, err := loadClient(cfg)
	if err != nil {
		return err
	}
	return client.Format(project, p.opts, p.extra, forceTool)
}
