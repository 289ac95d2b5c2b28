package commands

import (
	"fmt"

	"github.com/joaompneves/nx-dotnet/internal/config"
)

// Run builds and runs a project. --watch reruns on source changes via
// `dotnet watch`; --background spawns the process and returns immediately,
// leaving lifecycle management to the caller.
// Usage: dotnetctl run [project] [--watch] [--background] [options] [-- extra args]
func Run(cfg *config.Config, args []string) error {
	p := parseArgs(args)
	project := "."
	if len(p.positionals) > 0 {
		project = p.positionals[0]
	}
	watch := p.popBool("watch")
	background := p.popBool("background")
	applyVerbosity(cfg, p.opts)

	client, err := loadClient(cfg)
	if err != nil {
		return err
	}

	if background {
		proc, err := client.RunBackground(project, watch, p.opts, p.extra)
		if err != nil {
			return err
		}
		fmt.Printf("Started %s (pid %d)\n", project, proc.Process.Pid)
		return nil
	}
	return client.Run(project, watch, p.opts, p.extra)
}
