package commands

import (
	"fmt"

	"github.com/joaompneves/nx-dotnet/internal/config"
	"github.com/joaompneves/nx-dotnet/internal/restore"
	"github.com/joaompneves/nx-dotnet/pkg/logger"
)

// Restore restores NuGet packages, skipping the toolchain call when the
// restore inputs have not changed since the last successful restore.
// `restore tools` restores the local tool manifest instead.
// Usage: dotnetctl restore [project|tools] [--force]
func Restore(cfg *config.Config, args []string) error {
	p := parseArgs(args)
	force := p.popBool("force")

	target := "."
	if len(p.positionals) > 0 {
		target = p.positionals[0]
	}

	client, err := loadClient(cfg)
	if err != nil {
		return err
	}

	if target == "tools" {
		return client.RestoreTools()
	}

	digester := restore.NewDigester()
	digest, digestErr := digester.Calculate(target)
	state := restore.LoadState()

	if digestErr == nil && !force && state.Matches(target, digest) {
		fmt.Println("Restore inputs unchanged; skipping. Use --force to restore anyway.")
		return nil
	}
	if digestErr != nil {
		// Digesting is an optimization; restore proceeds without it.
		logger.Debugf("restore digest failed: %v", digestErr)
	}

	project := target
	if project == "." {
		project = ""
	}
	if err := client.RestorePackages(project); err != nil {
		return err
	}

	if digestErr == nil {
		state.Record(target, digest)
		if err := state.Save(); err != nil {
			logger.Debugf("could not record restore state: %v", err)
		}
	}
	return nil
}
