package commands

import (
	"github.com/joaompneves/nx-dotnet/internal/config"
)

// Sdk prints the installed SDK version by delegating to `dotnet --version`.
func Sdk(cfg *config.Config, args []string) error {
	client, err := loadClient(cfg)
	if err != nil {
		return err
	}
	return client.PrintVersion()
}
