package commands

import (
	"github.com/joaompneves/nx-dotnet/internal/doctor"
	"github.com/joaompneves/nx-dotnet/pkg/logger"
)

// Doctor runs environment health checks. Check details are shown when the
// global --verbose flag is set.
func Doctor(args []string) error {
	doctor.New(logger.IsVerbose()).Run()
	return nil
}
