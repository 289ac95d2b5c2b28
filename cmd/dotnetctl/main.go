package main

import (
	"os"
	"strings"

	"github.com/joaompneves/nx-dotnet/internal/cli"
	"github.com/joaompneves/nx-dotnet/internal/config"
	"github.com/joaompneves/nx-dotnet/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Run with nil config; errors are handled centrally.
		cfg = nil
	}

	// Strip lightweight global flags before command routing.
	verbose := false
	debug := false
	args := make([]string, 0, len(os.Args))
	for i, a := range os.Args {
		if i == 0 {
			args = append(args, a)
			continue
		}
		switch a {
		case "--verbose", "-v":
			verbose = true
		case "--debug":
			debug = true
		default:
			args = append(args, a)
		}
	}
	if strings.EqualFold(os.Getenv("DOTNETCTL_VERBOSE"), "1") {
		verbose = true
	}
	if strings.EqualFold(os.Getenv("DOTNETCTL_DEBUG"), "1") {
		debug = true
	}

	logger.Initialize(verbose, debug)
	defer logger.Close()

	handler := cli.NewErrorHandler(verbose, debug)
	var ph cli.PanicHandler
	defer ph.Recover()

	app := cli.New(cfg)
	if err := app.Run(args); err != nil {
		handler.Handle(err)
	}
}
