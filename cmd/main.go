package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"evtxview/internal/app"
	"evtxview/internal/app/cli"
	"evtxview/internal/config"
	"evtxview/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	args := os.Args[1:]

	cfg, err := config.Load(configPath(args))
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	output, closeOutput, err := logger.OpenOutput(cfg, !hasNoUIFlag(args))
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}
	defer closeOutput()

	application := createApp(cfg, args, output)
	application.Run()
}

// hasNoUIFlag checks if --no-ui flag is present in args
func hasNoUIFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}

		if arg == "--no-ui" {
			return true
		}
	}

	return false
}

// configPath finds the --config value before the command line is fully parsed, so
// logging can be set up from the file it names
func configPath(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--":
			return ""
		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-c") && len(arg) > 2:
			return strings.TrimPrefix(strings.TrimPrefix(arg, "-c"), "=")
		}
	}

	return ""
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, args []string, logOutput io.Writer) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg),
		fx.Supply(cli.Args(args)),
		fx.Provide(func() logger.Logger {
			return logger.NewLoggerWithOutput(cfg, logOutput)
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
