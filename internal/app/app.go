package app

import (
	"context"
	"os"

	"go.uber.org/fx"

	"evtxview/internal/app/cli"
	"evtxview/internal/config/logger"
)

// App represents the main application container
type App struct {
	cli       cli.CLI
	telemetry Telemetry
	done      chan struct{}
	log       logger.Logger
}

// NewApp creates a new application instance with its dependencies
func NewApp(cli cli.CLI, telemetry Telemetry, log logger.Logger) *App {
	return &App{
		cli:       cli,
		telemetry: telemetry,
		done:      make(chan struct{}),
		log:       log.WithComponent("APP"),
	}
}

// Run executes the application
func (a *App) Run() {
	exitCode := a.execute()
	close(a.done)

	os.Exit(exitCode)
}

// execute runs the CLI and returns the exit code. A panic is reported before it
// propagates.
func (a *App) execute() int {
	defer a.telemetry.Flush()
	defer a.telemetry.Recover()

	exitCode, err := a.cli.Execute()
	if err != nil {
		a.log.Debug().Err(err).Msgf("Exiting with code %d", exitCode)
	}

	return exitCode
}

// Register registers the application's lifecycle hooks with fx
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
