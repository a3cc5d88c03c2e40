//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"go.uber.org/fx"

	"evtxview/internal/app/dump"
	"evtxview/internal/app/errors"
	"evtxview/internal/app/ingest"
	"evtxview/internal/app/table"
	"evtxview/internal/app/ui/wire"
	"evtxview/internal/config"
	"evtxview/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// Args are the command-line arguments without the program name
type Args []string

// Params contains dependencies for creating the CLI
type Params struct {
	fx.In

	Args   Args
	Config *config.Config
	Opener ingest.Opener
	UI     wire.UI
	Logger logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	args     Args
	cfg      *config.Config
	opener   ingest.Opener
	ui       wire.UI
	out      io.Writer
	errOut   io.Writer
	terminal func() bool
	log      logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(params Params) CLI {
	return &cli{
		args:     params.Args,
		cfg:      params.Config,
		opener:   params.Opener,
		ui:       params.UI,
		out:      os.Stdout,
		errOut:   os.Stderr,
		terminal: isTerminal,
		log:      params.Logger.WithComponent("CLI"),
	}
}

// isTerminal reports whether the viewer can own the terminal
func isTerminal() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}

// Execute parses the arguments, runs the command and returns the exit code
func (c *cli) Execute() (int, error) {
	opts, err := Parse(c.args)
	if err != nil {
		c.log.Debug().Err(err).Msg("Failed to parse arguments")
		return c.exit(err)
	}

	switch opts.Type {
	case CommandHelp:
		return c.exit(c.handleHelp())
	case CommandVersion:
		return c.exit(c.handleVersion())
	case CommandView:
		return c.exit(c.handleView(opts))
	default:
		return c.exit(errors.ErrUnknownCommand)
	}
}

func (c *cli) exit(err error) (int, error) {
	if err != nil {
		fmt.Fprintln(c.errOut, RenderError(err))
		return 1, err
	}

	return 0, nil
}

// handleView opens the inputs and shows them in the viewer, or prints them when the
// terminal is not interactive
func (c *cli) handleView(opts *Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts.Apply(c.cfg)

	sources, err := c.opener.Open(ctx, opts.Files)
	if err != nil {
		c.log.Error().Err(err).Msgf("Failed to open inputs %v", opts.Files)
		return err
	}

	tbl := table.New(c.cfg, sources, c.log)

	if opts.NoUI || !c.terminal() {
		c.log.Debug().Msgf("Writing %s output without the viewer", opts.Format)
		return dump.New(tbl, opts.Format, c.cfg.UI.Tick, c.log).Run(ctx, c.out)
	}

	p, err := c.ui(ctx, tbl)
	if err != nil {
		return err
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		c.log.Error().Err(err).Msg("Viewer stopped with an error")
		return err
	}

	return nil
}

// handleHelp shows the help screen, or prints it when the terminal is not interactive
func (c *cli) handleHelp() error {
	c.log.Debug().Msg("Displaying help information")

	if !c.terminal() {
		_, err := fmt.Fprint(c.out, renderUsage()+"\n")
		return err
	}

	_, err := tea.NewProgram(newHelpModel(), tea.WithAltScreen()).Run()

	return err
}

// handleVersion displays version information
func (c *cli) handleVersion() error {
	c.log.Debug().Msg("Displaying version information")

	_, err := fmt.Fprintln(c.out, RenderTitle())

	return err
}
