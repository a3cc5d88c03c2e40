package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"evtxview/internal/app/clipboard"
	"evtxview/internal/app/detail"
	"evtxview/internal/app/monitor"
	"evtxview/internal/app/table"
	"evtxview/internal/app/ui/viewer"
	"evtxview/internal/config"
	"evtxview/internal/config/logger"
)

// UI creates a Bubble Tea program viewing tbl
type UI func(ctx context.Context, tbl *table.Table) (*tea.Program, error)

// Module provides the UI factory
var Module = fx.Options(
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config    *config.Config
	Renderer  *detail.Renderer
	Clipboard clipboard.Clipboard
	Monitor   monitor.Monitor
	Logger    logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context, tbl *table.Table) (*tea.Program, error) {
		model := viewer.NewModel(
			ctx,
			params.Config,
			tbl,
			params.Renderer,
			params.Clipboard,
			params.Monitor,
			params.Logger,
		)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
