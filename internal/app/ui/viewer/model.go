package viewer

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"evtxview/internal/app/clipboard"
	"evtxview/internal/app/detail"
	"evtxview/internal/app/monitor"
	"evtxview/internal/app/table"
	"evtxview/internal/app/ui/components"
	"evtxview/internal/config"
	"evtxview/internal/config/logger"
)

// detailKey identifies the rendered detail text so it is only rebuilt when it changes
type detailKey struct {
	index  int
	format string
	width  int
	ok     bool
}

// Model represents the Bubble Tea model for the event viewer
type Model struct {
	ctx       context.Context
	table     *table.Table
	renderer  *detail.Renderer
	clipboard clipboard.Clipboard
	monitor   monitor.Monitor
	tick      time.Duration

	state struct {
		tablePercent int
		orientation  string
		detailFormat string
		follow       bool
		detailKey    detailKey
		detailText   string
		status       string
		statusErr    bool
		appCPU       float64
		appMEM       float64
	}

	ui struct {
		width  int
		height int
		keys   components.KeyMap
		help   help.Model
		detail viewport.Model
		pulse  *components.Pulse
	}

	log logger.Logger
}

// NewModel creates a viewer model over tbl
func NewModel(
	ctx context.Context,
	cfg *config.Config,
	tbl *table.Table,
	renderer *detail.Renderer,
	clip clipboard.Clipboard,
	mon monitor.Monitor,
	log logger.Logger,
) Model {
	m := Model{
		ctx:       ctx,
		table:     tbl,
		renderer:  renderer,
		clipboard: clip,
		monitor:   mon,
		tick:      cfg.UI.Tick,
		log:       log.WithComponent("UI"),
	}

	m.state.tablePercent = cfg.UI.TablePercent
	m.state.orientation = cfg.UI.Orientation
	m.state.detailFormat = cfg.UI.DetailFormat
	m.state.follow = cfg.Ingest.Follow

	m.ui.keys = components.DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.detail = viewport.New(0, 0)
	m.ui.pulse = components.NewPulse(cfg.UI.Tick)

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.tick),
		statsWorkerCmd(m.ctx, m.monitor),
	)
}
