package viewer

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"evtxview/internal/app/filter"
	"evtxview/internal/config"
)

// tickMsg signals the bounded wait elapsed without input
type tickMsg time.Time

// tickCmd schedules the next tick
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.table.Update()
		m.refreshDetail()

		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = max(0, msg.Width-2)
		m.refreshDetail()

		return m, nil

	case tickMsg:
		m.table.Update()
		m.updatePulse()
		m.refreshDetail()

		return m, tickCmd(m.tick)

	case statsUpdateMsg:
		m.state.appCPU = msg.CPU
		m.state.appMEM = msg.MEM

		return m, statsWorkerCmd(m.ctx, m.monitor)
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ui.keys

	switch {
	case key.Matches(msg, keys.Quit):
		m.log.Debug().Msg("Quit requested")

		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.navigate(m.table.Previous(1))

	case key.Matches(msg, keys.Down):
		m.navigate(m.table.Next(1))

	case key.Matches(msg, keys.PageUp):
		m.navigate(m.table.Previous(m.pageSize()))

	case key.Matches(msg, keys.PageDown):
		m.navigate(m.table.Next(m.pageSize()))

	case key.Matches(msg, keys.First):
		m.table.First()

	case key.Matches(msg, keys.Last):
		m.table.Last()

	case key.Matches(msg, keys.ExcludeEvent):
		m.table.ExcludeSelected(filter.EventID)

	case key.Matches(msg, keys.IncludeEvent):
		m.table.IncludeSelected(filter.EventID)

	case key.Matches(msg, keys.ExcludeUser):
		m.table.ExcludeSelected(filter.User)

	case key.Matches(msg, keys.IncludeUser):
		m.table.IncludeSelected(filter.User)

	case key.Matches(msg, keys.Reset):
		m.table.ResetFilter()

	case key.Matches(msg, keys.Orientation):
		m.toggleOrientation()

	case key.Matches(msg, keys.Grow):
		m.resize(1)

	case key.Matches(msg, keys.Shrink):
		m.resize(-1)

	case key.Matches(msg, keys.Format):
		m.toggleFormat()

	case key.Matches(msg, keys.Copy):
		m.copyDetail()

	case key.Matches(msg, keys.DetailDown):
		m.scrollDetail(1)

	case key.Matches(msg, keys.DetailUp):
		m.scrollDetail(-1)

	default:
		return m, nil
	}

	m.refreshDetail()

	return m, nil
}

// navigate logs a rejected move
func (m *Model) navigate(err error) {
	if err != nil {
		m.log.Debug().Err(err).Msg("Navigation rejected")
	}
}

// pageSize is half the visible table rows, at least one
func (m *Model) pageSize() int {
	return max(1, m.layout().table.rows()/2)
}

func (m *Model) toggleOrientation() {
	if m.state.orientation == config.OrientationVertical {
		m.state.orientation = config.OrientationHorizontal
	} else {
		m.state.orientation = config.OrientationVertical
	}
}

// resize moves the table/detail split by delta percent within the allowed bounds
func (m *Model) resize(delta int) {
	m.state.tablePercent = max(config.MinTablePercent, min(config.MaxTablePercent, m.state.tablePercent+delta))
}

func (m *Model) toggleFormat() {
	if m.state.detailFormat == config.DetailFormatYAML {
		m.state.detailFormat = config.DetailFormatJSON
	} else {
		m.state.detailFormat = config.DetailFormatYAML
	}
}

// updatePulse animates the activity indicator while sources are still reading
func (m *Model) updatePulse() {
	if !m.table.Loading() {
		if m.ui.pulse.IsActive() {
			m.ui.pulse.Stop()
		}

		return
	}

	if !m.ui.pulse.IsActive() {
		m.ui.pulse.Start()
	}

	m.ui.pulse.Update()
}
