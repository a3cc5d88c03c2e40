package viewer

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"evtxview/internal/app/monitor"
)

const (
	statsPollingInterval = 2 * time.Second
	statsTimeout         = time.Second
	mbPerGB              = 1024
)

// statsUpdateMsg carries the viewer's own resource usage
type statsUpdateMsg struct {
	CPU float64
	MEM float64
}

// statsWorkerCmd schedules a single stats collection and returns the result
func statsWorkerCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	return tea.Tick(statsPollingInterval, func(time.Time) tea.Msg {
		statsCtx, cancel := context.WithTimeout(ctx, statsTimeout)
		defer cancel()

		stats, err := mon.Self(statsCtx)
		if err != nil {
			return statsUpdateMsg{}
		}

		return statsUpdateMsg{CPU: stats.CPU, MEM: stats.MEM}
	})
}
