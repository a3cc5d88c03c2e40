package monitor

import (
	"context"
	"math"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor

const bytesPerMB = 1024 * 1024

// Stats is the viewer's own resource usage shown in the footer
type Stats struct {
	CPU float64 // percent of one core
	MEM float64 // resident set in MB
}

// Monitor reports the resource usage of the viewer process
type Monitor interface {
	Self(ctx context.Context) (Stats, error)
}

type monitor struct {
	pid int
}

// NewMonitor creates a Monitor for the current process
func NewMonitor() Monitor {
	return &monitor{pid: os.Getpid()}
}

// Self samples CPU and RSS of the current process. A metric that cannot be read is
// left at zero.
func (m *monitor) Self(ctx context.Context) (Stats, error) {
	return sample(ctx, m.pid)
}

func sample(ctx context.Context, pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(pid)) // #nosec G115 -- range checked above
	if err != nil {
		return Stats{}, err
	}

	var stats Stats

	if cpu, err := proc.CPUPercentWithContext(ctx); err == nil {
		stats.CPU = cpu
	}

	if mem, err := proc.MemoryInfoWithContext(ctx); err == nil {
		stats.MEM = float64(mem.RSS) / bytesPerMB
	}

	return stats, nil
}
