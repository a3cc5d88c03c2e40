package app

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"evtxview/internal/config"
	"evtxview/internal/config/logger"
)

const flushTimeout = 2 * time.Second

// Telemetry reports crashes when a sentry dsn is configured
type Telemetry interface {
	Recover()
	Flush()
}

type telemetry struct {
	enabled bool
	log     logger.Logger
}

// NewTelemetry initializes the sentry client. An empty dsn disables reporting.
func NewTelemetry(cfg *config.Config, log logger.Logger) Telemetry {
	t := &telemetry{log: log.WithComponent("TELEMETRY")}

	if cfg.Telemetry.SentryDSN == "" {
		return t
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     cfg.Telemetry.SentryDSN,
		Release: fmt.Sprintf("%s@%s", config.AppName, config.Version),
	})
	if err != nil {
		t.log.Warn().Err(err).Msg("Crash reporting disabled")
		return t
	}

	t.enabled = true
	t.log.Debug().Msg("Crash reporting enabled")

	return t
}

// Recover reports a panic in progress and re-raises it. Must be deferred.
func (t *telemetry) Recover() {
	r := recover()
	if r == nil {
		return
	}

	if t.enabled {
		sentry.CurrentHub().Recover(r)
		sentry.Flush(flushTimeout)
	}

	panic(r)
}

// Flush waits for queued reports to be sent
func (t *telemetry) Flush() {
	if !t.enabled {
		return
	}

	sentry.Flush(flushTimeout)
}
