package ingest

import (
	"evtxview/internal/app/record"
	"evtxview/internal/config/logger"
)

// Notifier is told when new records were appended to the store
type Notifier interface {
	Recompute()
}

// State describes a source's progress
type State string

// Source states
const (
	StateActive State = "active"
	StateDone   State = "done"
	StateFailed State = "failed"
)

// Status is a snapshot of one source
type Status struct {
	Origin  string
	State   State
	Records int
	Err     error
}

type entry struct {
	source   Source
	records  int
	reported bool
}

// Bridge moves ready records from the sources into the store once per tick
type Bridge struct {
	entries  []*entry
	store    *record.Store
	notifier Notifier
	batch    int
	next     int
	log      logger.Logger
}

// NewBridge creates a bridge that appends at most batch records per tick
func NewBridge(store *record.Store, notifier Notifier, batch int, log logger.Logger) *Bridge {
	return &Bridge{
		store:    store,
		notifier: notifier,
		batch:    max(1, batch),
		log:      log.WithComponent("INGEST"),
	}
}

// Add registers sources
func (b *Bridge) Add(sources ...Source) {
	for _, s := range sources {
		b.entries = append(b.entries, &entry{source: s})
	}
}

// Tick polls every unfinished source without blocking, starting after the source that
// went first last time, appends what is ready and notifies once. Returns the number
// of records appended.
func (b *Bridge) Tick() int {
	n := len(b.entries)
	if n == 0 {
		return 0
	}

	budget := b.batch
	appended := 0
	start := b.next

	for k := 0; k < n && budget > 0; k++ {
		e := b.entries[(start+k)%n]
		if e.reported {
			continue
		}

		records := e.source.Poll(budget)
		for _, r := range records {
			b.store.Append(r)
		}

		e.records += len(records)
		appended += len(records)
		budget -= len(records)

		if e.source.Done() {
			b.finish(e)
		}
	}

	b.next = (start + 1) % n

	if appended > 0 {
		b.notifier.Recompute()
	}

	return appended
}

func (b *Bridge) finish(e *entry) {
	e.reported = true

	if err := e.source.Err(); err != nil {
		b.log.Warn().Err(err).Msgf("Stopped reading '%s' after %d records", e.source.Origin(), e.records)
		return
	}

	b.log.Info().Msgf("Finished reading '%s' (%d records)", e.source.Origin(), e.records)
}

// Done reports whether every source has finished
func (b *Bridge) Done() bool {
	for _, e := range b.entries {
		if !e.reported {
			return false
		}
	}

	return true
}

// Status returns a snapshot per source in registration order
func (b *Bridge) Status() []Status {
	out := make([]Status, 0, len(b.entries))

	for _, e := range b.entries {
		st := Status{Origin: e.source.Origin(), State: StateActive, Records: e.records}

		if e.reported {
			st.State = StateDone
			if err := e.source.Err(); err != nil {
				st.State = StateFailed
				st.Err = err
			}
		}

		out = append(out, st)
	}

	return out
}
