package filter

import (
	"evtxview/internal/app/record"
	"evtxview/internal/config/logger"
)

// Engine owns the predicate set and the view derived from it: the ordered store indices
// of records that pass. The view is tagged with the predicate generation it was built
// against; a mutation bumps the generation and forces a full rescan, while store growth
// alone only scans the new records.
type Engine struct {
	store      *record.Store
	predicates *PredicateSet
	generation uint64

	view           []int
	viewGeneration uint64
	scanned        int

	log logger.Logger
}

// NewEngine creates an engine over store with no active predicates
func NewEngine(store *record.Store, log logger.Logger) *Engine {
	return &Engine{
		store:      store,
		predicates: NewPredicateSet(),
		view:       make([]int, 0),
		log:        log.WithComponent("FILTER"),
	}
}

// Exclude hides records whose c value is v and recomputes the view
func (e *Engine) Exclude(c Category, v Value) {
	if e.predicates.Exclude(c, v) {
		e.log.Debug().Msgf("Exclude %s %s", c, v)
		e.bump()
	}

	e.Recompute()
}

// Include shows records whose c value is v again if v was excluded, otherwise restricts
// c to its include set extended by v. Recomputes the view.
func (e *Engine) Include(c Category, v Value) {
	if e.predicates.Include(c, v) {
		e.log.Debug().Msgf("Include %s %s", c, v)
		e.bump()
	}

	e.Recompute()
}

// Reset clears every predicate; the view becomes all records
func (e *Engine) Reset() {
	if e.predicates.Reset() {
		e.log.Debug().Msg("Reset filter")
		e.bump()
	}

	e.Recompute()
}

// Evaluate reports whether r passes the current predicates
func (e *Engine) Evaluate(r *record.Record) bool {
	return e.predicates.Match(r)
}

// Recompute brings the view up to date with the store. Only records appended since the
// last call are scanned unless the predicates changed in between.
func (e *Engine) Recompute() {
	if e.viewGeneration != e.generation {
		e.view = e.view[:0]
		e.scanned = 0
		e.viewGeneration = e.generation
	}

	total := e.store.Len()
	if e.scanned > total {
		e.scanned = total
	}

	for i := e.scanned; i < total; i++ {
		if e.predicates.Match(e.store.Get(i)) {
			e.view = append(e.view, i)
		}
	}

	e.scanned = total
}

// View returns the store indices currently passing, in store order. The slice is
// owned by the engine and must not be modified.
func (e *Engine) View() []int {
	return e.view
}

// Len returns the view length
func (e *Engine) Len() int {
	return len(e.view)
}

// At maps a view position to its store index
func (e *Engine) At(viewIndex int) (int, bool) {
	if viewIndex < 0 || viewIndex >= len(e.view) {
		return 0, false
	}

	return e.view[viewIndex], true
}

// Generation returns the predicate generation
func (e *Engine) Generation() uint64 {
	return e.generation
}

// Predicates exposes the predicate set for inspection
func (e *Engine) Predicates() *PredicateSet {
	return e.predicates
}

func (e *Engine) bump() {
	e.generation++
}
