package table

import (
	"time"

	"evtxview/internal/app/filter"
	"evtxview/internal/app/ingest"
	"evtxview/internal/app/record"
	"evtxview/internal/app/selection"
	"evtxview/internal/config"
	"evtxview/internal/config/logger"
)

// Row is the summary of one visible record
type Row struct {
	Index     int
	EventID   uint32
	User      string
	RecordID  uint64
	Timestamp time.Time
	Computer  string
	Channel   string
	Provider  string
	Origin    string
	Selected  bool
}

// Table is the state owned by the control loop: records, filter, view and selection.
// Every method is called from the loop goroutine.
type Table struct {
	store     *record.Store
	engine    *filter.Engine
	bridge    *ingest.Bridge
	selection *selection.Controller
	log       logger.Logger
}

// New creates a table fed by sources, with the predicate seeds from cfg applied
func New(cfg *config.Config, sources []ingest.Source, log logger.Logger) *Table {
	store := record.NewStore()
	engine := filter.NewEngine(store, log)
	bridge := ingest.NewBridge(store, engine, cfg.Ingest.Batch, log)
	bridge.Add(sources...)

	t := &Table{
		store:     store,
		engine:    engine,
		bridge:    bridge,
		selection: selection.NewController(log),
		log:       log.WithComponent("TABLE"),
	}

	t.seed(cfg.Filter)

	return t
}

func (t *Table) seed(f config.Filter) {
	for _, id := range f.IncludeEventIDs {
		t.engine.Include(filter.EventID, filter.EventIDValue(id))
	}

	for _, id := range f.ExcludeEventIDs {
		t.engine.Exclude(filter.EventID, filter.EventIDValue(id))
	}

	for _, u := range f.IncludeUsers {
		t.engine.Include(filter.User, userValue(u))
	}

	for _, u := range f.ExcludeUsers {
		t.engine.Exclude(filter.User, userValue(u))
	}

	t.sync()
}

// userValue maps an empty seed to the absent-user sentinel
func userValue(u string) filter.Value {
	if u == "" {
		return filter.Absent
	}

	return filter.Text(u)
}

// Update pulls ready records into the store and reconciles the selection.
// Returns the number of records appended.
func (t *Table) Update() int {
	n := t.bridge.Tick()
	t.sync()

	return n
}

func (t *Table) sync() {
	t.engine.Recompute()
	t.selection.Resize(t.engine.Len())
}

// ExcludeSelected hides every record sharing the selected record's value in c.
// Does nothing when the view is empty.
func (t *Table) ExcludeSelected(c filter.Category) bool {
	r, ok := t.Selected()
	if !ok {
		return false
	}

	t.engine.Exclude(c, c.ValueOf(r))
	t.sync()

	return true
}

// IncludeSelected applies Include with the selected record's value in c.
// Does nothing when the view is empty.
func (t *Table) IncludeSelected(c filter.Category) bool {
	r, ok := t.Selected()
	if !ok {
		return false
	}

	t.engine.Include(c, c.ValueOf(r))
	t.sync()

	return true
}

// Exclude hides records whose c value is v
func (t *Table) Exclude(c filter.Category, v filter.Value) {
	t.engine.Exclude(c, v)
	t.sync()
}

// Include applies an include of v in c
func (t *Table) Include(c filter.Category, v filter.Value) {
	t.engine.Include(c, v)
	t.sync()
}

// ResetFilter clears every predicate
func (t *Table) ResetFilter() {
	t.engine.Reset()
	t.sync()
}

// Next moves the selection down
func (t *Table) Next(steps int) error {
	return t.selection.Next(steps)
}

// Previous moves the selection up
func (t *Table) Previous(steps int) error {
	return t.selection.Previous(steps)
}

// First selects the first row
func (t *Table) First() {
	t.selection.First()
}

// Last selects the last row
func (t *Table) Last() {
	t.selection.Last()
}

// SetSelected selects view row i
func (t *Table) SetSelected(i int) error {
	return t.selection.SetSelected(i)
}

// SelectedIndex returns the selected view row
func (t *Table) SelectedIndex() (int, bool) {
	return t.selection.Selected()
}

// Current returns the store index of the record under the cursor
func (t *Table) Current() (int, bool) {
	i, ok := t.selection.Selected()
	if !ok {
		return 0, false
	}

	return t.engine.At(i)
}

// Selected returns the record under the cursor
func (t *Table) Selected() (*record.Record, bool) {
	i, ok := t.selection.Selected()
	if !ok {
		return nil, false
	}

	idx, ok := t.engine.At(i)
	if !ok {
		return nil, false
	}

	return t.store.Get(idx), true
}

// Visible returns the rows of a viewport of height rows around the selection and the
// view index of the first one
func (t *Table) Visible(height int) ([]Row, int) {
	selected, _ := t.selection.Selected()
	offset := selection.Window(selected, t.engine.Len(), height)

	return t.Rows(offset, offset+max(0, height)), offset
}

// Rows returns the summaries of view rows [from, to), clamped to the view
func (t *Table) Rows(from, to int) []Row {
	from = max(0, from)
	to = min(to, t.engine.Len())

	if from >= to {
		return []Row{}
	}

	selected, ok := t.selection.Selected()
	rows := make([]Row, 0, to-from)

	for i := from; i < to; i++ {
		idx, _ := t.engine.At(i)
		r := t.store.Get(idx)

		rows = append(rows, Row{
			Index:     idx,
			EventID:   r.EventID,
			User:      r.User,
			RecordID:  r.RecordID,
			Timestamp: r.Timestamp,
			Computer:  r.Computer,
			Channel:   r.Channel,
			Provider:  r.Provider,
			Origin:    r.OriginName(),
			Selected:  ok && i == selected,
		})
	}

	return rows
}

// Record returns the stored record at a store index
func (t *Table) Record(index int) *record.Record {
	return t.store.Get(index)
}

// Scrollbar returns the table pane's scrollbar
func (t *Table) Scrollbar() selection.Scrollbar {
	selected, _ := t.selection.Selected()

	return selection.NewScrollbar(selected, t.engine.Len())
}

// Len returns the number of rows in the view
func (t *Table) Len() int {
	return t.engine.Len()
}

// Total returns the number of records loaded
func (t *Table) Total() int {
	return t.store.Len()
}

// Predicates returns the active predicates
func (t *Table) Predicates() *filter.PredicateSet {
	return t.engine.Predicates()
}

// Loading reports whether some source may still deliver records
func (t *Table) Loading() bool {
	return !t.bridge.Done()
}

// Sources returns the per-source ingestion status
func (t *Table) Sources() []ingest.Status {
	return t.bridge.Status()
}
