package dump

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"evtxview/internal/app/record"
	"evtxview/internal/app/table"
	"evtxview/internal/config/logger"
)

// Output formats
const (
	FormatSummary = "summary"
	FormatJSON    = "json"
)

// View is the part of the table the dumper reads
type View interface {
	Update() int
	Len() int
	Loading() bool
	Rows(from, to int) []table.Row
	Record(index int) *record.Record
}

// Dumper writes the filtered view to a writer as records arrive
type Dumper struct {
	view    View
	format  string
	tick    time.Duration
	written int
	log     logger.Logger
}

// New creates a dumper polling every tick
func New(view View, format string, tick time.Duration, log logger.Logger) *Dumper {
	return &Dumper{
		view:   view,
		format: format,
		tick:   tick,
		log:    log.WithComponent("DUMP"),
	}
}

// Run writes rows until every source is finished or ctx is done
func (d *Dumper) Run(ctx context.Context, w io.Writer) error {
	out := bufio.NewWriter(w)
	defer out.Flush()

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	for {
		d.view.Update()

		if err := d.flush(out); err != nil {
			return err
		}

		if !d.view.Loading() {
			d.log.Debug().Msgf("Wrote %d rows", d.written)
			return nil
		}

		if err := out.Flush(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// flush writes the rows appended to the view since the last call. The view only grows
// at its end because the predicates never change while dumping.
func (d *Dumper) flush(w io.Writer) error {
	length := d.view.Len()
	if length <= d.written {
		return nil
	}

	for _, row := range d.view.Rows(d.written, length) {
		if err := d.write(w, row); err != nil {
			return err
		}
	}

	d.written = length

	return nil
}

func (d *Dumper) write(w io.Writer, row table.Row) error {
	if d.format == FormatJSON {
		r := d.view.Record(row.Index)
		if r == nil {
			return nil
		}

		_, err := fmt.Fprintf(w, "%s\n", r.Payload)

		return err
	}

	_, err := fmt.Fprintln(w, Summary(row))

	return err
}

// Summary renders a row as one tab separated line
func Summary(row table.Row) string {
	ts := "-"
	if !row.Timestamp.IsZero() {
		ts = row.Timestamp.UTC().Format(time.RFC3339)
	}

	user := row.User
	if user == "" {
		user = "-"
	}

	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s\t%s", ts, row.EventID, user, orDash(row.Computer), orDash(row.Channel), row.Origin)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
