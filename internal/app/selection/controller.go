package selection

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"evtxview/internal/app/errors"
	"evtxview/internal/config/logger"
)

// FSM states
const (
	Empty     = "empty"
	Populated = "populated"
)

// FSM events
const (
	Populate = "populate"
	Clear    = "clear"
)

// Controller tracks the selected view row. The selection is a view position, not a
// record identity: when the view changes under it, the same row index is kept if it
// is still in range.
type Controller struct {
	fsm      *fsm.FSM
	length   int
	selected int
	log      logger.Logger
}

// NewController creates a controller over an empty view
func NewController(log logger.Logger) *Controller {
	c := &Controller{log: log.WithComponent("SELECTION")}
	c.fsm = fsm.NewFSM(
		Empty,
		fsm.Events{
			{Name: Populate, Src: []string{Empty}, Dst: Populated},
			{Name: Clear, Src: []string{Populated}, Dst: Empty},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				c.log.Debug().Msgf("STATE %s → %s (view length %d)", e.Src, e.Dst, c.length)
			},
			"enter_" + Populated: func(ctx context.Context, e *fsm.Event) {
				c.selected = 0
			},
			"enter_" + Empty: func(ctx context.Context, e *fsm.Event) {
				c.selected = 0
			},
		},
	)

	return c
}

// State returns the current state name
func (c *Controller) State() string {
	return c.fsm.Current()
}

// IsEmpty reports whether there is no selection
func (c *Controller) IsEmpty() bool {
	return c.fsm.Is(Empty)
}

// Selected returns the selected view index, or false when the view is empty
func (c *Controller) Selected() (int, bool) {
	if c.IsEmpty() {
		return 0, false
	}

	return c.selected, true
}

// Len returns the view length the controller was last reconciled with
func (c *Controller) Len() int {
	return c.length
}

// Resize reconciles the selection with a new view length. An out of range selection
// is clamped to the last row; otherwise the row index is kept.
func (c *Controller) Resize(length int) {
	if length < 0 {
		length = 0
	}

	c.length = length

	switch {
	case length == 0 && c.fsm.Is(Populated):
		c.fire(Clear)
	case length > 0 && c.fsm.Is(Empty):
		c.fire(Populate)
	case length > 0 && c.selected >= length:
		c.selected = length - 1
	}
}

// Next moves the selection down by steps rows, stopping at the last row
func (c *Controller) Next(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("%w: %d", errors.ErrInvalidSteps, steps)
	}

	if c.IsEmpty() {
		return nil
	}

	c.selected = min(c.selected+steps, c.length-1)

	return nil
}

// Previous moves the selection up by steps rows, stopping at the first row
func (c *Controller) Previous(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("%w: %d", errors.ErrInvalidSteps, steps)
	}

	if c.IsEmpty() {
		return nil
	}

	c.selected = max(c.selected-steps, 0)

	return nil
}

// SetSelected selects row i. An index outside the view is rejected and the selection
// is left unchanged; on an empty view the call does nothing.
func (c *Controller) SetSelected(i int) error {
	if c.IsEmpty() {
		return nil
	}

	if i < 0 || i >= c.length {
		return fmt.Errorf("%w: %d not in [0, %d)", errors.ErrIndexOutOfRange, i, c.length)
	}

	c.selected = i

	return nil
}

// First selects the first row
func (c *Controller) First() {
	if c.IsEmpty() {
		return
	}

	c.selected = 0
}

// Last selects the last row
func (c *Controller) Last() {
	if c.IsEmpty() {
		return
	}

	c.selected = c.length - 1
}

func (c *Controller) fire(event string) {
	if err := c.fsm.Event(context.Background(), event); err != nil {
		c.log.Error().Err(err).Msgf("Failed to apply selection event '%s'", event)
	}
}
