package game

import (
	"fmt"

	"github.com/abhisek/neurobattle/internal/bank"
)

// Event is an inbound player intent.
type Event interface {
	isEvent()
}

// StartGame begins a new shuffled session.
type StartGame struct{}

// SelectOption reveals the outcome of picking Choice in the current round.
type SelectOption struct {
	Choice bank.Choice
}

// Proceed commits the revealed selection and advances.
type Proceed struct{}

// Restart returns to the welcome screen.
type Restart struct{}

func (StartGame) isEvent()    {}
func (SelectOption) isEvent() {}
func (Proceed) isEvent()      {}
func (Restart) isEvent()      {}

// Handle applies ev and returns the resulting snapshot. On error the state is
// unchanged and the returned snapshot reflects it.
func (c *Controller) Handle(ev Event) (Snapshot, error) {
	switch e := ev.(type) {
	case StartGame:
		return c.StartGame(), nil
	case SelectOption:
		_, err := c.Select(e.Choice)
		return c.Snapshot(), err
	case Proceed:
		_, err := c.Proceed()
		return c.Snapshot(), err
	case Restart:
		return c.Restart(), nil
	default:
		return c.Snapshot(), fmt.Errorf("unknown event %T", ev)
	}
}
