// Package dragstate models the drag-and-drop interaction as a pure state
// machine. A Session advances through phases in response to events; the
// reducer never performs I/O, it only emits the move command the caller
// should hand to the board service.
//
// Phases: Idle -> Dragging (hover updates) -> either Idle with a command
// (plain drop), or AwaitingScope (drop on a series member) -> Idle with a
// scoped command. Invalid drops, cancellation, and starting a new drag all
// reset to Idle.
package dragstate

import (
	"time"

	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/internal/ports"
)

// Phase is the state of a drag session.
type Phase int

// Session phases.
const (
	Idle Phase = iota
	Dragging
	AwaitingScope
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case AwaitingScope:
		return "awaiting_scope"
	}
	return "unknown"
}

// Session is the current drag state. The zero value is an idle session.
type Session struct {
	Phase Phase
	Item  schedule.Item
	Hover time.Time
	Drop  time.Time
}

// Command is the mutation the caller should execute after a reduction.
// A nil command means nothing to do.
type Command struct {
	Item   schedule.Item
	Target time.Time
	Scope  ports.MoveScope
}

// Event is a drag interaction event. The concrete types below are the only
// implementations.
type Event interface {
	isEvent()
}

// BeginDrag picks an item up. Beginning a drag in any phase discards the
// previous session.
type BeginDrag struct {
	Item schedule.Item
}

// Hover reports the day cell currently under the cursor.
type Hover struct {
	Date time.Time
}

// Drop releases the dragged item. A zero Date means the drop landed outside
// any day cell and the drag is abandoned.
type Drop struct {
	Date time.Time
}

// ResolveScope answers the single/series question raised by dropping a
// series member.
type ResolveScope struct {
	Scope ports.MoveScope
}

// Cancel abandons the session (Escape, dialog dismissed).
type Cancel struct{}

func (BeginDrag) isEvent()    {}
func (Hover) isEvent()        {}
func (Drop) isEvent()         {}
func (ResolveScope) isEvent() {}
func (Cancel) isEvent()       {}

// Reduce advances the session by one event and returns the next session
// plus the command to execute, if any. Unrecognized event/phase pairings
// leave the session unchanged.
func Reduce(s Session, e Event) (Session, *Command) {
	switch ev := e.(type) {
	case BeginDrag:
		return Session{Phase: Dragging, Item: ev.Item}, nil

	case Hover:
		if s.Phase != Dragging {
			return s, nil
		}
		s.Hover = schedule.Day(ev.Date)
		return s, nil

	case Drop:
		if s.Phase != Dragging {
			return s, nil
		}
		if ev.Date.IsZero() {
			return Session{}, nil
		}
		target := schedule.Day(ev.Date)
		if s.Item.AnchorDate().Equal(target) {
			// Dropping on the item's own day changes nothing.
			return Session{}, nil
		}
		if s.Item.IsSeriesMember() {
			s.Phase = AwaitingScope
			s.Drop = target
			return s, nil
		}
		return Session{}, &Command{Item: s.Item, Target: target, Scope: ports.ScopeSingle}

	case ResolveScope:
		if s.Phase != AwaitingScope {
			return s, nil
		}
		return Session{}, &Command{Item: s.Item, Target: s.Drop, Scope: ev.Scope}

	case Cancel:
		return Session{}, nil
	}

	return s, nil
}
