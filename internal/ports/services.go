package ports

import (
	"context"
	"time"

	"github.com/coldflow/planboard/internal/domain/schedule"
)

// BoardService defines the service port for the aggregated calendar board.
// Implemented by the application layer; called by inbound adapters (handlers).
type BoardService interface {
	// Refresh runs one aggregation pass over the window: fetches every
	// visible entity kind concurrently, resolves directory references,
	// applies the filter and replaces the current snapshot. Per-kind fetch
	// failures degrade that kind only and are recorded in Snapshot.Errors;
	// Refresh returns a hard error only when nothing could be aggregated.
	Refresh(ctx context.Context, window schedule.Window, vis schedule.Visibility, filter schedule.Filter) (*BoardSnapshot, error)

	// Snapshot returns the current snapshot without refetching, or nil if
	// no aggregation pass has run yet.
	Snapshot() *BoardSnapshot

	// ItemsForDay returns the items of the current snapshot occurring on
	// the given day.
	ItemsForDay(day time.Time) []schedule.Item

	// Move resolves a drop of the item onto the target date. A drop on the
	// item's current anchor date is a no-op. For a series member with no
	// scope, the result asks for the single/series choice instead of
	// mutating. Single moves apply optimistically and revert on write
	// failure; series moves fan out per member and report partial failure
	// via app.PartialSeriesMoveError without compensation.
	Move(ctx context.Context, req MoveRequest) (*MoveResult, error)

	// CreateDryIceSeries expands a recurring dry-ice creation request into
	// its full series and submits the batch in one write. Returns the
	// created orders, root first.
	CreateDryIceSeries(ctx context.Context, base schedule.DryIceOrder, rec schedule.RecurrenceRequest) ([]schedule.DryIceOrder, error)

	// DeleteDryIceOrder removes one dry-ice order. The snapshot entry is
	// removed optimistically and restored if the downstream delete fails.
	// Deleting a series root leaves the members in place.
	DeleteDryIceOrder(ctx context.Context, id string) error

	// Undo replays the previous date of the last single task move through
	// the normal move path and clears the undo buffer. Returns nil result
	// when there is nothing to undo; a second consecutive call is a no-op.
	Undo(ctx context.Context) (*MoveResult, error)

	// FeedICS serializes the current snapshot as an iCalendar document.
	FeedICS() string
}

// MoveScope selects how a drop on a series member propagates.
type MoveScope string

// Valid move scopes. An empty scope on a series member means the caller has
// not made the single/series choice yet.
const (
	ScopeSingle MoveScope = "single"
	ScopeSeries MoveScope = "series"
)

// MoveRequest describes a drop to resolve.
type MoveRequest struct {
	ItemID string
	Kind   schedule.Kind
	Target time.Time
	Scope  MoveScope
}

// MoveResult is the outcome of a resolved drop.
// NeedsScope is set when the drop hit a series member without a scope; no
// mutation happened and Changes is empty. Otherwise Changes lists the date
// changes that were applied (empty for a no-op drop).
type MoveResult struct {
	NeedsScope bool
	Changes    []schedule.DateChange
}
