package ports

import (
	"time"

	"github.com/coldflow/planboard/internal/domain/schedule"
)

// BoardSnapshot is the result of one aggregation pass: the window that was
// fetched, the normalized items that passed the filter, and per-kind fetch
// failures. A kind present in Errors contributed no items; the other kinds
// are complete. Snapshots are immutable once published; a later pass
// replaces the whole snapshot (last fetch wins).
type BoardSnapshot struct {
	Window    schedule.Window
	Items     []schedule.Item
	Errors    map[schedule.Kind]error
	FetchedAt time.Time
}

// Degraded reports whether any kind failed to fetch.
func (s *BoardSnapshot) Degraded() bool {
	return len(s.Errors) > 0
}
