package schedule

import (
	"fmt"
	"time"

	"github.com/coldflow/planboard/internal/domain"
)

// DateChange is one planned per-record date move.
type DateChange struct {
	ID   string
	From time.Time
	To   time.Time
}

// Offset returns the day delta the change applies.
func (c DateChange) Offset() int {
	return int(Day(c.To).Sub(Day(c.From)) / (24 * time.Hour))
}

// SeriesRootID resolves the root order id for a series-capable order:
// the parent reference if present, otherwise the order itself.
func SeriesRootID(o *DryIceOrder) string {
	if o.ParentOrderID != "" {
		return o.ParentOrderID
	}
	return o.ID
}

// SeriesMembers selects the orders belonging to the series rooted at rootID
// (the root itself plus every order referencing it), preserving input order.
func SeriesMembers(orders []DryIceOrder, rootID string) []DryIceOrder {
	var members []DryIceOrder
	for _, o := range orders {
		if o.ID == rootID || o.ParentOrderID == rootID {
			members = append(members, o)
		}
	}
	return members
}

// PlanSingleMove plans a one-record move of the item to the target date.
// The second return is false when the move is a no-op (target equals the
// current anchor date); no write should be issued in that case.
func PlanSingleMove(it Item, target time.Time) (DateChange, bool) {
	from := it.AnchorDate()
	to := Day(target)
	if from.Equal(to) {
		return DateChange{}, false
	}
	return DateChange{ID: it.ID(), From: from, To: to}, true
}

// PlanSeriesMove plans a whole-series move: the dragged member lands on the
// target date and every other member shifts by the same day offset, so the
// relative spacing of the series is preserved. The dragged id must be among
// the members. A zero offset yields an empty plan.
func PlanSeriesMove(members []DryIceOrder, draggedID string, target time.Time) ([]DateChange, error) {
	var dragged *DryIceOrder
	for i := range members {
		if members[i].ID == draggedID {
			dragged = &members[i]
			break
		}
	}
	if dragged == nil {
		return nil, fmt.Errorf("order %s: %w", draggedID, domain.ErrNotFound)
	}

	offset := int(Day(target).Sub(Day(dragged.ScheduledDate)) / (24 * time.Hour))
	if offset == 0 {
		return nil, nil
	}

	changes := make([]DateChange, 0, len(members))
	for _, m := range members {
		from := Day(m.ScheduledDate)
		changes = append(changes, DateChange{
			ID:   m.ID,
			From: from,
			To:   from.AddDate(0, 0, offset),
		})
	}
	return changes, nil
}
