// Package schedule contains the calendar domain model: the four dated entity
// kinds normalized into one Item sum type, recurrence expansion, series move
// planning, and view windowing. The package is pure; all I/O lives behind
// ports.
package schedule

import "time"

// Kind identifies which entity variant an Item carries.
type Kind string

// Valid item kinds.
const (
	KindTimeOff          Kind = "time_off"
	KindTask             Kind = "task"
	KindDryIceOrder      Kind = "dry_ice_order"
	KindGasCylinderOrder Kind = "gas_cylinder_order"
)

// Kinds lists all valid kinds in aggregation order.
func Kinds() []Kind {
	return []Kind{KindTimeOff, KindTask, KindDryIceOrder, KindGasCylinderOrder}
}

// IsValid reports whether k is a recognized kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindTimeOff, KindTask, KindDryIceOrder, KindGasCylinderOrder:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// Item is a closed sum over the four calendar entity kinds. Exactly one
// variant pointer is non-nil, matching Kind. Use the NewXxxItem constructors
// to keep the pairing consistent.
type Item struct {
	Kind        Kind
	TimeOff     *TimeOff
	Task        *Task
	DryIce      *DryIceOrder
	GasCylinder *GasCylinderOrder
}

// NewTimeOffItem wraps a time-off request as a calendar item.
func NewTimeOffItem(t *TimeOff) Item {
	return Item{Kind: KindTimeOff, TimeOff: t}
}

// NewTaskItem wraps a task as a calendar item.
func NewTaskItem(t *Task) Item {
	return Item{Kind: KindTask, Task: t}
}

// NewDryIceItem wraps a dry-ice order as a calendar item.
func NewDryIceItem(o *DryIceOrder) Item {
	return Item{Kind: KindDryIceOrder, DryIce: o}
}

// NewGasCylinderItem wraps a gas-cylinder order as a calendar item.
func NewGasCylinderItem(o *GasCylinderOrder) Item {
	return Item{Kind: KindGasCylinderOrder, GasCylinder: o}
}

// ID returns the identifier of the underlying entity.
func (it Item) ID() string {
	switch it.Kind {
	case KindTimeOff:
		return it.TimeOff.ID
	case KindTask:
		return it.Task.ID
	case KindDryIceOrder:
		return it.DryIce.ID
	case KindGasCylinderOrder:
		return it.GasCylinder.ID
	}
	return ""
}

// Title returns a display label for the underlying entity.
func (it Item) Title() string {
	switch it.Kind {
	case KindTimeOff:
		return it.TimeOff.UserName
	case KindTask:
		return it.Task.Title
	case KindDryIceOrder:
		return it.DryIce.OrderNumber
	case KindGasCylinderOrder:
		return it.GasCylinder.OrderNumber
	}
	return ""
}

// AnchorDate returns the date that positions the item on the calendar:
// the start date for time off, the due date for tasks, and the scheduled
// date for orders. The result is normalized to midnight UTC.
func (it Item) AnchorDate() time.Time {
	switch it.Kind {
	case KindTimeOff:
		return Day(it.TimeOff.StartDate)
	case KindTask:
		return Day(it.Task.DueDate)
	case KindDryIceOrder:
		return Day(it.DryIce.ScheduledDate)
	case KindGasCylinderOrder:
		return Day(it.GasCylinder.ScheduledDate)
	}
	return time.Time{}
}

// OccursOn reports whether the item belongs to the given calendar day.
// Time off occupies its whole inclusive [start, end] range; every other
// kind occupies exactly its anchor date.
func (it Item) OccursOn(day time.Time) bool {
	d := Day(day)
	if it.Kind == KindTimeOff {
		start := Day(it.TimeOff.StartDate)
		end := Day(it.TimeOff.EndDate)
		return !d.Before(start) && !d.After(end)
	}
	return it.AnchorDate().Equal(d)
}

// IsSeriesMember reports whether the item participates in a recurrence
// series. Only dry-ice orders are series-capable: an order is a member when
// it is flagged recurring or references a parent order.
func (it Item) IsSeriesMember() bool {
	if it.Kind != KindDryIceOrder {
		return false
	}
	return it.DryIce.IsRecurring || it.DryIce.ParentOrderID != ""
}

// Day truncates t to midnight UTC. All date-only values in this package are
// normalized through Day so that equality and ordering ignore clock time.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// ItemsForDay filters items to those occurring on the given day, preserving
// input order.
func ItemsForDay(items []Item, day time.Time) []Item {
	var out []Item
	for _, it := range items {
		if it.OccursOn(day) {
			out = append(out, it)
		}
	}
	return out
}
