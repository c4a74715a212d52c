package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/coldflow/planboard/internal/domain"
)

// View selects how the calendar is windowed.
type View string

// Valid views.
const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
	ViewYear  View = "year"
	ViewList  View = "list"
)

// IsValid reports whether v is a recognized view.
func (v View) IsValid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth, ViewYear, ViewList:
		return true
	}
	return false
}

// HasWindow reports whether the view maps to a bounded date window.
// The list view shows everything fetched and has no window.
func (v View) HasWindow() bool {
	return v.IsValid() && v != ViewList
}

// Window is an inclusive date range, both endpoints at midnight UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the day falls inside the window.
func (w Window) Contains(day time.Time) bool {
	d := Day(day)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Days enumerates every day of the window in order.
func (w Window) Days() []time.Time {
	var days []time.Time
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// StartOfWeek returns the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	d := Day(t)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return d.AddDate(0, 0, -offset)
}

// WindowFor computes the date window the view shows around the current date:
// the day itself, the Monday week, the month padded to whole weeks, or the
// year spanning January's padded start through December's padded end.
// The list view has no window and is rejected.
func WindowFor(current time.Time, v View) (Window, error) {
	d := Day(current)
	switch v {
	case ViewDay:
		return Window{Start: d, End: d}, nil
	case ViewWeek:
		start := StartOfWeek(d)
		return Window{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case ViewMonth:
		return monthWindow(d.Year(), d.Month()), nil
	case ViewYear:
		jan := monthWindow(d.Year(), time.January)
		dec := monthWindow(d.Year(), time.December)
		return Window{Start: jan.Start, End: dec.End}, nil
	default:
		return Window{}, &domain.ValidationError{
			Fields: map[string]string{"view": fmt.Sprintf("no window for view %q", v)},
		}
	}
}

// monthWindow pads the calendar month out to whole Monday weeks, so the
// grid always starts on a Monday and ends on a Sunday.
func monthWindow(year int, month time.Month) Window {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return Window{
		Start: StartOfWeek(first),
		End:   StartOfWeek(last).AddDate(0, 0, 6),
	}
}

// Navigate steps the current date by the view's unit. Positive steps move
// forward, negative back. The list view has no navigation unit and returns
// the date unchanged.
func Navigate(current time.Time, v View, steps int) time.Time {
	d := Day(current)
	switch v {
	case ViewDay:
		return d.AddDate(0, 0, steps)
	case ViewWeek:
		return d.AddDate(0, 0, 7*steps)
	case ViewMonth:
		return d.AddDate(0, steps, 0)
	case ViewYear:
		return d.AddDate(steps, 0, 0)
	default:
		return d
	}
}

// ListBucket is one day group of the list view.
type ListBucket struct {
	Date  time.Time
	Items []Item
}

// ListBuckets partitions items by anchor date into ascending date groups.
// Every item lands in exactly one bucket; order within a bucket follows
// input order.
func ListBuckets(items []Item) []ListBucket {
	byDate := make(map[time.Time][]Item)
	for _, it := range items {
		d := it.AnchorDate()
		byDate[d] = append(byDate[d], it)
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	buckets := make([]ListBucket, 0, len(dates))
	for _, d := range dates {
		buckets = append(buckets, ListBucket{Date: d, Items: byDate[d]})
	}
	return buckets
}
