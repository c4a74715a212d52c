package app

import (
	"fmt"

	ics "github.com/arran4/golang-ical"

	"github.com/coldflow/planboard/internal/domain/schedule"
)

// FeedICS serializes the current snapshot as an iCalendar document so the
// board can be subscribed to from external calendar clients. Items become
// all-day events; time off spans its whole range. An empty calendar is
// returned before the first aggregation pass.
func (b *Board) FeedICS() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//planboard//schedule feed//EN")

	if b.snap == nil {
		return cal.Serialize()
	}

	for _, it := range b.snap.Items {
		ev := cal.AddEvent(fmt.Sprintf("%s-%s@planboard", it.Kind, it.ID()))
		ev.SetSummary(feedSummary(it))
		ev.SetAllDayStartAt(it.AnchorDate())

		// DTEND is exclusive in iCalendar, so a one-day event ends the
		// next morning.
		end := it.AnchorDate().AddDate(0, 0, 1)
		if it.Kind == schedule.KindTimeOff {
			end = schedule.Day(it.TimeOff.EndDate).AddDate(0, 0, 1)
		}
		ev.SetAllDayEndAt(end)
	}

	return cal.Serialize()
}

func feedSummary(it schedule.Item) string {
	switch it.Kind {
	case schedule.KindTimeOff:
		return fmt.Sprintf("%s (%s)", it.TimeOff.UserName, it.TimeOff.LeaveType)
	case schedule.KindTask:
		return it.Task.Title
	case schedule.KindDryIceOrder:
		o := it.DryIce
		return fmt.Sprintf("%s %s %skg", o.OrderNumber, o.CustomerName, o.QuantityKg)
	case schedule.KindGasCylinderOrder:
		o := it.GasCylinder
		return fmt.Sprintf("%s %s %d cyl", o.OrderNumber, o.CustomerName, o.CylinderCount)
	}
	return it.Title()
}
