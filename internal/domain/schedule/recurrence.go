package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/coldflow/planboard/internal/domain"
)

// Recurrence intervals, in weeks between occurrences.
const (
	IntervalWeekly   = 1
	IntervalBiweekly = 2
)

// RecurrenceRequest describes how a recurring creation request expands into
// a concrete date series. The anchor date is always the first occurrence.
// A bounded request carries an end date; an unbounded one is materialized up
// to a rolling horizon chosen by the caller.
type RecurrenceRequest struct {
	Anchor    time.Time
	Interval  int
	EndDate   *time.Time
	Unbounded bool
}

// Validate checks the recurrence parameters.
// Returns a *domain.ValidationError with per-field details, or nil.
func (r RecurrenceRequest) Validate() error {
	fields := make(map[string]string)

	if r.Anchor.IsZero() {
		fields["anchor"] = domain.MsgRequired
	}
	if r.Interval != IntervalWeekly && r.Interval != IntervalBiweekly {
		fields["interval"] = fmt.Sprintf("must be 1 or 2 weeks, got %d", r.Interval)
	}
	if !r.Unbounded && r.EndDate == nil {
		fields["end_date"] = "required for a bounded recurrence"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Expand materializes the request into its ordered occurrence dates,
// anchor first, stepping by Interval weeks up to and including the bound.
// Unbounded requests use anchor+horizonDays as the bound. A bound earlier
// than the anchor degenerates to the anchor alone.
func (r RecurrenceRequest) Expand(horizonDays int) ([]time.Time, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	anchor := Day(r.Anchor)
	until := anchor.AddDate(0, 0, horizonDays)
	if !r.Unbounded {
		until = Day(*r.EndDate)
	}
	if until.Before(anchor) {
		return []time.Time{anchor}, nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.WEEKLY,
		Interval: r.Interval,
		Dtstart:  anchor,
		Until:    until,
	})
	if err != nil {
		return nil, fmt.Errorf("build recurrence rule: %w", err)
	}

	occurrences := rule.All()
	dates := make([]time.Time, len(occurrences))
	for i, occ := range occurrences {
		dates[i] = Day(occ)
	}
	return dates, nil
}

// BuildDryIceSeries expands a recurring dry-ice creation request into the
// full batch of orders: the root on the anchor date plus one member per
// subsequent occurrence. Members copy the root's attributes, reference it
// via ParentOrderID, and carry "-N" suffixed order numbers.
func BuildDryIceSeries(base DryIceOrder, req RecurrenceRequest, horizonDays int) ([]DryIceOrder, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}

	dates, err := req.Expand(horizonDays)
	if err != nil {
		return nil, err
	}

	root := base
	root.ID = uuid.NewString()
	root.ScheduledDate = dates[0]
	root.IsRecurring = true
	root.ParentOrderID = ""
	root.RecurrenceEndDate = req.EndDate
	if root.OrderNumber == "" {
		root.OrderNumber = NewDryIceOrderNumber(dates[0])
	}

	orders := make([]DryIceOrder, 0, len(dates))
	orders = append(orders, root)
	for n, date := range dates[1:] {
		member := root
		member.ID = uuid.NewString()
		member.ScheduledDate = date
		member.ParentOrderID = root.ID
		member.OrderNumber = MemberOrderNumber(root.OrderNumber, n+1)
		orders = append(orders, member)
	}
	return orders, nil
}
