package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coldflow/planboard/internal/domain"
	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/internal/ports"
)

// MoveRequest represents the JSON body for resolving a drop onto a day cell.
// Scope is omitted on the first attempt; when the dropped item belongs to a
// recurring series the response asks for it and the client repeats the
// request with "single" or "series".
type MoveRequest struct {
	ItemID string `json:"item_id"`
	Kind   string `json:"kind"`
	Date   string `json:"date"`
	Scope  string `json:"scope,omitempty"`
}

// Validate checks that required fields are present and enums are known.
// Returns a *domain.ValidationError if any checks fail.
func (r *MoveRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.ItemID) == "" {
		fields["item_id"] = domain.MsgRequired
	}
	if !schedule.Kind(r.Kind).IsValid() {
		fields["kind"] = fmt.Sprintf("invalid: %q", r.Kind)
	}
	if _, err := time.Parse(time.DateOnly, r.Date); err != nil {
		fields["date"] = "must be a date in 2006-01-02 form"
	}
	switch ports.MoveScope(r.Scope) {
	case "", ports.ScopeSingle, ports.ScopeSeries:
		// Valid scopes.
	default:
		fields["scope"] = fmt.Sprintf("invalid: %q", r.Scope)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToServiceRequest converts the validated body to the board service request.
func (r *MoveRequest) ToServiceRequest() ports.MoveRequest {
	target, _ := time.Parse(time.DateOnly, r.Date)
	return ports.MoveRequest{
		ItemID: r.ItemID,
		Kind:   schedule.Kind(r.Kind),
		Target: target,
		Scope:  ports.MoveScope(r.Scope),
	}
}

// RecurrenceRequest represents the recurrence settings of a series-creation
// body. Bounded series name an end date; unbounded ones set the flag and
// are materialized up to the service's horizon.
type RecurrenceRequest struct {
	IntervalWeeks int    `json:"interval_weeks"`
	EndDate       string `json:"end_date,omitempty"`
	Unbounded     bool   `json:"unbounded,omitempty"`
}

// CreateDryIceSeriesRequest represents the JSON body for creating a
// recurring dry-ice order series.
type CreateDryIceSeriesRequest struct {
	CustomerID    string             `json:"customer_id"`
	ScheduledDate string             `json:"scheduled_date"`
	QuantityKg    decimal.Decimal    `json:"quantity_kg"`
	ProductType   string             `json:"product_type"`
	Notes         string             `json:"notes,omitempty"`
	Recurrence    *RecurrenceRequest `json:"recurrence"`
}

// Validate checks that required fields are present and the recurrence is
// coherent. Returns a *domain.ValidationError if any checks fail.
func (r *CreateDryIceSeriesRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.CustomerID) == "" {
		fields["customer_id"] = domain.MsgRequired
	}
	if _, err := time.Parse(time.DateOnly, r.ScheduledDate); err != nil {
		fields["scheduled_date"] = "must be a date in 2006-01-02 form"
	}
	if !r.QuantityKg.IsPositive() {
		fields["quantity_kg"] = "must be positive"
	}
	if !schedule.ProductType(r.ProductType).IsValid() {
		fields["product_type"] = fmt.Sprintf("invalid: %q", r.ProductType)
	}

	switch {
	case r.Recurrence == nil:
		fields["recurrence"] = domain.MsgRequired
	default:
		if r.Recurrence.IntervalWeeks != schedule.IntervalWeekly &&
			r.Recurrence.IntervalWeeks != schedule.IntervalBiweekly {
			fields["recurrence.interval_weeks"] = fmt.Sprintf("must be 1 or 2, got %d", r.Recurrence.IntervalWeeks)
		}
		if r.Recurrence.EndDate != "" {
			if _, err := time.Parse(time.DateOnly, r.Recurrence.EndDate); err != nil {
				fields["recurrence.end_date"] = "must be a date in 2006-01-02 form"
			}
		}
		if r.Recurrence.EndDate == "" && !r.Recurrence.Unbounded {
			fields["recurrence.end_date"] = "required unless the series is unbounded"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToBaseOrder converts the validated body to the base order of the series.
func (r *CreateDryIceSeriesRequest) ToBaseOrder() schedule.DryIceOrder {
	scheduled, _ := time.Parse(time.DateOnly, r.ScheduledDate)
	return schedule.DryIceOrder{
		CustomerID:    r.CustomerID,
		ScheduledDate: scheduled,
		QuantityKg:    r.QuantityKg,
		ProductType:   schedule.ProductType(r.ProductType),
		Status:        schedule.OrderPending,
		Notes:         r.Notes,
	}
}

// ToRecurrence converts the validated body to the domain recurrence request.
func (r *CreateDryIceSeriesRequest) ToRecurrence() schedule.RecurrenceRequest {
	anchor, _ := time.Parse(time.DateOnly, r.ScheduledDate)
	rec := schedule.RecurrenceRequest{
		Anchor:    anchor,
		Interval:  r.Recurrence.IntervalWeeks,
		Unbounded: r.Recurrence.Unbounded,
	}
	if r.Recurrence.EndDate != "" {
		end, _ := time.Parse(time.DateOnly, r.Recurrence.EndDate)
		rec.EndDate = &end
		rec.Unbounded = false
	}
	return rec
}
