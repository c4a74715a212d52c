// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/internal/ports"
)

// ItemResponse represents one board item in HTTP responses. Date is the
// item's anchor date; exactly one of the per-kind detail blocks is set.
type ItemResponse struct {
	ID           string              `json:"id"`
	Kind         string              `json:"kind"`
	Title        string              `json:"title"`
	Date         string              `json:"date"`
	SeriesMember bool                `json:"series_member,omitempty"`
	TimeOff      *TimeOffDetails     `json:"time_off,omitempty"`
	Task         *TaskDetails        `json:"task,omitempty"`
	DryIce       *DryIceDetails      `json:"dry_ice_order,omitempty"`
	GasCylinder  *GasCylinderDetails `json:"gas_cylinder_order,omitempty"`
}

// TimeOffDetails carries the time-off fields of an ItemResponse.
type TimeOffDetails struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name,omitempty"`
	EndDate   string `json:"end_date"`
	LeaveType string `json:"leave_type"`
	Status    string `json:"status"`
	DayPart   string `json:"day_part,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// TaskDetails carries the task fields of an ItemResponse.
type TaskDetails struct {
	Description  string `json:"description,omitempty"`
	AssigneeID   string `json:"assignee_id,omitempty"`
	AssigneeName string `json:"assignee_name,omitempty"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	TypeName     string `json:"type_name,omitempty"`
	Color        string `json:"color,omitempty"`
}

// DryIceDetails carries the dry-ice order fields of an ItemResponse.
type DryIceDetails struct {
	OrderNumber   string `json:"order_number"`
	CustomerName  string `json:"customer_name,omitempty"`
	QuantityKg    string `json:"quantity_kg"`
	ProductType   string `json:"product_type"`
	Status        string `json:"status"`
	IsRecurring   bool   `json:"is_recurring,omitempty"`
	ParentOrderID string `json:"parent_order_id,omitempty"`
}

// GasCylinderDetails carries the gas-cylinder order fields of an ItemResponse.
type GasCylinderDetails struct {
	OrderNumber   string `json:"order_number"`
	CustomerName  string `json:"customer_name,omitempty"`
	CylinderCount int    `json:"cylinder_count"`
	GasType       string `json:"gas_type"`
	Status        string `json:"status"`
}

// ToItemResponse converts a domain board item to an HTTP response DTO.
func ToItemResponse(it schedule.Item) ItemResponse {
	resp := ItemResponse{
		ID:           it.ID(),
		Kind:         it.Kind.String(),
		Title:        it.Title(),
		Date:         it.AnchorDate().Format(time.DateOnly),
		SeriesMember: it.IsSeriesMember(),
	}

	switch it.Kind {
	case schedule.KindTimeOff:
		t := it.TimeOff
		resp.TimeOff = &TimeOffDetails{
			UserID:    t.UserID,
			UserName:  t.UserName,
			EndDate:   t.EndDate.Format(time.DateOnly),
			LeaveType: string(t.LeaveType),
			Status:    string(t.Status),
			DayPart:   string(t.DayPart),
			Reason:    t.Reason,
		}
	case schedule.KindTask:
		t := it.Task
		resp.Task = &TaskDetails{
			Description:  t.Description,
			AssigneeID:   t.AssigneeID,
			AssigneeName: t.AssigneeName,
			StartTime:    t.StartTime,
			EndTime:      t.EndTime,
			Status:       string(t.Status),
			Priority:     string(t.Priority),
			TypeName:     t.TypeName,
			Color:        t.Color,
		}
	case schedule.KindDryIceOrder:
		o := it.DryIce
		resp.DryIce = &DryIceDetails{
			OrderNumber:   o.OrderNumber,
			CustomerName:  o.CustomerName,
			QuantityKg:    o.QuantityKg.String(),
			ProductType:   string(o.ProductType),
			Status:        string(o.Status),
			IsRecurring:   o.IsRecurring,
			ParentOrderID: o.ParentOrderID,
		}
	case schedule.KindGasCylinderOrder:
		o := it.GasCylinder
		resp.GasCylinder = &GasCylinderDetails{
			OrderNumber:   o.OrderNumber,
			CustomerName:  o.CustomerName,
			CylinderCount: o.CylinderCount,
			GasType:       string(o.GasType),
			Status:        string(o.Status),
		}
	}

	return resp
}

// BoardResponse represents one aggregation snapshot in HTTP responses.
// Errors maps a degraded kind to its fetch failure message; the remaining
// kinds' items are still present.
type BoardResponse struct {
	WindowStart string            `json:"window_start"`
	WindowEnd   string            `json:"window_end"`
	Items       []ItemResponse    `json:"items"`
	Count       int               `json:"count"`
	Degraded    bool              `json:"degraded,omitempty"`
	Errors      map[string]string `json:"errors,omitempty"`
	FetchedAt   string            `json:"fetched_at"`
}

// ToBoardResponse converts a board snapshot to an HTTP response DTO.
func ToBoardResponse(snap *ports.BoardSnapshot) BoardResponse {
	items := make([]ItemResponse, len(snap.Items))
	for i, it := range snap.Items {
		items[i] = ToItemResponse(it)
	}

	resp := BoardResponse{
		WindowStart: snap.Window.Start.Format(time.DateOnly),
		WindowEnd:   snap.Window.End.Format(time.DateOnly),
		Items:       items,
		Count:       len(items),
		Degraded:    snap.Degraded(),
		FetchedAt:   snap.FetchedAt.Format(time.RFC3339),
	}
	if len(snap.Errors) > 0 {
		resp.Errors = make(map[string]string, len(snap.Errors))
		for kind, err := range snap.Errors {
			resp.Errors[kind.String()] = err.Error()
		}
	}
	return resp
}

// DayResponse represents the items occurring on a single day.
type DayResponse struct {
	Date  string         `json:"date"`
	Items []ItemResponse `json:"items"`
	Count int            `json:"count"`
}

// ToDayResponse converts a day's items to an HTTP response DTO.
func ToDayResponse(day time.Time, items []schedule.Item) DayResponse {
	resp := DayResponse{
		Date:  schedule.Day(day).Format(time.DateOnly),
		Items: make([]ItemResponse, len(items)),
		Count: len(items),
	}
	for i, it := range items {
		resp.Items[i] = ToItemResponse(it)
	}
	return resp
}

// ListResponse represents the agenda view: snapshot items grouped by anchor
// date in ascending order, empty days omitted.
type ListResponse struct {
	Buckets []DayResponse `json:"buckets"`
	Count   int           `json:"count"`
}

// ToListResponse converts date buckets to an HTTP response DTO.
func ToListResponse(buckets []schedule.ListBucket) ListResponse {
	resp := ListResponse{Buckets: make([]DayResponse, len(buckets))}
	for i, b := range buckets {
		resp.Buckets[i] = ToDayResponse(b.Date, b.Items)
		resp.Count += len(b.Items)
	}
	return resp
}

// DateChangeResponse represents one applied date change.
type DateChangeResponse struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

// FailedChangeResponse represents one series member whose write failed.
type FailedChangeResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// MoveResponse represents the outcome of a move or undo. NeedsScope is set
// when a series member was dropped without a scope; the client should ask
// the user and repeat the request.
type MoveResponse struct {
	NeedsScope bool                   `json:"needs_scope,omitempty"`
	Changes    []DateChangeResponse   `json:"changes"`
	Moved      int                    `json:"moved"`
	Failed     []FailedChangeResponse `json:"failed,omitempty"`
}

// ToMoveResponse converts a move result to an HTTP response DTO.
func ToMoveResponse(res *ports.MoveResult) MoveResponse {
	resp := MoveResponse{
		NeedsScope: res.NeedsScope,
		Changes:    make([]DateChangeResponse, len(res.Changes)),
		Moved:      len(res.Changes),
	}
	for i, c := range res.Changes {
		resp.Changes[i] = DateChangeResponse{
			ID:   c.ID,
			From: c.From.Format(time.DateOnly),
			To:   c.To.Format(time.DateOnly),
		}
	}
	return resp
}

// CreatedOrderResponse represents one order created as part of a series.
type CreatedOrderResponse struct {
	ID            string `json:"id"`
	OrderNumber   string `json:"order_number"`
	ScheduledDate string `json:"scheduled_date"`
}

// SeriesCreatedResponse represents the result of a series creation: the
// root order first, then its members in date order.
type SeriesCreatedResponse struct {
	Orders []CreatedOrderResponse `json:"orders"`
	Count  int                    `json:"count"`
}

// ToSeriesCreatedResponse converts a created order series to an HTTP
// response DTO.
func ToSeriesCreatedResponse(orders []schedule.DryIceOrder) SeriesCreatedResponse {
	resp := SeriesCreatedResponse{
		Orders: make([]CreatedOrderResponse, len(orders)),
		Count:  len(orders),
	}
	for i, o := range orders {
		resp.Orders[i] = CreatedOrderResponse{
			ID:            o.ID,
			OrderNumber:   o.OrderNumber,
			ScheduledDate: o.ScheduledDate.Format(time.DateOnly),
		}
	}
	return resp
}
