package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coldflow/planboard/internal/domain/schedule"
)

func ptrString(v string) *string { return &v }

func TestToDomainDryIceOrder_FieldMapping(t *testing.T) {
	t.Parallel()

	dto := &DryIceOrderDTO{
		ID:                "o1",
		OrderNumber:       "DI-20250106-ab12",
		CustomerID:        "c1",
		ScheduledDate:     "2025-01-06",
		QuantityKg:        decimal.RequireFromString("25.5"),
		ProductType:       "blocks",
		Status:            "pending",
		IsRecurring:       true,
		RecurrenceEndDate: ptrString("2025-03-31"),
		ParentOrderID:     nil,
		Notes:             "dock 3",
	}

	got, err := ToDomainDryIceOrder(dto)
	if err != nil {
		t.Fatalf("ToDomainDryIceOrder() error = %v", err)
	}

	if got.ID != "o1" || got.OrderNumber != "DI-20250106-ab12" {
		t.Errorf("identity = %q/%q, want o1/DI-20250106-ab12", got.ID, got.OrderNumber)
	}
	if !got.ScheduledDate.Equal(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ScheduledDate = %v, want Jan 6", got.ScheduledDate)
	}
	if got.QuantityKg.String() != "25.5" {
		t.Errorf("QuantityKg = %s, want 25.5", got.QuantityKg)
	}
	if got.ProductType != schedule.ProductBlocks {
		t.Errorf("ProductType = %q, want %q", got.ProductType, schedule.ProductBlocks)
	}
	if got.RecurrenceEndDate == nil || !got.RecurrenceEndDate.Equal(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("RecurrenceEndDate = %v, want Mar 31", got.RecurrenceEndDate)
	}
	if got.ParentOrderID != "" {
		t.Errorf("ParentOrderID = %q, want empty for a root", got.ParentOrderID)
	}
}

func TestToDomainDryIceOrder_MalformedDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dto  DryIceOrderDTO
	}{
		{
			name: "bad scheduled_date",
			dto:  DryIceOrderDTO{ID: "o1", ScheduledDate: "06/01/2025"},
		},
		{
			name: "bad recurrence_end_date",
			dto:  DryIceOrderDTO{ID: "o1", ScheduledDate: "2025-01-06", RecurrenceEndDate: ptrString("never")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ToDomainDryIceOrder(&tt.dto); err == nil {
				t.Error("ToDomainDryIceOrder() returned nil error")
			}
		})
	}
}

func TestDryIceOrderRoundTrip(t *testing.T) {
	t.Parallel()

	recEnd := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	want := schedule.DryIceOrder{
		ID:                "o2",
		OrderNumber:       "DI-20250106-ab12-1",
		CustomerID:        "c1",
		ScheduledDate:     time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		QuantityKg:        decimal.NewFromInt(25),
		ProductType:       schedule.ProductPellets,
		Status:            schedule.OrderPending,
		IsRecurring:       false,
		RecurrenceEndDate: &recEnd,
		ParentOrderID:     "o1",
		Notes:             "",
	}

	got, err := ToDomainDryIceOrder(ptrDTO(ToDryIceOrderDTO(&want)))
	if err != nil {
		t.Fatalf("round trip error = %v", err)
	}
	if got.ID != want.ID || got.ParentOrderID != want.ParentOrderID {
		t.Errorf("identity lost in round trip: %+v", got)
	}
	if !got.ScheduledDate.Equal(want.ScheduledDate) {
		t.Errorf("ScheduledDate = %v, want %v", got.ScheduledDate, want.ScheduledDate)
	}
	if !got.QuantityKg.Equal(want.QuantityKg) {
		t.Errorf("QuantityKg = %s, want %s", got.QuantityKg, want.QuantityKg)
	}
}

func ptrDTO(d DryIceOrderDTO) *DryIceOrderDTO { return &d }

func TestToCreateDryIceOrdersRequest_KeepsSeriesLinks(t *testing.T) {
	t.Parallel()

	orders := []schedule.DryIceOrder{
		{ID: "o1", OrderNumber: "DI-20250106-ab12", ScheduledDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), IsRecurring: true},
		{ID: "o2", OrderNumber: "DI-20250106-ab12-1", ScheduledDate: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), ParentOrderID: "o1"},
	}

	got := ToCreateDryIceOrdersRequest(orders)

	if len(got.Orders) != 2 {
		t.Fatalf("len(Orders) = %d, want 2", len(got.Orders))
	}
	if got.Orders[0].ParentOrderID != nil {
		t.Errorf("root parent_order_id = %v, want omitted", got.Orders[0].ParentOrderID)
	}
	if got.Orders[1].ParentOrderID == nil || *got.Orders[1].ParentOrderID != "o1" {
		t.Errorf("member parent_order_id = %v, want o1", got.Orders[1].ParentOrderID)
	}
	if got.Orders[1].ScheduledDate != "2025-01-13" {
		t.Errorf("member scheduled_date = %q, want 2025-01-13", got.Orders[1].ScheduledDate)
	}
}

func TestToDomainGasCylinderOrder(t *testing.T) {
	t.Parallel()

	dto := &GasCylinderOrderDTO{
		ID:            "g1",
		OrderNumber:   "GC-20250105-cd34",
		CustomerID:    "c1",
		ScheduledDate: "2025-01-05",
		CylinderCount: 8,
		GasType:       "co2",
		Status:        "pending",
	}

	got, err := ToDomainGasCylinderOrder(dto)
	if err != nil {
		t.Fatalf("ToDomainGasCylinderOrder() error = %v", err)
	}
	if got.CylinderCount != 8 {
		t.Errorf("CylinderCount = %d, want 8", got.CylinderCount)
	}
	if got.GasType != schedule.GasCO2 {
		t.Errorf("GasType = %q, want %q", got.GasType, schedule.GasCO2)
	}
}
