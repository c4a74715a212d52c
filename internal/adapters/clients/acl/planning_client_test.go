package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coldflow/planboard/internal/domain"
	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/internal/platform/config"
	"github.com/coldflow/planboard/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test server
// with circuit breaker and retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.Default()

	return httpclient.New(cfg, "planning-api-test", nil, logger)
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

func TestPlanningClient_ListTimeOff(t *testing.T) {
	t.Parallel()

	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/time-off-requests" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"requests": []map[string]any{{
				"id": "l1", "user_id": "u1",
				"start_date": "2025-01-08", "end_date": "2025-01-10",
				"leave_type": "vacation", "status": "approved",
			}},
			"count": 1,
		})
	}))
	defer ts.Close()

	client := NewPlanningClient(newTestClient(t, ts.URL), slog.Default())
	requests, err := client.ListTimeOff(context.Background(),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ListTimeOff() error = %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("len(requests) = %d, want 1", len(requests))
	}
	if requests[0].ID != "l1" {
		t.Errorf("ID = %q, want %q", requests[0].ID, "l1")
	}
	if !requests[0].StartDate.Equal(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v, want Jan 8", requests[0].StartDate)
	}
	if gotQuery != "end_date=2025-01-31&start_date=2025-01-01" {
		t.Errorf("query = %q, want window bounds as dates", gotQuery)
	}
}

func TestPlanningClient_ListTimeOff_MalformedDate(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"requests": []map[string]any{{
				"id": "l1", "user_id": "u1",
				"start_date": "tomorrow", "end_date": "2025-01-10",
				"leave_type": "vacation", "status": "approved",
			}},
			"count": 1,
		})
	}))
	defer ts.Close()

	client := NewPlanningClient(newTestClient(t, ts.URL), slog.Default())
	if _, err := client.ListTimeOff(context.Background(), time.Now(), time.Now()); err == nil {
		t.Fatal("ListTimeOff() returned nil error for malformed start_date")
	}
}

func TestPlanningClient_ListDryIceOrders(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/dry-ice-orders" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"orders": []map[string]any{{
				"id": "o1", "order_number": "DI-20250106-ab12", "customer_id": "c1",
				"scheduled_date": "2025-01-06", "quantity_kg": "25.5",
				"product_type": "blocks", "status": "pending",
				"is_recurring": true, "recurrence_end_date": "2025-03-31",
			}},
			"count": 1,
		})
	}))
	defer ts.Close()

	client := NewPlanningClient(newTestClient(t, ts.URL), slog.Default())
	orders, err := client.ListDryIceOrders(context.Background(),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ListDryIceOrders() error = %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("len(orders) = %d, want 1", len(orders))
	}
	o := orders[0]
	if o.QuantityKg.String() != "25.5" {
		t.Errorf("QuantityKg = %s, want 25.5", o.QuantityKg)
	}
	if !o.IsRecurring || o.RecurrenceEndDate == nil {
		t.Errorf("recurrence fields not translated: %+v", o)
	}
}

func TestPlanningClient_ListDryIceSeries_NotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/dry-ice-orders/ghost/series" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		writeJSON(t, w, map[string]any{"detail": "order ghost not found"})
	}))
	defer ts.Close()

	client := NewPlanningClient(newTestClient(t, ts.URL), slog.Default())
	_, err := client.ListDryIceSeries(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ListDryIceSeries() error = %v, want ErrNotFound", err)
	}
}

func TestPlanningClient_CreateDryIceOrders(t *testing.T) {
	t.Parallel()

	var gotBody struct {
		Orders []map[string]any `json:"orders"`
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/dry-ice-orders/batch" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding batch body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	client := NewPlanningClient(newTestClient(t, ts.URL), slog.Default())
	orders := seriesFixture(t)
	if err := client.CreateDryIceOrders(context.Background(), orders); err != nil {
		t.Fatalf("CreateDryIceOrders() error = %v", err)
	}
	if len(gotBody.Orders) != len(orders) {
		t.Fatalf("batch carried %d orders, want %d", len(gotBody.Orders), len(orders))
	}
	if gotBody.Orders[1]["parent_order_id"] != orders[0].ID {
		t.Errorf("member parent_order_id = %v, want root id %s", gotBody.Orders[1]["parent_order_id"], orders[0].ID)
	}
}

// seriesFixture builds a small weekly series for batch tests: a root and
// two members.
func seriesFixture(t *testing.T) []schedule.DryIceOrder {
	t.Helper()

	end := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	orders, err := schedule.BuildDryIceSeries(schedule.DryIceOrder{
		CustomerID:    "c1",
		ScheduledDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		QuantityKg:    decimal.NewFromInt(25),
		ProductType:   schedule.ProductBlocks,
		Status:        schedule.OrderPending,
	}, schedule.RecurrenceRequest{
		Anchor:   time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		Interval: schedule.IntervalWeekly,
		EndDate:  &end,
	}, 365)
	if err != nil {
		t.Fatalf("building series fixture: %v", err)
	}
	return orders
}

func TestPlanningClient_UpdateTaskDueDate(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/v1/tasks/t1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding patch body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewPlanningClient(newTestClient(t, ts.URL), slog.Default())
	due := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	if err := client.UpdateTaskDueDate(context.Background(), "t1", due); err != nil {
		t.Fatalf("UpdateTaskDueDate() error = %v", err)
	}
	if gotBody["due_date"] != "2025-01-09" {
		t.Errorf("due_date = %v, want 2025-01-09", gotBody["due_date"])
	}
}

func TestPlanningClient_UpdateTimeOffDates(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/v1/time-off-requests/l1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding patch body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewPlanningClient(newTestClient(t, ts.URL), slog.Default())
	err := client.UpdateTimeOffDates(context.Background(), "l1",
		time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("UpdateTimeOffDates() error = %v", err)
	}
	if gotBody["start_date"] != "2025-01-13" || gotBody["end_date"] != "2025-01-15" {
		t.Errorf("body = %v, want both range bounds", gotBody)
	}
}

func TestPlanningClient_UpdateDryIceOrderDate_Validation(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		writeJSON(t, w, map[string]any{
			"detail": "validation failed",
			"errors": []map[string]any{{"location": "body.scheduled_date", "message": "is required"}},
		})
	}))
	defer ts.Close()

	client := NewPlanningClient(newTestClient(t, ts.URL), slog.Default())
	err := client.UpdateDryIceOrderDate(context.Background(), "o1", time.Time{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("UpdateDryIceOrderDate() error = %v, want ErrValidation", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error is not *ValidationError: %v", err)
	}
	if verr.Fields["scheduled_date"] == "" {
		t.Errorf("Fields = %v, want scheduled_date detail", verr.Fields)
	}
}

func TestPlanningClient_DeleteDryIceOrder(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/dry-ice-orders/o1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client := NewPlanningClient(newTestClient(t, ts.URL), slog.Default())
	if err := client.DeleteDryIceOrder(context.Background(), "o1"); err != nil {
		t.Fatalf("DeleteDryIceOrder() error = %v", err)
	}
}

func TestPlanningClient_ListProfiles(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/profiles" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"profiles": []map[string]any{{"id": "u1", "full_name": "Ada Larsen"}},
			"count":    1,
		})
	}))
	defer ts.Close()

	client := NewPlanningClient(newTestClient(t, ts.URL), slog.Default())
	profiles, err := client.ListProfiles(context.Background())
	if err != nil {
		t.Fatalf("ListProfiles() error = %v", err)
	}
	if len(profiles) != 1 || profiles[0].FullName != "Ada Larsen" {
		t.Errorf("profiles = %+v, want Ada Larsen", profiles)
	}
}
