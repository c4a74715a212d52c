package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/internal/ports"
)

const adminUserID = "u-admin"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func taskItem(id string, due time.Time) schedule.Item {
	return schedule.NewTaskItem(&schedule.Task{
		ID:       id,
		Title:    "Inspect compressor",
		DueDate:  due,
		Status:   schedule.TaskPending,
		Priority: schedule.PriorityHigh,
	})
}

func monthSnapshot(t *testing.T, items ...schedule.Item) *ports.BoardSnapshot {
	t.Helper()
	window, err := schedule.WindowFor(day(2025, 1, 15), schedule.ViewMonth)
	if err != nil {
		t.Fatalf("WindowFor() error = %v", err)
	}
	return &ports.BoardSnapshot{
		Window:    window,
		Items:     items,
		FetchedAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
