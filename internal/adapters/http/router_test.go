package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/coldflow/planboard/internal/adapters/http"
	"github.com/coldflow/planboard/internal/adapters/http/handlers"
	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/internal/ports"
	"github.com/coldflow/planboard/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockBoardService) {
	t.Helper()
	svc := mocks.NewMockBoardService(t)
	perms := mocks.NewMockPermissionProvider(t)
	registry := mocks.NewMockHealthRegistry(t)

	bh := handlers.NewBoardHandler(svc, perms)
	oh := handlers.NewOrdersHandler(svc, perms)
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter(bh, oh, hh)
	return router, svc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/board"},
		{http.MethodGet, "/api/v1/board/days/{date}"},
		{http.MethodGet, "/api/v1/board/feed.ics"},
		{http.MethodPost, "/api/v1/board/moves"},
		{http.MethodPost, "/api/v1/board/undo"},
		{http.MethodPost, "/api/v1/orders/dry-ice"},
		{http.MethodDelete, "/api/v1/orders/dry-ice/{id}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBoardService(t)
	perms := mocks.NewMockPermissionProvider(t)
	registry := mocks.NewMockHealthRegistry(t)

	bh := handlers.NewBoardHandler(svc, perms)
	oh := handlers.NewOrdersHandler(svc, perms)
	hh := handlers.NewHealthHandler(registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(bh, oh, hh, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationGetBoard(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t)

	window, err := schedule.WindowFor(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), schedule.ViewMonth)
	if err != nil {
		t.Fatalf("WindowFor() error = %v", err)
	}
	svc.EXPECT().
		Refresh(mock.Anything, window, schedule.AllVisible(), schedule.Filter{}).
		Return(&ports.BoardSnapshot{Window: window, FetchedAt: time.Now()}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/board?date=2025-01-15", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/board", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
