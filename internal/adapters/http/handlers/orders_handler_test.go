package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/coldflow/planboard/internal/adapters/http/dto"
	"github.com/coldflow/planboard/internal/adapters/http/handlers"
	"github.com/coldflow/planboard/internal/domain"
	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/mocks"
)

func validSeriesRequest() dto.CreateDryIceSeriesRequest {
	return dto.CreateDryIceSeriesRequest{
		CustomerID:    "c1",
		ScheduledDate: "2025-01-06",
		QuantityKg:    decimal.RequireFromString("25.5"),
		ProductType:   "blocks",
		Recurrence: &dto.RecurrenceRequest{
			IntervalWeeks: 1,
			EndDate:       "2025-01-20",
		},
	}
}

func TestCreateDryIceSeries_Created(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBoardService(t)
	perms := mocks.NewMockPermissionProvider(t)
	h := handlers.NewOrdersHandler(svc, perms)

	perms.EXPECT().IsAdmin(mock.Anything, adminUserID).Return(true, nil)
	seriesEnd := day(2025, 1, 20)
	svc.EXPECT().
		CreateDryIceSeries(mock.Anything, mock.Anything, schedule.RecurrenceRequest{
			Anchor:   day(2025, 1, 6),
			Interval: 1,
			EndDate:  &seriesEnd,
		}).
		Return([]schedule.DryIceOrder{
			{ID: "o1", OrderNumber: "DI-20250106-ab12", ScheduledDate: day(2025, 1, 6)},
			{ID: "o2", OrderNumber: "DI-20250106-ab12-1", ScheduledDate: day(2025, 1, 13)},
			{ID: "o3", OrderNumber: "DI-20250106-ab12-2", ScheduledDate: day(2025, 1, 20)},
		}, nil)

	rec := httptest.NewRecorder()
	req := adminRequest(t, http.MethodPost, "/api/v1/orders/dry-ice", validSeriesRequest())
	h.CreateDryIceSeries(rec, req)

	requireStatus(t, rec, http.StatusCreated)

	resp := decodeJSON[dto.SeriesCreatedResponse](t, rec)
	if resp.Count != 3 || resp.Orders[0].ID != "o1" {
		t.Errorf("response = %+v, want 3 orders with the root first", resp)
	}
	if resp.Orders[2].ScheduledDate != "2025-01-20" {
		t.Errorf("last occurrence = %s, want 2025-01-20", resp.Orders[2].ScheduledDate)
	}
}

func TestCreateDryIceSeries_MissingRecurrence(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBoardService(t)
	perms := mocks.NewMockPermissionProvider(t)
	h := handlers.NewOrdersHandler(svc, perms)

	perms.EXPECT().IsAdmin(mock.Anything, adminUserID).Return(true, nil)

	body := validSeriesRequest()
	body.Recurrence = nil

	rec := httptest.NewRecorder()
	req := adminRequest(t, http.MethodPost, "/api/v1/orders/dry-ice", body)
	h.CreateDryIceSeries(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateDryIceSeries_Forbidden(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBoardService(t)
	perms := mocks.NewMockPermissionProvider(t)
	h := handlers.NewOrdersHandler(svc, perms)

	perms.EXPECT().IsAdmin(mock.Anything, "u-viewer").Return(false, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/dry-ice", jsonBody(t, validSeriesRequest()))
	req.Header.Set("X-User-ID", "u-viewer")
	h.CreateDryIceSeries(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

func TestDeleteDryIceOrder_Deleted(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBoardService(t)
	perms := mocks.NewMockPermissionProvider(t)
	h := handlers.NewOrdersHandler(svc, perms)

	perms.EXPECT().IsAdmin(mock.Anything, adminUserID).Return(true, nil)
	svc.EXPECT().DeleteDryIceOrder(mock.Anything, "o42").Return(nil)

	rec := httptest.NewRecorder()
	req := adminRequest(t, http.MethodDelete, "/api/v1/orders/dry-ice/o42", nil)
	h.DeleteDryIceOrder(rec, withChiParams(req, map[string]string{"id": "o42"}))

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteDryIceOrder_NotFound(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBoardService(t)
	perms := mocks.NewMockPermissionProvider(t)
	h := handlers.NewOrdersHandler(svc, perms)

	perms.EXPECT().IsAdmin(mock.Anything, adminUserID).Return(true, nil)
	svc.EXPECT().DeleteDryIceOrder(mock.Anything, "missing").Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := adminRequest(t, http.MethodDelete, "/api/v1/orders/dry-ice/missing", nil)
	h.DeleteDryIceOrder(rec, withChiParams(req, map[string]string{"id": "missing"}))

	requireStatus(t, rec, http.StatusNotFound)
}

func TestDeleteDryIceOrder_Forbidden(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBoardService(t)
	perms := mocks.NewMockPermissionProvider(t)
	h := handlers.NewOrdersHandler(svc, perms)

	perms.EXPECT().IsAdmin(mock.Anything, "u-viewer").Return(false, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/orders/dry-ice/o42", nil)
	req.Header.Set("X-User-ID", "u-viewer")
	h.DeleteDryIceOrder(rec, withChiParams(req, map[string]string{"id": "o42"}))

	requireStatus(t, rec, http.StatusForbidden)
}

func TestCreateDryIceSeries_DownstreamFailure(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockBoardService(t)
	perms := mocks.NewMockPermissionProvider(t)
	h := handlers.NewOrdersHandler(svc, perms)

	perms.EXPECT().IsAdmin(mock.Anything, adminUserID).Return(true, nil)
	svc.EXPECT().
		CreateDryIceSeries(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := adminRequest(t, http.MethodPost, "/api/v1/orders/dry-ice", validSeriesRequest())
	h.CreateDryIceSeries(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}
