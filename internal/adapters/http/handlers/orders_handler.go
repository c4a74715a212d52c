package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coldflow/planboard/internal/adapters/http/dto"
	"github.com/coldflow/planboard/internal/ports"
)

// OrdersHandler handles HTTP requests for order creation and deletion.
type OrdersHandler struct {
	svc   ports.BoardService
	perms ports.PermissionProvider
}

// NewOrdersHandler creates a new OrdersHandler with the given service and
// permission ports.
func NewOrdersHandler(svc ports.BoardService, perms ports.PermissionProvider) *OrdersHandler {
	return &OrdersHandler{svc: svc, perms: perms}
}

// CreateDryIceSeries handles POST /api/v1/orders/dry-ice. The recurrence is
// expanded into the full series and submitted as one batch; the response
// lists the created orders, root first.
func (h *OrdersHandler) CreateDryIceSeries(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.perms) {
		return
	}

	var req dto.CreateDryIceSeriesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	orders, err := h.svc.CreateDryIceSeries(r.Context(), req.ToBaseOrder(), req.ToRecurrence())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToSeriesCreatedResponse(orders))
}

// DeleteDryIceOrder handles DELETE /api/v1/orders/dry-ice/{id}. Deleting a
// series root leaves the remaining members in place.
func (h *OrdersHandler) DeleteDryIceOrder(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.perms) {
		return
	}

	if err := h.svc.DeleteDryIceOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
