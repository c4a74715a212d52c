package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coldflow/planboard/internal/adapters/http/dto"
	"github.com/coldflow/planboard/internal/app"
	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/internal/ports"
)

// BoardHandler handles HTTP requests for the aggregated calendar board:
// window queries, drop resolution, undo and the calendar feed.
type BoardHandler struct {
	svc   ports.BoardService
	perms ports.PermissionProvider
}

// NewBoardHandler creates a new BoardHandler with the given service and
// permission ports.
func NewBoardHandler(svc ports.BoardService, perms ports.PermissionProvider) *BoardHandler {
	return &BoardHandler{svc: svc, perms: perms}
}

// GetBoard handles GET /api/v1/board. It runs an aggregation pass over the
// window implied by the date and view parameters and returns the snapshot.
// The list view fetches the month window and groups items by date.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	current, err := parseDateQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	view, err := parseView(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	vis, err := parseVisibility(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	windowView := view
	if view == schedule.ViewList {
		windowView = schedule.ViewMonth
	}
	window, err := schedule.WindowFor(current, windowView)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	snap, err := h.svc.Refresh(r.Context(), window, vis, parseFilter(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if view == schedule.ViewList {
		writeJSON(w, http.StatusOK, dto.ToListResponse(schedule.ListBuckets(snap.Items)))
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBoardResponse(snap))
}

// GetDay handles GET /api/v1/board/days/{date}. It returns the current
// snapshot's items occurring on that day without refetching.
func (h *BoardHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	day, err := parseDateParam("date", chi.URLParam(r, "date"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDayResponse(day, h.svc.ItemsForDay(day)))
}

// Move handles POST /api/v1/board/moves. A drop on a series member without a
// scope returns needs_scope so the client can ask the single/series question.
// A series move whose member writes partially failed returns 207 with both
// the applied and the failed changes.
func (h *BoardHandler) Move(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.perms) {
		return
	}

	var req dto.MoveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.Move(r.Context(), req.ToServiceRequest())

	var perr *app.PartialSeriesMoveError
	switch {
	case errors.As(err, &perr):
		resp := dto.ToMoveResponse(res)
		resp.Failed = make([]dto.FailedChangeResponse, len(perr.Failed))
		for i, c := range perr.Failed {
			resp.Failed[i] = dto.FailedChangeResponse{ID: c.ID, Message: perr.Errs[i].Error()}
		}
		writeJSON(w, http.StatusMultiStatus, resp)
	case err != nil:
		dto.WriteErrorResponse(w, r, err)
	default:
		writeJSON(w, http.StatusOK, dto.ToMoveResponse(res))
	}
}

// Undo handles POST /api/v1/board/undo. An empty undo buffer returns 204.
func (h *BoardHandler) Undo(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r, h.perms) {
		return
	}

	res, err := h.svc.Undo(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if res == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMoveResponse(res))
}

// Feed handles GET /api/v1/board/feed.ics, serving the current snapshot as
// an iCalendar document.
func (h *BoardHandler) Feed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(h.svc.FeedICS())); err != nil {
		slog.ErrorContext(r.Context(), "failed to write calendar feed", slog.Any("error", err))
	}
}
