package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/coldflow/planboard/internal/adapters/http/dto"
	"github.com/coldflow/planboard/internal/domain"
	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/internal/ports"
)

// userIDHeader carries the calling user's identity, set by the edge proxy.
const userIDHeader = "X-User-ID"

// parseDateParam parses a date value in 2006-01-02 form.
func parseDateParam(field, raw string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, &domain.ValidationError{
			Fields: map[string]string{field: "must be a date in 2006-01-02 form"},
		}
	}
	return d, nil
}

// parseDateQuery parses the "date" query parameter, defaulting to today.
func parseDateQuery(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return schedule.Day(time.Now()), nil
	}
	return parseDateParam("date", raw)
}

// parseView parses the "view" query parameter, defaulting to the month view.
func parseView(r *http.Request) (schedule.View, error) {
	raw := r.URL.Query().Get("view")
	if raw == "" {
		return schedule.ViewMonth, nil
	}
	v := schedule.View(raw)
	if !v.IsValid() {
		return "", &domain.ValidationError{
			Fields: map[string]string{"view": fmt.Sprintf("invalid: %q", raw)},
		}
	}
	return v, nil
}

// parseVisibility parses the "kinds" query parameter, a comma-separated list
// of entity kinds to show. An absent parameter shows everything.
func parseVisibility(r *http.Request) (schedule.Visibility, error) {
	raw := r.URL.Query().Get("kinds")
	if raw == "" {
		return schedule.AllVisible(), nil
	}

	var vis schedule.Visibility
	for _, part := range strings.Split(raw, ",") {
		switch schedule.Kind(strings.TrimSpace(part)) {
		case schedule.KindTimeOff:
			vis.TimeOff = true
		case schedule.KindTask:
			vis.Tasks = true
		case schedule.KindDryIceOrder:
			vis.DryIce = true
		case schedule.KindGasCylinderOrder:
			vis.GasCylinders = true
		default:
			return schedule.Visibility{}, &domain.ValidationError{
				Fields: map[string]string{"kinds": fmt.Sprintf("unknown kind %q", part)},
			}
		}
	}
	return vis, nil
}

// parseFilter reads the optional attribute filters from the query string.
// Values are passed through as-is; an unmatched value simply matches nothing.
func parseFilter(r *http.Request) schedule.Filter {
	q := r.URL.Query()
	return schedule.Filter{
		UserID:        q.Get("user_id"),
		CustomerID:    q.Get("customer_id"),
		LeaveType:     schedule.LeaveType(q.Get("leave_type")),
		RequestStatus: schedule.RequestStatus(q.Get("request_status")),
		TaskStatus:    schedule.TaskStatus(q.Get("task_status")),
		TaskTypeID:    q.Get("task_type_id"),
		Priority:      schedule.Priority(q.Get("priority")),
	}
}

// requireAdmin gates mutating endpoints on the caller's admin permission.
// On a missing identity or a denied check it writes an error response and
// returns false.
func requireAdmin(w http.ResponseWriter, r *http.Request, perms ports.PermissionProvider) bool {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		dto.WriteErrorResponse(w, r, fmt.Errorf("missing %s header: %w", userIDHeader, domain.ErrForbidden))
		return false
	}

	admin, err := perms.IsAdmin(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	if !admin {
		dto.WriteErrorResponse(w, r, fmt.Errorf("user %s may not modify the board: %w", userID, domain.ErrForbidden))
		return false
	}
	return true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
