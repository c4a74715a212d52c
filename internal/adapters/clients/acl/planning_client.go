package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/coldflow/planboard/internal/adapters/clients/acl/directory"
	"github.com/coldflow/planboard/internal/adapters/clients/acl/order"
	"github.com/coldflow/planboard/internal/adapters/clients/acl/task"
	"github.com/coldflow/planboard/internal/adapters/clients/acl/timeoff"
	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/internal/platform/httpclient"
	"github.com/coldflow/planboard/internal/ports"
)

// Compile-time interface check.
var _ ports.PlanningClient = (*PlanningClient)(nil)

// PlanningClient is the outbound adapter for the downstream planning API.
// It implements [ports.PlanningClient]: windowed list queries for the four
// entity kinds, series expansion, batch creation, date moves, and the
// lookup directories.
//
// All methods translate between our domain types and the downstream API's
// representations via the ACL translators in sub-packages [timeoff], [task],
// [order], and [directory]. HTTP errors are mapped to domain errors
// (ErrNotFound, ErrValidation, etc.) by [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, OpenTelemetry tracing, and health checking
// ([ports.HealthChecker]) for every outbound call.
type PlanningClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewPlanningClient creates a PlanningClient that sends requests through
// the given [httpclient.Client]. The client's BaseURL should point to the
// planning API root (e.g. "https://planning-api.example.com").
func NewPlanningClient(client *httpclient.Client, logger *slog.Logger) *PlanningClient {
	return &PlanningClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// --- Windowed list queries ---

// ListTimeOff fetches time-off requests overlapping [start, end] from
// GET /api/v1/time-off-requests.
func (c *PlanningClient) ListTimeOff(ctx context.Context, start, end time.Time) ([]schedule.TimeOff, error) {
	path := "/api/v1/time-off-requests" + rangeQuery(start, end)

	var dto timeoff.TimeOffListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return timeoff.ToDomainTimeOffList(dto)
}

// ListTasks fetches tasks due within [start, end] from GET /api/v1/tasks.
func (c *PlanningClient) ListTasks(ctx context.Context, start, end time.Time) ([]schedule.Task, error) {
	path := "/api/v1/tasks" + rangeQuery(start, end)

	var dto task.TaskListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return task.ToDomainTaskList(dto)
}

// ListDryIceOrders fetches dry-ice orders scheduled within [start, end]
// from GET /api/v1/dry-ice-orders.
func (c *PlanningClient) ListDryIceOrders(ctx context.Context, start, end time.Time) ([]schedule.DryIceOrder, error) {
	path := "/api/v1/dry-ice-orders" + rangeQuery(start, end)

	var dto order.DryIceOrderListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return order.ToDomainDryIceOrderList(dto)
}

// ListGasCylinderOrders fetches gas-cylinder orders scheduled within
// [start, end] from GET /api/v1/gas-cylinder-orders.
func (c *PlanningClient) ListGasCylinderOrders(ctx context.Context, start, end time.Time) ([]schedule.GasCylinderOrder, error) {
	path := "/api/v1/gas-cylinder-orders" + rangeQuery(start, end)

	var dto order.GasCylinderOrderListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return order.ToDomainGasCylinderOrderList(dto)
}

// --- Series operations ---

// ListDryIceSeries fetches the full series rooted at rootID from
// GET /api/v1/dry-ice-orders/{id}/series, regardless of date window.
// Returns [domain.ErrNotFound] if the root does not exist.
func (c *PlanningClient) ListDryIceSeries(ctx context.Context, rootID string) ([]schedule.DryIceOrder, error) {
	path := fmt.Sprintf("/api/v1/dry-ice-orders/%s/series", url.PathEscape(rootID))

	var dto order.DryIceOrderListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return order.ToDomainDryIceOrderList(dto)
}

// CreateDryIceOrders submits a batch of dry-ice orders to
// POST /api/v1/dry-ice-orders/batch. The batch is all-or-nothing
// downstream. Returns [domain.ErrValidation] if any order is rejected.
func (c *PlanningClient) CreateDryIceOrders(ctx context.Context, orders []schedule.DryIceOrder) error {
	reqDTO := order.ToCreateDryIceOrdersRequest(orders)
	return c.req.Do(ctx, http.MethodPost, "/api/v1/dry-ice-orders/batch", http.StatusCreated, reqDTO, nil)
}

// --- Date moves ---

// UpdateTaskDueDate sends a PATCH /api/v1/tasks/{id} with the new due date.
// Returns [domain.ErrNotFound] if the task does not exist.
func (c *PlanningClient) UpdateTaskDueDate(ctx context.Context, id string, due time.Time) error {
	path := fmt.Sprintf("/api/v1/tasks/%s", url.PathEscape(id))
	return c.req.Do(ctx, http.MethodPatch, path, http.StatusOK, task.ToUpdateDueDateRequest(due), nil)
}

// UpdateDryIceOrderDate sends a PATCH /api/v1/dry-ice-orders/{id} with the
// new scheduled date. Returns [domain.ErrNotFound] if the order does not
// exist.
func (c *PlanningClient) UpdateDryIceOrderDate(ctx context.Context, id string, date time.Time) error {
	path := fmt.Sprintf("/api/v1/dry-ice-orders/%s", url.PathEscape(id))
	return c.req.Do(ctx, http.MethodPatch, path, http.StatusOK, order.ToUpdateScheduledDateRequest(date), nil)
}

// UpdateGasCylinderOrderDate sends a PATCH /api/v1/gas-cylinder-orders/{id}
// with the new scheduled date. Returns [domain.ErrNotFound] if the order
// does not exist.
func (c *PlanningClient) UpdateGasCylinderOrderDate(ctx context.Context, id string, date time.Time) error {
	path := fmt.Sprintf("/api/v1/gas-cylinder-orders/%s", url.PathEscape(id))
	return c.req.Do(ctx, http.MethodPatch, path, http.StatusOK, order.ToUpdateScheduledDateRequest(date), nil)
}

// UpdateTimeOffDates sends a PATCH /api/v1/time-off-requests/{id} with the
// new inclusive date range. Returns [domain.ErrNotFound] if the request
// does not exist.
func (c *PlanningClient) UpdateTimeOffDates(ctx context.Context, id string, start, end time.Time) error {
	path := fmt.Sprintf("/api/v1/time-off-requests/%s", url.PathEscape(id))
	return c.req.Do(ctx, http.MethodPatch, path, http.StatusOK, timeoff.ToUpdateDatesRequest(start, end), nil)
}

// DeleteDryIceOrder sends a DELETE /api/v1/dry-ice-orders/{id}. Deleting a
// series root does not cascade to members. Returns [domain.ErrNotFound] if
// the order does not exist.
func (c *PlanningClient) DeleteDryIceOrder(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/v1/dry-ice-orders/%s", url.PathEscape(id))
	return c.req.Do(ctx, http.MethodDelete, path, http.StatusNoContent, nil, nil)
}

// --- Lookup directories ---

// ListProfiles fetches the user directory from GET /api/v1/profiles.
func (c *PlanningClient) ListProfiles(ctx context.Context) ([]schedule.Profile, error) {
	var dto directory.ProfileListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, "/api/v1/profiles", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return directory.ToDomainProfileList(dto), nil
}

// ListCustomers fetches the customer directory from GET /api/v1/customers.
func (c *PlanningClient) ListCustomers(ctx context.Context) ([]schedule.Customer, error) {
	var dto directory.CustomerListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, "/api/v1/customers", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return directory.ToDomainCustomerList(dto), nil
}

// ListTaskTypes fetches the task-type directory from GET /api/v1/task-types.
func (c *PlanningClient) ListTaskTypes(ctx context.Context) ([]schedule.TaskType, error) {
	var dto directory.TaskTypeListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, "/api/v1/task-types", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return directory.ToDomainTaskTypeList(dto), nil
}

// rangeQuery encodes an inclusive date window as query parameters
// (including the leading "?").
func rangeQuery(start, end time.Time) string {
	v := url.Values{}
	v.Set("start_date", start.Format(time.DateOnly))
	v.Set("end_date", end.Format(time.DateOnly))
	return "?" + v.Encode()
}
