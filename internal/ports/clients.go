package ports

import (
	"context"
	"time"

	"github.com/coldflow/planboard/internal/domain/schedule"
)

// PlanningClient defines the client port for the downstream planning API.
// Implemented by the ACL adapter; called by the application layer.
// Range queries are inclusive on both endpoints; for time off the range
// matches any request whose [start, end] interval overlaps the window.
type PlanningClient interface {
	// ListTimeOff returns time-off requests overlapping [start, end].
	ListTimeOff(ctx context.Context, start, end time.Time) ([]schedule.TimeOff, error)

	// ListTasks returns tasks due within [start, end].
	ListTasks(ctx context.Context, start, end time.Time) ([]schedule.Task, error)

	// ListDryIceOrders returns dry-ice orders scheduled within [start, end].
	ListDryIceOrders(ctx context.Context, start, end time.Time) ([]schedule.DryIceOrder, error)

	// ListGasCylinderOrders returns gas-cylinder orders scheduled within
	// [start, end].
	ListGasCylinderOrders(ctx context.Context, start, end time.Time) ([]schedule.GasCylinderOrder, error)

	// ListDryIceSeries returns the full series rooted at rootID: the root
	// order plus every member referencing it, regardless of date window.
	// Returns domain.ErrNotFound if the root does not exist.
	ListDryIceSeries(ctx context.Context, rootID string) ([]schedule.DryIceOrder, error)

	// CreateDryIceOrders submits a batch of dry-ice orders in one write.
	// The batch is all-or-nothing downstream.
	CreateDryIceOrders(ctx context.Context, orders []schedule.DryIceOrder) error

	// UpdateTaskDueDate moves a task to a new due date.
	// Returns domain.ErrNotFound if the task does not exist.
	UpdateTaskDueDate(ctx context.Context, id string, due time.Time) error

	// UpdateDryIceOrderDate moves a dry-ice order to a new scheduled date.
	// Returns domain.ErrNotFound if the order does not exist.
	UpdateDryIceOrderDate(ctx context.Context, id string, date time.Time) error

	// UpdateGasCylinderOrderDate moves a gas-cylinder order to a new
	// scheduled date.
	// Returns domain.ErrNotFound if the order does not exist.
	UpdateGasCylinderOrderDate(ctx context.Context, id string, date time.Time) error

	// UpdateTimeOffDates moves a time-off request to a new inclusive range.
	// Returns domain.ErrNotFound if the request does not exist.
	UpdateTimeOffDates(ctx context.Context, id string, start, end time.Time) error

	// DeleteDryIceOrder deletes a single order. Deleting a series root does
	// not cascade to members.
	// Returns domain.ErrNotFound if the order does not exist.
	DeleteDryIceOrder(ctx context.Context, id string) error

	// ListProfiles returns the user directory used to resolve user ids to
	// display names.
	ListProfiles(ctx context.Context) ([]schedule.Profile, error)

	// ListCustomers returns the customer directory.
	ListCustomers(ctx context.Context) ([]schedule.Customer, error)

	// ListTaskTypes returns the task-type directory (names and colors).
	ListTaskTypes(ctx context.Context) ([]schedule.TaskType, error)
}

// Notifier publishes user-facing outcome notifications for mutations
// (success toasts, failure alerts). Implementations must not block the
// mutation path.
type Notifier interface {
	// Notify publishes a notification. Kind is "success" or "error".
	Notify(ctx context.Context, kind NotificationKind, message string)
}

// NotificationKind classifies a notification.
type NotificationKind string

// Valid notification kinds.
const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// PermissionProvider answers authorization questions for inbound requests.
// Mutating board operations require an admin caller; the handlers consult
// this before invoking the service.
type PermissionProvider interface {
	// IsAdmin reports whether the user may mutate the board.
	IsAdmin(ctx context.Context, userID string) (bool, error)
}
