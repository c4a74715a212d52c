// Package order implements the Anti-Corruption Layer translators for the
// planning API's dry-ice and gas-cylinder order resources.
package order

import "github.com/shopspring/decimal"

// DryIceOrderDTO matches the downstream dry_ice_orders schema. Dates are
// calendar dates in "2006-01-02" form; quantity_kg is a decimal string.
type DryIceOrderDTO struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"order_number"`
	CustomerID        string          `json:"customer_id"`
	ScheduledDate     string          `json:"scheduled_date"`
	QuantityKg        decimal.Decimal `json:"quantity_kg"`
	ProductType       string          `json:"product_type"`
	Status            string          `json:"status"`
	IsRecurring       bool            `json:"is_recurring"`
	RecurrenceEndDate *string         `json:"recurrence_end_date,omitempty"`
	ParentOrderID     *string         `json:"parent_order_id,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

// GasCylinderOrderDTO matches the downstream gas_cylinder_orders schema.
type GasCylinderOrderDTO struct {
	ID            string `json:"id"`
	OrderNumber   string `json:"order_number"`
	CustomerID    string `json:"customer_id"`
	ScheduledDate string `json:"scheduled_date"`
	CylinderCount int64  `json:"cylinder_count"`
	GasType       string `json:"gas_type"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
}

// CreateDryIceOrdersRequestDTO matches the downstream batch-create payload.
// Orders carry client-generated ids so a series and its parent references
// can be created in one write.
type CreateDryIceOrdersRequestDTO struct {
	Orders []DryIceOrderDTO `json:"orders"`
}

// UpdateScheduledDateRequestDTO matches the downstream PATCH payload for
// moving an order to a new scheduled date.
type UpdateScheduledDateRequestDTO struct {
	ScheduledDate string `json:"scheduled_date"`
}

// DryIceOrderListResponseDTO matches the downstream list response schema.
type DryIceOrderListResponseDTO struct {
	Orders []DryIceOrderDTO `json:"orders"`
	Count  int64            `json:"count"`
}

// GasCylinderOrderListResponseDTO matches the downstream list response schema.
type GasCylinderOrderListResponseDTO struct {
	Orders []GasCylinderOrderDTO `json:"orders"`
	Count  int64                 `json:"count"`
}
