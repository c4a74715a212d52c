package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coldflow/planboard/internal/domain"
)

// OrderStatus is the fulfillment state of a production order.
type OrderStatus string

// Valid order statuses.
const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid reports whether s is a recognized order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// ProductType is the dry-ice product form.
type ProductType string

// Valid dry-ice product types.
const (
	ProductBlocks  ProductType = "blocks"
	ProductPellets ProductType = "pellets"
	ProductSticks  ProductType = "sticks"
)

// IsValid reports whether p is a recognized product type.
func (p ProductType) IsValid() bool {
	switch p {
	case ProductBlocks, ProductPellets, ProductSticks:
		return true
	}
	return false
}

// GasType identifies the gas in a cylinder order.
type GasType string

// Valid gas types.
const (
	GasCO2       GasType = "co2"
	GasNitrogen  GasType = "nitrogen"
	GasArgon     GasType = "argon"
	GasAcetylene GasType = "acetylene"
	GasOxygen    GasType = "oxygen"
	GasHelium    GasType = "helium"
	GasOther     GasType = "other"
)

// IsValid reports whether g is a recognized gas type.
func (g GasType) IsValid() bool {
	switch g {
	case GasCO2, GasNitrogen, GasArgon, GasAcetylene, GasOxygen, GasHelium, GasOther:
		return true
	}
	return false
}

// DryIceOrder is a dated production order for dry ice. It is the only
// series-capable entity kind: a recurring creation request expands into a
// root order plus dated member orders referencing the root.
type DryIceOrder struct {
	ID                string
	OrderNumber       string
	CustomerID        string
	CustomerName      string
	ScheduledDate     time.Time
	QuantityKg        decimal.Decimal
	ProductType       ProductType
	Status            OrderStatus
	IsRecurring       bool
	RecurrenceEndDate *time.Time
	ParentOrderID     string
	Notes             string
}

// Validate checks business rules for the dry-ice order.
// Returns a *domain.ValidationError with per-field details, or nil.
func (o *DryIceOrder) Validate() error {
	fields := make(map[string]string)

	if o.CustomerID == "" {
		fields["customer_id"] = domain.MsgRequired
	}
	if o.ScheduledDate.IsZero() {
		fields["scheduled_date"] = domain.MsgRequired
	}
	if o.QuantityKg.LessThanOrEqual(decimal.Zero) {
		fields["quantity_kg"] = fmt.Sprintf("must be positive, got %s", o.QuantityKg)
	}
	if !o.ProductType.IsValid() {
		fields["product_type"] = fmt.Sprintf("invalid: %q", o.ProductType)
	}
	if !o.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", o.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// GasCylinderOrder is a dated delivery order for gas cylinders. It is not
// series-capable.
type GasCylinderOrder struct {
	ID            string
	OrderNumber   string
	CustomerID    string
	CustomerName  string
	ScheduledDate time.Time
	CylinderCount int
	GasType       GasType
	Status        OrderStatus
	Notes         string
}

// Validate checks business rules for the gas-cylinder order.
// Returns a *domain.ValidationError with per-field details, or nil.
func (o *GasCylinderOrder) Validate() error {
	fields := make(map[string]string)

	if o.CustomerID == "" {
		fields["customer_id"] = domain.MsgRequired
	}
	if o.ScheduledDate.IsZero() {
		fields["scheduled_date"] = domain.MsgRequired
	}
	if o.CylinderCount <= 0 {
		fields["cylinder_count"] = fmt.Sprintf("must be positive, got %d", o.CylinderCount)
	}
	if !o.GasType.IsValid() {
		fields["gas_type"] = fmt.Sprintf("invalid: %q", o.GasType)
	}
	if !o.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", o.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Order-number prefixes per order kind.
const (
	orderPrefixDryIce      = "DI"
	orderPrefixGasCylinder = "GC"
)

// NewDryIceOrderNumber builds an order number of the form DI-yyyyMMdd-xxxx
// for an order anchored on the given date.
func NewDryIceOrderNumber(date time.Time) string {
	return newOrderNumber(orderPrefixDryIce, date)
}

// NewGasCylinderOrderNumber builds an order number of the form GC-yyyyMMdd-xxxx.
func NewGasCylinderOrderNumber(date time.Time) string {
	return newOrderNumber(orderPrefixGasCylinder, date)
}

func newOrderNumber(prefix string, date time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	return fmt.Sprintf("%s-%s-%s", prefix, date.Format("20060102"), suffix)
}

// MemberOrderNumber derives the order number for the n-th series member
// (n >= 1) by suffixing the root's number.
func MemberOrderNumber(root string, n int) string {
	return fmt.Sprintf("%s-%d", root, n)
}
