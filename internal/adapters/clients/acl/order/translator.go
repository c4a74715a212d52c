package order

import (
	"fmt"
	"time"

	"github.com/coldflow/planboard/internal/domain/schedule"
)

// ToDomainDryIceOrder converts a downstream DryIceOrderDTO to a domain
// DryIceOrder entity. Customer name is left unresolved; the board fills it
// from the customer directory.
func ToDomainDryIceOrder(dto *DryIceOrderDTO) (schedule.DryIceOrder, error) {
	scheduled, err := time.Parse(time.DateOnly, dto.ScheduledDate)
	if err != nil {
		return schedule.DryIceOrder{}, fmt.Errorf("dry ice order %s: parsing scheduled_date %q: %w", dto.ID, dto.ScheduledDate, err)
	}

	var recEnd *time.Time
	if dto.RecurrenceEndDate != nil && *dto.RecurrenceEndDate != "" {
		end, err := time.Parse(time.DateOnly, *dto.RecurrenceEndDate)
		if err != nil {
			return schedule.DryIceOrder{}, fmt.Errorf("dry ice order %s: parsing recurrence_end_date %q: %w", dto.ID, *dto.RecurrenceEndDate, err)
		}
		recEnd = &end
	}

	var parentID string
	if dto.ParentOrderID != nil {
		parentID = *dto.ParentOrderID
	}

	return schedule.DryIceOrder{
		ID:                dto.ID,
		OrderNumber:       dto.OrderNumber,
		CustomerID:        dto.CustomerID,
		ScheduledDate:     scheduled,
		QuantityKg:        dto.QuantityKg,
		ProductType:       schedule.ProductType(dto.ProductType),
		Status:            schedule.OrderStatus(dto.Status),
		IsRecurring:       dto.IsRecurring,
		RecurrenceEndDate: recEnd,
		ParentOrderID:     parentID,
		Notes:             dto.Notes,
	}, nil
}

// ToDomainDryIceOrderList converts a downstream DryIceOrderListResponseDTO
// to a slice of domain DryIceOrder entities.
func ToDomainDryIceOrderList(dto DryIceOrderListResponseDTO) ([]schedule.DryIceOrder, error) {
	orders := make([]schedule.DryIceOrder, len(dto.Orders))
	for i := range dto.Orders {
		o, err := ToDomainDryIceOrder(&dto.Orders[i])
		if err != nil {
			return nil, err
		}
		orders[i] = o
	}
	return orders, nil
}

// ToDryIceOrderDTO converts a domain DryIceOrder to its downstream
// representation for creation.
func ToDryIceOrderDTO(o *schedule.DryIceOrder) DryIceOrderDTO {
	var recEnd *string
	if o.RecurrenceEndDate != nil {
		s := o.RecurrenceEndDate.Format(time.DateOnly)
		recEnd = &s
	}
	var parentID *string
	if o.ParentOrderID != "" {
		parentID = &o.ParentOrderID
	}

	return DryIceOrderDTO{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		CustomerID:        o.CustomerID,
		ScheduledDate:     o.ScheduledDate.Format(time.DateOnly),
		QuantityKg:        o.QuantityKg,
		ProductType:       string(o.ProductType),
		Status:            string(o.Status),
		IsRecurring:       o.IsRecurring,
		RecurrenceEndDate: recEnd,
		ParentOrderID:     parentID,
		Notes:             o.Notes,
	}
}

// ToCreateDryIceOrdersRequest builds the batch-create payload for a series
// of orders.
func ToCreateDryIceOrdersRequest(orders []schedule.DryIceOrder) CreateDryIceOrdersRequestDTO {
	dtos := make([]DryIceOrderDTO, len(orders))
	for i := range orders {
		dtos[i] = ToDryIceOrderDTO(&orders[i])
	}
	return CreateDryIceOrdersRequestDTO{Orders: dtos}
}

// ToDomainGasCylinderOrder converts a downstream GasCylinderOrderDTO to a
// domain GasCylinderOrder entity.
func ToDomainGasCylinderOrder(dto *GasCylinderOrderDTO) (schedule.GasCylinderOrder, error) {
	scheduled, err := time.Parse(time.DateOnly, dto.ScheduledDate)
	if err != nil {
		return schedule.GasCylinderOrder{}, fmt.Errorf("gas cylinder order %s: parsing scheduled_date %q: %w", dto.ID, dto.ScheduledDate, err)
	}

	return schedule.GasCylinderOrder{
		ID:            dto.ID,
		OrderNumber:   dto.OrderNumber,
		CustomerID:    dto.CustomerID,
		ScheduledDate: scheduled,
		CylinderCount: int(dto.CylinderCount),
		GasType:       schedule.GasType(dto.GasType),
		Status:        schedule.OrderStatus(dto.Status),
		Notes:         dto.Notes,
	}, nil
}

// ToDomainGasCylinderOrderList converts a downstream
// GasCylinderOrderListResponseDTO to a slice of domain entities.
func ToDomainGasCylinderOrderList(dto GasCylinderOrderListResponseDTO) ([]schedule.GasCylinderOrder, error) {
	orders := make([]schedule.GasCylinderOrder, len(dto.Orders))
	for i := range dto.Orders {
		o, err := ToDomainGasCylinderOrder(&dto.Orders[i])
		if err != nil {
			return nil, err
		}
		orders[i] = o
	}
	return orders, nil
}

// ToUpdateScheduledDateRequest builds the PATCH payload for a date move.
func ToUpdateScheduledDateRequest(date time.Time) UpdateScheduledDateRequestDTO {
	return UpdateScheduledDateRequestDTO{ScheduledDate: date.Format(time.DateOnly)}
}
