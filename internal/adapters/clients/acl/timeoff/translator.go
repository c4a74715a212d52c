package timeoff

import (
	"fmt"
	"time"

	"github.com/coldflow/planboard/internal/domain/schedule"
)

// ToDomainTimeOff converts a downstream TimeOffRequestDTO to a domain
// TimeOff entity. Malformed dates are rejected rather than zeroed: a request
// with no usable range cannot be placed on the board.
func ToDomainTimeOff(dto *TimeOffRequestDTO) (schedule.TimeOff, error) {
	start, err := time.Parse(time.DateOnly, dto.StartDate)
	if err != nil {
		return schedule.TimeOff{}, fmt.Errorf("time off %s: parsing start_date %q: %w", dto.ID, dto.StartDate, err)
	}
	end, err := time.Parse(time.DateOnly, dto.EndDate)
	if err != nil {
		return schedule.TimeOff{}, fmt.Errorf("time off %s: parsing end_date %q: %w", dto.ID, dto.EndDate, err)
	}

	return schedule.TimeOff{
		ID:        dto.ID,
		UserID:    dto.UserID,
		StartDate: start,
		EndDate:   end,
		LeaveType: schedule.LeaveType(dto.LeaveType),
		Status:    schedule.RequestStatus(dto.Status),
		DayPart:   schedule.DayPart(dto.DayPart),
		Reason:    dto.Reason,
	}, nil
}

// ToDomainTimeOffList converts a downstream TimeOffListResponseDTO to a
// slice of domain TimeOff entities.
func ToDomainTimeOffList(dto TimeOffListResponseDTO) ([]schedule.TimeOff, error) {
	requests := make([]schedule.TimeOff, len(dto.Requests))
	for i := range dto.Requests {
		t, err := ToDomainTimeOff(&dto.Requests[i])
		if err != nil {
			return nil, err
		}
		requests[i] = t
	}
	return requests, nil
}

// ToUpdateDatesRequest builds the PATCH payload for moving a request to a
// new inclusive range.
func ToUpdateDatesRequest(start, end time.Time) UpdateDatesRequestDTO {
	return UpdateDatesRequestDTO{
		StartDate: start.Format(time.DateOnly),
		EndDate:   end.Format(time.DateOnly),
	}
}
