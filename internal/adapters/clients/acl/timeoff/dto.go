// Package timeoff implements the Anti-Corruption Layer translators for the
// planning API's time-off request resources.
package timeoff

// TimeOffRequestDTO matches the downstream time_off_requests schema.
// Dates are calendar dates in "2006-01-02" form, no time component.
type TimeOffRequestDTO struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	LeaveType string `json:"leave_type"`
	Status    string `json:"status"`
	DayPart   string `json:"day_part,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// UpdateDatesRequestDTO matches the downstream PATCH payload for moving a
// request to a new inclusive date range.
type UpdateDatesRequestDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// TimeOffListResponseDTO matches the downstream list response schema.
type TimeOffListResponseDTO struct {
	Requests []TimeOffRequestDTO `json:"requests"`
	Count    int64               `json:"count"`
}
