package schedule

import (
	"fmt"
	"time"

	"github.com/coldflow/planboard/internal/domain"
)

// LeaveType categorizes a time-off request.
type LeaveType string

// Valid leave types.
const (
	LeaveVacation LeaveType = "vacation"
	LeaveSick     LeaveType = "sick"
	LeavePersonal LeaveType = "personal"
	LeaveOther    LeaveType = "other"
)

// IsValid reports whether t is a recognized leave type.
func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveVacation, LeaveSick, LeavePersonal, LeaveOther:
		return true
	}
	return false
}

// RequestStatus is the approval state of a time-off request.
type RequestStatus string

// Valid request statuses.
const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// IsValid reports whether s is a recognized request status.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}

// DayPart narrows a single-day request to part of the working day.
type DayPart string

// Valid day parts.
const (
	DayPartMorning   DayPart = "morning"
	DayPartAfternoon DayPart = "afternoon"
	DayPartFull      DayPart = "full_day"
)

// IsValid reports whether p is a recognized day part.
func (p DayPart) IsValid() bool {
	switch p {
	case DayPartMorning, DayPartAfternoon, DayPartFull:
		return true
	}
	return false
}

// TimeOff is an employee absence over an inclusive date range. It is the only
// range-anchored entity kind; moving it shifts both endpoints, preserving
// the range length.
type TimeOff struct {
	ID        string
	UserID    string
	UserName  string
	StartDate time.Time
	EndDate   time.Time
	LeaveType LeaveType
	Status    RequestStatus
	DayPart   DayPart
	Reason    string
}

// Validate checks business rules for the time-off request.
// Returns a *domain.ValidationError with per-field details, or nil.
func (t *TimeOff) Validate() error {
	fields := make(map[string]string)

	if t.UserID == "" {
		fields["user_id"] = domain.MsgRequired
	}
	if t.StartDate.IsZero() {
		fields["start_date"] = domain.MsgRequired
	}
	if t.EndDate.IsZero() {
		fields["end_date"] = domain.MsgRequired
	}
	if !t.StartDate.IsZero() && !t.EndDate.IsZero() && Day(t.EndDate).Before(Day(t.StartDate)) {
		fields["end_date"] = "must not be before start_date"
	}
	if !t.LeaveType.IsValid() {
		fields["leave_type"] = fmt.Sprintf("invalid: %q", t.LeaveType)
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if t.DayPart != "" && !t.DayPart.IsValid() {
		fields["day_part"] = fmt.Sprintf("invalid: %q", t.DayPart)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Days returns the inclusive length of the request in days.
func (t *TimeOff) Days() int {
	return int(Day(t.EndDate).Sub(Day(t.StartDate))/(24*time.Hour)) + 1
}
