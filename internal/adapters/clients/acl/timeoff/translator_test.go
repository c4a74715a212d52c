package timeoff

import (
	"testing"
	"time"

	"github.com/coldflow/planboard/internal/domain/schedule"
)

func TestToDomainTimeOff_FieldMapping(t *testing.T) {
	t.Parallel()

	dto := &TimeOffRequestDTO{
		ID:        "l1",
		UserID:    "u1",
		StartDate: "2025-01-08",
		EndDate:   "2025-01-10",
		LeaveType: "vacation",
		Status:    "approved",
		DayPart:   "full_day",
		Reason:    "winter holiday",
	}

	got, err := ToDomainTimeOff(dto)
	if err != nil {
		t.Fatalf("ToDomainTimeOff() error = %v", err)
	}

	if got.ID != "l1" || got.UserID != "u1" {
		t.Errorf("identity = %q/%q, want l1/u1", got.ID, got.UserID)
	}
	if !got.StartDate.Equal(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v, want Jan 8", got.StartDate)
	}
	if !got.EndDate.Equal(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("EndDate = %v, want Jan 10", got.EndDate)
	}
	if got.LeaveType != schedule.LeaveVacation {
		t.Errorf("LeaveType = %q, want %q", got.LeaveType, schedule.LeaveVacation)
	}
	if got.Status != schedule.RequestApproved {
		t.Errorf("Status = %q, want %q", got.Status, schedule.RequestApproved)
	}
	if got.DayPart != schedule.DayPartFull {
		t.Errorf("DayPart = %q, want %q", got.DayPart, schedule.DayPartFull)
	}
}

func TestToDomainTimeOff_MalformedDate(t *testing.T) {
	t.Parallel()

	dto := &TimeOffRequestDTO{ID: "l1", StartDate: "2025-01-08", EndDate: "soon"}
	if _, err := ToDomainTimeOff(dto); err == nil {
		t.Error("ToDomainTimeOff() returned nil error for malformed end_date")
	}
}

func TestToUpdateDatesRequest(t *testing.T) {
	t.Parallel()

	got := ToUpdateDatesRequest(
		time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	)
	if got.StartDate != "2025-01-13" || got.EndDate != "2025-01-15" {
		t.Errorf("payload = %+v, want 2025-01-13..2025-01-15", got)
	}
}
