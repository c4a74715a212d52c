package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/coldflow/planboard/internal/domain"
)

// TaskStatus is the progress state of a task.
type TaskStatus string

// Valid task statuses.
const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// IsValid reports whether s is a recognized task status.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Priority ranks tasks for display ordering.
type Priority string

// Valid priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is a recognized priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of scheduled work anchored to its due date. StartTime and
// EndTime are optional wall-clock bounds in "HH:MM" form; they refine display
// within the day and do not affect calendar placement.
type Task struct {
	ID           string
	Title        string
	Description  string
	AssigneeID   string
	AssigneeName string
	DueDate      time.Time
	StartTime    string
	EndTime      string
	Status       TaskStatus
	Priority     Priority
	TypeID       string
	TypeName     string
	Color        string
	SeriesID     string
}

// Validate checks business rules for the task.
// Returns a *domain.ValidationError with per-field details, or nil.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if t.DueDate.IsZero() {
		fields["due_date"] = domain.MsgRequired
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}
	if !t.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", t.Priority)
	}

	start, err := parseClock(t.StartTime)
	if t.StartTime != "" && err != nil {
		fields["start_time"] = "must be HH:MM"
	}
	end, err := parseClock(t.EndTime)
	if t.EndTime != "" && err != nil {
		fields["end_time"] = "must be HH:MM"
	}
	if t.StartTime != "" && t.EndTime != "" && fields["start_time"] == "" && fields["end_time"] == "" {
		if end < start {
			fields["end_time"] = "must not be before start_time"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// parseClock parses an "HH:MM" value into minutes since midnight.
func parseClock(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
