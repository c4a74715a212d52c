// Package task implements the Anti-Corruption Layer translators for the
// planning API's task resources.
package task

// TaskDTO matches the downstream tasks schema. due_date is a calendar date
// in "2006-01-02" form; start_time and end_time are optional "HH:MM" clocks.
type TaskDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssigneeID  string `json:"assignee_id,omitempty"`
	DueDate     string `json:"due_date"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	TaskTypeID  string `json:"task_type_id,omitempty"`
	SeriesID    string `json:"series_id,omitempty"`
}

// UpdateDueDateRequestDTO matches the downstream PATCH payload for moving a
// task to a new due date.
type UpdateDueDateRequestDTO struct {
	DueDate string `json:"due_date"`
}

// TaskListResponseDTO matches the downstream list response schema.
type TaskListResponseDTO struct {
	Tasks []TaskDTO `json:"tasks"`
	Count int64     `json:"count"`
}
