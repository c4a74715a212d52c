package task

import (
	"fmt"
	"time"

	"github.com/coldflow/planboard/internal/domain/schedule"
)

// ToDomainTask converts a downstream TaskDTO to a domain Task entity.
// Type name and color are left unresolved; the board fills them from the
// task-type directory.
func ToDomainTask(dto *TaskDTO) (schedule.Task, error) {
	due, err := time.Parse(time.DateOnly, dto.DueDate)
	if err != nil {
		return schedule.Task{}, fmt.Errorf("task %s: parsing due_date %q: %w", dto.ID, dto.DueDate, err)
	}

	return schedule.Task{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		AssigneeID:  dto.AssigneeID,
		DueDate:     due,
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		Status:      schedule.TaskStatus(dto.Status),
		Priority:    schedule.Priority(dto.Priority),
		TypeID:      dto.TaskTypeID,
		SeriesID:    dto.SeriesID,
	}, nil
}

// ToDomainTaskList converts a downstream TaskListResponseDTO to a slice of
// domain Task entities.
func ToDomainTaskList(dto TaskListResponseDTO) ([]schedule.Task, error) {
	tasks := make([]schedule.Task, len(dto.Tasks))
	for i := range dto.Tasks {
		t, err := ToDomainTask(&dto.Tasks[i])
		if err != nil {
			return nil, err
		}
		tasks[i] = t
	}
	return tasks, nil
}

// ToUpdateDueDateRequest builds the PATCH payload for a due-date move.
func ToUpdateDueDateRequest(due time.Time) UpdateDueDateRequestDTO {
	return UpdateDueDateRequestDTO{DueDate: due.Format(time.DateOnly)}
}
