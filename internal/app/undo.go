package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/internal/ports"
)

// lastMove is the single-slot undo buffer. Only a successful single task
// move fills it; every other successful mutation clears it, and undo
// consumes it whether or not the replay succeeds.
type lastMove struct {
	taskID string
	prev   time.Time
	next   time.Time
}

// Undo replays the previous date of the last single task move through the
// optimistic executor. Returns (nil, nil) when the buffer is empty; a
// second consecutive Undo is therefore a no-op. The buffer is cleared
// unconditionally, so a failed replay cannot be retried through Undo.
func (b *Board) Undo(ctx context.Context) (*ports.MoveResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	la := b.last
	b.last = nil
	if la == nil {
		return nil, nil
	}

	b.logger.InfoContext(ctx, "undoing task move",
		slog.String("task_id", la.taskID),
		slog.Time("restore_to", la.prev),
	)

	change := schedule.DateChange{ID: la.taskID, From: la.next, To: la.prev}

	var act *funcAction
	if it, ok := b.findItem(la.taskID, schedule.KindTask); ok {
		t := it.Task
		prev := t.DueDate
		act = &funcAction{
			desc:   fmt.Sprintf("undo move of task %s", la.taskID),
			apply:  func() { t.DueDate = la.prev },
			revert: func() { t.DueDate = prev },
			write:  func(ctx context.Context) error { return b.client.UpdateTaskDueDate(ctx, la.taskID, la.prev) },
		}
	} else {
		// The task fell out of the snapshot (window change); restore the
		// downstream record anyway.
		act = &funcAction{
			desc:   fmt.Sprintf("undo move of task %s", la.taskID),
			apply:  func() {},
			revert: func() {},
			write:  func(ctx context.Context) error { return b.client.UpdateTaskDueDate(ctx, la.taskID, la.prev) },
		}
	}

	if err := b.execute(ctx, act); err != nil {
		return nil, err
	}
	return &ports.MoveResult{Changes: []schedule.DateChange{change}}, nil
}
