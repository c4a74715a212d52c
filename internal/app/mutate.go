package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/coldflow/planboard/internal/app/fanout"
	"github.com/coldflow/planboard/internal/domain"
	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/internal/ports"
)

// PartialSeriesMoveError reports a series move where some member writes
// failed. Succeeded members keep their new dates (no compensation); failed
// members were reverted locally and keep their old dates downstream. The
// next aggregation pass reconciles the snapshot with downstream truth.
type PartialSeriesMoveError struct {
	Failed []schedule.DateChange
	Errs   []error
}

func (e *PartialSeriesMoveError) Error() string {
	return fmt.Sprintf("series move partially failed: %d member(s): %v", len(e.Failed), errors.Join(e.Errs...))
}

func (e *PartialSeriesMoveError) Unwrap() error {
	return errors.Join(e.Errs...)
}

// funcAction adapts closures to domain.Action.
type funcAction struct {
	desc   string
	apply  func()
	revert func()
	write  func(ctx context.Context) error
}

func (a *funcAction) Apply()                          { a.apply() }
func (a *funcAction) Revert()                         { a.revert() }
func (a *funcAction) Write(ctx context.Context) error { return a.write(ctx) }
func (a *funcAction) Description() string             { return a.desc }

// execute runs one optimistic mutation: apply the local change, perform the
// downstream write, revert the local change and notify on failure.
// Callers must hold b.mu.
func (b *Board) execute(ctx context.Context, act domain.Action) error {
	act.Apply()

	if err := act.Write(ctx); err != nil {
		act.Revert()
		b.logger.ErrorContext(ctx, "mutation failed, local state reverted",
			slog.String("operation", "Move"),
			slog.String("action", act.Description()),
			slog.Any("error", err),
		)
		b.notifier.Notify(ctx, ports.NotifyError, act.Description()+" failed")
		return fmt.Errorf("%s: %w", act.Description(), err)
	}

	b.notifier.Notify(ctx, ports.NotifySuccess, act.Description())
	return nil
}

// Move resolves a drop of an item onto a target date.
//
// A drop on the item's current anchor date is a no-op: no write is issued
// and no state changes. A drop on a series member without a scope returns
// NeedsScope without mutating. Otherwise the move is applied optimistically:
// the snapshot changes first, the write follows, and a failed write reverts
// the snapshot.
func (b *Board) Move(ctx context.Context, req ports.MoveRequest) (*ports.MoveResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	it, ok := b.findItem(req.ItemID, req.Kind)
	if !ok {
		return nil, fmt.Errorf("item %s/%s: %w", req.Kind, req.ItemID, domain.ErrNotFound)
	}

	target := schedule.Day(req.Target)
	if it.AnchorDate().Equal(target) {
		return &ports.MoveResult{}, nil
	}

	if it.IsSeriesMember() && req.Scope == "" {
		return &ports.MoveResult{NeedsScope: true}, nil
	}

	if req.Scope == ports.ScopeSeries {
		if !it.IsSeriesMember() {
			return nil, &domain.ValidationError{
				Fields: map[string]string{"scope": "series scope requires a series member"},
			}
		}
		return b.moveSeries(ctx, it, target)
	}

	return b.moveSingle(ctx, it, target)
}

// moveSingle moves one record to the target date. Time off shifts its whole
// range, preserving length; every other kind moves its anchor date.
// A successful task move is recorded in the undo buffer; any other
// successful mutation clears it.
func (b *Board) moveSingle(ctx context.Context, it schedule.Item, target time.Time) (*ports.MoveResult, error) {
	change, ok := schedule.PlanSingleMove(it, target)
	if !ok {
		return &ports.MoveResult{}, nil
	}

	var act domain.Action
	switch it.Kind {
	case schedule.KindTimeOff:
		t := it.TimeOff
		prevStart, prevEnd := t.StartDate, t.EndDate
		newStart := change.To
		newEnd := schedule.Day(prevEnd).AddDate(0, 0, change.Offset())
		act = &funcAction{
			desc:   fmt.Sprintf("move time off %s to %s", t.ID, newStart.Format("2006-01-02")),
			apply:  func() { t.StartDate, t.EndDate = newStart, newEnd },
			revert: func() { t.StartDate, t.EndDate = prevStart, prevEnd },
			write:  func(ctx context.Context) error { return b.client.UpdateTimeOffDates(ctx, t.ID, newStart, newEnd) },
		}
	case schedule.KindTask:
		t := it.Task
		prev := t.DueDate
		act = &funcAction{
			desc:   fmt.Sprintf("move task %s to %s", t.ID, change.To.Format("2006-01-02")),
			apply:  func() { t.DueDate = change.To },
			revert: func() { t.DueDate = prev },
			write:  func(ctx context.Context) error { return b.client.UpdateTaskDueDate(ctx, t.ID, change.To) },
		}
	case schedule.KindDryIceOrder:
		o := it.DryIce
		prev := o.ScheduledDate
		act = &funcAction{
			desc:   fmt.Sprintf("move order %s to %s", o.OrderNumber, change.To.Format("2006-01-02")),
			apply:  func() { o.ScheduledDate = change.To },
			revert: func() { o.ScheduledDate = prev },
			write:  func(ctx context.Context) error { return b.client.UpdateDryIceOrderDate(ctx, o.ID, change.To) },
		}
	case schedule.KindGasCylinderOrder:
		o := it.GasCylinder
		prev := o.ScheduledDate
		act = &funcAction{
			desc:   fmt.Sprintf("move order %s to %s", o.OrderNumber, change.To.Format("2006-01-02")),
			apply:  func() { o.ScheduledDate = change.To },
			revert: func() { o.ScheduledDate = prev },
			write:  func(ctx context.Context) error { return b.client.UpdateGasCylinderOrderDate(ctx, o.ID, change.To) },
		}
	default:
		return nil, fmt.Errorf("kind %q: %w", it.Kind, domain.ErrValidation)
	}

	if err := b.execute(ctx, act); err != nil {
		return nil, err
	}

	if it.Kind == schedule.KindTask {
		b.last = &lastMove{taskID: it.ID(), prev: change.From, next: change.To}
	} else {
		b.last = nil
	}

	return &ports.MoveResult{Changes: []schedule.DateChange{change}}, nil
}

// moveSeries shifts every member of the dragged item's series by the same
// day offset. The full series is fetched from downstream (the snapshot
// window may clip it), each member's date is applied to the snapshot where
// present, and the writes fan out independently. Failed members are
// reverted locally and aggregated into a PartialSeriesMoveError; succeeded
// members are not compensated.
func (b *Board) moveSeries(ctx context.Context, it schedule.Item, target time.Time) (*ports.MoveResult, error) {
	rootID := schedule.SeriesRootID(it.DryIce)

	members, err := b.client.ListDryIceSeries(ctx, rootID)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to fetch series",
			slog.String("operation", "Move"),
			slog.String("root_id", rootID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching series %s: %w", rootID, err)
	}

	changes, err := schedule.PlanSeriesMove(members, it.ID(), target)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return &ports.MoveResult{}, nil
	}

	b.logger.InfoContext(ctx, "moving series",
		slog.String("root_id", rootID),
		slog.Int("members", len(changes)),
		slog.Int("offset_days", changes[0].Offset()),
	)

	// Optimistic apply for the members visible in the snapshot.
	for _, c := range changes {
		if member, ok := b.findItem(c.ID, schedule.KindDryIceOrder); ok {
			member.DryIce.ScheduledDate = c.To
		}
	}

	results := fanout.Run(ctx, b.fetchWorkers, changes, func(ctx context.Context, c schedule.DateChange) (struct{}, error) {
		return struct{}{}, b.client.UpdateDryIceOrderDate(ctx, c.ID, c.To)
	})

	var applied []schedule.DateChange
	perr := &PartialSeriesMoveError{}
	for i, r := range results {
		c := changes[i]
		if r.Err == nil {
			applied = append(applied, c)
			continue
		}
		// The downstream record kept its old date; revert the local copy.
		if member, ok := b.findItem(c.ID, schedule.KindDryIceOrder); ok {
			member.DryIce.ScheduledDate = c.From
		}
		perr.Failed = append(perr.Failed, c)
		perr.Errs = append(perr.Errs, fmt.Errorf("member %s: %w", c.ID, r.Err))
	}

	b.last = nil

	if len(perr.Failed) > 0 {
		b.logger.ErrorContext(ctx, "series move partially failed",
			slog.String("operation", "Move"),
			slog.String("root_id", rootID),
			slog.Int("failed", len(perr.Failed)),
			slog.Int("moved", len(applied)),
			slog.Any("error", errors.Join(perr.Errs...)),
		)
		b.notifier.Notify(ctx, ports.NotifyError,
			fmt.Sprintf("moved %d of %d orders in the series", len(applied), len(changes)))
		return &ports.MoveResult{Changes: applied}, perr
	}

	b.notifier.Notify(ctx, ports.NotifySuccess, fmt.Sprintf("moved %d orders", len(changes)))
	return &ports.MoveResult{Changes: applied}, nil
}

// DeleteDryIceOrder removes one dry-ice order. The snapshot entry is removed
// optimistically and restored if the downstream delete fails. Deleting a
// series root leaves the members in place; they keep their dangling parent
// reference until cleaned up individually. Any success clears the undo buffer.
func (b *Board) DeleteDryIceOrder(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	it, ok := b.findItem(id, schedule.KindDryIceOrder)
	if !ok {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	o := it.DryIce

	prev := b.snap.Items
	act := &funcAction{
		desc: fmt.Sprintf("delete order %s", o.OrderNumber),
		apply: func() {
			items := make([]schedule.Item, 0, len(prev)-1)
			for _, cand := range prev {
				if cand.Kind == schedule.KindDryIceOrder && cand.ID() == id {
					continue
				}
				items = append(items, cand)
			}
			b.snap.Items = items
		},
		revert: func() { b.snap.Items = prev },
		write:  func(ctx context.Context) error { return b.client.DeleteDryIceOrder(ctx, id) },
	}

	if err := b.execute(ctx, act); err != nil {
		return err
	}

	b.last = nil
	return nil
}
