// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/coldflow/planboard/internal/app/fanout"
	"github.com/coldflow/planboard/internal/domain"
	"github.com/coldflow/planboard/internal/domain/schedule"
	"github.com/coldflow/planboard/internal/ports"
)

// Compile-time check that Board implements ports.BoardService.
var _ ports.BoardService = (*Board)(nil)

// Board implements ports.BoardService. It aggregates the four entity kinds
// into one snapshot, resolves drops into single or series moves, applies
// mutations optimistically against the snapshot, and keeps the single-slot
// undo buffer.
//
// The snapshot and undo buffer are guarded by one mutex: mutations are
// serialized (single-writer), reads take the same lock briefly. Aggregation
// fetches and series-member writes fan out internally.
type Board struct {
	client       ports.PlanningClient
	notifier     ports.Notifier
	logger       *slog.Logger
	fetchWorkers int
	horizonDays  int

	mu   sync.Mutex
	snap *ports.BoardSnapshot
	last *lastMove
}

// NewBoard creates a Board. fetchWorkers bounds the concurrency of
// aggregation fetches and series-member writes; horizonDays is the
// materialization horizon for unbounded recurrences.
func NewBoard(client ports.PlanningClient, notifier ports.Notifier, logger *slog.Logger, fetchWorkers, horizonDays int) *Board {
	return &Board{
		client:       client,
		notifier:     notifier,
		logger:       logger,
		fetchWorkers: fetchWorkers,
		horizonDays:  horizonDays,
	}
}

// fetchResult carries one kind's fetched items through the fan-out join.
type fetchResult struct {
	kind  schedule.Kind
	items []schedule.Item
}

// Refresh runs one aggregation pass and replaces the current snapshot.
// Each visible kind is fetched independently; a failed kind contributes a
// FetchError to Snapshot.Errors instead of items. Directory lookups degrade
// to unresolved names on failure. Returns a hard error only when every
// visible kind failed.
func (b *Board) Refresh(ctx context.Context, window schedule.Window, vis schedule.Visibility, filter schedule.Filter) (*ports.BoardSnapshot, error) {
	b.logger.InfoContext(ctx, "refreshing board",
		slog.Time("window_start", window.Start),
		slog.Time("window_end", window.End),
	)

	var kinds []schedule.Kind
	for _, k := range schedule.Kinds() {
		if vis.Shows(k) {
			kinds = append(kinds, k)
		}
	}

	dir := b.fetchDirectory(ctx)

	results := fanout.Run(ctx, b.fetchWorkers, kinds, func(ctx context.Context, k schedule.Kind) (fetchResult, error) {
		items, err := b.fetchKind(ctx, k, window)
		return fetchResult{kind: k, items: items}, err
	})

	var items []schedule.Item
	fetchErrs := make(map[schedule.Kind]error)
	for i, r := range results {
		if r.Err != nil {
			kind := kinds[i]
			fetchErrs[kind] = &schedule.FetchError{Kind: kind, Err: r.Err}
			b.logger.ErrorContext(ctx, "board fetch failed",
				slog.String("operation", "Refresh"),
				slog.String("kind", kind.String()),
				slog.Any("error", r.Err),
			)
			continue
		}
		items = append(items, r.Value.items...)
	}

	dir.resolve(items)
	items = filter.Apply(items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].AnchorDate().Before(items[j].AnchorDate())
	})

	snap := &ports.BoardSnapshot{
		Window:    window,
		Items:     items,
		Errors:    fetchErrs,
		FetchedAt: time.Now().UTC(),
	}

	b.mu.Lock()
	b.snap = snap
	b.mu.Unlock()

	if len(kinds) > 0 && len(fetchErrs) == len(kinds) {
		return snap, fmt.Errorf("all board fetches failed: %w", domain.ErrUnavailable)
	}
	return snap, nil
}

// fetchKind fetches one entity kind for the window and wraps the rows as items.
func (b *Board) fetchKind(ctx context.Context, k schedule.Kind, w schedule.Window) ([]schedule.Item, error) {
	switch k {
	case schedule.KindTimeOff:
		rows, err := b.client.ListTimeOff(ctx, w.Start, w.End)
		if err != nil {
			return nil, err
		}
		items := make([]schedule.Item, len(rows))
		for i := range rows {
			items[i] = schedule.NewTimeOffItem(&rows[i])
		}
		return items, nil
	case schedule.KindTask:
		rows, err := b.client.ListTasks(ctx, w.Start, w.End)
		if err != nil {
			return nil, err
		}
		items := make([]schedule.Item, len(rows))
		for i := range rows {
			items[i] = schedule.NewTaskItem(&rows[i])
		}
		return items, nil
	case schedule.KindDryIceOrder:
		rows, err := b.client.ListDryIceOrders(ctx, w.Start, w.End)
		if err != nil {
			return nil, err
		}
		items := make([]schedule.Item, len(rows))
		for i := range rows {
			items[i] = schedule.NewDryIceItem(&rows[i])
		}
		return items, nil
	case schedule.KindGasCylinderOrder:
		rows, err := b.client.ListGasCylinderOrders(ctx, w.Start, w.End)
		if err != nil {
			return nil, err
		}
		items := make([]schedule.Item, len(rows))
		for i := range rows {
			items[i] = schedule.NewGasCylinderItem(&rows[i])
		}
		return items, nil
	}
	return nil, fmt.Errorf("unknown kind %q: %w", k, domain.ErrValidation)
}

// directory holds the lookup maps for reference resolution.
type directory struct {
	profiles  map[string]schedule.Profile
	customers map[string]schedule.Customer
	taskTypes map[string]schedule.TaskType
}

// fetchDirectory fetches the three lookup directories. Failures are logged
// and leave the corresponding map empty; names then stay unresolved.
func (b *Board) fetchDirectory(ctx context.Context) directory {
	dir := directory{
		profiles:  make(map[string]schedule.Profile),
		customers: make(map[string]schedule.Customer),
		taskTypes: make(map[string]schedule.TaskType),
	}

	if profiles, err := b.client.ListProfiles(ctx); err != nil {
		b.logger.WarnContext(ctx, "profile lookup unavailable", slog.Any("error", err))
	} else {
		for _, p := range profiles {
			dir.profiles[p.ID] = p
		}
	}

	if customers, err := b.client.ListCustomers(ctx); err != nil {
		b.logger.WarnContext(ctx, "customer lookup unavailable", slog.Any("error", err))
	} else {
		for _, c := range customers {
			dir.customers[c.ID] = c
		}
	}

	if types, err := b.client.ListTaskTypes(ctx); err != nil {
		b.logger.WarnContext(ctx, "task type lookup unavailable", slog.Any("error", err))
	} else {
		for _, tt := range types {
			dir.taskTypes[tt.ID] = tt
		}
	}

	return dir
}

// resolve fills display names and colors from the lookup maps. Values
// already present on a row are kept.
func (d directory) resolve(items []schedule.Item) {
	for _, it := range items {
		switch it.Kind {
		case schedule.KindTimeOff:
			t := it.TimeOff
			if t.UserName == "" {
				if p, ok := d.profiles[t.UserID]; ok {
					t.UserName = p.FullName
				}
			}
		case schedule.KindTask:
			t := it.Task
			if t.AssigneeName == "" {
				if p, ok := d.profiles[t.AssigneeID]; ok {
					t.AssigneeName = p.FullName
				}
			}
			if tt, ok := d.taskTypes[t.TypeID]; ok {
				if t.TypeName == "" {
					t.TypeName = tt.Name
				}
				if t.Color == "" {
					t.Color = tt.Color
				}
			}
		case schedule.KindDryIceOrder:
			o := it.DryIce
			if o.CustomerName == "" {
				if c, ok := d.customers[o.CustomerID]; ok {
					o.CustomerName = c.Name
				}
			}
		case schedule.KindGasCylinderOrder:
			o := it.GasCylinder
			if o.CustomerName == "" {
				if c, ok := d.customers[o.CustomerID]; ok {
					o.CustomerName = c.Name
				}
			}
		}
	}
}

// Snapshot returns the current snapshot, or nil before the first pass.
func (b *Board) Snapshot() *ports.BoardSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snap
}

// ItemsForDay returns the current snapshot's items occurring on the day.
func (b *Board) ItemsForDay(day time.Time) []schedule.Item {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.snap == nil {
		return nil
	}
	return schedule.ItemsForDay(b.snap.Items, day)
}

// CreateDryIceSeries expands a recurring creation request into its full
// order series and submits the batch in one write. The series is not added
// to the snapshot; the next aggregation pass picks it up.
func (b *Board) CreateDryIceSeries(ctx context.Context, base schedule.DryIceOrder, rec schedule.RecurrenceRequest) ([]schedule.DryIceOrder, error) {
	orders, err := schedule.BuildDryIceSeries(base, rec, b.horizonDays)
	if err != nil {
		return nil, err
	}

	b.logger.InfoContext(ctx, "creating dry ice series",
		slog.String("order_number", orders[0].OrderNumber),
		slog.Int("occurrences", len(orders)),
	)

	if err := b.client.CreateDryIceOrders(ctx, orders); err != nil {
		b.logger.ErrorContext(ctx, "failed to create dry ice series",
			slog.String("operation", "CreateDryIceSeries"),
			slog.String("order_number", orders[0].OrderNumber),
			slog.Any("error", err),
		)
		b.notifier.Notify(ctx, ports.NotifyError, "failed to create order series")
		return nil, fmt.Errorf("creating dry ice series: %w", err)
	}

	b.mu.Lock()
	b.last = nil
	b.mu.Unlock()

	b.notifier.Notify(ctx, ports.NotifySuccess, fmt.Sprintf("created %d orders", len(orders)))
	return orders, nil
}

// findItem locates an item in the current snapshot by id and kind.
// Callers must hold b.mu.
func (b *Board) findItem(id string, kind schedule.Kind) (schedule.Item, bool) {
	if b.snap == nil {
		return schedule.Item{}, false
	}
	for _, it := range b.snap.Items {
		if it.Kind == kind && it.ID() == id {
			return it, true
		}
	}
	return schedule.Item{}, false
}
