// Package notify provides outbound notification adapters for mutation
// outcomes.
package notify

import (
	"context"
	"log/slog"

	"github.com/coldflow/planboard/internal/ports"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier publishes mutation outcome notifications to the structured
// log. Errors log at ERROR level so failed board writes surface in alerting;
// successes log at INFO.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier writing to the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogNotifier{logger: logger}
}

// Notify implements ports.Notifier.
func (n *LogNotifier) Notify(ctx context.Context, kind ports.NotificationKind, message string) {
	if kind == ports.NotifyError {
		n.logger.ErrorContext(ctx, "board notification",
			slog.String("kind", string(kind)),
			slog.String("message", message),
		)
		return
	}
	n.logger.InfoContext(ctx, "board notification",
		slog.String("kind", string(kind)),
		slog.String("message", message),
	)
}
