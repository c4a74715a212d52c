package domain

import "context"

// Action pairs an optimistic in-memory state change with the downstream write
// that makes it durable. The executor applies the local change first, then
// performs the write, and reverts the local change if the write fails.
//
// Action is defined in the domain layer so that domain code can construct
// actions without depending on the application layer (dependency inversion).
type Action interface {
	// Apply performs the local, in-memory state change. It must be cheap,
	// synchronous and infallible; anything that can fail belongs in Write.
	Apply()

	// Revert undoes Apply. It is only called after Apply, and only when
	// Write returned a non-nil error.
	Revert()

	// Write performs the downstream side of the action. The context carries
	// cancellation and deadline signals that the implementation should respect.
	Write(ctx context.Context) error

	// Description returns a human-readable description of the action for
	// logging purposes (e.g., "move task 123 to 2025-01-13").
	Description() string
}
