package acl

import (
	"context"
	"fmt"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. The value "planning-api" matches the service name
// used by the underlying [httpclient.Client] for tracing and metrics.
func (c *PlanningClient) Name() string {
	return "planning-api"
}

// HealthCheck reports the downstream planning API's availability based on
// the circuit breaker state -- no network call is made.
//
// State mapping:
//   - "closed"    -- downstream is operating normally; returns nil.
//   - "half-open" -- circuit breaker is probing recovery; returns a
//     descriptive error indicating degraded state.
//   - "open"      -- downstream is unavailable and the breaker is rejecting
//     requests; returns a descriptive error indicating failure.
//
// This reports downstream status, not service readiness. The board keeps
// serving its last snapshot (with per-kind fetch errors) while the
// downstream is failing, so readiness is never tied to downstream health.
func (c *PlanningClient) HealthCheck(_ context.Context) error {
	state := c.req.CircuitBreakerState()
	switch state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("planning-api: degraded (circuit breaker half-open)")
	case "open":
		return fmt.Errorf("planning-api: failing (circuit breaker open)")
	default:
		return fmt.Errorf("planning-api: unknown circuit breaker state %q", state)
	}
}
