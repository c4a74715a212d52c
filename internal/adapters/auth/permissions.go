// Package auth provides the permission adapter gating board mutations.
package auth

import (
	"context"

	"github.com/coldflow/planboard/internal/ports"
)

var _ ports.PermissionProvider = (*StaticPermissions)(nil)

// StaticPermissions answers admin checks from a fixed allowlist of user ids,
// sourced from configuration.
type StaticPermissions struct {
	admins map[string]struct{}
}

// NewStaticPermissions creates a StaticPermissions from the given admin
// user ids.
func NewStaticPermissions(adminUsers []string) *StaticPermissions {
	admins := make(map[string]struct{}, len(adminUsers))
	for _, id := range adminUsers {
		admins[id] = struct{}{}
	}
	return &StaticPermissions{admins: admins}
}

// IsAdmin implements ports.PermissionProvider.
func (p *StaticPermissions) IsAdmin(_ context.Context, userID string) (bool, error) {
	_, ok := p.admins[userID]
	return ok, nil
}
