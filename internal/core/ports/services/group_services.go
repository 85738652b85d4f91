package services

import (
	"context"

	"github.com/pontualize/timesheet_app/internal/core/domain"
)

// PermissionResolverSvc resolves a caller's effective capability set.
type PermissionResolverSvc interface {
	// ResolvePermissions derives the permission set reachable through the
	// user's group. Evaluated once per request by the auth middleware.
	ResolvePermissions(ctx context.Context, userID string) (domain.PermissionSet, error)
}

// GroupSvcFacade combines group queries with permission resolution.
type GroupSvcFacade interface {
	PermissionResolverSvc

	// ListGroups returns all groups. Gated by GET_GROUP.
	ListGroups(ctx context.Context, perms domain.PermissionSet) ([]domain.Group, error)
}
