// authz/ports.go
package authz

import (
	"context"

	"github.com/stockroom-app/api/model"
)

// The engine is stateless; everything it knows comes through these narrow
// lookups. Absence is signalled by the not-found sentinels from the errors
// package, which the engine translates into fail-closed denies or
// not-applicable rules depending on the operation.

// PrincipalResolver resolves user ids to users.
type PrincipalResolver interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
}

// MembershipResolver lists the organizations a user belongs to, with the
// user's role in each.
type MembershipResolver interface {
	GetMembershipsForUser(ctx context.Context, userID string) ([]model.Membership, error)
}

// OrganizationResolver resolves organization ids. Used only to validate
// ORGANIZATION subjects on grant.
type OrganizationResolver interface {
	GetOrganization(ctx context.Context, id string) (*model.Organization, error)
}

// ObjectResolver resolves an object's owning context.
type ObjectResolver interface {
	GetOwnership(ctx context.Context, objectType model.ObjectType, objectID string) (*model.Ownership, error)
}

// PermissionStore persists explicit permission tuples keyed by their natural
// key. UpsertPermission must converge concurrent writes for the same key to a
// single row, last write winning on GrantedBy/GrantedAt.
type PermissionStore interface {
	UpsertPermission(ctx context.Context, p model.Permission) (*model.Permission, error)
	DeletePermission(ctx context.Context, key model.PermissionKey) error
	HasPermission(ctx context.Context, key model.PermissionKey) (bool, error)
	ListPermissions(ctx context.Context, filter model.PermissionFilter) ([]*model.Permission, error)
}
