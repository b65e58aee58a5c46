// authz/engine.go
package authz

import (
	"context"
	"errors"

	"go.uber.org/zap"

	stockroom_errors "github.com/stockroom-app/api/errors"
	logger "github.com/stockroom-app/api/logging"
	"github.com/stockroom-app/api/model"
)

// Engine answers "can subject S perform action A on object O" and owns the
// grant/revoke/list operations over explicit permission tuples.
type Engine struct {
	store       PermissionStore
	principals  PrincipalResolver
	memberships MembershipResolver
	orgs        OrganizationResolver
	objects     ObjectResolver
}

func NewEngine(
	store PermissionStore,
	principals PrincipalResolver,
	memberships MembershipResolver,
	orgs OrganizationResolver,
	objects ObjectResolver,
) *Engine {
	return &Engine{
		store:       store,
		principals:  principals,
		memberships: memberships,
		orgs:        orgs,
		objects:     objects,
	}
}

// evaluation carries the context resolved once per CanAccess call. The object
// is looked up at most once even though two rules inspect it; memberships
// likewise.
type evaluation struct {
	principal   *model.User
	objectType  model.ObjectType
	objectID    string
	action      model.Action
	memberships []model.Membership

	ownership         *model.Ownership // nil when the object is absent
	ownershipResolved bool
}

// rule is one independent allow condition. Rules are ORed: any true path
// wins, and no rule can override an earlier true. Ordering is a performance
// choice (cheapest and most common checks first), not a priority policy.
type rule struct {
	name  string
	check func(ctx context.Context, ev *evaluation) (bool, error)
}

// CanAccess resolves whether the principal may perform action on the object.
// Deny is (false, nil); errors are reserved for malformed enum input and
// storage failures. Absence of the principal fails closed.
func (e *Engine) CanAccess(ctx context.Context, principalID string, objectType model.ObjectType, objectID string, action model.Action) (bool, error) {
	if !objectType.Valid() {
		return false, stockroom_errors.ErrInvalidObjectType
	}
	if !action.Valid() {
		return false, stockroom_errors.ErrInvalidAction
	}

	principal, err := e.principals.GetUser(ctx, principalID)
	if err != nil {
		if errors.Is(err, stockroom_errors.ErrUserNotFound) {
			logger.Debug("Access check for unknown principal",
				zap.String("principalID", principalID))
			return false, nil
		}
		return false, err
	}

	if principal.IsAdmin() {
		return true, nil
	}

	ev := &evaluation{
		principal:  principal,
		objectType: objectType,
		objectID:   objectID,
		action:     action,
	}

	rules := []rule{
		{"direct_user_grant", e.directUserGrant},
		{"organization_grant", e.organizationGrant},
		{"implicit_org_ownership", e.implicitOrgOwnership},
		{"role_default_grant", e.roleDefaultGrant},
		{"direct_ownership", e.directOwnership},
	}

	for _, r := range rules {
		allowed, err := r.check(ctx, ev)
		if err != nil {
			return false, err
		}
		if allowed {
			logger.Debug("Access allowed",
				zap.String("rule", r.name),
				zap.String("principalID", principalID),
				zap.String("objectType", string(objectType)),
				zap.String("objectID", objectID),
				zap.String("action", string(action)))
			return true, nil
		}
	}

	return false, nil
}

// directUserGrant matches an explicit USER tuple for the principal.
func (e *Engine) directUserGrant(ctx context.Context, ev *evaluation) (bool, error) {
	return e.store.HasPermission(ctx, model.PermissionKey{
		ObjectType:  ev.objectType,
		ObjectID:    ev.objectID,
		SubjectType: model.SubjectTypeUser,
		SubjectID:   ev.principal.ID,
		Action:      ev.action,
	})
}

// organizationGrant matches an explicit ORGANIZATION tuple for any
// organization the principal belongs to.
func (e *Engine) organizationGrant(ctx context.Context, ev *evaluation) (bool, error) {
	memberships, err := e.resolveMemberships(ctx, ev)
	if err != nil {
		return false, err
	}
	for _, m := range memberships {
		found, err := e.store.HasPermission(ctx, model.PermissionKey{
			ObjectType:  ev.objectType,
			ObjectID:    ev.objectID,
			SubjectType: model.SubjectTypeOrganization,
			SubjectID:   m.OrganizationID,
			Action:      ev.action,
		})
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}

// implicitOrgOwnership allows members of the object's owning organization:
// READ unconditionally, WRITE/ADMIN only for OWNER/ADMIN org roles. When the
// object is gone the rule is not applicable rather than an error.
func (e *Engine) implicitOrgOwnership(ctx context.Context, ev *evaluation) (bool, error) {
	ownership, err := e.resolveOwnership(ctx, ev)
	if err != nil {
		return false, err
	}
	if ownership == nil || ownership.OrganizationID == "" {
		return false, nil
	}

	memberships, err := e.resolveMemberships(ctx, ev)
	if err != nil {
		return false, err
	}
	for _, m := range memberships {
		if m.OrganizationID != ownership.OrganizationID {
			continue
		}
		if ev.action == model.ActionRead {
			return true, nil
		}
		if m.OrgRole.CanManage() {
			return true, nil
		}
	}
	return false, nil
}

// roleDefaultGrant matches a ROLE tuple keyed by the principal's global role.
func (e *Engine) roleDefaultGrant(ctx context.Context, ev *evaluation) (bool, error) {
	return e.store.HasPermission(ctx, model.PermissionKey{
		ObjectType:  ev.objectType,
		ObjectID:    ev.objectID,
		SubjectType: model.SubjectTypeRole,
		SubjectID:   string(ev.principal.GlobalRole),
		Action:      ev.action,
	})
}

// directOwnership allows the object's individual owner any action.
func (e *Engine) directOwnership(ctx context.Context, ev *evaluation) (bool, error) {
	ownership, err := e.resolveOwnership(ctx, ev)
	if err != nil {
		return false, err
	}
	if ownership == nil {
		return false, nil
	}
	return ownership.UserID != "" && ownership.UserID == ev.principal.ID, nil
}

func (e *Engine) resolveMemberships(ctx context.Context, ev *evaluation) ([]model.Membership, error) {
	if ev.memberships != nil {
		return ev.memberships, nil
	}
	memberships, err := e.memberships.GetMembershipsForUser(ctx, ev.principal.ID)
	if err != nil {
		return nil, err
	}
	if memberships == nil {
		memberships = []model.Membership{}
	}
	ev.memberships = memberships
	return memberships, nil
}

func (e *Engine) resolveOwnership(ctx context.Context, ev *evaluation) (*model.Ownership, error) {
	if ev.ownershipResolved {
		return ev.ownership, nil
	}
	ownership, err := e.objects.GetOwnership(ctx, ev.objectType, ev.objectID)
	if err != nil {
		// Object deleted mid-check: ownership rules are not applicable,
		// remaining rules still run.
		if !errors.Is(err, stockroom_errors.ErrObjectNotFound) {
			return nil, err
		}
		ownership = nil
	}
	ev.ownership = ownership
	ev.ownershipResolved = true
	return ownership, nil
}
