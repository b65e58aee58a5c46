// authz/engine_test.go
package authz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/stockroom-app/api/authz"
	stockroom_errors "github.com/stockroom-app/api/errors"
	logger "github.com/stockroom-app/api/logging"
	"github.com/stockroom-app/api/model"
	"github.com/stockroom-app/api/test/mock"
)

type engineMocks struct {
	store       *mock.MockPermissionStore
	principals  *mock.MockPrincipalResolver
	memberships *mock.MockMembershipResolver
	orgs        *mock.MockOrganizationResolver
	objects     *mock.MockObjectResolver
}

func newEngine() (*authz.Engine, *engineMocks) {
	m := &engineMocks{
		store:       new(mock.MockPermissionStore),
		principals:  new(mock.MockPrincipalResolver),
		memberships: new(mock.MockMembershipResolver),
		orgs:        new(mock.MockOrganizationResolver),
		objects:     new(mock.MockObjectResolver),
	}
	return authz.NewEngine(m.store, m.principals, m.memberships, m.orgs, m.objects), m
}

func regularUser(id string) *model.User {
	return &model.User{ID: id, GlobalRole: model.GlobalRoleUser}
}

func TestEngineCanAccess(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	t.Run("CanAccess_InvalidObjectType", func(t *testing.T) {
		engine, _ := newEngine()

		allowed, err := engine.CanAccess(ctx, "u1", "SHELF", "o1", model.ActionRead)

		assert.False(t, allowed)
		assert.ErrorIs(t, err, stockroom_errors.ErrInvalidObjectType)
	})

	t.Run("CanAccess_InvalidAction", func(t *testing.T) {
		engine, _ := newEngine()

		allowed, err := engine.CanAccess(ctx, "u1", model.ObjectTypeBin, "o1", "DESTROY")

		assert.False(t, allowed)
		assert.ErrorIs(t, err, stockroom_errors.ErrInvalidAction)
	})

	t.Run("CanAccess_UnknownPrincipal_DeniedWithoutError", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "ghost").
			Return(nil, stockroom_errors.ErrUserNotFound)

		allowed, err := engine.CanAccess(ctx, "ghost", model.ObjectTypeBin, "o1", model.ActionRead)

		assert.False(t, allowed)
		assert.NoError(t, err)
		m.store.AssertNotCalled(t, "HasPermission")
	})

	t.Run("CanAccess_GlobalAdmin_BypassesAllRules", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "root").
			Return(&model.User{ID: "root", GlobalRole: model.GlobalRoleAdmin}, nil)

		allowed, err := engine.CanAccess(ctx, "root", model.ObjectTypeItem, "missing", model.ActionAdmin)

		assert.True(t, allowed)
		assert.NoError(t, err)
		m.store.AssertNotCalled(t, "HasPermission")
		m.objects.AssertNotCalled(t, "GetOwnership")
	})

	t.Run("CanAccess_DirectUserGrant_Allowed", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "u1").Return(regularUser("u1"), nil)
		m.store.On("HasPermission", testify_mock.Anything, model.PermissionKey{
			ObjectType:  model.ObjectTypeBin,
			ObjectID:    "bin-1",
			SubjectType: model.SubjectTypeUser,
			SubjectID:   "u1",
			Action:      model.ActionWrite,
		}).Return(true, nil)

		allowed, err := engine.CanAccess(ctx, "u1", model.ObjectTypeBin, "bin-1", model.ActionWrite)

		assert.True(t, allowed)
		assert.NoError(t, err)
	})

	t.Run("CanAccess_OrganizationGrant_Allowed", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "u1").Return(regularUser("u1"), nil)
		m.store.On("HasPermission", testify_mock.Anything, model.PermissionKey{
			ObjectType:  model.ObjectTypeItem,
			ObjectID:    "item-1",
			SubjectType: model.SubjectTypeUser,
			SubjectID:   "u1",
			Action:      model.ActionRead,
		}).Return(false, nil)
		m.memberships.On("GetMembershipsForUser", testify_mock.Anything, "u1").
			Return([]model.Membership{{OrganizationID: "org-1", OrgRole: model.OrgRoleMember}}, nil)
		m.store.On("HasPermission", testify_mock.Anything, model.PermissionKey{
			ObjectType:  model.ObjectTypeItem,
			ObjectID:    "item-1",
			SubjectType: model.SubjectTypeOrganization,
			SubjectID:   "org-1",
			Action:      model.ActionRead,
		}).Return(true, nil)

		allowed, err := engine.CanAccess(ctx, "u1", model.ObjectTypeItem, "item-1", model.ActionRead)

		assert.True(t, allowed)
		assert.NoError(t, err)
	})

	t.Run("CanAccess_OrgMember_ReadsOrgObject", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "u1").Return(regularUser("u1"), nil)
		m.store.On("HasPermission", testify_mock.Anything, testify_mock.Anything).Return(false, nil)
		m.memberships.On("GetMembershipsForUser", testify_mock.Anything, "u1").
			Return([]model.Membership{{OrganizationID: "org-1", OrgRole: model.OrgRoleMember}}, nil)
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeBin, "bin-1").
			Return(&model.Ownership{UserID: "someone-else", OrganizationID: "org-1"}, nil)

		allowed, err := engine.CanAccess(ctx, "u1", model.ObjectTypeBin, "bin-1", model.ActionRead)

		assert.True(t, allowed)
		assert.NoError(t, err)
	})

	t.Run("CanAccess_OrgMember_CannotWriteOrgObject", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "u1").Return(regularUser("u1"), nil)
		m.store.On("HasPermission", testify_mock.Anything, testify_mock.Anything).Return(false, nil)
		m.memberships.On("GetMembershipsForUser", testify_mock.Anything, "u1").
			Return([]model.Membership{{OrganizationID: "org-1", OrgRole: model.OrgRoleMember}}, nil)
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeBin, "bin-1").
			Return(&model.Ownership{UserID: "someone-else", OrganizationID: "org-1"}, nil)

		allowed, err := engine.CanAccess(ctx, "u1", model.ObjectTypeBin, "bin-1", model.ActionWrite)

		assert.False(t, allowed)
		assert.NoError(t, err)
	})

	t.Run("CanAccess_OrgAdmin_WritesOrgObject", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "u1").Return(regularUser("u1"), nil)
		m.store.On("HasPermission", testify_mock.Anything, testify_mock.Anything).Return(false, nil)
		m.memberships.On("GetMembershipsForUser", testify_mock.Anything, "u1").
			Return([]model.Membership{{OrganizationID: "org-1", OrgRole: model.OrgRoleAdmin}}, nil)
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeBin, "bin-1").
			Return(&model.Ownership{UserID: "someone-else", OrganizationID: "org-1"}, nil)

		allowed, err := engine.CanAccess(ctx, "u1", model.ObjectTypeBin, "bin-1", model.ActionWrite)

		assert.True(t, allowed)
		assert.NoError(t, err)
	})

	t.Run("CanAccess_RoleDefaultGrant_Allowed", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "u1").Return(regularUser("u1"), nil)
		m.store.On("HasPermission", testify_mock.Anything, model.PermissionKey{
			ObjectType:  model.ObjectTypeCategory,
			ObjectID:    "cat-1",
			SubjectType: model.SubjectTypeUser,
			SubjectID:   "u1",
			Action:      model.ActionRead,
		}).Return(false, nil)
		m.memberships.On("GetMembershipsForUser", testify_mock.Anything, "u1").
			Return([]model.Membership{}, nil)
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeCategory, "cat-1").
			Return(&model.Ownership{UserID: "someone-else"}, nil)
		m.store.On("HasPermission", testify_mock.Anything, model.PermissionKey{
			ObjectType:  model.ObjectTypeCategory,
			ObjectID:    "cat-1",
			SubjectType: model.SubjectTypeRole,
			SubjectID:   string(model.GlobalRoleUser),
			Action:      model.ActionRead,
		}).Return(true, nil)

		allowed, err := engine.CanAccess(ctx, "u1", model.ObjectTypeCategory, "cat-1", model.ActionRead)

		assert.True(t, allowed)
		assert.NoError(t, err)
	})

	t.Run("CanAccess_IndividualOwner_GetsEveryAction", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "owner").Return(regularUser("owner"), nil)
		m.store.On("HasPermission", testify_mock.Anything, testify_mock.Anything).Return(false, nil)
		m.memberships.On("GetMembershipsForUser", testify_mock.Anything, "owner").
			Return([]model.Membership{}, nil)
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeBin, "bin-1").
			Return(&model.Ownership{UserID: "owner"}, nil)

		for _, action := range model.AllActions() {
			allowed, err := engine.CanAccess(ctx, "owner", model.ObjectTypeBin, "bin-1", action)
			assert.True(t, allowed, "owner should hold %s", action)
			assert.NoError(t, err)
		}
	})

	t.Run("CanAccess_NoRuleMatches_Denied", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "u1").Return(regularUser("u1"), nil)
		m.store.On("HasPermission", testify_mock.Anything, testify_mock.Anything).Return(false, nil)
		m.memberships.On("GetMembershipsForUser", testify_mock.Anything, "u1").
			Return([]model.Membership{}, nil)
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeBin, "bin-1").
			Return(&model.Ownership{UserID: "someone-else"}, nil)

		allowed, err := engine.CanAccess(ctx, "u1", model.ObjectTypeBin, "bin-1", model.ActionAdmin)

		assert.False(t, allowed)
		assert.NoError(t, err)
	})

	t.Run("CanAccess_ObjectGone_DeniedWithoutError", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "u1").Return(regularUser("u1"), nil)
		m.store.On("HasPermission", testify_mock.Anything, testify_mock.Anything).Return(false, nil)
		m.memberships.On("GetMembershipsForUser", testify_mock.Anything, "u1").
			Return([]model.Membership{}, nil)
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeBin, "gone").
			Return(nil, stockroom_errors.ErrObjectNotFound)

		allowed, err := engine.CanAccess(ctx, "u1", model.ObjectTypeBin, "gone", model.ActionRead)

		assert.False(t, allowed)
		assert.NoError(t, err)
	})

	t.Run("CanAccess_ObjectResolvedOnce", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "u1").Return(regularUser("u1"), nil)
		m.store.On("HasPermission", testify_mock.Anything, testify_mock.Anything).Return(false, nil)
		m.memberships.On("GetMembershipsForUser", testify_mock.Anything, "u1").
			Return([]model.Membership{}, nil)
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeBin, "gone").
			Return(nil, stockroom_errors.ErrObjectNotFound)

		_, err := engine.CanAccess(ctx, "u1", model.ObjectTypeBin, "gone", model.ActionWrite)

		assert.NoError(t, err)
		m.objects.AssertNumberOfCalls(t, "GetOwnership", 1)
	})

	t.Run("CanAccess_StoreFailure_SurfacesError", func(t *testing.T) {
		engine, m := newEngine()
		m.principals.On("GetUser", testify_mock.Anything, "u1").Return(regularUser("u1"), nil)
		m.store.On("HasPermission", testify_mock.Anything, testify_mock.Anything).
			Return(false, stockroom_errors.ErrDatabaseOperation)

		allowed, err := engine.CanAccess(ctx, "u1", model.ObjectTypeBin, "bin-1", model.ActionRead)

		assert.False(t, allowed)
		assert.ErrorIs(t, err, stockroom_errors.ErrDatabaseOperation)
	})
}
