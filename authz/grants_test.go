// authz/grants_test.go
package authz_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	stockroom_errors "github.com/stockroom-app/api/errors"
	logger "github.com/stockroom-app/api/logging"
	"github.com/stockroom-app/api/model"
)

func validGrant() model.Permission {
	return model.Permission{
		ObjectType:  model.ObjectTypeBin,
		ObjectID:    "bin-1",
		SubjectType: model.SubjectTypeUser,
		SubjectID:   "u2",
		Action:      model.ActionRead,
		GrantedBy:   "u1",
	}
}

func TestEngineGrant(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	t.Run("Grant_Success", func(t *testing.T) {
		engine, m := newEngine()
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeBin, "bin-1").
			Return(&model.Ownership{UserID: "u1"}, nil)
		m.principals.On("GetUser", testify_mock.Anything, "u2").Return(regularUser("u2"), nil)
		m.store.On("UpsertPermission", testify_mock.Anything, testify_mock.Anything).
			Return(&model.Permission{ID: "p1"}, nil)

		granted, err := engine.Grant(ctx, validGrant())

		assert.NoError(t, err)
		assert.Equal(t, "p1", granted.ID)

		// GrantedAt is stamped server-side before the upsert.
		stored := m.store.Calls[0].Arguments.Get(1).(model.Permission)
		assert.WithinDuration(t, time.Now().UTC(), stored.GrantedAt, time.Minute)
	})

	t.Run("Grant_Failure_ObjectNotFound", func(t *testing.T) {
		engine, m := newEngine()
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeBin, "bin-1").
			Return(nil, stockroom_errors.ErrObjectNotFound)

		_, err := engine.Grant(ctx, validGrant())

		assert.ErrorIs(t, err, stockroom_errors.ErrObjectNotFound)
		m.store.AssertNotCalled(t, "UpsertPermission")
	})

	t.Run("Grant_Failure_SubjectUserNotFound", func(t *testing.T) {
		engine, m := newEngine()
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeBin, "bin-1").
			Return(&model.Ownership{UserID: "u1"}, nil)
		m.principals.On("GetUser", testify_mock.Anything, "u2").
			Return(nil, stockroom_errors.ErrUserNotFound)

		_, err := engine.Grant(ctx, validGrant())

		assert.ErrorIs(t, err, stockroom_errors.ErrSubjectNotFound)
	})

	t.Run("Grant_Failure_SubjectOrganizationNotFound", func(t *testing.T) {
		engine, m := newEngine()
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeBin, "bin-1").
			Return(&model.Ownership{UserID: "u1"}, nil)
		m.orgs.On("GetOrganization", testify_mock.Anything, "org-x").
			Return(nil, stockroom_errors.ErrOrganizationNotFound)

		p := validGrant()
		p.SubjectType = model.SubjectTypeOrganization
		p.SubjectID = "org-x"
		_, err := engine.Grant(ctx, p)

		assert.ErrorIs(t, err, stockroom_errors.ErrSubjectNotFound)
	})

	t.Run("Grant_Failure_UnknownRoleSubject", func(t *testing.T) {
		engine, m := newEngine()
		m.objects.On("GetOwnership", testify_mock.Anything, model.ObjectTypeBin, "bin-1").
			Return(&model.Ownership{UserID: "u1"}, nil)

		p := validGrant()
		p.SubjectType = model.SubjectTypeRole
		p.SubjectID = "SUPERVISOR"
		_, err := engine.Grant(ctx, p)

		assert.ErrorIs(t, err, stockroom_errors.ErrInvalidRole)
		m.store.AssertNotCalled(t, "UpsertPermission")
	})

	t.Run("Grant_Failure_MissingGrantedBy", func(t *testing.T) {
		engine, m := newEngine()

		p := validGrant()
		p.GrantedBy = ""
		_, err := engine.Grant(ctx, p)

		assert.ErrorIs(t, err, stockroom_errors.ErrInvalidPermissionData)
		m.objects.AssertNotCalled(t, "GetOwnership")
	})

	t.Run("Grant_Failure_InvalidEnums", func(t *testing.T) {
		engine, _ := newEngine()

		p := validGrant()
		p.ObjectType = "SHELF"
		_, err := engine.Grant(ctx, p)
		assert.ErrorIs(t, err, stockroom_errors.ErrInvalidObjectType)

		p = validGrant()
		p.SubjectType = "TEAM"
		_, err = engine.Grant(ctx, p)
		assert.ErrorIs(t, err, stockroom_errors.ErrInvalidSubjectType)

		p = validGrant()
		p.Action = "DESTROY"
		_, err = engine.Grant(ctx, p)
		assert.ErrorIs(t, err, stockroom_errors.ErrInvalidAction)

		p = validGrant()
		p.ObjectID = ""
		_, err = engine.Grant(ctx, p)
		assert.ErrorIs(t, err, stockroom_errors.ErrInvalidPermissionData)
	})
}

func TestEngineRevoke(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	t.Run("Revoke_Success", func(t *testing.T) {
		engine, m := newEngine()
		key := validGrant().Key()
		m.store.On("DeletePermission", testify_mock.Anything, key).Return(nil)

		err := engine.Revoke(ctx, key)

		assert.NoError(t, err)
	})

	t.Run("Revoke_Failure_NotFound", func(t *testing.T) {
		engine, m := newEngine()
		key := validGrant().Key()
		m.store.On("DeletePermission", testify_mock.Anything, key).
			Return(stockroom_errors.ErrPermissionNotFound)

		err := engine.Revoke(ctx, key)

		assert.ErrorIs(t, err, stockroom_errors.ErrPermissionNotFound)
	})

	t.Run("Revoke_Failure_InvalidKey", func(t *testing.T) {
		engine, m := newEngine()
		key := validGrant().Key()
		key.SubjectID = ""

		err := engine.Revoke(ctx, key)

		assert.ErrorIs(t, err, stockroom_errors.ErrInvalidPermissionData)
		m.store.AssertNotCalled(t, "DeletePermission")
	})
}

func TestEngineGetPermissions(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	t.Run("GetPermissions_Success", func(t *testing.T) {
		engine, m := newEngine()
		filter := model.PermissionFilter{ObjectType: model.ObjectTypeBin, ObjectID: "bin-1"}
		m.store.On("ListPermissions", testify_mock.Anything, filter).
			Return([]*model.Permission{{ID: "p1"}, {ID: "p2"}}, nil)

		permissions, err := engine.GetPermissions(ctx, filter)

		assert.NoError(t, err)
		assert.Len(t, permissions, 2)
	})

	t.Run("GetPermissions_Failure_InvalidFilterEnum", func(t *testing.T) {
		engine, m := newEngine()

		_, err := engine.GetPermissions(ctx, model.PermissionFilter{SubjectType: "TEAM"})

		assert.ErrorIs(t, err, stockroom_errors.ErrInvalidSubjectType)
		m.store.AssertNotCalled(t, "ListPermissions")
	})
}
