// authz/store_test.go
package authz_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/stockroom-app/api/authz"
	stockroom_errors "github.com/stockroom-app/api/errors"
	logger "github.com/stockroom-app/api/logging"
	"github.com/stockroom-app/api/model"
	"github.com/stockroom-app/api/test/mock"
	helper_util "github.com/stockroom-app/api/util/helper"
)

// memoryPermissionStore implements the natural-key upsert and ordering
// contract of the persistent store. Listing sorts by the rendered
// grantedAt string, the same comparison the database applies to the
// stored property.
type memoryPermissionStore struct {
	mu     sync.Mutex
	tuples map[model.PermissionKey]model.Permission
}

func newMemoryPermissionStore() *memoryPermissionStore {
	return &memoryPermissionStore{tuples: make(map[model.PermissionKey]model.Permission)}
}

func (s *memoryPermissionStore) UpsertPermission(ctx context.Context, p model.Permission) (*model.Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tuples[p.Key()] = p
	stored := p
	return &stored, nil
}

func (s *memoryPermissionStore) DeletePermission(ctx context.Context, key model.PermissionKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tuples[key]; !ok {
		return stockroom_errors.ErrPermissionNotFound
	}
	delete(s.tuples, key)
	return nil
}

func (s *memoryPermissionStore) HasPermission(ctx context.Context, key model.PermissionKey) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tuples[key]
	return ok, nil
}

func (s *memoryPermissionStore) ListPermissions(ctx context.Context, filter model.PermissionFilter) ([]*model.Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Permission
	for _, p := range s.tuples {
		if filter.ObjectType != "" && p.ObjectType != filter.ObjectType {
			continue
		}
		if filter.ObjectID != "" && p.ObjectID != filter.ObjectID {
			continue
		}
		if filter.SubjectType != "" && p.SubjectType != filter.SubjectType {
			continue
		}
		if filter.SubjectID != "" && p.SubjectID != filter.SubjectID {
			continue
		}
		if filter.Action != "" && p.Action != filter.Action {
			continue
		}
		stored := p
		out = append(out, &stored)
	}
	sort.Slice(out, func(i, j int) bool {
		return helper_util.FormatTime(out[i].GrantedAt) > helper_util.FormatTime(out[j].GrantedAt)
	})
	return out, nil
}

// storeEngine wires the engine to the in-memory store with resolvers that
// know one object owned by nobody and one regular user.
func storeEngine(store *memoryPermissionStore) *authz.Engine {
	principals := new(mock.MockPrincipalResolver)
	principals.On("GetUser", testify_mock.Anything, testify_mock.Anything).
		Return(regularUser("u1"), nil)
	memberships := new(mock.MockMembershipResolver)
	memberships.On("GetMembershipsForUser", testify_mock.Anything, testify_mock.Anything).
		Return([]model.Membership{}, nil)
	orgs := new(mock.MockOrganizationResolver)
	objects := new(mock.MockObjectResolver)
	objects.On("GetOwnership", testify_mock.Anything, testify_mock.Anything, testify_mock.Anything).
		Return(&model.Ownership{}, nil)
	return authz.NewEngine(store, principals, memberships, orgs, objects)
}

func TestPermissionStoreContract(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	ctx := context.Background()

	grant := model.Permission{
		ObjectType:  model.ObjectTypeBin,
		ObjectID:    "b1",
		SubjectType: model.SubjectTypeUser,
		SubjectID:   "u1",
		Action:      model.ActionRead,
		GrantedBy:   "admin-1",
	}

	t.Run("Grant_Twice_ConvergesToOneTuple", func(t *testing.T) {
		store := newMemoryPermissionStore()
		engine := storeEngine(store)

		first, err := engine.Grant(ctx, grant)
		assert.NoError(t, err)

		refreshed := grant
		refreshed.GrantedBy = "admin-2"
		second, err := engine.Grant(ctx, refreshed)
		assert.NoError(t, err)

		listed, err := engine.GetPermissions(ctx, model.PermissionFilter{ObjectID: "b1"})
		assert.NoError(t, err)
		assert.Len(t, listed, 1)
		assert.Equal(t, "admin-2", listed[0].GrantedBy)
		assert.Equal(t, second.GrantedAt, listed[0].GrantedAt)
		assert.False(t, listed[0].GrantedAt.Before(first.GrantedAt))
	})

	t.Run("Grant_ThenCheck_OnlyGrantedActionAllowed", func(t *testing.T) {
		store := newMemoryPermissionStore()
		engine := storeEngine(store)

		_, err := engine.Grant(ctx, grant)
		assert.NoError(t, err)

		allowed, err := engine.CanAccess(ctx, "u1", model.ObjectTypeBin, "b1", model.ActionRead)
		assert.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = engine.CanAccess(ctx, "u1", model.ObjectTypeBin, "b1", model.ActionWrite)
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("RevokeThenCheck_DeniedAndSecondRevokeFails", func(t *testing.T) {
		store := newMemoryPermissionStore()
		engine := storeEngine(store)

		_, err := engine.Grant(ctx, grant)
		assert.NoError(t, err)

		assert.NoError(t, engine.Revoke(ctx, grant.Key()))

		allowed, err := engine.CanAccess(ctx, "u1", model.ObjectTypeBin, "b1", model.ActionRead)
		assert.NoError(t, err)
		assert.False(t, allowed)

		assert.ErrorIs(t, engine.Revoke(ctx, grant.Key()), stockroom_errors.ErrPermissionNotFound)
	})

	t.Run("ListPermissions_MostRecentFirst_SubsecondGrants", func(t *testing.T) {
		store := newMemoryPermissionStore()
		engine := storeEngine(store)

		// Three grants within one second. The middle pair has fractional
		// parts where one rendered without trailing zeros would be a
		// prefix of the other, the case that breaks naive string sorting.
		base := time.Date(2026, 8, 30, 10, 0, 5, 0, time.UTC)
		seed := func(action model.Action, grantedAt time.Time) {
			p := grant
			p.Action = action
			p.GrantedAt = grantedAt
			_, err := store.UpsertPermission(ctx, p)
			assert.NoError(t, err)
		}
		seed(model.ActionRead, base.Add(123450000*time.Nanosecond))
		seed(model.ActionWrite, base.Add(123456000*time.Nanosecond))
		seed(model.ActionAdmin, base.Add(200000000*time.Nanosecond))

		listed, err := engine.GetPermissions(ctx, model.PermissionFilter{ObjectID: "b1"})

		assert.NoError(t, err)
		assert.Len(t, listed, 3)
		assert.Equal(t, model.ActionAdmin, listed[0].Action)
		assert.Equal(t, model.ActionWrite, listed[1].Action)
		assert.Equal(t, model.ActionRead, listed[2].Action)
	})
}
