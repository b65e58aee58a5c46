// test/mock/resolvers.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stockroom-app/api/model"
)

// MockPrincipalResolver is a mock implementation of authz.PrincipalResolver
type MockPrincipalResolver struct {
	mock.Mock
}

func (m *MockPrincipalResolver) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockMembershipResolver is a mock implementation of authz.MembershipResolver
type MockMembershipResolver struct {
	mock.Mock
}

func (m *MockMembershipResolver) GetMembershipsForUser(ctx context.Context, userID string) ([]model.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Membership), args.Error(1)
}

// MockOrganizationResolver is a mock implementation of authz.OrganizationResolver
type MockOrganizationResolver struct {
	mock.Mock
}

func (m *MockOrganizationResolver) GetOrganization(ctx context.Context, id string) (*model.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

// MockObjectResolver is a mock implementation of authz.ObjectResolver
type MockObjectResolver struct {
	mock.Mock
}

func (m *MockObjectResolver) GetOwnership(ctx context.Context, objectType model.ObjectType, objectID string) (*model.Ownership, error) {
	args := m.Called(ctx, objectType, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ownership), args.Error(1)
}

// MockPermissionStore is a mock implementation of authz.PermissionStore
type MockPermissionStore struct {
	mock.Mock
}

func (m *MockPermissionStore) UpsertPermission(ctx context.Context, p model.Permission) (*model.Permission, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Permission), args.Error(1)
}

func (m *MockPermissionStore) DeletePermission(ctx context.Context, key model.PermissionKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockPermissionStore) HasPermission(ctx context.Context, key model.PermissionKey) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionStore) ListPermissions(ctx context.Context, filter model.PermissionFilter) ([]*model.Permission, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Permission), args.Error(1)
}
