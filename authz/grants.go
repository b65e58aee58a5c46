// authz/grants.go
package authz

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	stockroom_errors "github.com/stockroom-app/api/errors"
	logger "github.com/stockroom-app/api/logging"
	"github.com/stockroom-app/api/model"
)

// Grant upserts one explicit permission tuple. The referenced object must
// exist and the subject must resolve for its subject type. Granting an
// existing tuple refreshes GrantedBy/GrantedAt; the operation is idempotent.
func (e *Engine) Grant(ctx context.Context, p model.Permission) (*model.Permission, error) {
	if err := validateKey(p.Key()); err != nil {
		return nil, err
	}
	if p.GrantedBy == "" {
		return nil, stockroom_errors.ErrInvalidPermissionData
	}

	if _, err := e.objects.GetOwnership(ctx, p.ObjectType, p.ObjectID); err != nil {
		return nil, err
	}

	if err := e.validateSubject(ctx, p.SubjectType, p.SubjectID); err != nil {
		return nil, err
	}

	p.GrantedAt = time.Now().UTC()
	granted, err := e.store.UpsertPermission(ctx, p)
	if err != nil {
		return nil, err
	}

	logger.Info("Permission granted",
		zap.String("objectType", string(p.ObjectType)),
		zap.String("objectID", p.ObjectID),
		zap.String("subjectType", string(p.SubjectType)),
		zap.String("subjectID", p.SubjectID),
		zap.String("action", string(p.Action)),
		zap.String("grantedBy", p.GrantedBy))
	return granted, nil
}

// Revoke deletes one tuple by natural key. Revoking a nonexistent tuple is an
// error, not a no-op.
func (e *Engine) Revoke(ctx context.Context, key model.PermissionKey) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := e.store.DeletePermission(ctx, key); err != nil {
		return err
	}

	logger.Info("Permission revoked",
		zap.String("objectType", string(key.ObjectType)),
		zap.String("objectID", key.ObjectID),
		zap.String("subjectType", string(key.SubjectType)),
		zap.String("subjectID", key.SubjectID),
		zap.String("action", string(key.Action)))
	return nil
}

// GetPermissions lists tuples matching the filter, most recent grant first.
func (e *Engine) GetPermissions(ctx context.Context, filter model.PermissionFilter) ([]*model.Permission, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return e.store.ListPermissions(ctx, filter)
}

func (e *Engine) validateSubject(ctx context.Context, subjectType model.SubjectType, subjectID string) error {
	switch subjectType {
	case model.SubjectTypeUser:
		if _, err := e.principals.GetUser(ctx, subjectID); err != nil {
			if errors.Is(err, stockroom_errors.ErrUserNotFound) {
				return stockroom_errors.ErrSubjectNotFound
			}
			return err
		}
	case model.SubjectTypeOrganization:
		if _, err := e.orgs.GetOrganization(ctx, subjectID); err != nil {
			if errors.Is(err, stockroom_errors.ErrOrganizationNotFound) {
				return stockroom_errors.ErrSubjectNotFound
			}
			return err
		}
	case model.SubjectTypeRole:
		if !model.GlobalRole(subjectID).Valid() {
			return stockroom_errors.ErrInvalidRole
		}
	}
	return nil
}

func validateKey(key model.PermissionKey) error {
	if !key.ObjectType.Valid() {
		return stockroom_errors.ErrInvalidObjectType
	}
	if !key.SubjectType.Valid() {
		return stockroom_errors.ErrInvalidSubjectType
	}
	if !key.Action.Valid() {
		return stockroom_errors.ErrInvalidAction
	}
	if key.ObjectID == "" || key.SubjectID == "" {
		return stockroom_errors.ErrInvalidPermissionData
	}
	return nil
}

func validateFilter(filter model.PermissionFilter) error {
	if filter.ObjectType != "" && !filter.ObjectType.Valid() {
		return stockroom_errors.ErrInvalidObjectType
	}
	if filter.SubjectType != "" && !filter.SubjectType.Valid() {
		return stockroom_errors.ErrInvalidSubjectType
	}
	if filter.Action != "" && !filter.Action.Valid() {
		return stockroom_errors.ErrInvalidAction
	}
	return nil
}
