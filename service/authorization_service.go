// service/authorization_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/stockroom-app/api/audit"
	"github.com/stockroom-app/api/authz"
	"github.com/stockroom-app/api/db"
	stockroom_errors "github.com/stockroom-app/api/errors"
	logger "github.com/stockroom-app/api/logging"
	"github.com/stockroom-app/api/model"
	"github.com/stockroom-app/api/util"
)

// IAuthorizationService defines the interface for permission operations
type IAuthorizationService interface {
	CanAccess(ctx context.Context, principalID string, objectType model.ObjectType, objectID string, action model.Action) (bool, error)
	Grant(ctx context.Context, permission model.Permission, actorID string) (*model.Permission, error)
	Revoke(ctx context.Context, key model.PermissionKey, actorID string) error
	GetPermissions(ctx context.Context, filter model.PermissionFilter) ([]*model.Permission, error)
	ReplacePermissions(ctx context.Context, objectType model.ObjectType, objectID string, grants []model.Permission, actorID string) ([]*model.Permission, error)
	CreateDefaultPermissions(ctx context.Context, objectType model.ObjectType, objectID, ownerID, organizationID string) error
}

// AuthorizationService fronts the engine with request validation, the audit
// trail, event publications and notifications.
type AuthorizationService struct {
	engine          *authz.Engine
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	auditService    audit.Service
}

var _ IAuthorizationService = &AuthorizationService{}

// NewAuthorizationService creates a new instance of AuthorizationService
func NewAuthorizationService(
	engine *authz.Engine,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	auditService audit.Service,
) *AuthorizationService {
	service := &AuthorizationService{
		engine:          engine,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		auditService:    auditService,
	}

	// Set up event subscriptions
	eventBus.Subscribe("permission.granted", service.handlePermissionGranted)
	eventBus.Subscribe("permission.revoked", service.handlePermissionRevoked)

	return service
}

func (s *AuthorizationService) handlePermissionGranted(ctx context.Context, event util.Event) error {
	permission := event.Payload.(model.Permission)
	if err := s.notificationSvc.NotifyPermissionChange(ctx, "granted", permission); err != nil {
		logger.Warn("Failed to send grant notification", zap.Error(err))
	}
	return nil
}

func (s *AuthorizationService) handlePermissionRevoked(ctx context.Context, event util.Event) error {
	key := event.Payload.(model.PermissionKey)
	permission := model.Permission{
		ObjectType:  key.ObjectType,
		ObjectID:    key.ObjectID,
		SubjectType: key.SubjectType,
		SubjectID:   key.SubjectID,
		Action:      key.Action,
	}
	if err := s.notificationSvc.NotifyPermissionChange(ctx, "revoked", permission); err != nil {
		logger.Warn("Failed to send revoke notification", zap.Error(err))
	}
	return nil
}

// CanAccess runs the resolution chain and records the decision in the audit
// trail. Deny is an ordinary false outcome, never an error.
func (s *AuthorizationService) CanAccess(ctx context.Context, principalID string, objectType model.ObjectType, objectID string, action model.Action) (bool, error) {
	allowed, err := s.engine.CanAccess(ctx, principalID, objectType, objectID, action)
	if err != nil {
		return false, err
	}

	auditLog := audit.AuditLog{
		Timestamp:     time.Now().UTC(),
		ActorID:       principalID,
		Action:        "ACCESS_CHECK",
		ObjectType:    objectType,
		ObjectID:      objectID,
		Capability:    action,
		AccessGranted: allowed,
	}
	if err := s.auditService.LogAccess(ctx, auditLog); err != nil {
		logger.Error("Failed to write access-check audit log", zap.Error(err))
	}

	return allowed, nil
}

// Grant upserts one explicit tuple on behalf of actorID.
func (s *AuthorizationService) Grant(ctx context.Context, permission model.Permission, actorID string) (*model.Permission, error) {
	if err := s.validationUtil.ValidatePermission(permission); err != nil {
		return nil, err
	}

	permission.GrantedBy = actorID
	granted, err := s.engine.Grant(ctx, permission)
	if err != nil {
		return nil, err
	}

	s.auditMutation(ctx, "GRANT", actorID, granted.Key(), true, nil)
	s.eventBus.Publish(ctx, "permission.granted", *granted)

	return granted, nil
}

// Revoke deletes one tuple by natural key on behalf of actorID.
func (s *AuthorizationService) Revoke(ctx context.Context, key model.PermissionKey, actorID string) error {
	if err := s.validationUtil.ValidatePermissionKey(key); err != nil {
		return err
	}

	if err := s.engine.Revoke(ctx, key); err != nil {
		return err
	}

	s.auditMutation(ctx, "REVOKE", actorID, key, true, nil)
	s.eventBus.Publish(ctx, "permission.revoked", key)

	return nil
}

// GetPermissions lists tuples matching the filter, most recent first.
func (s *AuthorizationService) GetPermissions(ctx context.Context, filter model.PermissionFilter) ([]*model.Permission, error) {
	if err := s.validationUtil.ValidatePermissionFilter(filter); err != nil {
		return nil, err
	}
	return s.engine.GetPermissions(ctx, filter)
}

// ReplacePermissions swaps the full tuple set of one object: enumerate,
// revoke each, grant the new set. The sequence is not transactional; a crash
// mid-way leaves a partial set. A redis lock narrows (but cannot close) the
// window against concurrent replacements, and revoke races lost to concurrent
// mutations are logged and tolerated.
func (s *AuthorizationService) ReplacePermissions(ctx context.Context, objectType model.ObjectType, objectID string, grants []model.Permission, actorID string) ([]*model.Permission, error) {
	if !objectType.Valid() {
		return nil, stockroom_errors.ErrInvalidObjectType
	}
	for _, g := range grants {
		if g.ObjectType != objectType || g.ObjectID != objectID {
			return nil, stockroom_errors.ErrInvalidPermissionData
		}
		if err := s.validationUtil.ValidatePermission(g); err != nil {
			return nil, err
		}
	}

	lockName := "permissions:" + string(objectType) + ":" + objectID
	locked, err := db.LockResource(ctx, lockName, 10*time.Second)
	if err != nil {
		logger.Warn("Failed to acquire replace lock, proceeding unlocked", zap.Error(err))
	} else if locked {
		defer func() {
			if err := db.UnlockResource(ctx, lockName); err != nil {
				logger.Warn("Failed to release replace lock", zap.Error(err))
			}
		}()
	}

	existing, err := s.engine.GetPermissions(ctx, model.PermissionFilter{
		ObjectType: objectType,
		ObjectID:   objectID,
	})
	if err != nil {
		return nil, err
	}

	for _, p := range existing {
		if err := s.engine.Revoke(ctx, p.Key()); err != nil {
			if errors.Is(err, stockroom_errors.ErrPermissionNotFound) {
				// Lost a race with a concurrent revoke; the tuple is gone
				// either way.
				logger.Warn("Tuple vanished during replace",
					zap.String("objectID", objectID),
					zap.String("subjectID", p.SubjectID),
					zap.String("action", string(p.Action)))
				continue
			}
			return nil, err
		}
	}

	replaced := make([]*model.Permission, 0, len(grants))
	for _, g := range grants {
		g.GrantedBy = actorID
		granted, err := s.engine.Grant(ctx, g)
		if err != nil {
			return nil, err
		}
		replaced = append(replaced, granted)
	}

	details, _ := json.Marshal(map[string]int{"revoked": len(existing), "granted": len(replaced)})
	s.auditMutation(ctx, "REPLACE", actorID, model.PermissionKey{ObjectType: objectType, ObjectID: objectID}, true, details)
	s.eventBus.Publish(ctx, "permission.replaced", model.PermissionFilter{ObjectType: objectType, ObjectID: objectID})

	return replaced, nil
}

// CreateDefaultPermissions seeds the initial tuples for a new object.
func (s *AuthorizationService) CreateDefaultPermissions(ctx context.Context, objectType model.ObjectType, objectID, ownerID, organizationID string) error {
	if err := s.engine.CreateDefaultPermissions(ctx, objectType, objectID, ownerID, organizationID); err != nil {
		return err
	}

	s.auditMutation(ctx, "SEED_DEFAULTS", ownerID, model.PermissionKey{ObjectType: objectType, ObjectID: objectID}, true, nil)
	return nil
}

func (s *AuthorizationService) auditMutation(ctx context.Context, action, actorID string, key model.PermissionKey, granted bool, details json.RawMessage) {
	auditLog := audit.AuditLog{
		Timestamp:     time.Now().UTC(),
		ActorID:       actorID,
		Action:        action,
		ObjectType:    key.ObjectType,
		ObjectID:      key.ObjectID,
		SubjectType:   key.SubjectType,
		SubjectID:     key.SubjectID,
		Capability:    key.Action,
		AccessGranted: granted,
		Details:       details,
	}
	if err := s.auditService.LogAccess(ctx, auditLog); err != nil {
		logger.Error("Failed to write mutation audit log",
			zap.Error(err),
			zap.String("action", action))
	}
}
