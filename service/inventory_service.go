// service/inventory_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/stockroom-app/api/dao"
	stockroom_errors "github.com/stockroom-app/api/errors"
	logger "github.com/stockroom-app/api/logging"
	"github.com/stockroom-app/api/model"
	"github.com/stockroom-app/api/util"
)

// IInventoryService defines the interface for inventory object operations
type IInventoryService interface {
	CreateResource(ctx context.Context, resource model.Resource, actorID string) (*model.Resource, error)
	GetResource(ctx context.Context, objectType model.ObjectType, resourceID string, actorID string) (*model.Resource, error)
	UpdateResource(ctx context.Context, resource model.Resource, actorID string) (*model.Resource, error)
	DeleteResource(ctx context.Context, objectType model.ObjectType, resourceID string, actorID string) error
}

// InventoryService handles bins, items and categories uniformly through the
// object-type dispatch in the DAO. Every read and mutation is gated by the
// authorization service; object creation seeds default permissions.
type InventoryService struct {
	objectDAO       *dao.ObjectDAO
	permissionDAO   *dao.PermissionDAO
	authzService    IAuthorizationService
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IInventoryService = &InventoryService{}

// NewInventoryService creates a new instance of InventoryService
func NewInventoryService(
	objectDAO *dao.ObjectDAO,
	permissionDAO *dao.PermissionDAO,
	authzService IAuthorizationService,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *InventoryService {
	service := &InventoryService{
		objectDAO:       objectDAO,
		permissionDAO:   permissionDAO,
		authzService:    authzService,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("resource.created", service.handleResourceCreated)
	eventBus.Subscribe("resource.deleted", service.handleResourceDeleted)

	return service
}

func (s *InventoryService) handleResourceCreated(ctx context.Context, event util.Event) error {
	resource := event.Payload.(model.Resource)
	if err := s.notificationSvc.NotifyResourceChange(ctx, "created", resource); err != nil {
		logger.Warn("Failed to send resource creation notification", zap.Error(err))
	}
	return nil
}

func (s *InventoryService) handleResourceDeleted(ctx context.Context, event util.Event) error {
	resource := event.Payload.(model.Resource)
	if err := s.notificationSvc.NotifyResourceChange(ctx, "deleted", resource); err != nil {
		logger.Warn("Failed to send resource deletion notification", zap.Error(err))
	}
	return nil
}

// CreateResource stores the object and seeds its default permissions. The
// actor becomes the individual owner. Seeding issues three independent
// grants; if any fails the freshly created object is rolled back so it never
// exists under-permissioned.
func (s *InventoryService) CreateResource(ctx context.Context, resource model.Resource, actorID string) (*model.Resource, error) {
	if err := s.validationUtil.ValidateResource(resource); err != nil {
		return nil, err
	}

	resource.UserID = actorID
	created, err := s.objectDAO.CreateResource(ctx, resource)
	if err != nil {
		return nil, err
	}

	if err := s.authzService.CreateDefaultPermissions(ctx, created.Type, created.ID, actorID, created.OrganizationID); err != nil {
		logger.Error("Failed to seed default permissions, rolling back object",
			zap.Error(err),
			zap.String("resourceID", created.ID))
		if _, cleanupErr := s.permissionDAO.DeletePermissionsForObject(ctx, created.Type, created.ID); cleanupErr != nil {
			logger.Error("Failed to clean up partial permission seed", zap.Error(cleanupErr))
		}
		if cleanupErr := s.objectDAO.DeleteResource(ctx, created.Type, created.ID); cleanupErr != nil {
			logger.Error("Failed to roll back resource after seed failure", zap.Error(cleanupErr))
		}
		return nil, err
	}

	if err := s.cacheService.SetResource(ctx, *created); err != nil {
		logger.Warn("Failed to cache created resource", zap.Error(err))
	}
	s.eventBus.Publish(ctx, "resource.created", *created)

	return created, nil
}

// GetResource returns the object when the actor holds READ on it.
func (s *InventoryService) GetResource(ctx context.Context, objectType model.ObjectType, resourceID string, actorID string) (*model.Resource, error) {
	allowed, err := s.authzService.CanAccess(ctx, actorID, objectType, resourceID, model.ActionRead)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, stockroom_errors.ErrAccessDenied
	}

	cached, err := s.cacheService.GetResource(ctx, objectType, resourceID)
	if err != nil {
		logger.Warn("Resource cache lookup failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	resource, err := s.objectDAO.GetResource(ctx, objectType, resourceID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetResource(ctx, *resource); err != nil {
		logger.Warn("Failed to cache resource", zap.Error(err))
	}

	return resource, nil
}

// UpdateResource rewrites mutable fields when the actor holds WRITE.
func (s *InventoryService) UpdateResource(ctx context.Context, resource model.Resource, actorID string) (*model.Resource, error) {
	if err := s.validationUtil.ValidateResource(resource); err != nil {
		return nil, err
	}

	allowed, err := s.authzService.CanAccess(ctx, actorID, resource.Type, resource.ID, model.ActionWrite)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, stockroom_errors.ErrAccessDenied
	}

	updated, err := s.objectDAO.UpdateResource(ctx, resource)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetResource(ctx, *updated); err != nil {
		logger.Warn("Failed to refresh resource cache", zap.Error(err))
	}

	return updated, nil
}

// DeleteResource removes the object and every permission tuple attached to
// it. Deletion requires ADMIN on the object.
func (s *InventoryService) DeleteResource(ctx context.Context, objectType model.ObjectType, resourceID string, actorID string) error {
	allowed, err := s.authzService.CanAccess(ctx, actorID, objectType, resourceID, model.ActionAdmin)
	if err != nil {
		return err
	}
	if !allowed {
		return stockroom_errors.ErrAccessDenied
	}

	if err := s.objectDAO.DeleteResource(ctx, objectType, resourceID); err != nil {
		return err
	}

	if _, err := s.permissionDAO.DeletePermissionsForObject(ctx, objectType, resourceID); err != nil {
		logger.Error("Failed to remove permission tuples for deleted resource",
			zap.Error(err),
			zap.String("resourceID", resourceID))
	}

	if err := s.cacheService.DeleteResource(ctx, objectType, resourceID); err != nil {
		logger.Warn("Failed to evict deleted resource from cache", zap.Error(err))
	}

	s.eventBus.Publish(ctx, "resource.deleted", model.Resource{ID: resourceID, Type: objectType})
	return nil
}
