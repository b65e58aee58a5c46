// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/stockroom-app/api/logging"
	"github.com/stockroom-app/api/model"
)

type NotificationService struct {
	// Placeholder for a message queue client once outbound delivery exists
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyPermissionChange announces a grant, revoke or replace so downstream
// consumers can react to changed access.
func (n *NotificationService) NotifyPermissionChange(ctx context.Context, changeType string, permission model.Permission) error {
	switch changeType {
	case "granted", "revoked", "replaced":
		logger.Info("NOTIFICATION: Permission "+changeType,
			zap.String("objectType", string(permission.ObjectType)),
			zap.String("objectID", permission.ObjectID),
			zap.String("subjectType", string(permission.SubjectType)),
			zap.String("subjectID", permission.SubjectID),
			zap.String("action", string(permission.Action)))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}

	return nil
}

// NotifyResourceChange announces creation, update or deletion of an
// inventory object.
func (n *NotificationService) NotifyResourceChange(ctx context.Context, changeType string, resource model.Resource) error {
	logger.Info("NOTIFICATION: Resource "+changeType,
		zap.String("type", string(resource.Type)),
		zap.String("resourceID", resource.ID),
		zap.String("name", resource.Name))
	return nil
}
