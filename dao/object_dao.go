// dao/object_dao.go
package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	stockroom_errors "github.com/stockroom-app/api/errors"
	logger "github.com/stockroom-app/api/logging"
	"github.com/stockroom-app/api/model"
	stockroom_neo4j "github.com/stockroom-app/api/model/neo4j"
	helper_util "github.com/stockroom-app/api/util/helper"
)

// objectLabels is the dispatch table from object type to node label. Adding a
// new object type means adding its enum value and one entry here; the engine
// and the rest of the DAO stay untouched.
var objectLabels = map[model.ObjectType]string{
	model.ObjectTypeBin:      stockroom_neo4j.LabelBin,
	model.ObjectTypeItem:     stockroom_neo4j.LabelItem,
	model.ObjectTypeCategory: stockroom_neo4j.LabelCategory,
}

// ObjectDAO persists bins, items and categories. All three share one node
// shape; the label is selected through the dispatch table.
type ObjectDAO struct {
	Driver neo4j.Driver
}

func NewObjectDAO(driver neo4j.Driver) *ObjectDAO {
	return &ObjectDAO{Driver: driver}
}

func labelFor(objectType model.ObjectType) (string, error) {
	label, ok := objectLabels[objectType]
	if !ok {
		return "", stockroom_errors.ErrInvalidObjectType
	}
	return label, nil
}

// CreateResource stores a new object node and returns it with id and
// timestamps assigned.
func (dao *ObjectDAO) CreateResource(ctx context.Context, resource model.Resource) (*model.Resource, error) {
	label, err := labelFor(resource.Type)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if resource.ID == "" {
		resource.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	resource.CreatedAt = now
	resource.UpdatedAt = now

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE (r:` + label + ` {id: $id})
        SET r += $props
        RETURN r
        `
		params := map[string]interface{}{
			"id": resource.ID,
			"props": map[string]interface{}{
				"name":           resource.Name,
				"description":    resource.Description,
				"userId":         resource.UserID,
				"organizationId": resource.OrganizationID,
				"createdAt":      helper_util.FormatTime(now),
				"updatedAt":      helper_util.FormatTime(now),
			},
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, stockroom_errors.ErrDatabaseOperation
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToResource(node, resource.Type)
		}
		return nil, stockroom_errors.ErrInternalServer
	})

	if err != nil {
		logger.Error("Failed to create resource",
			zap.Error(err),
			zap.String("type", string(resource.Type)),
			zap.String("name", resource.Name),
			zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	created := result.(*model.Resource)
	logger.Info("Resource created successfully",
		zap.String("type", string(created.Type)),
		zap.String("resourceID", created.ID),
		zap.Duration("duration", time.Since(start)))
	return created, nil
}

// GetResource retrieves one object by type and id.
func (dao *ObjectDAO) GetResource(ctx context.Context, objectType model.ObjectType, resourceID string) (*model.Resource, error) {
	label, err := labelFor(objectType)
	if err != nil {
		return nil, err
	}

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (r:` + label + ` {id: $id})
    RETURN r
    `
	result, err := session.Run(query, map[string]interface{}{"id": resourceID})
	if err != nil {
		logger.Error("Failed to execute get resource query",
			zap.Error(err),
			zap.String("resourceID", resourceID))
		return nil, stockroom_errors.ErrDatabaseOperation
	}

	if result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		return mapNodeToResource(node, objectType)
	}

	return nil, stockroom_errors.ErrObjectNotFound
}

// GetOwnership resolves just the owning context of an object.
func (dao *ObjectDAO) GetOwnership(ctx context.Context, objectType model.ObjectType, objectID string) (*model.Ownership, error) {
	resource, err := dao.GetResource(ctx, objectType, objectID)
	if err != nil {
		return nil, err
	}
	ownership := resource.Ownership()
	return &ownership, nil
}

// UpdateResource rewrites the mutable fields of an existing object.
func (dao *ObjectDAO) UpdateResource(ctx context.Context, resource model.Resource) (*model.Resource, error) {
	label, err := labelFor(resource.Type)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (r:` + label + ` {id: $id})
        SET r.name = $name, r.description = $description, r.updatedAt = $updatedAt
        RETURN r
        `
		params := map[string]interface{}{
			"id":          resource.ID,
			"name":        resource.Name,
			"description": resource.Description,
			"updatedAt":   helper_util.FormatTime(time.Now()),
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, stockroom_errors.ErrDatabaseOperation
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToResource(node, resource.Type)
		}
		return nil, stockroom_errors.ErrObjectNotFound
	})

	if err != nil {
		logger.Error("Failed to update resource",
			zap.Error(err),
			zap.String("resourceID", resource.ID),
			zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	return result.(*model.Resource), nil
}

// DeleteResource removes the object node. Permission tuples are cleaned up
// separately by the caller through the permission DAO.
func (dao *ObjectDAO) DeleteResource(ctx context.Context, objectType model.ObjectType, resourceID string) error {
	label, err := labelFor(objectType)
	if err != nil {
		return err
	}

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (r:` + label + ` {id: $id})
        DETACH DELETE r
        RETURN count(r) AS removed
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": resourceID})
		if err != nil {
			return nil, stockroom_errors.ErrDatabaseOperation
		}
		if result.Next() {
			return result.Record().Values[0].(int64), nil
		}
		return int64(0), nil
	})

	if err != nil {
		logger.Error("Failed to delete resource",
			zap.Error(err),
			zap.String("resourceID", resourceID))
		return err
	}

	if result.(int64) == 0 {
		return stockroom_errors.ErrObjectNotFound
	}

	logger.Info("Resource deleted successfully",
		zap.String("type", string(objectType)),
		zap.String("resourceID", resourceID))
	return nil
}

func mapNodeToResource(node neo4j.Node, objectType model.ObjectType) (*model.Resource, error) {
	props := node.Props
	resource := &model.Resource{Type: objectType}

	resource.ID = props["id"].(string)
	resource.Name, _ = props["name"].(string)
	resource.Description, _ = props["description"].(string)
	resource.UserID, _ = props["userId"].(string)
	resource.OrganizationID, _ = props["organizationId"].(string)

	if createdAt, ok := props["createdAt"].(string); ok {
		t, err := helper_util.ParseTime(createdAt)
		if err == nil {
			resource.CreatedAt = t
		}
	}
	if updatedAt, ok := props["updatedAt"].(string); ok {
		t, err := helper_util.ParseTime(updatedAt)
		if err == nil {
			resource.UpdatedAt = t
		}
	}

	return resource, nil
}
