// dao/permission_dao.go
package dao

import (
	"context"
	"fmt"
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

// PermissionDAO persists permission tuples as Permission nodes keyed by the
// natural key properties. MERGE on those properties makes concurrent grants
// for the same key converge to a single node, last write winning on
// grantedBy/grantedAt.
type PermissionDAO struct {
	Driver neo4j.Driver
}

func NewPermissionDAO(driver neo4j.Driver) *PermissionDAO {
	dao := &PermissionDAO{Driver: driver}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Permission", zap.Error(err))
	}
	return dao
}

func (dao *PermissionDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Permission ID")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_permission_id IF NOT EXISTS
        FOR (p:` + stockroom_neo4j.LabelPermission + `) REQUIRE p.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})

	if err != nil {
		logger.Error("Failed to ensure unique constraint on Permission ID", zap.Error(err))
		return err
	}

	return nil
}

// UpsertPermission creates or refreshes the tuple for the natural key.
func (dao *PermissionDAO) UpsertPermission(ctx context.Context, p model.Permission) (*model.Permission, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MERGE (p:` + stockroom_neo4j.LabelPermission + ` {
            objectType: $objectType,
            objectId: $objectId,
            subjectType: $subjectType,
            subjectId: $subjectId,
            action: $action
        })
        ON CREATE SET p.id = $id
        SET p.grantedBy = $grantedBy, p.grantedAt = $grantedAt
        RETURN p
        `

		params := map[string]interface{}{
			"objectType":  string(p.ObjectType),
			"objectId":    p.ObjectID,
			"subjectType": string(p.SubjectType),
			"subjectId":   p.SubjectID,
			"action":      string(p.Action),
			"id":          uuid.New().String(),
			"grantedBy":   p.GrantedBy,
			"grantedAt":   helper_util.FormatTime(p.GrantedAt),
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, stockroom_errors.ErrDatabaseOperation
		}

		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToPermission(node)
		}

		return nil, stockroom_errors.ErrInternalServer
	})

	if err != nil {
		logger.Error("Failed to upsert permission",
			zap.Error(err),
			zap.String("objectID", p.ObjectID),
			zap.String("subjectID", p.SubjectID),
			zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	permission := result.(*model.Permission)
	logger.Info("Permission upserted successfully",
		zap.String("permissionID", permission.ID),
		zap.Duration("duration", time.Since(start)))

	return permission, nil
}

// DeletePermission removes the tuple for the natural key, reporting
// ErrPermissionNotFound when no tuple matched.
func (dao *PermissionDAO) DeletePermission(ctx context.Context, key model.PermissionKey) error {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (p:` + stockroom_neo4j.LabelPermission + ` {
            objectType: $objectType,
            objectId: $objectId,
            subjectType: $subjectType,
            subjectId: $subjectId,
            action: $action
        })
        DELETE p
        RETURN count(p) AS removed
        `

		result, err := transaction.Run(query, keyParams(key))
		if err != nil {
			return nil, stockroom_errors.ErrDatabaseOperation
		}

		if result.Next() {
			return result.Record().Values[0].(int64), nil
		}

		return int64(0), nil
	})

	if err != nil {
		logger.Error("Failed to delete permission",
			zap.Error(err),
			zap.String("objectID", key.ObjectID),
			zap.String("subjectID", key.SubjectID),
			zap.Duration("duration", time.Since(start)))
		return err
	}

	if result.(int64) == 0 {
		logger.Warn("Permission not found for revoke",
			zap.String("objectID", key.ObjectID),
			zap.String("subjectID", key.SubjectID),
			zap.String("action", string(key.Action)),
			zap.Duration("duration", time.Since(start)))
		return stockroom_errors.ErrPermissionNotFound
	}

	logger.Info("Permission deleted successfully",
		zap.String("objectID", key.ObjectID),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// HasPermission reports whether a tuple exists for the natural key.
func (dao *PermissionDAO) HasPermission(ctx context.Context, key model.PermissionKey) (bool, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (p:` + stockroom_neo4j.LabelPermission + ` {
        objectType: $objectType,
        objectId: $objectId,
        subjectType: $subjectType,
        subjectId: $subjectId,
        action: $action
    })
    RETURN count(p) > 0 AS exists
    `

	result, err := session.Run(query, keyParams(key))
	if err != nil {
		logger.Error("Failed to execute permission existence query",
			zap.Error(err),
			zap.String("objectID", key.ObjectID))
		return false, stockroom_errors.ErrDatabaseOperation
	}

	if result.Next() {
		return result.Record().Values[0].(bool), nil
	}

	return false, nil
}

// ListPermissions returns tuples matching the filter, most recent grant
// first. Zero-valued filter fields are unconstrained.
func (dao *PermissionDAO) ListPermissions(ctx context.Context, filter model.PermissionFilter) ([]*model.Permission, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query, params := buildPermissionListQuery(filter)
	result, err := session.Run(query, params)
	if err != nil {
		logger.Error("Failed to execute list permissions query",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return nil, stockroom_errors.ErrDatabaseOperation
	}

	var permissions []*model.Permission
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		permission, err := mapNodeToPermission(node)
		if err != nil {
			logger.Error("Failed to map permission node to struct",
				zap.Error(err),
				zap.Duration("duration", time.Since(start)))
			return nil, stockroom_errors.ErrInternalServer
		}
		permissions = append(permissions, permission)
	}

	logger.Info("Permissions listed successfully",
		zap.Int("count", len(permissions)),
		zap.Duration("duration", time.Since(start)))

	return permissions, nil
}

// DeletePermissionsForObject removes every tuple attached to one object.
// Used when an object is deleted and by bulk permission replacement.
func (dao *PermissionDAO) DeletePermissionsForObject(ctx context.Context, objectType model.ObjectType, objectID string) (int, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (p:` + stockroom_neo4j.LabelPermission + ` {objectType: $objectType, objectId: $objectId})
        DELETE p
        RETURN count(p) AS removed
        `
		result, err := transaction.Run(query, map[string]interface{}{
			"objectType": string(objectType),
			"objectId":   objectID,
		})
		if err != nil {
			return nil, stockroom_errors.ErrDatabaseOperation
		}
		if result.Next() {
			return result.Record().Values[0].(int64), nil
		}
		return int64(0), nil
	})

	if err != nil {
		logger.Error("Failed to delete permissions for object",
			zap.Error(err),
			zap.String("objectID", objectID))
		return 0, err
	}

	removed := int(result.(int64))
	logger.Info("Permissions removed for object",
		zap.String("objectType", string(objectType)),
		zap.String("objectID", objectID),
		zap.Int("removed", removed))
	return removed, nil
}

func buildPermissionListQuery(filter model.PermissionFilter) (string, map[string]interface{}) {
	query := "MATCH (p:" + stockroom_neo4j.LabelPermission + ")"
	params := map[string]interface{}{}
	var conditions []string

	if filter.ObjectType != "" {
		conditions = append(conditions, "p.objectType = $objectType")
		params["objectType"] = string(filter.ObjectType)
	}
	if filter.ObjectID != "" {
		conditions = append(conditions, "p.objectId = $objectId")
		params["objectId"] = filter.ObjectID
	}
	if filter.SubjectType != "" {
		conditions = append(conditions, "p.subjectType = $subjectType")
		params["subjectType"] = string(filter.SubjectType)
	}
	if filter.SubjectID != "" {
		conditions = append(conditions, "p.subjectId = $subjectId")
		params["subjectId"] = filter.SubjectID
	}
	if filter.Action != "" {
		conditions = append(conditions, "p.action = $action")
		params["action"] = string(filter.Action)
	}

	for i, condition := range conditions {
		if i == 0 {
			query += "\nWHERE " + condition
		} else {
			query += " AND " + condition
		}
	}

	query += "\nRETURN p\nORDER BY p.grantedAt DESC"
	if filter.Limit > 0 {
		query += "\nSKIP $offset LIMIT $limit"
		params["offset"] = filter.Offset
		params["limit"] = filter.Limit
	}
	return query, params
}

func keyParams(key model.PermissionKey) map[string]interface{} {
	return map[string]interface{}{
		"objectType":  string(key.ObjectType),
		"objectId":    key.ObjectID,
		"subjectType": string(key.SubjectType),
		"subjectId":   key.SubjectID,
		"action":      string(key.Action),
	}
}

func mapNodeToPermission(node neo4j.Node) (*model.Permission, error) {
	props := node.Props
	permission := &model.Permission{}

	permission.ID, _ = props["id"].(string)
	permission.ObjectType = model.ObjectType(props["objectType"].(string))
	permission.ObjectID = props["objectId"].(string)
	permission.SubjectType = model.SubjectType(props["subjectType"].(string))
	permission.SubjectID = props["subjectId"].(string)
	permission.Action = model.Action(props["action"].(string))
	permission.GrantedBy, _ = props["grantedBy"].(string)

	grantedAt, ok := props["grantedAt"].(string)
	if !ok {
		return nil, fmt.Errorf("permission node %s missing grantedAt", permission.ID)
	}
	parsed, err := helper_util.ParseTime(grantedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse grantedAt: %w", err)
	}
	permission.GrantedAt = parsed

	return permission, nil
}
