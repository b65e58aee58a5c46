// dao/user_dao.go
package dao

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	stockroom_errors "github.com/stockroom-app/api/errors"
	logger "github.com/stockroom-app/api/logging"
	"github.com/stockroom-app/api/model"
	stockroom_neo4j "github.com/stockroom-app/api/model/neo4j"
	helper_util "github.com/stockroom-app/api/util/helper"
)

// UserDAO is a read-only principal lookup. User provisioning lives in the
// credential subsystem; the authorization engine only resolves ids.
type UserDAO struct {
	Driver neo4j.Driver
}

func NewUserDAO(driver neo4j.Driver) *UserDAO {
	return &UserDAO{Driver: driver}
}

func (dao *UserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (u:` + stockroom_neo4j.LabelUser + ` {id: $id})
    RETURN u
    `
	result, err := session.Run(query, map[string]interface{}{"id": userID})
	if err != nil {
		logger.Error("Failed to execute get user query",
			zap.Error(err),
			zap.String("userID", userID),
			zap.Duration("duration", time.Since(start)))
		return nil, stockroom_errors.ErrDatabaseOperation
	}

	if result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		user, err := mapNodeToUser(node)
		if err != nil {
			logger.Error("Failed to map user node to struct",
				zap.Error(err),
				zap.String("userID", userID),
				zap.Duration("duration", time.Since(start)))
			return nil, stockroom_errors.ErrInternalServer
		}
		return user, nil
	}

	logger.Warn("User not found",
		zap.String("userID", userID),
		zap.Duration("duration", time.Since(start)))
	return nil, stockroom_errors.ErrUserNotFound
}

func mapNodeToUser(node neo4j.Node) (*model.User, error) {
	props := node.Props
	user := &model.User{}

	user.ID = props["id"].(string)
	user.Name, _ = props["name"].(string)
	user.Email, _ = props["email"].(string)
	user.GlobalRole = model.GlobalRole(props["globalRole"].(string))

	if createdAt, ok := props["createdAt"].(string); ok {
		t, err := helper_util.ParseTime(createdAt)
		if err == nil {
			user.CreatedAt = t
		}
	}
	if updatedAt, ok := props["updatedAt"].(string); ok {
		t, err := helper_util.ParseTime(updatedAt)
		if err == nil {
			user.UpdatedAt = t
		}
	}

	return user, nil
}
