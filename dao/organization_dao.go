// dao/organization_dao.go
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

// OrganizationDAO is a read-only resolver over the organization subsystem's
// graph: organization nodes and MEMBER_OF relationships carrying org roles.
type OrganizationDAO struct {
	Driver neo4j.Driver
}

func NewOrganizationDAO(driver neo4j.Driver) *OrganizationDAO {
	return &OrganizationDAO{Driver: driver}
}

func (dao *OrganizationDAO) GetOrganization(ctx context.Context, organizationID string) (*model.Organization, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (o:` + stockroom_neo4j.LabelOrganization + ` {id: $id})
    RETURN o
    `
	result, err := session.Run(query, map[string]interface{}{"id": organizationID})
	if err != nil {
		logger.Error("Failed to execute get organization query",
			zap.Error(err),
			zap.String("organizationID", organizationID),
			zap.Duration("duration", time.Since(start)))
		return nil, stockroom_errors.ErrDatabaseOperation
	}

	if result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		org := mapNodeToOrganization(node)
		return org, nil
	}

	logger.Warn("Organization not found",
		zap.String("organizationID", organizationID),
		zap.Duration("duration", time.Since(start)))
	return nil, stockroom_errors.ErrOrganizationNotFound
}

// GetMembershipsForUser lists every organization the user belongs to with the
// user's role in each. An unknown user yields an empty set, not an error.
func (dao *OrganizationDAO) GetMembershipsForUser(ctx context.Context, userID string) ([]model.Membership, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
    MATCH (u:` + stockroom_neo4j.LabelUser + ` {id: $userId})-[m:` + stockroom_neo4j.RelMemberOf + `]->(o:` + stockroom_neo4j.LabelOrganization + `)
    RETURN o.id AS organizationId, m.` + stockroom_neo4j.PropOrgRole + ` AS role
    `
	result, err := session.Run(query, map[string]interface{}{"userId": userID})
	if err != nil {
		logger.Error("Failed to execute memberships query",
			zap.Error(err),
			zap.String("userID", userID),
			zap.Duration("duration", time.Since(start)))
		return nil, stockroom_errors.ErrDatabaseOperation
	}

	var memberships []model.Membership
	for result.Next() {
		record := result.Record()
		organizationID, _ := record.Values[0].(string)
		role, _ := record.Values[1].(string)
		memberships = append(memberships, model.Membership{
			OrganizationID: organizationID,
			OrgRole:        model.OrgRole(role),
		})
	}

	logger.Debug("Memberships resolved",
		zap.String("userID", userID),
		zap.Int("count", len(memberships)),
		zap.Duration("duration", time.Since(start)))

	return memberships, nil
}

func mapNodeToOrganization(node neo4j.Node) *model.Organization {
	props := node.Props
	org := &model.Organization{}

	org.ID = props["id"].(string)
	org.Name, _ = props["name"].(string)

	if createdAt, ok := props["createdAt"].(string); ok {
		t, err := helper_util.ParseTime(createdAt)
		if err == nil {
			org.CreatedAt = t
		}
	}
	if updatedAt, ok := props["updatedAt"].(string); ok {
		t, err := helper_util.ParseTime(updatedAt)
		if err == nil {
			org.UpdatedAt = t
		}
	}

	return org
}
