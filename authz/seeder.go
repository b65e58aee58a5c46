// authz/seeder.go
package authz

import (
	"context"
	"fmt"

	"github.com/stockroom-app/api/model"
)

// CreateDefaultPermissions emits the initial tuples for a freshly created
// object. Organization-owned objects get READ/WRITE/ADMIN tuples scoped to
// the organization; this deliberately grants every member every action, which
// is broader than the role-gated implicit ownership rule. Objects without an
// organization get the same three tuples scoped to the owning user.
//
// The three grants are independent calls; a failure part-way leaves the
// object under-permissioned, so callers treat this as all-or-nothing and
// roll back the object when it fails.
func (e *Engine) CreateDefaultPermissions(ctx context.Context, objectType model.ObjectType, objectID, ownerID, organizationID string) error {
	subjectType := model.SubjectTypeUser
	subjectID := ownerID
	if organizationID != "" {
		subjectType = model.SubjectTypeOrganization
		subjectID = organizationID
	}

	for _, action := range model.AllActions() {
		_, err := e.Grant(ctx, model.Permission{
			ObjectType:  objectType,
			ObjectID:    objectID,
			SubjectType: subjectType,
			SubjectID:   subjectID,
			Action:      action,
			GrantedBy:   ownerID,
		})
		if err != nil {
			return fmt.Errorf("failed to seed %s permission: %w", action, err)
		}
	}
	return nil
}
