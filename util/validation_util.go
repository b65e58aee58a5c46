// util/validation_util.go

package util

import (
	"fmt"

	stockroom_errors "github.com/stockroom-app/api/errors"
	"github.com/stockroom-app/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

// ValidatePermission checks a tuple submitted through the API before it
// reaches the engine, so malformed requests fail as 400s with a message.
func (v *ValidationUtil) ValidatePermission(permission model.Permission) error {
	if err := v.ValidatePermissionKey(permission.Key()); err != nil {
		return err
	}
	return nil
}

func (v *ValidationUtil) ValidatePermissionKey(key model.PermissionKey) error {
	if !key.ObjectType.Valid() {
		return fmt.Errorf("%w: %q", stockroom_errors.ErrInvalidObjectType, key.ObjectType)
	}
	if key.ObjectID == "" {
		return fmt.Errorf("%w: object id cannot be empty", stockroom_errors.ErrInvalidPermissionData)
	}
	if !key.SubjectType.Valid() {
		return fmt.Errorf("%w: %q", stockroom_errors.ErrInvalidSubjectType, key.SubjectType)
	}
	if key.SubjectID == "" {
		return fmt.Errorf("%w: subject id cannot be empty", stockroom_errors.ErrInvalidPermissionData)
	}
	if !key.Action.Valid() {
		return fmt.Errorf("%w: %q", stockroom_errors.ErrInvalidAction, key.Action)
	}
	return nil
}

func (v *ValidationUtil) ValidatePermissionFilter(filter model.PermissionFilter) error {
	if filter.ObjectType != "" && !filter.ObjectType.Valid() {
		return fmt.Errorf("%w: %q", stockroom_errors.ErrInvalidObjectType, filter.ObjectType)
	}
	if filter.SubjectType != "" && !filter.SubjectType.Valid() {
		return fmt.Errorf("%w: %q", stockroom_errors.ErrInvalidSubjectType, filter.SubjectType)
	}
	if filter.Action != "" && !filter.Action.Valid() {
		return fmt.Errorf("%w: %q", stockroom_errors.ErrInvalidAction, filter.Action)
	}
	return nil
}

func (v *ValidationUtil) ValidateResource(resource model.Resource) error {
	if !resource.Type.Valid() {
		return fmt.Errorf("%w: %q", stockroom_errors.ErrInvalidObjectType, resource.Type)
	}
	if resource.Name == "" {
		return fmt.Errorf("%w: resource name cannot be empty", stockroom_errors.ErrInvalidResourceData)
	}
	return nil
}
