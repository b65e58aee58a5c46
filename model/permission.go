// model/permission.go
package model

import "time"

// ObjectType identifies the kind of inventory resource a permission applies to.
type ObjectType string

const (
	ObjectTypeBin      ObjectType = "BIN"
	ObjectTypeItem     ObjectType = "ITEM"
	ObjectTypeCategory ObjectType = "CATEGORY"
)

func (t ObjectType) Valid() bool {
	switch t {
	case ObjectTypeBin, ObjectTypeItem, ObjectTypeCategory:
		return true
	}
	return false
}

// SubjectType identifies the kind of principal a permission is granted to.
type SubjectType string

const (
	SubjectTypeUser         SubjectType = "USER"
	SubjectTypeOrganization SubjectType = "ORGANIZATION"
	SubjectTypeRole         SubjectType = "ROLE"
)

func (t SubjectType) Valid() bool {
	switch t {
	case SubjectTypeUser, SubjectTypeOrganization, SubjectTypeRole:
		return true
	}
	return false
}

// Action is the capability being granted or checked. ADMIN covers managing
// permissions on the object; it does not imply READ or WRITE.
type Action string

const (
	ActionRead  Action = "READ"
	ActionWrite Action = "WRITE"
	ActionAdmin Action = "ADMIN"
)

func (a Action) Valid() bool {
	switch a {
	case ActionRead, ActionWrite, ActionAdmin:
		return true
	}
	return false
}

// AllActions returns every known action, in grant order.
func AllActions() []Action {
	return []Action{ActionRead, ActionWrite, ActionAdmin}
}

// Permission is one explicit grant tuple. At most one tuple exists per
// natural key (object type, object id, subject type, subject id, action);
// granting an existing tuple refreshes GrantedBy/GrantedAt.
type Permission struct {
	ID          string      `json:"id"`
	ObjectType  ObjectType  `json:"object_type"`
	ObjectID    string      `json:"object_id"`
	SubjectType SubjectType `json:"subject_type"`
	SubjectID   string      `json:"subject_id"`
	Action      Action      `json:"action"`
	GrantedBy   string      `json:"granted_by"`
	GrantedAt   time.Time   `json:"granted_at"`
}

// Key returns the tuple's natural key.
func (p Permission) Key() PermissionKey {
	return PermissionKey{
		ObjectType:  p.ObjectType,
		ObjectID:    p.ObjectID,
		SubjectType: p.SubjectType,
		SubjectID:   p.SubjectID,
		Action:      p.Action,
	}
}

// PermissionKey is the natural key of a Permission tuple.
type PermissionKey struct {
	ObjectType  ObjectType  `json:"object_type"`
	ObjectID    string      `json:"object_id"`
	SubjectType SubjectType `json:"subject_type"`
	SubjectID   string      `json:"subject_id"`
	Action      Action      `json:"action"`
}

// PermissionFilter is a conjunction over the tuple key fields. Zero-valued
// fields are unconstrained. Limit of zero means no pagination.
type PermissionFilter struct {
	ObjectType  ObjectType  `json:"object_type,omitempty" form:"object_type"`
	ObjectID    string      `json:"object_id,omitempty" form:"object_id"`
	SubjectType SubjectType `json:"subject_type,omitempty" form:"subject_type"`
	SubjectID   string      `json:"subject_id,omitempty" form:"subject_id"`
	Action      Action      `json:"action,omitempty" form:"action"`

	Limit  int `json:"limit,omitempty" form:"-"`
	Offset int `json:"offset,omitempty" form:"-"`
}
