package model

import "time"

// OrgRole is a user's standing within one organization.
type OrgRole string

const (
	OrgRoleOwner  OrgRole = "OWNER"
	OrgRoleAdmin  OrgRole = "ADMIN"
	OrgRoleMember OrgRole = "MEMBER"
)

func (r OrgRole) Valid() bool {
	switch r {
	case OrgRoleOwner, OrgRoleAdmin, OrgRoleMember:
		return true
	}
	return false
}

// CanManage reports whether the role carries implicit WRITE/ADMIN access to
// objects belonging to the organization. Plain members get READ only.
func (r OrgRole) CanManage() bool {
	return r == OrgRoleOwner || r == OrgRoleAdmin
}

type Organization struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Membership relates a user to one organization.
type Membership struct {
	OrganizationID string  `json:"organization_id"`
	OrgRole        OrgRole `json:"org_role"`
}
