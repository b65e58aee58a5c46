// model/resource.go
package model

import "time"

// Resource is one inventory record (a bin, item, or category). Type is the
// closed ObjectType set; new kinds of resources are added by extending that
// enum and the label dispatch table in the DAO layer, not by new structs.
type Resource struct {
	ID          string     `json:"id"`
	Type        ObjectType `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`

	// Ownership context. UserID is the individual owner; OrganizationID is
	// set when the resource belongs to an organization. Both may be present
	// but the object has at most one owning principal context.
	UserID         string `json:"user_id,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Ownership is the slice of a resource the authorization engine inspects.
type Ownership struct {
	UserID         string `json:"user_id,omitempty"`
	OrganizationID string `json:"organization_id,omitempty"`
}

// Ownership projects the resource's owning context.
func (r *Resource) Ownership() Ownership {
	return Ownership{UserID: r.UserID, OrganizationID: r.OrganizationID}
}
