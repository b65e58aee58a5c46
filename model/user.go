package model

import "time"

// GlobalRole is a user's role across the whole system, distinct from any
// role the user holds inside an organization.
type GlobalRole string

const (
	GlobalRoleAdmin GlobalRole = "ADMIN"
	GlobalRoleUser  GlobalRole = "USER"
)

func (r GlobalRole) Valid() bool {
	switch r {
	case GlobalRoleAdmin, GlobalRoleUser:
		return true
	}
	return false
}

type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	GlobalRole GlobalRole `json:"global_role"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the user holds the global ADMIN role.
func (u *User) IsAdmin() bool {
	return u != nil && u.GlobalRole == GlobalRoleAdmin
}
