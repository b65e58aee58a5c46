// errors/authz_errors.go
package errors

import "errors"

var (
	// ErrObjectNotFound is returned when a grant references an object that
	// does not exist (or was deleted).
	ErrObjectNotFound = errors.New("object not found")

	// ErrSubjectNotFound is returned when a grant references a user or
	// organization subject that does not resolve.
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrInvalidRole is returned when a ROLE subject names an unknown global
	// role.
	ErrInvalidRole = errors.New("invalid role")

	// ErrPermissionNotFound is returned by revoke when no tuple matches the
	// natural key. A second revoke of the same tuple is an error, not a no-op.
	ErrPermissionNotFound = errors.New("permission not found")

	ErrInvalidObjectType  = errors.New("invalid object type")
	ErrInvalidSubjectType = errors.New("invalid subject type")
	ErrInvalidAction      = errors.New("invalid action")

	// ErrInvalidPermissionData covers malformed tuples and filters beyond the
	// enum checks above (missing ids, empty grants).
	ErrInvalidPermissionData = errors.New("invalid permission data")

	// ErrAccessDenied is the caller-facing deny from route-level checks. The
	// engine itself never returns it; CanAccess reports deny as (false, nil).
	ErrAccessDenied = errors.New("access denied")
)

// IsValidationError reports whether err is one of the malformed-input errors
// that must map to a 400 rather than an authorization outcome.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidObjectType) ||
		errors.Is(err, ErrInvalidSubjectType) ||
		errors.Is(err, ErrInvalidAction) ||
		errors.Is(err, ErrInvalidPermissionData)
}
