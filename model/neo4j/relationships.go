// model/neo4j/relationships.go
package stockroom_neo4j

// Relationship Types
const (
	// RelMemberOf relates a user to an organization. The relationship carries
	// a `role` property holding the user's OrgRole within that organization.
	RelMemberOf = "MEMBER_OF"
)

// Relationship property keys
const (
	PropOrgRole = "role"
)
