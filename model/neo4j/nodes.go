// model/neo4j/nodes.go
package stockroom_neo4j

// Node Labels
const (
	// LabelUser represents a user in the system
	LabelUser = "User"

	// LabelOrganization represents a tenant in the system
	LabelOrganization = "Organization"

	// LabelBin represents a storage bin
	LabelBin = "Bin"

	// LabelItem represents an inventory item
	LabelItem = "Item"

	// LabelCategory represents an item category
	LabelCategory = "Category"

	// LabelPermission represents one explicit permission tuple
	LabelPermission = "Permission"
)
