// audit/model.go
package audit

import (
	"encoding/json"
	"time"

	"github.com/stockroom-app/api/model"
)

// AuditLog records one authorization-relevant event: an access decision or a
// permission mutation (grant, revoke, replace, seed).
type AuditLog struct {
	Timestamp     time.Time         `json:"timestamp"`
	ActorID       string            `json:"actor_id"`
	Action        string            `json:"action"` // e.g. "ACCESS_CHECK", "GRANT", "REVOKE"
	ObjectType    model.ObjectType  `json:"object_type,omitempty"`
	ObjectID      string            `json:"object_id,omitempty"`
	SubjectType   model.SubjectType `json:"subject_type,omitempty"`
	SubjectID     string            `json:"subject_id,omitempty"`
	Capability    model.Action      `json:"capability,omitempty"`
	AccessGranted bool              `json:"access_granted"`
	Details       json.RawMessage   `json:"details,omitempty"`
}
