package domain

import "time"

// AuditEntry records one successful mutating operation for the activity
// trail. Entries are written asynchronously and are best-effort.
type AuditEntry struct {
	ID       string    `json:"id" bson:"_id"`
	Actor    string    `json:"actor" bson:"actor"`
	Action   string    `json:"action" bson:"action"`
	Resource string    `json:"resource" bson:"resource"`
	At       time.Time `json:"at" bson:"at"`
}
