package handler

import (
	"time"

	"github.com/cinelog/catalog-api/internal/core/domain"
)

// AuditDispatcher is the interface handlers use to enqueue activity-trail
// entries after a successful mutation. Enqueue must not block the request.
type AuditDispatcher interface {
	Enqueue(entry domain.AuditEntry)
}

// recordAudit enqueues an entry when a dispatcher is configured.
func recordAudit(audit AuditDispatcher, actor, action, resource string) {
	if audit == nil {
		return
	}
	audit.Enqueue(domain.AuditEntry{
		Actor:    actor,
		Action:   action,
		Resource: resource,
		At:       time.Now().UTC(),
	})
}
