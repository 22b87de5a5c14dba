package ports

import (
	"context"

	"github.com/cinelog/catalog-api/internal/core/domain"
)

// AuditService persists activity-trail entries.
type AuditService interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}
