package ports

import (
	"context"

	"github.com/cinelog/catalog-api/internal/core/domain"
)

// AuditRepository appends entries to the activity trail.
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
}
