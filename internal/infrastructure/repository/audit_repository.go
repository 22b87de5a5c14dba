package repository

import (
	"context"
	"sync"

	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

type AuditRepository struct {
	store ports.CollectionStore
	mu    sync.Mutex
}

func NewAuditRepository(store ports.CollectionStore) *AuditRepository {
	return &AuditRepository{store: store}
}

// Append adds an entry to the activity trail.
func (r *AuditRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entries []domain.AuditEntry
	if err := r.store.ReadAll(ctx, ports.CollectionAudit, &entries); err != nil {
		return err
	}
	entries = append(entries, *entry)
	return r.store.WriteAll(ctx, ports.CollectionAudit, entries)
}
