package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

// auditService persists activity-trail entries. Failures are reported to the
// caller (the dispatcher), which logs and drops them; audit writes never
// block or fail a user request.
type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, entry domain.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if err := s.repo.Append(ctx, &entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}

	s.log.Debug().
		Str("actor", entry.Actor).
		Str("action", entry.Action).
		Str("resource", entry.Resource).
		Msg("audit entry recorded")
	return nil
}
