package service

import (
	"context"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
	"github.com/aussiebroadwan/intake/internal/intake/store"
)

const (
	DefaultClientListLimit = 100
	MaxClientListLimit     = 1000
)

type ClientService struct {
	Store store.Store
}

// ListClients returns a firm's clients, newest first. The limit is clamped to
// (0, MaxClientListLimit]; zero or negative uses DefaultClientListLimit.
func (s *ClientService) ListClients(ctx context.Context, firmID string, limit int) ([]domain.Client, error) {
	switch {
	case limit <= 0:
		limit = DefaultClientListLimit
	case limit > MaxClientListLimit:
		limit = MaxClientListLimit
	}
	return s.Store.Clients().ListClientsByFirm(ctx, firmID, limit)
}

// ListAuditEntries returns the most recent integration responses for a firm.
func (s *ClientService) ListAuditEntries(ctx context.Context, firmID string, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 || limit > MaxClientListLimit {
		limit = DefaultClientListLimit
	}
	return s.Store.AuditLog().ListByFirm(ctx, firmID, limit)
}
