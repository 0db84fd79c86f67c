package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
	"github.com/aussiebroadwan/intake/internal/intake/store"
	"github.com/aussiebroadwan/intake/pkg/slogx"
)

// OrphanLookupMode controls when orphaned users are looked up by phone.
type OrphanLookupMode string

const (
	// OrphanLookupAfterPhones tries every phone for a client before trying
	// any phone for an orphaned user.
	OrphanLookupAfterPhones OrphanLookupMode = "after_phones"

	// OrphanLookupPerPhone tries client then orphaned user for each phone
	// before moving to the next one.
	OrphanLookupPerPhone OrphanLookupMode = "per_phone"
)

var ErrInvalidOrphanLookupMode = errors.New("invalid orphan lookup mode")

// ParseOrphanLookupMode accepts "after_phones", "per_phone" or empty, which
// selects the default.
func ParseOrphanLookupMode(s string) (OrphanLookupMode, error) {
	switch OrphanLookupMode(s) {
	case "", OrphanLookupAfterPhones:
		return OrphanLookupAfterPhones, nil
	case OrphanLookupPerPhone:
		return OrphanLookupPerPhone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOrphanLookupMode, s)
	}
}

// MatchInput is what the Matcher needs from a normalized record.
type MatchInput struct {
	IntegrationID string
	Email         string
	Phones        []string // Filtered, in source order
	Names         domain.Names
}

// Matcher finds an existing client, or failing that an orphaned user, for a
// record. Strategies run in priority order and stop at the first hit:
// integration id, email (corporate firms only), client by phone, orphaned
// user by phone.
type Matcher struct {
	OrphanLookup OrphanLookupMode
}

// Match runs the lookup cascade against st. store.ErrNotFound moves on to the
// next strategy; any other store error aborts the cascade.
func (m *Matcher) Match(ctx context.Context, st store.Store, firm domain.Firm, in MatchInput) (domain.MatchResult, error) {
	log := slogx.FromContext(ctx)

	if in.IntegrationID != "" {
		c, found, err := lookupClient(st.Clients().GetClientByIntegrationID(ctx, firm.ID, in.IntegrationID))
		if err != nil {
			return domain.MatchResult{}, fmt.Errorf("match by integration id: %w", err)
		}
		if found {
			log.Debug("matched client", slog.String("strategy", string(domain.MatchIntegrationID)))
			return domain.MatchResult{Client: &c, Strategy: domain.MatchIntegrationID}, nil
		}
	}

	if firm.IsCorporate && in.Email != "" {
		c, found, err := lookupClient(st.Clients().GetClientByEmail(ctx, firm.ID, in.Email))
		if err != nil {
			return domain.MatchResult{}, fmt.Errorf("match by email: %w", err)
		}
		if found {
			log.Debug("matched client", slog.String("strategy", string(domain.MatchEmail)))
			return domain.MatchResult{Client: &c, Strategy: domain.MatchEmail}, nil
		}
	}

	if m.OrphanLookup == OrphanLookupPerPhone {
		for _, phone := range in.Phones {
			res, err := m.matchClientByPhone(ctx, st, firm, phone)
			if err != nil || res.Found() {
				return res, err
			}
			res, err = m.matchOrphanByPhone(ctx, st, phone, in)
			if err != nil || res.Found() {
				return res, err
			}
		}
		return domain.MatchResult{}, nil
	}

	for _, phone := range in.Phones {
		res, err := m.matchClientByPhone(ctx, st, firm, phone)
		if err != nil || res.Found() {
			return res, err
		}
	}
	for _, phone := range in.Phones {
		res, err := m.matchOrphanByPhone(ctx, st, phone, in)
		if err != nil || res.Found() {
			return res, err
		}
	}
	return domain.MatchResult{}, nil
}

func (m *Matcher) matchClientByPhone(ctx context.Context, st store.Store, firm domain.Firm, phone string) (domain.MatchResult, error) {
	c, found, err := lookupClient(st.Clients().GetClientByPhone(ctx, firm.ID, phone))
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("match by phone: %w", err)
	}
	if !found {
		return domain.MatchResult{}, nil
	}
	slogx.FromContext(ctx).Debug("matched client", slog.String("strategy", string(domain.MatchPhone)))
	return domain.MatchResult{Client: &c, Strategy: domain.MatchPhone, MatchedPhone: phone}, nil
}

func (m *Matcher) matchOrphanByPhone(ctx context.Context, st store.Store, phone string, in MatchInput) (domain.MatchResult, error) {
	u, err := st.Users().FindOrphanedByPhone(ctx, phone, in.Names.First, in.Names.Last, in.Email)
	if errors.Is(err, store.ErrNotFound) {
		return domain.MatchResult{}, nil
	}
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("match orphaned user by phone: %w", err)
	}
	slogx.FromContext(ctx).Debug("matched orphaned user", slog.String("user_id", u.ID))
	return domain.MatchResult{Orphan: &u, Strategy: domain.MatchOrphanPhone, MatchedPhone: phone}, nil
}

func lookupClient(c domain.Client, err error) (domain.Client, bool, error) {
	if errors.Is(err, store.ErrNotFound) {
		return domain.Client{}, false, nil
	}
	if err != nil {
		return domain.Client{}, false, err
	}
	return c, true, nil
}
