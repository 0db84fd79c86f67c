package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
	"github.com/aussiebroadwan/intake/internal/intake/store"
	"github.com/aussiebroadwan/intake/pkg/slogx"
)

var (
	ErrFirmNotFound     = errors.New("firm not found")
	ErrInvalidFirm      = errors.New("invalid firm")
	ErrInvalidPhoneRule = errors.New("invalid phone rule")
)

type FirmService struct {
	Store store.Store
}

// GetFirm loads a firm's configuration.
func (s *FirmService) GetFirm(ctx context.Context, id string) (domain.Firm, error) {
	f, err := s.Store.Firms().GetFirmByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Firm{}, ErrFirmNotFound
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load firm", slog.String("firm_id", id), slog.Any("error", err))
		return domain.Firm{}, err
	}
	return f, nil
}

func (s *FirmService) ListFirms(ctx context.Context) ([]domain.Firm, error) {
	return s.Store.Firms().ListFirms(ctx)
}

// SaveFirm validates and stores a firm configuration, returning the stored row.
func (s *FirmService) SaveFirm(ctx context.Context, f domain.Firm) (domain.Firm, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(f.ID) == "" {
		return domain.Firm{}, fmt.Errorf("%w: id is required", ErrInvalidFirm)
	}
	if strings.TrimSpace(f.Name) == "" {
		return domain.Firm{}, fmt.Errorf("%w: name is required", ErrInvalidFirm)
	}
	if f.PhoneRule != "" {
		if _, err := CompilePhoneRule(f.PhoneRule); err != nil {
			log.Warn("rejected firm phone rule", slog.String("firm_id", f.ID), slog.Any("error", err))
			return domain.Firm{}, fmt.Errorf("%w: %v", ErrInvalidPhoneRule, err)
		}
	}

	var saved domain.Firm
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Firms().UpsertFirm(ctx, f); err != nil {
			return err
		}
		var err error
		saved, err = tx.Firms().GetFirmByID(ctx, f.ID)
		return err
	})
	if err != nil {
		log.Error("failed to save firm", slog.String("firm_id", f.ID), slog.Any("error", err))
		return domain.Firm{}, err
	}

	log.Info("firm saved",
		slog.String("firm_id", saved.ID),
		slog.Bool("is_corporate", saved.IsCorporate),
		slog.Bool("sync_client_contact_info", saved.Settings.SyncClientContactInfo),
		slog.Bool("update_client_missing_data", saved.Settings.UpdateClientMissingData),
	)
	return saved, nil
}
