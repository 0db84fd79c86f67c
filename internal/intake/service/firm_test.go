package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

func TestFirmService(t *testing.T) {
	ctx := context.Background()
	svc := &FirmService{Store: newTestStore(t)}

	t.Run("unknown firm", func(t *testing.T) {
		_, err := svc.GetFirm(ctx, "missing")
		require.ErrorIs(t, err, ErrFirmNotFound)
	})

	t.Run("save and replace", func(t *testing.T) {
		saved, err := svc.SaveFirm(ctx, domain.Firm{
			ID:       "firm-1",
			Name:     "Smith & Co",
			Settings: bothSettings,
		})
		require.NoError(t, err)
		require.Equal(t, "Smith & Co", saved.Name)
		require.True(t, saved.Settings.SyncClientContactInfo)
		require.False(t, saved.CreatedAt.IsZero())

		saved, err = svc.SaveFirm(ctx, domain.Firm{
			ID:          "firm-1",
			Name:        "Smith & Co",
			IsCorporate: true,
			PhoneRule:   `phone.startsWith("04")`,
		})
		require.NoError(t, err)
		require.True(t, saved.IsCorporate)
		require.False(t, saved.Settings.UpdatesEnabled())
		require.Equal(t, `phone.startsWith("04")`, saved.PhoneRule)

		got, err := svc.GetFirm(ctx, "firm-1")
		require.NoError(t, err)
		require.Equal(t, saved, got)

		firms, err := svc.ListFirms(ctx)
		require.NoError(t, err)
		require.Len(t, firms, 1)
	})

	t.Run("rejects invalid firms", func(t *testing.T) {
		_, err := svc.SaveFirm(ctx, domain.Firm{Name: "No ID"})
		require.ErrorIs(t, err, ErrInvalidFirm)

		_, err = svc.SaveFirm(ctx, domain.Firm{ID: "firm-2"})
		require.ErrorIs(t, err, ErrInvalidFirm)

		_, err = svc.SaveFirm(ctx, domain.Firm{ID: "firm-2", Name: "Bad Rule", PhoneRule: "phone +"})
		require.ErrorIs(t, err, ErrInvalidPhoneRule)

		_, err = svc.GetFirm(ctx, "firm-2")
		require.ErrorIs(t, err, ErrFirmNotFound)
	})
}
