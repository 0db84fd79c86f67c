package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

func TestClientServiceListClients(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	firm := seedFirm(t, st, domain.Firm{})
	other := seedFirm(t, st, domain.Firm{})

	for _, name := range []string{"Ann", "Bob", "Cat"} {
		seedClient(t, st, domain.Client{FirmID: firm.ID, FirstName: name})
	}
	seedClient(t, st, domain.Client{FirmID: other.ID, FirstName: "Zed"})

	svc := &ClientService{Store: st}

	all, err := svc.ListClients(ctx, firm.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, c := range all {
		require.Equal(t, firm.ID, c.FirmID)
	}

	limited, err := svc.ListClients(ctx, firm.ID, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)

	none, err := svc.ListClients(ctx, "no-such-firm", 10)
	require.NoError(t, err)
	require.Empty(t, none)
}
