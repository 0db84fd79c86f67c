//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
	"github.com/aussiebroadwan/intake/internal/intake/store"
)

func newContainerStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("intake"),
		tcpostgres.WithUsername("intake"),
		tcpostgres.WithPassword("intake"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	st, err := NewStore(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestPostgresStore(t *testing.T) {
	if testing.Short() {
		t.Skip("postgres container test skipped in short mode")
	}

	ctx := context.Background()
	st := newContainerStore(t)

	require.NoError(t, st.Firms().UpsertFirm(ctx, domain.Firm{ID: "f1", Name: "First"}))
	require.NoError(t, st.Firms().UpsertFirm(ctx, domain.Firm{ID: "f2", Name: "Second", IsCorporate: true}))

	t.Run("client uniqueness", func(t *testing.T) {
		require.NoError(t, st.Clients().CreateClient(ctx, domain.Client{
			ID: "c1", FirmID: "f1", Email: "a@example.com", CellPhone: "555", IntegrationID: "ext-1",
		}))

		err := st.Clients().CreateClient(ctx, domain.Client{ID: "c2", FirmID: "f2", Email: "a@example.com"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		err = st.Clients().CreateClient(ctx, domain.Client{ID: "c3", FirmID: "f1", CellPhone: "555"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		err = st.Clients().CreateClient(ctx, domain.Client{ID: "c4", FirmID: "f1", IntegrationID: "ext-1"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		require.NoError(t, st.Clients().CreateClient(ctx, domain.Client{ID: "c5", FirmID: "f2", CellPhone: "555"}))
		require.NoError(t, st.Clients().CreateClient(ctx, domain.Client{ID: "c6", FirmID: "f1"}))
		require.NoError(t, st.Clients().CreateClient(ctx, domain.Client{ID: "c7", FirmID: "f1"}))
	})

	t.Run("lookups", func(t *testing.T) {
		c, err := st.Clients().GetClientByIntegrationID(ctx, "f1", "ext-1")
		require.NoError(t, err)
		require.Equal(t, "c1", c.ID)

		c, err = st.Clients().GetClientByPhone(ctx, "f2", "555")
		require.NoError(t, err)
		require.Equal(t, "c5", c.ID)

		_, err = st.Clients().GetClientByEmail(ctx, "f2", "a@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("transactions roll back", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Clients().CreateClient(ctx, domain.Client{ID: "c8", FirmID: "f1"}); err != nil {
				return err
			}
			return tx.Clients().CreateClient(ctx, domain.Client{ID: "c9", FirmID: "f1", CellPhone: "555"})
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		_, err = st.Clients().GetClientByID(ctx, "c8")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("orphaned users", func(t *testing.T) {
		require.NoError(t, st.Users().CreateUser(ctx, domain.User{ID: "u1", Phone: "777", FirstName: "Ann"}))
		require.NoError(t, st.Users().CreateUser(ctx, domain.User{ID: "u2", Phone: "777", FirstName: "Bob", Email: "bob@example.com"}))

		u, err := st.Users().FindOrphanedByPhone(ctx, "777", "", "", "bob@example.com")
		require.NoError(t, err)
		require.Equal(t, "u2", u.ID)

		require.NoError(t, st.Users().AttachClient(ctx, "u2", "c6"))
		u, err = st.Users().FindOrphanedByPhone(ctx, "777", "", "", "bob@example.com")
		require.NoError(t, err)
		require.Equal(t, "u1", u.ID)
	})

	t.Run("audit log", func(t *testing.T) {
		require.NoError(t, st.AuditLog().AppendIntegrationResponse(ctx, domain.AuditEntry{
			ID: "a1", FirmID: "f1", MatterID: "m1", Payload: []byte(`{"ok":true}`),
		}))
		entries, err := st.AuditLog().ListByFirm(ctx, "f1", 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "m1", entries[0].MatterID)
		require.JSONEq(t, `{"ok":true}`, string(entries[0].Payload))
	})
}
