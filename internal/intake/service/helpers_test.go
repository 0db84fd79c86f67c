package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
	"github.com/aussiebroadwan/intake/internal/intake/store"
	"github.com/aussiebroadwan/intake/internal/intake/store/drivers/sqlite"
	"github.com/aussiebroadwan/intake/pkg/idx"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedFirm(t *testing.T, st store.Store, f domain.Firm) domain.Firm {
	t.Helper()
	if f.ID == "" {
		f.ID = idx.New().String()
	}
	if f.Name == "" {
		f.Name = "Firm " + f.ID
	}
	require.NoError(t, st.Firms().UpsertFirm(context.Background(), f))
	return f
}

func seedClient(t *testing.T, st store.Store, c domain.Client) domain.Client {
	t.Helper()
	if c.ID == "" {
		c.ID = idx.New().String()
	}
	require.NoError(t, st.Clients().CreateClient(context.Background(), c))
	got, err := st.Clients().GetClientByID(context.Background(), c.ID)
	require.NoError(t, err)
	return got
}

func seedUser(t *testing.T, st store.Store, u domain.User) domain.User {
	t.Helper()
	if u.ID == "" {
		u.ID = idx.New().String()
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func strp(s string) *string { return &s }

// prefixCipher is a reversible stand-in for the field cipher.
type prefixCipher struct{}

func (prefixCipher) EncryptString(s string) (string, error) { return "enc:" + s, nil }

func decrypt(s string) string { return strings.TrimPrefix(s, "enc:") }

type auditCall struct {
	firmID   string
	response any
	matterID string
}

type recordingSink struct {
	mu    sync.Mutex
	calls []auditCall
}

func (r *recordingSink) Record(firmID string, response any, matterID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, auditCall{firmID, response, matterID})
}

func (r *recordingSink) Calls() []auditCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]auditCall(nil), r.calls...)
}

// spyStore records which client lookups the matcher performs.
type spyStore struct {
	store.Store
	mu    sync.Mutex
	calls []string
}

func (s *spyStore) Clients() store.Clients { return &spyClients{Clients: s.Store.Clients(), spy: s} }

func (s *spyStore) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
}

func (s *spyStore) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

type spyClients struct {
	store.Clients
	spy *spyStore
}

func (c *spyClients) GetClientByIntegrationID(ctx context.Context, firmID, id string) (domain.Client, error) {
	c.spy.record("integration_id")
	return c.Clients.GetClientByIntegrationID(ctx, firmID, id)
}

func (c *spyClients) GetClientByEmail(ctx context.Context, firmID, email string) (domain.Client, error) {
	c.spy.record("email")
	return c.Clients.GetClientByEmail(ctx, firmID, email)
}

func (c *spyClients) GetClientByPhone(ctx context.Context, firmID, phone string) (domain.Client, error) {
	c.spy.record("phone:" + phone)
	return c.Clients.GetClientByPhone(ctx, firmID, phone)
}

// faultStore wraps every transaction so that client writes can be made to
// fail or panic.
type faultStore struct {
	store.Store
	createErr   error
	createPanic bool
}

func (s *faultStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(&faultTx{txIface: tx, parent: s})
	})
}

// txIface lets faultTx embed store.Tx without a field named Tx hiding the
// Tx method.
type txIface = store.Tx

type faultTx struct {
	txIface
	parent *faultStore
}

func (t *faultTx) Clients() store.Clients {
	return &faultClients{Clients: t.txIface.Clients(), parent: t.parent}
}

type faultClients struct {
	store.Clients
	parent *faultStore
}

func (c *faultClients) CreateClient(ctx context.Context, cl domain.Client) error {
	if c.parent.createPanic {
		panic("driver exploded")
	}
	if c.parent.createErr != nil {
		return c.parent.createErr
	}
	return c.Clients.CreateClient(ctx, cl)
}

var errDiskFull = errors.New("disk I/O error: database or disk is full")
