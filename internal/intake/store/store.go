package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Repositories hang off it so a Tx-scoped Store can hand
// out the same repositories bound to the transaction.
type Store interface {
	Clients() Clients
	Users() Users
	Firms() Firms
	AuditLog() AuditLog

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction. A non-nil error from fn rolls the
	// transaction back and is returned unchanged; otherwise it commits.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	GetClientByID(ctx context.Context, id string) (domain.Client, error)

	// GetClientByIntegrationID looks up a client by its external id within a firm.
	GetClientByIntegrationID(ctx context.Context, firmID, integrationID string) (domain.Client, error)

	// GetClientByEmail looks up a client by email within a firm.
	GetClientByEmail(ctx context.Context, firmID, email string) (domain.Client, error)

	// GetClientByPhone looks up a client by cell phone within a firm.
	GetClientByPhone(ctx context.Context, firmID, phone string) (domain.Client, error)

	// ListClientsByFirm returns a firm's clients, newest first.
	ListClientsByFirm(ctx context.Context, firmID string, limit int) ([]domain.Client, error)

	// CreateClient inserts a client. Email, phone and integration id
	// collisions return ErrAlreadyExists.
	CreateClient(ctx context.Context, c domain.Client) error

	// UpdateClient rewrites every mutable column and bumps updated_at.
	// Collisions return ErrAlreadyExists.
	UpdateClient(ctx context.Context, c domain.Client) error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns any user, linked or not, owning the email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// FindOrphanedByPhone returns an unlinked user with the given phone.
	// When several qualify, the one whose email then name matches the
	// supplied hints wins, oldest first.
	FindOrphanedByPhone(ctx context.Context, phone, firstName, lastName, email string) (domain.User, error)

	CreateUser(ctx context.Context, u domain.User) error

	// AttachClient links a user to a client.
	AttachClient(ctx context.Context, userID, clientID string) error
}

type Firms interface {
	GetFirmByID(ctx context.Context, id string) (domain.Firm, error)
	ListFirms(ctx context.Context) ([]domain.Firm, error)

	// UpsertFirm creates the firm or replaces its configuration.
	UpsertFirm(ctx context.Context, f domain.Firm) error
}

type AuditLog interface {
	AppendIntegrationResponse(ctx context.Context, e domain.AuditEntry) error
	ListByFirm(ctx context.Context, firmID string, limit int) ([]domain.AuditEntry, error)
}
