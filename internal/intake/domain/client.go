package domain

import "time"

// Client is a persisted client record. Empty strings mean the value is absent.
type Client struct {
	ID            string
	FirmID        string
	FirstName     string
	LastName      string
	BirthDate     string // Stored as supplied, no date parsing
	Email         string // Unique across the store when present
	CellPhone     string // Unique per firm when present
	IntegrationID string // Unique per firm when present
	SSN           string // Ciphertext produced by the field cipher
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// User is an account-like entity. A user without a ClientID is orphaned and
// may be adopted by a client created from a record with the same phone.
type User struct {
	ID        string
	Email     string
	Phone     string
	FirstName string
	LastName  string
	ClientID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) IsOrphaned() bool { return u.ClientID == "" }

// AuditEntry is a raw integration response captured for later inspection.
type AuditEntry struct {
	ID        string
	FirmID    string
	MatterID  string
	Payload   []byte // JSON encoded source response
	CreatedAt time.Time
}
