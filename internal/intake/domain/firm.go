package domain

import "time"

// Firm is the organization that owns a set of clients. A Firm value is
// passed explicitly into every reconciliation step and never mutated by it.
type Firm struct {
	ID          string
	Name        string
	IsCorporate bool
	Settings    IntegrationSettings
	PhoneRule   string // Optional CEL expression over `phone`; empty uses the default rule
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IntegrationSettings controls how matched clients are merged.
type IntegrationSettings struct {
	SyncClientContactInfo   bool
	UpdateClientMissingData bool
}

// UpdatesEnabled reports whether any merge behaviour is switched on.
func (s IntegrationSettings) UpdatesEnabled() bool {
	return s.SyncClientContactInfo || s.UpdateClientMissingData
}
