package domain

// MatchStrategy names the lookup that identified an existing record.
type MatchStrategy string

const (
	MatchNone          MatchStrategy = ""
	MatchIntegrationID MatchStrategy = "integration_id"
	MatchEmail         MatchStrategy = "email"
	MatchPhone         MatchStrategy = "phone"
	MatchOrphanPhone   MatchStrategy = "orphan_phone"
)

// MatchResult holds at most one of Client or Orphan.
type MatchResult struct {
	Client       *Client
	Orphan       *User
	Strategy     MatchStrategy
	MatchedPhone string
}

func (m MatchResult) Found() bool { return m.Client != nil || m.Orphan != nil }

// HasClient reports a full client match.
func (m MatchResult) HasClient() bool { return m.Client != nil }

// HasOrphanOnly reports a soft match on an unlinked user.
func (m MatchResult) HasOrphanOnly() bool { return m.Client == nil && m.Orphan != nil }
