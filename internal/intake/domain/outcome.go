package domain

import (
	"fmt"
	"maps"
)

// ErrorKind classifies a rejected reconciliation.
type ErrorKind string

const (
	ErrMissingRequiredField              ErrorKind = "missing_required_field"
	ErrContactChannelRequired            ErrorKind = "contact_channel_required"
	ErrRecordNotFoundAndCreationDisabled ErrorKind = "record_not_found_creation_disabled"
	ErrDuplicateIdentity                 ErrorKind = "duplicate_identity"
	ErrPersistenceFailure                ErrorKind = "persistence_failure"
)

// RollsBack reports whether an error of this kind undoes pending writes.
func (k ErrorKind) RollsBack() bool {
	return k == ErrDuplicateIdentity || k == ErrPersistenceFailure
}

// User facing messages.
const (
	MsgClientMissingName = "Client missing name."
	MsgCellPhoneInvalid  = "Cell phone invalid: %s"
	MsgClientNotFound    = "Client not found, stopping import."
	MsgUserAlreadyExists = "User already exists: %s, %s"
	MsgClientUpdated     = "Client updated."
	MsgClientCreated     = "Client created."
	PhoneDisplayNone     = "<None>"
)

// Error fields reported back to the caller.
const (
	ErrorFieldFirstName = "client_first_name"
	ErrorFieldLastName  = "client_last_name"
	ErrorFieldCellPhone = "client_cell_phone"
)

// ImportError is the single structured error an Outcome may carry.
type ImportError struct {
	Kind    ErrorKind
	Message string
	Fields  []string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Row is the echo-back map returned to the caller for display.
type Row map[string]any

// Row keys written by reconciliation.
const (
	RowEmail        = "email"
	RowFirstName    = "first_name"
	RowLastName     = "last_name"
	RowCellPhone    = "cell_phone"
	RowErrorFields  = "error_fields"
	RowErrorMessage = "error_message"
	RowSuccessMsg   = "success_msg"
)

// Clone returns a shallow copy; a nil row clones to an empty one.
func (r Row) Clone() Row {
	out := make(Row, len(r)+6)
	maps.Copy(out, r)
	return out
}

// Outcome is the result of reconciling one record. Exactly one of
// CreatedClient, UpdatedClient or Err describes what happened, except for a
// matched client that needed no change, where all three are zero.
type Outcome struct {
	CreatedClient  bool
	UpdatedClient  bool
	Client         *Client
	Fields         []string // Fields written by the create or update
	MatchedBy      MatchStrategy
	MatchedPhone   string
	CompanyName    *string
	SuccessMessage string
	Row            Row
	Err            *ImportError
}

func (o Outcome) Rejected() bool { return o.Err != nil }
