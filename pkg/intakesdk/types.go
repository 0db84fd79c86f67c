package intakesdk

import (
	"encoding/json"
	"time"
)

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the JSON error body returned for malformed requests,
// unknown resources and server faults.
type ErrorResponse struct {
	// Error is a machine readable code (e.g. "invalid_request", "not_found")
	Error string `json:"error"`

	// ErrorDescription is a human readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Import Types
// ============================================================================

// ImportRequest is the body of POST /v1/firms/{firm_id}/clients/import.
type ImportRequest struct {
	// Record is the untrusted field map from the source system. Recognized
	// keys: first_name, last_name, name, email, phone_numbers, type,
	// birth_date, ssn. Unknown keys are ignored.
	Record map[string]any `json:"record"`

	// Row is echoed back in the response with the reconciliation result
	// merged in.
	Row map[string]any `json:"row,omitempty"`

	// IntegrationType is one of CSV_IMPORT, THIRD_PARTY or MYCASE. Anything
	// else is treated as unspecified.
	IntegrationType string `json:"integration_type,omitempty"`

	// IntegrationID is the record's identifier in the source system
	IntegrationID string `json:"integration_id,omitempty"`

	MatterID string `json:"matter_id,omitempty"`

	// SourceResponse is stored verbatim in the firm's audit log
	SourceResponse json.RawMessage `json:"source_response,omitempty" swaggertype:"object"`

	// CreateNewClient defaults to true when omitted
	CreateNewClient *bool `json:"create_new_client,omitempty"`

	// DryRun runs the full decision and rolls every write back
	DryRun bool `json:"dry_run,omitempty"`
}

// ImportResponse is the outcome of reconciling one record. It is returned
// with 200 for created, updated and unchanged records, and with 422, 409 or
// 500 when the record was rejected.
type ImportResponse struct {
	CreatedClient  bool           `json:"created_client"`
	UpdatedClient  bool           `json:"updated_client"`
	Client         *Client        `json:"client,omitempty"`
	Fields         []string       `json:"fields,omitempty"`
	MatchedBy      string         `json:"matched_by,omitempty"`
	MatchedPhone   string         `json:"matched_phone,omitempty"`
	CompanyName    *string        `json:"company_name"`
	SuccessMessage string         `json:"success_message,omitempty"`
	Row            map[string]any `json:"row"`
	Error          *ImportError   `json:"error,omitempty"`
}

// ImportError describes why a record was rejected.
type ImportError struct {
	// Kind is one of missing_required_field, contact_channel_required,
	// record_not_found_creation_disabled, duplicate_identity,
	// persistence_failure
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// LegacyResponse is the envelope returned by PATCH /v1/clients.
type LegacyResponse struct {
	Status string `json:"status"`
	Result string `json:"result,omitempty"`
	Errors string `json:"errors,omitempty"`
}

// Legacy envelope statuses.
const (
	LegacyStatusSuccess = "success"
	LegacyStatusError   = "error"
)

// ============================================================================
// Client Types
// ============================================================================

// Client is a stored client. The SSN itself is never returned.
type Client struct {
	ID            string    `json:"id"`
	FirmID        string    `json:"firm_id"`
	FirstName     string    `json:"first_name,omitempty"`
	LastName      string    `json:"last_name,omitempty"`
	BirthDate     string    `json:"birth_date,omitempty"`
	Email         string    `json:"email,omitempty"`
	CellPhone     string    `json:"cell_phone,omitempty"`
	IntegrationID string    `json:"integration_id,omitempty"`
	HasSSN        bool      `json:"has_ssn"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListClientsResponse is returned by GET /v1/firms/{firm_id}/clients.
type ListClientsResponse struct {
	Clients []Client `json:"clients"`
}

// ============================================================================
// Firm Types
// ============================================================================

// Firm is a firm's stored configuration.
type Firm struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	IsCorporate             bool      `json:"is_corporate"`
	SyncClientContactInfo   bool      `json:"sync_client_contact_info"`
	UpdateClientMissingData bool      `json:"update_client_missing_data"`
	PhoneRule               string    `json:"phone_rule,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// FirmRequest is the body of PUT /v1/firms/{firm_id}. Both integration
// settings default to true when omitted.
type FirmRequest struct {
	Name                    string `json:"name"`
	IsCorporate             bool   `json:"is_corporate"`
	SyncClientContactInfo   *bool  `json:"sync_client_contact_info,omitempty"`
	UpdateClientMissingData *bool  `json:"update_client_missing_data,omitempty"`

	// PhoneRule is an optional CEL expression over the string variable
	// `phone`, e.g. `phone.matches("^04[0-9]{8}$")`.
	PhoneRule string `json:"phone_rule,omitempty"`
}

// ListFirmsResponse is returned by GET /v1/firms.
type ListFirmsResponse struct {
	Firms []Firm `json:"firms"`
}

// ============================================================================
// Audit Types
// ============================================================================

// IntegrationResponse is a raw source response captured during an import.
type IntegrationResponse struct {
	ID        string          `json:"id"`
	FirmID    string          `json:"firm_id"`
	MatterID  string          `json:"matter_id,omitempty"`
	Payload   json.RawMessage `json:"payload" swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListIntegrationResponsesResponse is returned by
// GET /v1/firms/{firm_id}/integration-responses.
type ListIntegrationResponsesResponse struct {
	Responses []IntegrationResponse `json:"responses"`
}
