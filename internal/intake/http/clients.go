package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/intake/internal/intake/service"
	"github.com/aussiebroadwan/intake/pkg/httpx"
	"github.com/aussiebroadwan/intake/pkg/intakesdk"
	"github.com/aussiebroadwan/intake/pkg/slogx"
)

type ClientsHandler struct {
	FirmService   *service.FirmService
	ClientService *service.ClientService
}

// HandleList handles the list clients endpoint
//
//	@Summary		List a firm's clients
//	@Description	Returns the firm's clients, newest first. SSNs are never returned.
//	@Tags			Clients
//	@Produce		json
//	@Param			firm_id	path		string							true	"Firm ID"
//	@Param			limit	query		int								false	"Maximum number of clients (default 100, max 1000)"
//	@Success		200		{object}	intakesdk.ListClientsResponse	"Clients"
//	@Failure		400		{object}	intakesdk.ErrorResponse			"Invalid limit"
//	@Failure		404		{object}	intakesdk.ErrorResponse			"Unknown firm"
//	@Failure		500		{object}	intakesdk.ErrorResponse			"Internal server error"
//	@Router			/v1/firms/{firm_id}/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	firm, ok := loadFirm(w, r, h.FirmService, r.PathValue("firm_id"))
	if !ok {
		return
	}

	clients, err := h.ClientService.ListClients(ctx, firm.ID, limit)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list clients", "firm_id", firm.ID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.ErrorCodeServerError, "Failed to retrieve clients")
		return
	}

	response := intakesdk.ListClientsResponse{
		Clients: make([]intakesdk.Client, len(clients)),
	}
	for i, c := range clients {
		response.Clients[i] = toClient(c)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleListIntegrationResponses handles the audit log endpoint
//
//	@Summary		List recorded integration responses
//	@Description	Returns the raw source responses captured during imports for the firm, newest first.
//	@Tags			Clients
//	@Produce		json
//	@Param			firm_id	path		string										true	"Firm ID"
//	@Param			limit	query		int											false	"Maximum number of entries (default 100)"
//	@Success		200		{object}	intakesdk.ListIntegrationResponsesResponse	"Entries"
//	@Failure		400		{object}	intakesdk.ErrorResponse						"Invalid limit"
//	@Failure		404		{object}	intakesdk.ErrorResponse						"Unknown firm"
//	@Failure		500		{object}	intakesdk.ErrorResponse						"Internal server error"
//	@Router			/v1/firms/{firm_id}/integration-responses [get].
func (h *ClientsHandler) HandleListIntegrationResponses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	firm, ok := loadFirm(w, r, h.FirmService, r.PathValue("firm_id"))
	if !ok {
		return
	}

	entries, err := h.ClientService.ListAuditEntries(ctx, firm.ID, limit)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list integration responses", "firm_id", firm.ID, "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.ErrorCodeServerError, "Failed to retrieve integration responses")
		return
	}

	response := intakesdk.ListIntegrationResponsesResponse{
		Responses: make([]intakesdk.IntegrationResponse, len(entries)),
	}
	for i, e := range entries {
		response.Responses[i] = intakesdk.IntegrationResponse{
			ID:        e.ID,
			FirmID:    e.FirmID,
			MatterID:  e.MatterID,
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

// parseLimit reads the optional limit query parameter. Zero means the
// service default.
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, "limit must be a non-negative integer")
		return 0, false
	}
	return limit, true
}
