package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
	"github.com/aussiebroadwan/intake/internal/intake/service"
	"github.com/aussiebroadwan/intake/internal/intake/store"
	"github.com/aussiebroadwan/intake/pkg/httpx"
	"github.com/aussiebroadwan/intake/pkg/intakesdk"
	"github.com/aussiebroadwan/intake/pkg/slogx"
)

// LegacyHandler serves the original single-record endpoint. The body is the
// record itself, with firm_id and integration_id alongside the fields.
type LegacyHandler struct {
	Store            store.Store
	FirmService      *service.FirmService
	ReconcileService *service.ReconcileService
	DefaultFirmID    string
}

// ServeHTTP handles the legacy create-or-update endpoint
//
//	@Summary		Create or update a client (legacy)
//	@Description	Reconciles the body as a CSV import record with client creation enabled. Reconciliation failures are reported in the envelope with 200 OK.
//	@Tags			Import
//	@Accept			json
//	@Produce		json
//	@Param			request	body		object						true	"Record fields plus firm_id and integration_id"
//	@Success		200		{object}	intakesdk.LegacyResponse	"status success with result, or status error with errors"
//	@Failure		400		{object}	intakesdk.LegacyResponse	"Malformed request"
//	@Failure		404		{object}	intakesdk.LegacyResponse	"Unknown firm"
//	@Router			/v1/clients [patch].
func (h *LegacyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var fields map[string]any
	if err := httpx.DecodeJSON(r, &fields); err != nil {
		writeLegacyError(w, http.StatusBadRequest, err.Error())
		return
	}

	firmID := scalarString(fields["firm_id"])
	if firmID == "" {
		firmID = h.DefaultFirmID
	}

	firm, err := h.FirmService.GetFirm(ctx, firmID)
	if errors.Is(err, service.ErrFirmNotFound) {
		writeLegacyError(w, http.StatusNotFound, "Firm not found.")
		return
	}
	if err != nil {
		writeLegacyError(w, http.StatusInternalServerError, "Failed to load firm.")
		return
	}

	out := h.ReconcileService.ImportClient(ctx, h.Store, service.ImportRequest{
		Firm:            firm,
		Row:             domain.Row{},
		Fields:          domain.IncomingRecord(fields),
		IntegrationType: domain.IntegrationCSVImport,
		IntegrationID:   scalarString(fields["integration_id"]),
		CreateNewClient: true,
	})

	if msg, ok := out.Row[domain.RowErrorMessage].(string); ok && msg != "" {
		log.Info("legacy import rejected", slog.String("firm_id", firm.ID), slog.String("error", msg))
		httpx.WriteJSON(w, http.StatusOK, intakesdk.LegacyResponse{
			Status: intakesdk.LegacyStatusError,
			Errors: msg,
		})
		return
	}

	result, _ := out.Row[domain.RowSuccessMsg].(string)
	httpx.WriteJSON(w, http.StatusOK, intakesdk.LegacyResponse{
		Status: intakesdk.LegacyStatusSuccess,
		Result: result,
	})
}

func writeLegacyError(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, intakesdk.LegacyResponse{
		Status: intakesdk.LegacyStatusError,
		Errors: msg,
	})
}

// scalarString renders a JSON string or number as a string. Anything else is
// treated as absent.
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
