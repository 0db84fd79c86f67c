package http

import (
	"bytes"
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

type ImportHandler struct {
	Store            store.Store
	FirmService      *service.FirmService
	ReconcileService *service.ReconcileService
}

// ServeHTTP handles the record import endpoint
//
//	@Summary		Import a client record
//	@Description	Reconciles one record against the firm's clients. The record either creates a client, updates the matched client, leaves it unchanged, or is rejected.
//	@Description	Matching tries the integration id, then email (corporate firms only), then each accepted phone number.
//	@Tags			Import
//	@Accept			json
//	@Produce		json
//	@Param			firm_id	path		string						true	"Firm ID"
//	@Param			request	body		intakesdk.ImportRequest		true	"Record to reconcile"
//	@Success		200		{object}	intakesdk.ImportResponse	"Created, updated or unchanged"
//	@Failure		400		{object}	intakesdk.ErrorResponse		"Malformed request"
//	@Failure		404		{object}	intakesdk.ErrorResponse		"Unknown firm"
//	@Failure		409		{object}	intakesdk.ImportResponse	"Duplicate identity"
//	@Failure		422		{object}	intakesdk.ImportResponse	"Record rejected by validation"
//	@Failure		429		{object}	intakesdk.ErrorResponse		"Rate limit exceeded"
//	@Failure		500		{object}	intakesdk.ImportResponse	"Persistence failure"
//	@Router			/v1/firms/{firm_id}/clients/import [post].
func (h *ImportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req intakesdk.ImportRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, err.Error())
		return
	}
	if req.Record == nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, "record is required")
		return
	}

	firm, ok := loadFirm(w, r, h.FirmService, r.PathValue("firm_id"))
	if !ok {
		return
	}

	createNew := true
	if req.CreateNewClient != nil {
		createNew = *req.CreateNewClient
	}

	out := h.ReconcileService.ImportClient(ctx, h.Store, service.ImportRequest{
		Firm:            firm,
		Row:             domain.Row(req.Row),
		Fields:          domain.IncomingRecord(req.Record),
		IntegrationType: domain.ParseIntegrationType(req.IntegrationType),
		IntegrationID:   req.IntegrationID,
		MatterID:        req.MatterID,
		SourceResponse:  sourceResponse(req.SourceResponse),
		CreateNewClient: createNew,
		DryRun:          req.DryRun,
	})

	log.Info("record imported",
		slog.String("firm_id", firm.ID),
		slog.Bool("created", out.CreatedClient),
		slog.Bool("updated", out.UpdatedClient),
		slog.Bool("rejected", out.Rejected()),
		slog.Bool("dry_run", req.DryRun),
	)
	httpx.WriteJSON(w, outcomeStatus(out), toImportResponse(out))
}

// sourceResponse drops an absent or null source payload so that nothing is
// recorded for it.
func sourceResponse(raw json.RawMessage) any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return raw
}

// loadFirm resolves a firm id, writing a 404 or 500 when it cannot.
func loadFirm(w http.ResponseWriter, r *http.Request, firms *service.FirmService, id string) (domain.Firm, bool) {
	firm, err := firms.GetFirm(r.Context(), id)
	if errors.Is(err, service.ErrFirmNotFound) {
		httpx.WriteError(w, http.StatusNotFound, httpx.ErrorCodeNotFound, "firm not found")
		return domain.Firm{}, false
	}
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, httpx.ErrorCodeServerError, "failed to load firm")
		return domain.Firm{}, false
	}
	return firm, true
}
