package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
	"github.com/aussiebroadwan/intake/internal/intake/service"
	"github.com/aussiebroadwan/intake/pkg/httpx"
	"github.com/aussiebroadwan/intake/pkg/intakesdk"
	"github.com/aussiebroadwan/intake/pkg/slogx"
)

type FirmsHandler struct {
	FirmService *service.FirmService
}

// HandlePut handles the save firm endpoint
//
//	@Summary		Create or replace a firm
//	@Description	Stores a firm's configuration. Both integration settings default to true when omitted. The phone rule, when set, must be a CEL expression over `phone` that evaluates to a bool.
//	@Tags			Firms
//	@Accept			json
//	@Produce		json
//	@Param			firm_id	path		string					true	"Firm ID"
//	@Param			request	body		intakesdk.FirmRequest	true	"Firm configuration"
//	@Success		200		{object}	intakesdk.Firm			"Stored firm"
//	@Failure		400		{object}	intakesdk.ErrorResponse	"Invalid firm or phone rule"
//	@Failure		500		{object}	intakesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/firms/{firm_id} [put].
func (h *FirmsHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req intakesdk.FirmRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, err.Error())
		return
	}

	firm := domain.Firm{
		ID:          r.PathValue("firm_id"),
		Name:        req.Name,
		IsCorporate: req.IsCorporate,
		Settings: domain.IntegrationSettings{
			SyncClientContactInfo:   boolOrTrue(req.SyncClientContactInfo),
			UpdateClientMissingData: boolOrTrue(req.UpdateClientMissingData),
		},
		PhoneRule: req.PhoneRule,
	}

	saved, err := h.FirmService.SaveFirm(ctx, firm)
	switch {
	case errors.Is(err, service.ErrInvalidFirm), errors.Is(err, service.ErrInvalidPhoneRule):
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, err.Error())
		return
	case err != nil:
		log.Error("failed to save firm", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.ErrorCodeServerError, "Failed to save firm")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toFirm(saved))
}

// HandleGet handles the get firm endpoint
//
//	@Summary		Get a firm
//	@Tags			Firms
//	@Produce		json
//	@Param			firm_id	path		string					true	"Firm ID"
//	@Success		200		{object}	intakesdk.Firm			"Firm configuration"
//	@Failure		404		{object}	intakesdk.ErrorResponse	"Unknown firm"
//	@Router			/v1/firms/{firm_id} [get].
func (h *FirmsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	firm, ok := loadFirm(w, r, h.FirmService, r.PathValue("firm_id"))
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toFirm(firm))
}

// HandleList handles the list firms endpoint
//
//	@Summary		List firms
//	@Tags			Firms
//	@Produce		json
//	@Success		200	{object}	intakesdk.ListFirmsResponse	"All firms"
//	@Failure		500	{object}	intakesdk.ErrorResponse		"Internal server error"
//	@Router			/v1/firms [get].
func (h *FirmsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	firms, err := h.FirmService.ListFirms(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list firms", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.ErrorCodeServerError, "Failed to retrieve firms")
		return
	}

	response := intakesdk.ListFirmsResponse{
		Firms: make([]intakesdk.Firm, len(firms)),
	}
	for i, f := range firms {
		response.Firms[i] = toFirm(f)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

func boolOrTrue(b *bool) bool {
	return b == nil || *b
}
