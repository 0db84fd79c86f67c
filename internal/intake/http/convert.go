package http

import (
	"net/http"

	"github.com/aussiebroadwan/intake/internal/intake/domain"
	"github.com/aussiebroadwan/intake/pkg/intakesdk"
)

func toClient(c domain.Client) intakesdk.Client {
	return intakesdk.Client{
		ID:            c.ID,
		FirmID:        c.FirmID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		BirthDate:     c.BirthDate,
		Email:         c.Email,
		CellPhone:     c.CellPhone,
		IntegrationID: c.IntegrationID,
		HasSSN:        c.SSN != "",
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toFirm(f domain.Firm) intakesdk.Firm {
	return intakesdk.Firm{
		ID:                      f.ID,
		Name:                    f.Name,
		IsCorporate:             f.IsCorporate,
		SyncClientContactInfo:   f.Settings.SyncClientContactInfo,
		UpdateClientMissingData: f.Settings.UpdateClientMissingData,
		PhoneRule:               f.PhoneRule,
		CreatedAt:               f.CreatedAt,
		UpdatedAt:               f.UpdatedAt,
	}
}

func toImportResponse(out domain.Outcome) intakesdk.ImportResponse {
	resp := intakesdk.ImportResponse{
		CreatedClient:  out.CreatedClient,
		UpdatedClient:  out.UpdatedClient,
		Fields:         out.Fields,
		MatchedBy:      string(out.MatchedBy),
		MatchedPhone:   out.MatchedPhone,
		CompanyName:    out.CompanyName,
		SuccessMessage: out.SuccessMessage,
		Row:            out.Row,
	}
	if out.Client != nil {
		c := toClient(*out.Client)
		resp.Client = &c
	}
	if out.Err != nil {
		resp.Error = &intakesdk.ImportError{
			Kind:    string(out.Err.Kind),
			Message: out.Err.Message,
			Fields:  out.Err.Fields,
		}
	}
	return resp
}

// outcomeStatus maps a reconciliation outcome onto an HTTP status code.
func outcomeStatus(out domain.Outcome) int {
	if out.Err == nil {
		return http.StatusOK
	}
	switch out.Err.Kind {
	case domain.ErrDuplicateIdentity:
		return http.StatusConflict
	case domain.ErrPersistenceFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}
