package intakesdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ImportClient reconciles one record for a firm. When the record is rejected
// the decoded response is returned together with a *RejectedError.
func (c *SDKClient) ImportClient(ctx context.Context, firmID string, req ImportRequest) (*ImportResponse, error) {
	path := "/v1/firms/" + url.PathEscape(firmID) + "/clients/import"
	resp, err := c.doJSON(ctx, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusUnprocessableEntity, http.StatusConflict, http.StatusInternalServerError:
	default:
		return nil, parseErrorResponse(resp, body)
	}

	var out ImportResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, parseErrorResponse(resp, body)
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	// Rejections always carry an outcome; anything else is a plain error body.
	if resp.StatusCode != http.StatusOK && out.Error == nil {
		return nil, parseErrorResponse(resp, body)
	}

	if out.Error != nil {
		return &out, &RejectedError{
			StatusCode: resp.StatusCode,
			Kind:       out.Error.Kind,
			Message:    out.Error.Message,
			Fields:     out.Error.Fields,
		}
	}
	return &out, nil
}

// PatchClient calls the legacy PATCH /v1/clients endpoint. fields carries the
// record itself plus firm_id and integration_id.
func (c *SDKClient) PatchClient(ctx context.Context, fields map[string]any) (*LegacyResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPatch, "/v1/clients", fields)
	if err != nil {
		return nil, err
	}

	var out LegacyResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
