package intakesdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SaveFirm creates or replaces a firm's configuration.
func (c *SDKClient) SaveFirm(ctx context.Context, firmID string, req FirmRequest) (*Firm, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, "/v1/firms/"+url.PathEscape(firmID), req)
	if err != nil {
		return nil, err
	}

	var firm Firm
	if err := decodeJSON(resp, &firm, http.StatusOK); err != nil {
		return nil, err
	}
	return &firm, nil
}

// GetFirm returns a firm's configuration.
func (c *SDKClient) GetFirm(ctx context.Context, firmID string) (*Firm, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/firms/"+url.PathEscape(firmID), nil, nil)
	if err != nil {
		return nil, err
	}

	var firm Firm
	if err := decodeJSON(resp, &firm, http.StatusOK); err != nil {
		return nil, err
	}
	return &firm, nil
}

// ListFirms returns every configured firm.
func (c *SDKClient) ListFirms(ctx context.Context) (*ListFirmsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/firms", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListFirmsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListClients returns a firm's clients, newest first. A zero limit uses the
// server default.
func (c *SDKClient) ListClients(ctx context.Context, firmID string, limit int) (*ListClientsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, withLimit("/v1/firms/"+url.PathEscape(firmID)+"/clients", limit), nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListClientsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListIntegrationResponses returns the raw source responses recorded for a
// firm, newest first.
func (c *SDKClient) ListIntegrationResponses(ctx context.Context, firmID string, limit int) (*ListIntegrationResponsesResponse, error) {
	path := withLimit("/v1/firms/"+url.PathEscape(firmID)+"/integration-responses", limit)
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListIntegrationResponsesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func withLimit(path string, limit int) string {
	if limit <= 0 {
		return path
	}
	return path + "?limit=" + strconv.Itoa(limit)
}
