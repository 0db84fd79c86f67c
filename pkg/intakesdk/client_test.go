package intakesdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *SDKClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewSDKClient(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewSDKClientTrimsSlash(t *testing.T) {
	t.Parallel()
	require.Equal(t, "http://localhost:8080", NewSDKClient("http://localhost:8080/").BaseURL)
}

func TestImportClient(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/v1/firms/acme%2F1/clients/import", r.URL.EscapedPath())
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req ImportRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "Jane Smith", req.Record["name"])
			require.Nil(t, req.CreateNewClient)

			writeJSON(w, http.StatusOK, ImportResponse{
				CreatedClient:  true,
				Client:         &Client{ID: "c1", FirmID: "acme/1"},
				SuccessMessage: "Client created.",
				Row:            map[string]any{"success_msg": "Client created."},
			})
		})

		out, err := client.ImportClient(ctx, "acme/1", ImportRequest{Record: map[string]any{"name": "Jane Smith"}})
		require.NoError(t, err)
		require.True(t, out.CreatedClient)
		require.Equal(t, "c1", out.Client.ID)
	})

	t.Run("rejected", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnprocessableEntity, ImportResponse{
				Row: map[string]any{"error_message": "Client missing name."},
				Error: &ImportError{
					Kind:    "missing_required_field",
					Message: "Client missing name.",
					Fields:  []string{"client_last_name"},
				},
			})
		})

		out, err := client.ImportClient(ctx, "acme", ImportRequest{})
		var rejected *RejectedError
		require.ErrorAs(t, err, &rejected)
		require.Equal(t, http.StatusUnprocessableEntity, rejected.StatusCode)
		require.Equal(t, "missing_required_field", rejected.Kind)
		require.Equal(t, []string{"client_last_name"}, rejected.Fields)
		require.NotNil(t, out)
		require.Equal(t, "Client missing name.", out.Row["error_message"])
	})

	t.Run("unknown firm", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorCodeNotFound, ErrorDescription: "firm not found"})
		})

		out, err := client.ImportClient(ctx, "missing", ImportRequest{})
		require.Nil(t, out)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		require.Equal(t, ErrorCodeNotFound, apiErr.Code)
	})

	t.Run("plain server error", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorCodeServerError, ErrorDescription: "internal server error"})
		})

		_, err := client.ImportClient(ctx, "acme", ImportRequest{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, ErrorCodeServerError, apiErr.Code)
		require.False(t, errors.As(err, new(*RejectedError)))
	})
}

func TestPatchClient(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/v1/clients", r.URL.Path)
		writeJSON(w, http.StatusOK, LegacyResponse{Status: LegacyStatusSuccess, Result: "Client created."})
	})

	out, err := client.PatchClient(context.Background(), map[string]any{"firm_id": 1, "name": "Jane Smith"})
	require.NoError(t, err)
	require.Equal(t, LegacyStatusSuccess, out.Status)
	require.Equal(t, "Client created.", out.Result)
}

func TestFirmsAndListings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/v1/firms/acme":
			var req FirmRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			writeJSON(w, http.StatusOK, Firm{ID: "acme", Name: req.Name, IsCorporate: req.IsCorporate})
		case r.Method == http.MethodGet && r.URL.Path == "/v1/firms/acme":
			writeJSON(w, http.StatusOK, Firm{ID: "acme", Name: "Acme"})
		case r.Method == http.MethodGet && r.URL.Path == "/v1/firms":
			writeJSON(w, http.StatusOK, ListFirmsResponse{Firms: []Firm{{ID: "acme"}}})
		case r.URL.Path == "/v1/firms/acme/clients":
			require.Equal(t, "5", r.URL.Query().Get("limit"))
			writeJSON(w, http.StatusOK, ListClientsResponse{Clients: []Client{{ID: "c1"}}})
		case r.URL.Path == "/v1/firms/acme/integration-responses":
			require.Empty(t, r.URL.RawQuery)
			writeJSON(w, http.StatusOK, ListIntegrationResponsesResponse{
				Responses: []IntegrationResponse{{ID: "a1", Payload: json.RawMessage(`{"ok":true}`)}},
			})
		default:
			http.NotFound(w, r)
		}
	})

	firm, err := client.SaveFirm(ctx, "acme", FirmRequest{Name: "Acme", IsCorporate: true})
	require.NoError(t, err)
	require.True(t, firm.IsCorporate)

	firm, err = client.GetFirm(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, "Acme", firm.Name)

	firms, err := client.ListFirms(ctx)
	require.NoError(t, err)
	require.Len(t, firms.Firms, 1)

	clients, err := client.ListClients(ctx, "acme", 5)
	require.NoError(t, err)
	require.Len(t, clients.Clients, 1)

	audit, err := client.ListIntegrationResponses(ctx, "acme", 0)
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(audit.Responses[0].Payload))

	_, err = client.GetFirm(ctx, "other")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Contains(t, apiErr.Description, "Not Found")
}

func TestHealth(t *testing.T) {
	t.Parallel()

	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/readyz" {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Checks: &HealthChecks{Database: "error: closed"}})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: "test"})
	})

	live, err := client.GetLiveness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	_, err = client.GetReadiness(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}
