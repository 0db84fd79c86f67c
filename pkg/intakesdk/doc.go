/*
Package intakesdk provides a client SDK for the client intake service.

# Overview

The service reconciles client records pushed by external sources (CSV
uploads, third-party integrations, the case-management platform) against a
firm's existing clients. Each record either creates a client, updates a
matched one, leaves it unchanged, or is rejected with a structured error.

	client := intakesdk.NewSDKClient("http://localhost:8080")

	// Configure a firm
	firm, err := client.SaveFirm(ctx, "acme", intakesdk.FirmRequest{Name: "Acme Legal"})

	// Import a record
	out, err := client.ImportClient(ctx, "acme", intakesdk.ImportRequest{
		Record: map[string]any{
			"name":          "Jane Smith",
			"email":         "jane@example.com",
			"phone_numbers": []any{"5551234567"},
		},
		IntegrationType: "CSV_IMPORT",
		IntegrationID:   "ext-42",
	})

# Error Handling

ImportClient returns a *RejectedError, together with the decoded response,
when the service rejected the record:

	out, err := client.ImportClient(ctx, "acme", req)
	var rejected *intakesdk.RejectedError
	if errors.As(err, &rejected) {
		fmt.Println(rejected.Kind, rejected.Message, out.Row["error_message"])
	}

All other failures are returned as *APIError carrying the HTTP status code
and the error code from the response body.

The types in this package are also the wire types used by the service's
HTTP handlers.
*/
package intakesdk
