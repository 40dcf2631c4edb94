package integration_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"portfolio_backend/test/helpers"
)

func newJSONRequest(t *testing.T, ts *helpers.TestServer, method, path string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("encode body: %v", err)
	}
	req, err := http.NewRequest(method, ts.Server.URL+path, bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+ts.Token)
	return req
}
