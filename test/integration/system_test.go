package integration_test

import (
	"net/http"
	"testing"

	_ "portfolio_backend/docs"
	"portfolio_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func TestMetrics_CountsRequests(t *testing.T) {
	ts := helpers.NewTestServer(t)

	ts.SendRequest(t, http.MethodGet, "/api/portfolio/skills", "", nil)

	res, body := ts.SendRequest(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "portfolio_http_requests_total")
	assert.Contains(t, body, `route="/api/portfolio/skills"`)
}

func TestSwagger_ServesDocument(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"/portfolio/{collection}"`)
}
