package integration_test

import (
	"net/http"
	"testing"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_LoginAndMe(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "Owner@Example.com",
		"password": helpers.AdminPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	login := decodeObject(t, body)
	token, _ := login["accessToken"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "Bearer", login["tokenType"])

	res, body = ts.SendRequest(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, helpers.AdminEmail, decodeObject(t, body)["email"])

	res, body = ts.SendRequest(t, http.MethodPost, "/api/portfolio/skills", token,
		map[string]any{"name": "Go", "category": "Backend"})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)
}

func TestAuth_LoginRejectsWrongPassword(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    helpers.AdminEmail,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, body))
}

func TestAuth_CookieToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	req := newJSONRequest(t, ts, http.MethodPost, "/api/portfolio/skills", map[string]any{"name": "Go", "category": "Backend"})
	req.Header.Del("Authorization")
	req.AddCookie(&http.Cookie{Name: ts.Config.JWT.CookieName, Value: ts.Token})

	res, body := ts.Do(t, req)
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)
}

func TestAuth_TokenFromAnotherSecret(t *testing.T) {
	ts := helpers.NewTestServer(t)

	foreign := auth.NewTokenManager(config.JWTConfig{Secret: "someone_elses_secret", TTL: 60})
	token, _, err := foreign.Issue("intruder", "intruder@example.com", auth.RoleAdmin)
	require.NoError(t, err)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/portfolio/skills", token,
		map[string]any{"name": "Go", "category": "Backend"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
	assert.Zero(t, ts.CountRows(t, "skills"))
}
