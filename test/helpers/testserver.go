package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio_backend/internal/app"
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/storage"
	"portfolio_backend/internal/testutil"

	"gorm.io/gorm"
)

const (
	AdminEmail    = "owner@example.com"
	AdminPassword = "correct horse battery staple"
	jwtSecret     = "integration_test_secret_0123456789"
)

// TestServer - приложение целиком поверх in-memory SQLite и локального хранилища
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
	Tokens *auth.TokenManager
	// Token - валидный токен администратора
	Token string
}

// Option донастраивает зависимости перед сборкой роутера
type Option func(*app.Dependencies)

// WithIdempotencyCache включает защиту повторных create
func WithIdempotencyCache(cache *MemoryCache) Option {
	return func(d *app.Dependencies) { d.IdempotencyCache = cache }
}

func NewTestServer(t *testing.T, opts ...Option) *TestServer {
	t.Helper()

	hash, err := auth.HashPassword(AdminPassword)
	if err != nil {
		t.Fatalf("hash admin password: %v", err)
	}

	cfg := &config.Config{
		Server:   config.ServerConfig{Env: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite"},
		JWT:      config.JWTConfig{Secret: jwtSecret, TTL: 60, CookieName: "sb-access-token"},
		Admin:    config.AdminConfig{Email: AdminEmail, PasswordHash: hash},
		Storage:  config.StorageConfig{Type: storage.TypeLocal, BasePath: t.TempDir()},
		Upload:   config.UploadConfig{MaxSize: config.DefaultMaxUploadSize},
		Redis:    config.RedisConfig{IdempotencyTTL: 3600},
	}

	store, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		t.Fatalf("init storage: %v", err)
	}

	deps := app.Dependencies{
		DB:      testutil.OpenTestDB(t),
		Storage: store,
		Tokens:  auth.NewTokenManager(cfg.JWT),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	server := httptest.NewServer(app.SetupRouter(cfg, deps))
	t.Cleanup(server.Close)

	token, _, err := deps.Tokens.Issue("admin-id", AdminEmail, auth.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	return &TestServer{
		Server: server,
		DB:     deps.DB,
		Config: cfg,
		Tokens: deps.Tokens,
		Token:  token,
	}
}

// SendRequest отправляет JSON-запрос. body == nil - без тела, string - как есть.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBody, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.Do(t, req)
}

// SendFile отправляет multipart-запрос с полем file
func (ts *TestServer) SendFile(t *testing.T, path, token, filename string, content []byte) (*http.Response, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, body)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return ts.Do(t, req)
}

func (ts *TestServer) Do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("send request: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return res, string(resBodyBytes)
}

// CountRows - сколько строк в таблице сейчас
func (ts *TestServer) CountRows(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	if err := ts.DB.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
