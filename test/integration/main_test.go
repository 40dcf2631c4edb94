package integration_test

import (
	"encoding/json"
	"io"
	"os"
	"testing"

	"portfolio_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("test", io.Discard)
	os.Exit(m.Run())
}

func decodeObject(t *testing.T, body string) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("decode response %q: %v", body, err)
	}
	return out
}

func decodeList(t *testing.T, body string) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("decode response %q: %v", body, err)
	}
	return out
}

func errorCode(t *testing.T, body string) string {
	t.Helper()
	envelope := decodeObject(t, body)
	errObj, ok := envelope["error"].(map[string]any)
	if !ok {
		t.Fatalf("no error envelope in %q", body)
	}
	code, _ := errObj["code"].(string)
	return code
}
