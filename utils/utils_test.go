package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONBody(t *testing.T) {
	var dst struct {
		Type string `json:"type"`
	}
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"type":"message","extra":{"a":1}}`))

	require.NoError(t, ParseJSONBody(req, &dst))
	assert.Equal(t, "message", dst.Type)

	bad := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"type":`))
	assert.Error(t, ParseJSONBody(bad, &dst))
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusInternalServerError, errors.New("boom"), "token request failed")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"boom","message":"token request failed"}`, rec.Body.String())
}

func TestWriteDebugJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps")

	path, err := WriteDebugJSON(dir, "carrier_data.json", []map[string]string{{"IMEI": "1"}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "carrier_data.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"IMEI":"1"}]`, string(data))
}
