package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	Handler(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		wantStatus int
		wantError  string
	}{
		{name: "reply", method: http.MethodPost, body: `{"platform":"Telegram","userMessage":"hello"}`, wantStatus: http.StatusOK},
		{name: "wrong method", method: http.MethodGet, wantStatus: http.StatusMethodNotAllowed, wantError: "Method not allowed"},
		{name: "unknown platform", method: http.MethodPost, body: `{"platform":"Discord","userMessage":"hello"}`, wantStatus: http.StatusBadRequest, wantError: "Invalid request"},
		{name: "empty message", method: http.MethodPost, body: `{"platform":"Telegram","userMessage":""}`, wantStatus: http.StatusBadRequest, wantError: "Invalid request"},
		{name: "bad json", method: http.MethodPost, body: `{`, wantStatus: http.StatusBadRequest, wantError: "Invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.method, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
				return
			}
			assert.Equal(t, "Telegram", body["platform"])
			assert.Equal(t, "default", body["sessionId"])
			assert.Contains(t, body["aiMessage"], "Telegram")
		})
	}
}

func TestHandlerPreflight(t *testing.T) {
	rec := serve(http.MethodOptions, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
