package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multichat/internal/entities"
)

func TestAPIClientSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/messages", r.URL.Path)

		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Messenger", req["platform"])
		assert.Equal(t, "s1", req["sessionId"])

		switch req["userMessage"] {
		case "flood":
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "Rate limit exceeded", "retryAfter": 12})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"aiMessage": "echo " + req["userMessage"]})
		}
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL+"/", time.Second)

	reply, err := c.Send(context.Background(), entities.Messenger, "hi", "s1")
	require.NoError(t, err)
	assert.Equal(t, "echo hi", reply)

	_, err = c.Send(context.Background(), entities.Messenger, "flood", "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "12s")
}

func TestAPIClientUnreachable(t *testing.T) {
	c := NewAPIClient("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := c.Send(context.Background(), entities.WhatsApp, "hi", "s")
	assert.Error(t, err)
}
