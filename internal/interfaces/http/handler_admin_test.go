package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multichat/internal/repository"
	"multichat/internal/usecases"
)

func newAdminServer(t *testing.T) *testServer {
	t.Helper()
	auth := usecases.NewAuthUsecase(repository.NewUserRepository(), "test-secret")
	require.NoError(t, auth.EnsureAdmin("admin", "pa55"))
	return newTestServer(t, nil, auth)
}

func login(t *testing.T, s *testServer) string {
	t.Helper()
	rec := s.do(http.MethodPost, "/api/admin/login", gin.H{"username": "admin", "password": "pa55"})
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ := decode(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAdminLogin(t *testing.T) {
	s := newAdminServer(t)

	rec := s.do(http.MethodPost, "/api/admin/login", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/admin/login", "not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	login(t, s)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newAdminServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/admin/stats", nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		s.do(http.MethodGet, "/api/admin/stats", nil, "Authorization", "Bearer garbage").Code)
}

func TestAdminStatsAndDelete(t *testing.T) {
	s := newAdminServer(t)
	auth := "Bearer " + login(t, s)

	s.do(http.MethodPost, "/api/messages", gin.H{"platform": "WhatsApp", "userMessage": "hi", "sessionId": "victim"})

	rec := s.do(http.MethodGet, "/api/admin/stats", nil, "Authorization", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode(t, rec)
	assert.Equal(t, 1.0, stats["active_sessions"])
	assert.Contains(t, stats, "rate_limiter")

	rec = s.do(http.MethodDelete, "/api/admin/conversation/victim", nil, "Authorization", auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, s.conversations.Count("victim"))

	rec = s.do(http.MethodDelete, "/api/admin/conversation/victim", nil, "Authorization", auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminRoutesAbsentWithoutAuth(t *testing.T) {
	s := newTestServer(t, nil, nil)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/admin/login", gin.H{}).Code)
}
