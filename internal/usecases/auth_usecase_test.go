package usecases

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multichat/internal/entities"
	"multichat/internal/repository"
)

func TestAuthLogin(t *testing.T) {
	users := repository.NewUserRepository()
	auth := NewAuthUsecase(users, "secret")
	require.NoError(t, auth.EnsureAdmin("admin", "hunter2"))
	require.NoError(t, auth.EnsureAdmin("admin", "other"))
	assert.Equal(t, 1, users.Count())

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid credentials", username: "admin", password: "hunter2"},
		{name: "wrong password", username: "admin", password: "other", wantErr: entities.ErrInvalidCredentials},
		{name: "unknown user", username: "root", password: "hunter2", wantErr: entities.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := auth.Login(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)

			parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) { return []byte("secret"), nil })
			require.NoError(t, err)
			claims := parsed.Claims.(jwt.MapClaims)
			assert.Equal(t, RoleAdmin, claims["role"])
			assert.Equal(t, "admin", claims["sub"])
		})
	}
}
