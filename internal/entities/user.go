package entities

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")

// User is an operator allowed onto the admin routes.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
