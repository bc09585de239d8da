package dto

import "time"

// LoginRequest carries no validate tags: blank credentials fail like any
// other wrong credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserSummary is the public view of a staff account. It never carries the hash.
type UserSummary struct {
	Username string `json:"username"`
	Nome     string `json:"nome"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Nome     string `json:"nome" validate:"max=255"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type RegisterResponse struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
}

// TokenClaims is the verified content of a session token, stored in the
// request context by the JWT middleware.
type TokenClaims struct {
	UserId    int64
	Username  string
	Role      string
	Nome      string
	TokenId   string
	ExpiresAt time.Time
}

func (c *TokenClaims) IsAdmin() bool {
	return c != nil && c.Role == "admin"
}
