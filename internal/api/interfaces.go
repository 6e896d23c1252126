package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/workout/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Pinger reports storage liveness for /health.
type Pinger interface {
	Ping(ctx context.Context) error
}
