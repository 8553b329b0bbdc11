package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// ManagerSubject identifica o único usuário do painel (o gestor)
const ManagerSubject = "manager"

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
