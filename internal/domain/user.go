package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é um usuário do dashboard. A coluna empresa define a rede de lojas
// cujos dados o usuário pode enxergar.
type User struct {
	ID           int       `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Empresa      string    `json:"empresa"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionUser é a identidade resolvida a partir do cookie de sessão.
type SessionUser struct {
	Email   string `json:"email"`
	Nome    string `json:"nome"`
	Empresa string `json:"empresa"`
}

// Claims são as claims do token de sessão. Apenas o email viaja no token;
// a empresa é resolvida na tabela de usuários a cada requisição.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
