package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims JWT do operador autenticado do painel
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
