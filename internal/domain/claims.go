package domain

import "github.com/golang-jwt/jwt/v5"

// Claims representa o token de acesso emitido para o dashboard (Supabase)
type Claims struct {
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	AppMetadata  map[string]any `json:"app_metadata,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}
