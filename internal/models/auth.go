package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims carries the admin identity inside access tokens.
type JWTClaims struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// RegisterRequest captures the admin registration payload.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest captures the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}
