package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims carried by access and refresh tokens.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	TokenVersion int    `json:"token_version"`
}
