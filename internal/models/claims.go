package models

import "github.com/golang-jwt/jwt/v5"

// Claims identifies the caller of the HTTP API.
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}
