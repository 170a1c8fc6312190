package jwtutil

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/config"
)

var (
	secret []byte
	expiry time.Duration
)

// Initialize sets the signing key and token lifetime from configuration.
// Must be called before any token is issued or validated; config.Load
// guarantees the key is present.
func Initialize(cfg *config.JWTConfig) {
	secret = []byte(cfg.SigningKey)
	expiry = time.Duration(cfg.ExpirationHours) * time.Hour
}

// UserClaims represents the JWT claims for an authenticated tenant user.
// The full identity is embedded verbatim so every request can be
// authorized without a session store.
type UserClaims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	TenantID   string `json:"tenant_id"`
	TenantSlug string `json:"tenant_slug"`
	TenantPlan string `json:"tenant_plan"`
	jwt.RegisteredClaims
}

// StoreClaims represents the JWT claims for a storefront customer.
type StoreClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed token embedding the user's identity
func GenerateToken(userID, email, role, tenantID, tenantSlug, tenantPlan string) (string, error) {
	claims := UserClaims{
		UserID:     userID,
		Email:      email,
		Role:       role,
		TenantID:   tenantID,
		TenantSlug: tenantSlug,
		TenantPlan: tenantPlan,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken validates and parses the token. Expired, tampered and
// malformed tokens all fail the same way; callers map any error to a
// single 401.
func ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// GenerateStoreToken creates a signed token for a storefront customer
func GenerateStoreToken(userID, email, name string) (string, error) {
	claims := StoreClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateStoreToken validates and parses a storefront customer token
func ValidateStoreToken(tokenString string) (*StoreClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StoreClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*StoreClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
