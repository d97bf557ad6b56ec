// Package auth provides concrete implementations for credential-related domain services.
package auth

import (
	"pabw/internal/domain/entity"
	"pabw/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector reads claims from bearer tokens that happen to be JWTs.
// Claims are read without verifying the signature and are informational only.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.CredentialInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// Inspect returns the subject and expiry of credential. ok is false for
// credentials that are not JWTs.
func (i *jwtInspector) Inspect(credential entity.Credential) (entity.CredentialInfo, bool) {
	if credential.IsZero() {
		return entity.CredentialInfo{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := i.parser.ParseUnverified(string(credential), &claims); err != nil {
		return entity.CredentialInfo{}, false
	}

	info := entity.CredentialInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}

	return info, true
}
