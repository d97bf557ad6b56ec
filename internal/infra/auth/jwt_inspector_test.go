package auth

import (
	"testing"
	"time"

	"pabw/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.Claims) entity.Credential {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)

	return entity.Credential(signed)
}

func TestJWTInspector_ReadsSubjectAndExpiry(t *testing.T) {
	expires := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	credential := signToken(t, jwt.RegisteredClaims{
		Subject:   "6650f1c2e4b0a1a2b3c4d5e6",
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	info, ok := NewJWTInspector().Inspect(credential)

	require.True(t, ok)
	assert.Equal(t, "6650f1c2e4b0a1a2b3c4d5e6", info.Subject)
	assert.True(t, expires.Equal(info.ExpiresAt))
}

// Expired tokens are still readable; deciding validity is the backend's job.
func TestJWTInspector_IgnoresExpiryAndSignature(t *testing.T) {
	credential := signToken(t, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	info, ok := NewJWTInspector().Inspect(credential)

	require.True(t, ok)
	assert.Equal(t, "u1", info.Subject)
}

func TestJWTInspector_OpaqueTokens(t *testing.T) {
	inspector := NewJWTInspector()

	for _, credential := range []entity.Credential{"", "opaque-token", "a.b.c"} {
		_, ok := inspector.Inspect(credential)
		assert.False(t, ok, string(credential))
	}
}
