package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret []byte, method jwt.SigningMethod, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestJWTVerifierValidToken(t *testing.T) {
	secret := []byte("test-secret")
	v := &JWTVerifier{Secret: secret}

	token := signToken(t, secret, jwt.SigningMethodHS256, accessClaims{
		Email: "admin@thecanopi.ai",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "4e6f7a0e-1111-2222-3333-444455556666",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	user, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "4e6f7a0e-1111-2222-3333-444455556666", user.ID)
	require.Equal(t, "admin@thecanopi.ai", user.Email)
}

func TestJWTVerifierExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	v := &JWTVerifier{Secret: secret}

	token := signToken(t, secret, jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := v.Verify(context.Background(), token)
	require.True(t, errors.Is(err, ErrInvalidSession))
}

func TestJWTVerifierWrongSecret(t *testing.T) {
	v := &JWTVerifier{Secret: []byte("right-secret")}

	token := signToken(t, []byte("wrong-secret"), jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := v.Verify(context.Background(), token)
	require.True(t, errors.Is(err, ErrInvalidSession))
}

func TestJWTVerifierMissingSubject(t *testing.T) {
	secret := []byte("test-secret")
	v := &JWTVerifier{Secret: secret}

	token := signToken(t, secret, jwt.SigningMethodHS256, accessClaims{
		Email: "nobody@thecanopi.ai",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := v.Verify(context.Background(), token)
	require.True(t, errors.Is(err, ErrInvalidSession))
}

func TestJWTVerifierGarbageToken(t *testing.T) {
	v := &JWTVerifier{Secret: []byte("test-secret")}
	_, err := v.Verify(context.Background(), "not-a-jwt")
	require.True(t, errors.Is(err, ErrInvalidSession))
}
