package identity

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier checks access tokens locally against the project's signing
// secret, avoiding a round trip to the auth API on every admin request.
type JWTVerifier struct {
	Secret []byte
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (User, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return v.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return User{}, ErrInvalidSession
	}
	if claims.Subject == "" {
		return User{}, ErrInvalidSession
	}
	return User{ID: claims.Subject, Email: claims.Email}, nil
}
