package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthAPIVerifierValidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/user", r.URL.Path)
		require.Equal(t, "service-key", r.Header.Get("apikey"))
		require.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "user-1", "email": "admin@thecanopi.ai"}`))
	}))
	defer srv.Close()

	v := NewAuthAPIVerifier(srv.URL, "service-key")
	user, err := v.Verify(context.Background(), "good-token")
	require.NoError(t, err)
	require.Equal(t, User{ID: "user-1", Email: "admin@thecanopi.ai"}, user)
}

func TestAuthAPIVerifierRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	v := NewAuthAPIVerifier(srv.URL, "service-key")
	_, err := v.Verify(context.Background(), "expired-token")
	require.True(t, errors.Is(err, ErrInvalidSession))
}

func TestAuthAPIVerifierUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	v := NewAuthAPIVerifier(srv.URL, "service-key")
	_, err := v.Verify(context.Background(), "token")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrInvalidSession))
}

func TestAuthAPIVerifierEmptyUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	v := NewAuthAPIVerifier(srv.URL, "service-key")
	_, err := v.Verify(context.Background(), "token")
	require.True(t, errors.Is(err, ErrInvalidSession))
}
