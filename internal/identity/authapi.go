package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// AuthAPIVerifier presents the token to the hosted auth API's user endpoint.
// Used when no local signing secret is configured.
type AuthAPIVerifier struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewAuthAPIVerifier(baseURL, serviceKey string) *AuthAPIVerifier {
	return &AuthAPIVerifier{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

func (v *AuthAPIVerifier) Verify(ctx context.Context, token string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return User{}, fmt.Errorf("auth request: %w", err)
	}
	req.Header.Set("apikey", v.serviceKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return User{}, ErrInvalidSession
	default:
		return User{}, fmt.Errorf("auth api status %d", resp.StatusCode)
	}

	var out struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return User{}, fmt.Errorf("auth decode response: %w", err)
	}
	if out.ID == "" {
		return User{}, ErrInvalidSession
	}
	return User{ID: out.ID, Email: out.Email}, nil
}
