package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultResendEndpoint = "https://api.resend.com/emails"

// ResendClient sends transactional notification emails to the site owners.
// Returns nil when the API key or recipient is not configured, which
// disables notifications without touching call sites.
type ResendClient struct {
	apiKey     string
	from       string
	to         string
	endpoint   string
	httpClient *http.Client
}

func NewResendClient(apiKey, from, to string) *ResendClient {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(to) == "" {
		return nil
	}
	return &ResendClient{
		apiKey:     apiKey,
		from:       from,
		to:         to,
		endpoint:   defaultResendEndpoint,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

func (c *ResendClient) sendHTML(ctx context.Context, subject, htmlBody string) (string, error) {
	if c == nil {
		return "", errors.New("resend client is nil")
	}
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("missing subject")
	}
	if strings.TrimSpace(htmlBody) == "" {
		return "", errors.New("missing html body")
	}

	payload := resendSendRequest{
		From:    c.from,
		To:      []string{c.to},
		Subject: subject,
		HTML:    htmlBody,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("resend marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("resend create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("resend send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out resendSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("resend decode response: %w", err)
	}
	return out.ID, nil
}

type resendSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendSendResponse struct {
	ID string `json:"id"`
}
