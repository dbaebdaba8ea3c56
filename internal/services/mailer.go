package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrMailerNotConfigured = errors.New("mailer not configured")

// Mailer delivers one HTML email. Body content and templating live with the
// caller; implementations only transport.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, htmlBody string) error
}

const defaultResendEndpoint = "https://api.resend.com/emails"

// ResendMailer sends email through the Resend HTTP API.
type ResendMailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

func NewResendMailer(apiKey string, from string) *ResendMailer {
	return &ResendMailer{
		apiKey:   apiKey,
		from:     from,
		endpoint: defaultResendEndpoint,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

// WithEndpoint overrides the API endpoint. Used by tests.
func (mailer *ResendMailer) WithEndpoint(endpoint string) *ResendMailer {
	mailer.endpoint = endpoint
	return mailer
}

func (mailer *ResendMailer) Configured() bool {
	return mailer.apiKey != "" && mailer.from != ""
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (mailer *ResendMailer) Send(ctx context.Context, to string, subject string, htmlBody string) error {
	if !mailer.Configured() {
		return ErrMailerNotConfigured
	}

	payload, err := json.Marshal(resendPayload{
		From:    mailer.from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mailer.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+mailer.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := mailer.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("resend status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
