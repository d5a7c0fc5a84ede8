package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultResendBaseURL = "https://api.resend.com"

// EmailConfig configures the Resend client. An empty APIKey puts the client
// in logging mode: messages are logged instead of sent, so unconfigured
// environments keep working.
type EmailConfig struct {
	APIKey  string
	From    string
	To      string
	BaseURL string
	Timeout time.Duration
}

// EmailClient sends contact notifications through the Resend HTTP API.
type EmailClient struct {
	cfg    EmailConfig
	client *http.Client
}

// NewEmailClient creates an email client. A nil httpClient gets a default
// with the configured timeout.
func NewEmailClient(cfg EmailConfig, httpClient *http.Client) *EmailClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultResendBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &EmailClient{cfg: cfg, client: httpClient}
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
}

// Send delivers one email. When no API key is configured the message is
// logged and Send reports success.
func (c *EmailClient) Send(ctx context.Context, subject, html, text string) error {
	if c.cfg.APIKey == "" {
		logger.Info("email service not configured, logging message instead",
			slog.String("to", c.cfg.To),
			slog.String("subject", subject),
			slog.String("text", text),
		)
		return nil
	}
	if c.cfg.To == "" {
		return fmt.Errorf("email recipient is not configured")
	}

	body, err := json.Marshal(emailRequest{
		From:    c.cfg.From,
		To:      []string{c.cfg.To},
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("encode email request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(b))
	}

	return nil
}
