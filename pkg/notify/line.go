package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultLineNotifyURL = "https://notify-api.line.me/api/notify"

// LineConfig configures the LINE Notify client. An empty Token puts the
// client in logging mode, mirroring the email client.
type LineConfig struct {
	Token    string
	Endpoint string
	Timeout  time.Duration
}

// LineClient posts messages to a LINE Notify webhook.
type LineClient struct {
	cfg    LineConfig
	client *http.Client
}

func NewLineClient(cfg LineConfig, httpClient *http.Client) *LineClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultLineNotifyURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &LineClient{cfg: cfg, client: httpClient}
}

// Send posts one message. When no token is configured the message is logged
// and Send reports success.
func (c *LineClient) Send(ctx context.Context, message string) error {
	if c.cfg.Token == "" {
		logger.Info("line notify not configured, logging message instead", slog.String("message", message))
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	form := url.Values{"message": {message}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build line request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send line notification: %w", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("line notify returned %d: %s", resp.StatusCode, string(b))
	}

	// the Notify API reports its own status field alongside HTTP 200
	var body struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(b, &body); err == nil && body.Status != 0 && body.Status != http.StatusOK {
		return fmt.Errorf("line notify status %d: %s", body.Status, body.Message)
	}

	return nil
}
