package seed

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"sales_analytics/internal/config"
	"sales_analytics/internal/domain/repository"
	"sales_analytics/internal/infrastructure/persistence/file"
	"sales_analytics/pkg/logger"
)

// Client fetches seed records from an HTTP endpoint serving a JSON array of orders.
// Network errors and 5xx responses are retried with linear backoff.
type Client struct {
	httpClient *http.Client
	cfg        config.SeedHTTPConfig
	log        logger.Logger
}

var _ repository.SeedSource = (*Client)(nil)

func NewClient(cfg config.SeedHTTPConfig, log logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryMaxAttempts < 0 {
		cfg.RetryMaxAttempts = 0
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = time.Second
	}

	return &Client{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
			},
		},
	}
}

func (c *Client) Name() string {
	return c.cfg.URL
}

func (c *Client) Records(ctx context.Context) ([]map[string]any, error) {
	var lastErr error

	for attempt := 0; attempt <= c.cfg.RetryMaxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * c.cfg.RetryBackoff
			c.log.Warn("retrying seed fetch",
				logger.String("url", c.cfg.URL),
				logger.Int("attempt", attempt),
				logger.Duration("backoff", backoff),
				logger.Error(lastErr),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		body, retry, err := c.fetch(ctx)
		if err == nil {
			records, err := file.DecodeRecords(body)
			if err != nil {
				return nil, fmt.Errorf("decode seed response: %w", err)
			}
			return records, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("seed fetch failed after %d attempts: %w", c.cfg.RetryMaxAttempts+1, lastErr)
}

// fetch performs a single GET. The bool result reports whether the failure is worth retrying.
func (c *Client) fetch(ctx context.Context) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("call seed endpoint: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, false, &repository.NotFoundError{Source: c.cfg.URL, Err: fmt.Errorf("http status %d", resp.StatusCode)}
	case resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("seed endpoint status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("seed endpoint status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read response body: %w", err)
	}
	return body, false, nil
}
