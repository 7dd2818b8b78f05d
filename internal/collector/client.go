package collector

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"newsfreq/internal/config"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// userAgent avoids the bot blocking several news sites apply to default
// Go client strings.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Client fetches pages with config-driven retry logic.
type Client struct {
	client      *http.Client
	retryPolicy *config.RetryPolicy
}

// NewClient creates a client with the default retry policy.
func NewClient() *Client {
	return NewClientWithConfig(&config.RetryPolicy{
		MaxAttempts:       3,
		InitialDelayMs:    1000,
		MaxDelayMs:        30000,
		BackoffMultiplier: 2.0,
		TimeoutSec:        10,
	})
}

// NewClientWithConfig creates a client with a custom retry policy.
func NewClientWithConfig(retryPolicy *config.RetryPolicy) *Client {
	return &Client{
		client: &http.Client{
			Timeout: retryPolicy.GetTimeout(),
		},
		retryPolicy: retryPolicy,
	}
}

// FetchWithMetrics returns (body, statusCode, totalDuration, error).
func (c *Client) FetchWithMetrics(url string) (string, int, time.Duration, error) {
	var lastErr error

	var lastStatusCode int

	totalDuration := time.Duration(0)

	for attempt := 1; attempt <= c.retryPolicy.MaxAttempts; attempt++ {
		if delay := c.retryPolicy.GetRetryDelay(attempt); delay > 0 {
			time.Sleep(delay)
		}

		startTime := time.Now()

		req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
		if err != nil {
			lastErr = fmt.Errorf("failed to create request: %w", err)

			continue
		}

		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

		resp, err := c.client.Do(req)
		totalDuration += time.Since(startTime)

		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)

			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastStatusCode = resp.StatusCode
			lastErr = fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
			resp.Body.Close()

			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()

		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)

			continue
		}

		return string(body), resp.StatusCode, totalDuration, nil
	}

	return "", lastStatusCode, totalDuration, fmt.Errorf("all %d attempts failed: %w", c.retryPolicy.MaxAttempts, lastErr)
}

// Fetch returns the page body for a URL, retrying per the policy.
func (c *Client) Fetch(url string) (string, error) {
	body, _, _, err := c.FetchWithMetrics(url)

	return body, err
}
