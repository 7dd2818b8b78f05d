package collector

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"newsfreq/internal/config"
)

func fastRetryPolicy(attempts int) *config.RetryPolicy {
	return &config.RetryPolicy{
		MaxAttempts:       attempts,
		InitialDelayMs:    1,
		MaxDelayMs:        5,
		BackoffMultiplier: 2.0,
		TimeoutSec:        5,
	}
}

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header should be set")
		}

		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	c := NewClientWithConfig(fastRetryPolicy(3))

	body, err := c.Fetch(srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if body != "<html>ok</html>" {
		t.Errorf("Fetch body = %q", body)
	}
}

func TestClient_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	c := NewClientWithConfig(fastRetryPolicy(3))

	body, err := c.Fetch(srv.URL)
	if err != nil {
		t.Fatalf("Fetch should succeed on third attempt: %v", err)
	}

	if body != "recovered" {
		t.Errorf("Fetch body = %q", body)
	}

	if calls.Load() != 3 {
		t.Errorf("Expected 3 attempts, got %d", calls.Load())
	}
}

func TestClient_ExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClientWithConfig(fastRetryPolicy(2))

	_, _, _, err := c.FetchWithMetrics(srv.URL)
	if !errors.Is(err, ErrUnexpectedStatusCode) {
		t.Errorf("Expected ErrUnexpectedStatusCode, got %v", err)
	}
}

func TestForSource(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Pipeline.Feeds = []config.FeedConfig{{Name: "myfeed", URL: "https://example.com/rss"}}

	client := NewClient()

	for _, name := range []string{SourceHackerNews, SourceBBC, SourceG1, SourceFolha, "myfeed"} {
		if _, err := ForSource(name, client, cfg); err != nil {
			t.Errorf("ForSource(%s) failed: %v", name, err)
		}
	}

	if _, err := ForSource("unknown", client, cfg); !errors.Is(err, ErrUnknownSource) {
		t.Errorf("ForSource(unknown) error = %v, want ErrUnknownSource", err)
	}
}
