package clients

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/logodir/internal/adapters/http/middleware"
	"github.com/jsamuelsen/logodir/internal/platform/config"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:     baseURL,
		ServiceName: "cdn",
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      2,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	}
}

func newTestClient(t *testing.T, baseURL string, mutate ...func(*Config)) *Client {
	t.Helper()

	cfg := testConfig(baseURL)
	for _, fn := range mutate {
		fn(&cfg)
	}

	client, err := New(cfg)
	require.NoError(t, err)

	return client
}

func TestNew_RequiresServiceName(t *testing.T) {
	cfg := testConfig("https://cdn.example.com")
	cfg.ServiceName = ""

	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service name is required")
}

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/logos.json", r.URL.Path)
		assert.Equal(t, "logodir-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/", func(c *Config) { c.UserAgent = "logodir-test" })

	body, err := client.Fetch(context.Background(), "data/logos.json")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(body))
}

func TestClient_Fetch_HeaderPropagation(t *testing.T) {
	var requestID, correlationID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(middleware.HeaderRequestID)
		correlationID = r.Header.Get(middleware.HeaderCorrelationID)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx := middleware.ContextWithRequestID(context.Background(), "req-1")
	ctx = middleware.ContextWithCorrelationID(ctx, "corr-1")

	_, err := client.Fetch(ctx, "/x")
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "corr-1", correlationID)
}

func TestClient_Fetch_StatusHandling(t *testing.T) {
	tests := []struct {
		name         string
		statuses     []int
		wantAttempts int32
		wantStatus   int
		wantRetryErr bool
	}{
		{name: "recovers after server errors", statuses: []int{500, 502, 200}, wantAttempts: 3},
		{name: "not found is not retried", statuses: []int{404}, wantAttempts: 1, wantStatus: 404},
		{name: "gives up after max attempts", statuses: []int{503, 503, 503}, wantAttempts: 3, wantRetryErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				n := attempts.Add(1)
				w.WriteHeader(tt.statuses[n-1])
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)

			_, err := client.Fetch(context.Background(), "/logo.svg")
			assert.Equal(t, tt.wantAttempts, attempts.Load())

			switch {
			case tt.wantStatus != 0:
				var statusErr *StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.wantStatus, statusErr.StatusCode)
			case tt.wantRetryErr:
				assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_CircuitOpensAfterFailures(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, func(c *Config) {
		c.Retry.MaxAttempts = 1
		c.Circuit.MaxFailures = 2
	})

	for range 2 {
		_, err := client.Fetch(context.Background(), "/x")
		require.Error(t, err)
	}

	assert.Equal(t, StateOpen, client.CircuitState())

	_, err := client.Fetch(context.Background(), "/x")
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestClient_Fetch_CancelledContextDoesNotTripBreaker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, func(c *Config) {
		c.Circuit.MaxFailures = 1
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Fetch(ctx, "/slow")
	require.Error(t, err)
	assert.Equal(t, StateClosed, client.CircuitState())
}

func TestClient_URL(t *testing.T) {
	client := newTestClient(t, "https://cdn.example.com/gh/repo@main/")

	assert.Equal(t, "https://cdn.example.com/gh/repo@main/public/logos", client.URL("public/logos"))
	assert.Equal(t, "https://cdn.example.com/gh/repo@main/a", client.URL("/a"))
	assert.Equal(t, "https://other.example.com/b", client.URL("https://other.example.com/b"))
}

func TestClient_Backoff(t *testing.T) {
	client := newTestClient(t, "", func(c *Config) {
		c.Retry = config.RetryConfig{
			MaxAttempts:     5,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     time.Second,
			Multiplier:      2,
			JitterFactor:    0.25,
		}
	})

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 200 * time.Millisecond},
		{attempt: 2, base: 400 * time.Millisecond},
		{attempt: 5, base: time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt %d", tt.attempt), func(t *testing.T) {
			got := client.backoff(tt.attempt)
			assert.GreaterOrEqual(t, got, time.Duration(float64(tt.base)*0.75))
			assert.LessOrEqual(t, got, time.Duration(float64(tt.base)*1.25))
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "cancelled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "connection refused", err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, want: true},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
