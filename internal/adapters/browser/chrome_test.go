package browser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahilbrid/nyaay-saathi/internal/platform/config"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/httpclient"
)

func testClient() *httpclient.Client {
	return httpclient.New(&config.ClientConfig{
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}, "chrome-devtools", nil, slog.New(slog.DiscardHandler))
}

func TestControlURL_Remote(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json/version":
			_, _ = w.Write([]byte(`{"Browser":"HeadlessChrome/120.0","webSocketDebuggerUrl":"ws://chrome:9222/devtools/browser/abc"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	c := New(config.BrowserConfig{RemoteURL: srv.URL + "/"}, testClient(), slog.New(slog.DiscardHandler))

	u, l, err := c.controlURL(context.Background())
	require.NoError(t, err)
	assert.Nil(t, l)
	assert.Equal(t, "ws://chrome:9222/devtools/browser/abc", u)
}

func TestControlURL_WebSocketUsedDirectly(t *testing.T) {
	t.Parallel()

	c := New(config.BrowserConfig{RemoteURL: "ws://chrome:9222/devtools/browser/xyz"}, nil, slog.New(slog.DiscardHandler))

	u, l, err := c.controlURL(context.Background())
	require.NoError(t, err)
	assert.Nil(t, l)
	assert.Equal(t, "ws://chrome:9222/devtools/browser/xyz", u)
}

func TestControlURL_RemoteErrors(t *testing.T) {
	t.Parallel()

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Browser":"HeadlessChrome/120.0"}`))
	}))
	t.Cleanup(empty.Close)

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(broken.Close)

	tests := []struct {
		name    string
		url     string
		client  *httpclient.Client
		wantErr string
	}{
		{"no debugger url", empty.URL, testClient(), ErrNoDebuggerURL.Error()},
		{"bad status", broken.URL, testClient(), "discovering browser"},
		{"no client", broken.URL, nil, "no http client configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New(config.BrowserConfig{RemoteURL: tt.url}, tt.client, slog.New(slog.DiscardHandler))
			_, _, err := c.controlURL(context.Background())
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestChrome_UnstartedLifecycle(t *testing.T) {
	t.Parallel()

	c := New(config.BrowserConfig{Headless: true}, nil, slog.New(slog.DiscardHandler))

	assert.Equal(t, "browser", c.Name())
	assert.NoError(t, c.HealthCheck(context.Background()))
	assert.NoError(t, c.Close())
}

func TestChrome_RemoteHealthUsesClient(t *testing.T) {
	t.Parallel()

	c := New(config.BrowserConfig{RemoteURL: "http://chrome:9222"}, testClient(), slog.New(slog.DiscardHandler))

	assert.NoError(t, c.HealthCheck(context.Background()))
}

func TestConnect_CanceledCallerDoesNotFailSharedLaunch(t *testing.T) {
	t.Parallel()

	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		select {
		case arrived <- struct{}{}:
		default:
		}
		<-release
		// Nothing listens on port 1, so connecting fails after discovery.
		_, _ = w.Write([]byte(`{"webSocketDebuggerUrl":"ws://127.0.0.1:1/devtools/browser/abc"}`))
	}))
	t.Cleanup(srv.Close)
	var once sync.Once
	unblock := func() { once.Do(func() { close(release) }) }
	t.Cleanup(unblock)

	c := New(config.BrowserConfig{RemoteURL: srv.URL}, testClient(), slog.New(slog.DiscardHandler))

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.connect(firstCtx)
		firstErr <- err
	}()
	<-arrived

	cancelFirst()
	select {
	case err := <-firstErr:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("canceled caller kept waiting for the launch")
	}

	// Discovery is still blocked, so this call joins the same launch.
	secondErr := make(chan error, 1)
	go func() {
		_, err := c.connect(context.Background())
		secondErr <- err
	}()
	time.Sleep(20 * time.Millisecond)
	unblock()

	select {
	case err := <-secondErr:
		require.Error(t, err)
		assert.False(t, errors.Is(err, context.Canceled), "got %v", err)
		assert.Contains(t, err.Error(), "connecting to browser")
	case <-time.After(5 * time.Second):
		t.Fatal("shared launch did not finish")
	}
}
