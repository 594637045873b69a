package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/sahilbrid/nyaay-saathi/internal/platform/config"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/logging"
)

// jitter spreads each delay by up to a quarter in either direction.
const jitter = 0.25

type retryPolicy struct {
	attempts   int
	initial    time.Duration
	max        time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		max:        cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// do sends req up to p.attempts times. The body is buffered once so every
// attempt sends the same bytes.
func (p retryPolicy) do(ctx context.Context, c *Client, req *http.Request) (*http.Response, error) {
	body, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		switch {
		case err != nil:
			if !transient(err) {
				return nil, err
			}
			lastErr = err
		case !retryableStatus(resp.StatusCode):
			return resp, nil
		default:
			lastErr = &StatusError{Peer: c.peer, Code: resp.StatusCode}
			if attempt == p.attempts {
				return resp, lastErr
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		if attempt == p.attempts {
			return nil, lastErr
		}

		delay := p.delay(attempt)
		logging.FromContext(ctx).WarnContext(ctx, "retrying request",
			slog.String("peer", c.peer),
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", p.attempts),
			slog.Duration("backoff", delay),
			slog.Any("error", lastErr),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// delay returns the wait before retry number n (1 for the first retry):
// initial * multiplier^(n-1), capped at max, then jittered.
func (p retryPolicy) delay(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	if p.max > 0 {
		d = math.Min(d, float64(p.max))
	}
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(math.Max(d, 0))
}

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("buffering request body: %w", err)
	}
	return b, nil
}

// transient reports whether a transport error is worth another attempt.
// Cancellation by the caller never is.
func transient(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
