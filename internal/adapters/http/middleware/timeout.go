package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/dto"
)

// Timeout bounds each request to d. The handler sees the deadline on its
// context; if it has not returned when the deadline passes the client gets a
// 504 problem response and anything the handler writes afterwards is
// discarded. A non-positive d disables the limit.
//
// Exports can take several seconds while Chrome prints, so d should sit
// above the browser's own print timeout.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header), status: http.StatusOK}
			finished := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
				close(finished)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-finished:
				buf.copyTo(w)
			case <-ctx.Done():
				buf.expire()
				dto.WriteErrorResponse(w, r, context.DeadlineExceeded)
			}
		})
	}
}

// bufferedResponse holds a handler's response until it is known whether the
// handler finished in time.
type bufferedResponse struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	wrote   bool
	expired bool
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.wrote || b.expired {
		return
	}
	b.status = code
	b.wrote = true
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	b.wrote = true
	return b.body.Write(p)
}

func (b *bufferedResponse) expire() {
	b.mu.Lock()
	b.expired = true
	b.mu.Unlock()
}

func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maps.Copy(w.Header(), b.header)
	w.WriteHeader(b.status)
	_, _ = w.Write(b.body.Bytes())
}
