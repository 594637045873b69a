package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/dto"
)

var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and a 500 problem
// response. Nothing about the panic reaches the client. When the handler had
// already started its response only the log line is written.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "handler panicked",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("stack", string(debug.Stack())),
				)
				if !sr.wrote {
					dto.WriteErrorResponse(sr, r, errPanic)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
