package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sahilbrid/nyaay-saathi/internal/adapters/http/dto"
	"github.com/sahilbrid/nyaay-saathi/internal/domain"
	"github.com/sahilbrid/nyaay-saathi/internal/platform/logging"
)

// HeaderSessionID carries the document session across requests.
const HeaderSessionID = "X-Session-ID"

type sessionIDKey struct{}

// WithSessionID returns a new context carrying the session ID.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the session ID of the request, or "".
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Session returns middleware that reads X-Session-ID, rejects values that
// are not UUIDs with a 400 problem response, and stores the canonical form
// in the request context. The context logger gains a session_id attribute
// and the ID is echoed in the response. Requests without the header pass
// through; services report the missing ID where one is required.
//
// Register after Logging so the enriched logger replaces the request logger.
func Session() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderSessionID)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				dto.WriteErrorResponse(w, r, domain.NewValidationError(map[string]string{
					"session_id": "must be a UUID",
				}))
				return
			}

			sid := id.String()
			ctx := WithSessionID(r.Context(), sid)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(slog.String("session_id", sid)))

			w.Header().Set(HeaderSessionID, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
