// Package middleware holds the inbound HTTP middleware of the document API.
// The server registers them outermost first:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Session, Timeout
package middleware

import "net/http"

// Chain composes middleware so that the first argument wraps all the others.
func Chain(mws ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}

// statusRecorder remembers the status and size of a response so middleware
// can report on it after the handler returns.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
	wrote  bool
}

func record(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.wrote {
		return
	}
	sr.status = code
	sr.wrote = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.wrote = true
	n, err := sr.ResponseWriter.Write(b)
	sr.size += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
