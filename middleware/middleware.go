package middleware

import "net/http"

type contextKey string

// AuthInfoKey is the request-context key under which validated researcher
// claims are stored.
const AuthInfoKey contextKey = "authInfo"

// RequestIDKey is the request-context key for the per-request id.
const RequestIDKey contextKey = "requestID"

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
