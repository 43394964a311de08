package server

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// requireAuth gates every route behind static basic-auth credentials.
// With no users configured the gate is a no-op (development mode).
func (s *Server) requireAuth(next http.Handler) http.Handler {
	if len(s.users) == 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		expected, known := s.users[user]
		if !ok || !known || subtle.ConstantTimeCompare([]byte(pass), []byte(expected)) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="quotebalance"`)
			http.Error(w, "Unauthorised", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// logRequests tags each request with an id and records its outcome.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		s.info("request",
			"id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
