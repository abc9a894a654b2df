package middleware

import (
	"net/http"
	"time"

	"github.com/auditra/auditra/infrastructure/service/logger"
)

// RequestLogging logs method, path, remote address and duration for
// every request.
func RequestLogging(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Info(r.Context(), "request handled", map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
				"duration":    time.Since(start).String(),
			})
		})
	}
}

// Recovery turns handler panics into 500 responses instead of
// dropping the connection.
func Recovery(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error(r.Context(), "panic recovered", nil, map[string]interface{}{
						"panic": err,
						"path":  r.URL.Path,
					})
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
