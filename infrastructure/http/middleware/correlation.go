package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/auditra/auditra/infrastructure/service/logger"
)

const CorrelationIDHeader = "X-Correlation-ID"

// CorrelationIDMiddleware ensures every request/response carries a correlation ID
func CorrelationIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cid := r.Header.Get(CorrelationIDHeader)
		if cid == "" {
			cid = uuid.New().String()
		}
		w.Header().Set(CorrelationIDHeader, cid)

		ctx := context.WithValue(r.Context(), logger.CorrelationIDKey, cid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
