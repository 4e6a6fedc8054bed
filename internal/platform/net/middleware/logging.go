package middleware

import (
	"net/http"

	"storyweaver/internal/platform/logger"
	pnet "storyweaver/internal/platform/net"
)

// RequestLogger copies the chi request id onto the logger context so
// logger.C(ctx) emits request_id on every line
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
