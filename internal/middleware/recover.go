package middleware

import (
	"net/http"
	"runtime/debug"

	"pet-agenda/internal/platform/logger"
)

// Recover corta el panic, lo loguea con el request id y responde 500.
// El cliente nunca ve el detalle.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered", map[string]any{
						"request_id": GetRequestID(r.Context()),
						"method":     r.Method,
						"path":       r.URL.Path,
						"panic":      rec,
						"stack":      string(debug.Stack()),
					})
					http.Error(w, "internal error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
