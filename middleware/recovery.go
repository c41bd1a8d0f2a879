package middleware

import (
	"net/http"

	"engagement-service/configs"
)

// RecoveryMiddleware turns handler panics into 500 responses instead of
// letting them kill the connection.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				configs.LogWithContext("http", "recover").WithFields(map[string]interface{}{
					"method": r.Method,
					"path":   r.URL.Path,
					"panic":  rec,
				}).Error("handler panicked")
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
