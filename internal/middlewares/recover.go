package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/user-profile-api/internal/models"
	"go.uber.org/zap"
)

// RecoverMiddleware returns a middleware that intercepts any panic from
// downstream handlers and answers with the uniform 500 error envelope.
// The message stays generic so internals never leak to clients.
func RecoverMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Errorw("panic recovered",
						"method", r.Method,
						"uri", r.RequestURI,
						"panic", rec,
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(models.NewErrorResponse(
						http.StatusInternalServerError,
						models.ErrLabelInternal,
						"An unexpected error occurred",
					))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
