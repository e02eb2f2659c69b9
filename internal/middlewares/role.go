package middlewares

import (
	"fmt"
	"net/http"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/models"
)

// RequireRole rejects requests whose verified identity does not carry
// the given role. Must be chained after AuthMiddleware.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				writeError(w, http.StatusUnauthorized, "Access token required")
				return
			}
			if claims.Role != role {
				logger.Log.Errorw("role denied", "have", claims.Role, "want", role, "user_id", claims.UserID)
				writeError(w, http.StatusForbidden, fmt.Sprintf("Access denied. %s role required.", role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
