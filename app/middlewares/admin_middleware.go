package middlewares

import (
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/helpers"
	"github.com/cataleon/cataleon/app/models"
	"github.com/unrolled/render"
)

// AdminAuthMiddleware runs behind AuthMiddleware and requires the admin role.
func AdminAuthMiddleware(r *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user, ok := req.Context().Value(helpers.ContextKeyUser).(*models.User)
			if !ok || user == nil {
				_ = r.JSON(w, http.StatusUnauthorized, map[string]string{
					"status":  "error",
					"message": "You must be signed in.",
				})
				return
			}

			if user.Role != models.RoleAdmin {
				log.Printf("AdminAuthMiddleware: user %s (%s) attempted to access admin endpoints without admin role", user.ID, user.Email)
				_ = r.JSON(w, http.StatusForbidden, map[string]string{
					"status":  "error",
					"message": "You do not have permission to access this resource.",
				})
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}
