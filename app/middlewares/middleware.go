package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/helpers"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/cataleon/cataleon/app/utils/sessions"
	"github.com/unrolled/render"
)

// AuthMiddleware resolves the session user once per request and stores the
// user ID and object in the request context; every downstream service takes
// the caller ID explicitly from there, never from ambient session state.
func AuthMiddleware(store sessions.SessionStore, userRepo repositories.UserRepositoryImpl, r *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			userID := store.GetUserID(req)
			if userID == "" {
				_ = r.JSON(w, http.StatusUnauthorized, map[string]string{
					"status":  "error",
					"message": "You must be signed in.",
				})
				return
			}

			user, err := userRepo.FindByID(req.Context(), userID)
			if err != nil || user == nil {
				log.Printf("AuthMiddleware: error finding user %s: %v", userID, err)
				_ = r.JSON(w, http.StatusUnauthorized, map[string]string{
					"status":  "error",
					"message": "Session is no longer valid. Please sign in again.",
				})
				return
			}

			ctx := context.WithValue(req.Context(), helpers.ContextKeyUserID, user.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
