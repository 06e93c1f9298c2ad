package handlers

import (
	"errors"
	"net/http"

	"github.com/cataleon/cataleon/app/helpers"
	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/services"
	"github.com/unrolled/render"
)

func respondError(r *render.Render, w http.ResponseWriter, status int, message string) {
	_ = r.JSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
	})
}

func respondOK(r *render.Render, w http.ResponseWriter, data interface{}) {
	_ = r.JSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   data,
	})
}

// respondServiceError maps service-layer failures onto the API's status
// codes.
func respondServiceError(r *render.Render, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		respondError(r, w, http.StatusUnauthorized, "You must be signed in.")
	case errors.Is(err, services.ErrInvalidInput):
		respondError(r, w, http.StatusBadRequest, err.Error())
	default:
		respondError(r, w, http.StatusInternalServerError, err.Error())
	}
}

func userIDFromContext(req *http.Request) string {
	userID, _ := req.Context().Value(helpers.ContextKeyUserID).(string)
	return userID
}

func userFromContext(req *http.Request) *models.User {
	user, _ := req.Context().Value(helpers.ContextKeyUser).(*models.User)
	return user
}
