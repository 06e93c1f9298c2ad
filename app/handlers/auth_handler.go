package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/helpers"
	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/cataleon/cataleon/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	userRepo    repositories.UserRepositoryImpl
	profileRepo repositories.VendorProfileRepositoryImpl
	store       sessions.SessionStore
	validator   *validator.Validate
	render      *render.Render
}

func NewAuthHandler(u repositories.UserRepositoryImpl, p repositories.VendorProfileRepositoryImpl, s sessions.SessionStore, r *render.Render) *AuthHandler {
	return &AuthHandler{
		userRepo:    u,
		profileRepo: p,
		store:       s,
		validator:   validator.New(),
		render:      r,
	}
}

type RegisterForm struct {
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"max=20"`
	Password     string `json:"password" validate:"required,min=8"`
	BusinessName string `json:"business_name" validate:"required,max=255"`
	Address      string `json:"address" validate:"max=500"`
	City         string `json:"city" validate:"max=100"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, req *http.Request) {
	var form RegisterForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"status": "error",
			"errors": helpers.FormatValidationErrors(validationErrors),
		})
		return
	}

	existing, err := h.userRepo.FindByEmail(req.Context(), form.Email)
	if err != nil {
		log.Printf("Register: failed to check email %s: %v", form.Email, err)
		respondError(h.render, w, http.StatusInternalServerError, "Registration failed.")
		return
	}
	if existing != nil {
		respondError(h.render, w, http.StatusConflict, "An account with this email already exists.")
		return
	}

	user := &models.User{
		ID:        uuid.New().String(),
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Password:  form.Password,
		Role:      models.RoleVendor,
	}
	if err := h.userRepo.Create(req.Context(), user); err != nil {
		log.Printf("Register: failed to create user %s: %v", form.Email, err)
		respondError(h.render, w, http.StatusInternalServerError, "Registration failed.")
		return
	}

	profile := &models.VendorProfile{
		UserID:       user.ID,
		BusinessName: form.BusinessName,
		Address:      form.Address,
		City:         form.City,
	}
	if err := h.profileRepo.Create(req.Context(), profile); err != nil {
		log.Printf("Register: failed to create vendor profile for %s: %v", user.ID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Registration failed.")
		return
	}

	if err := h.store.SetUserID(w, req, user.ID); err != nil {
		log.Printf("Register: failed to start session for %s: %v", user.ID, err)
	}

	respondOK(h.render, w, user)
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, req *http.Request) {
	var form LoginForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.validator.Struct(&form); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, err := h.userRepo.FindByEmail(req.Context(), form.Email)
	if err != nil {
		log.Printf("Login: failed to look up %s: %v", form.Email, err)
		respondError(h.render, w, http.StatusInternalServerError, "Sign-in failed.")
		return
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(form.Password)) {
		respondError(h.render, w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	if err := h.store.SetUserID(w, req, user.ID); err != nil {
		log.Printf("Login: failed to save session for %s: %v", user.ID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Sign-in failed.")
		return
	}

	respondOK(h.render, w, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, req *http.Request) {
	if err := h.store.ClearSession(w, req); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
	}
	respondOK(h.render, w, map[string]string{"message": "Signed out."})
}

type ChangePasswordForm struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, req *http.Request) {
	user := userFromContext(req)
	if user == nil {
		respondError(h.render, w, http.StatusUnauthorized, "You must be signed in.")
		return
	}

	var form ChangePasswordForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Current password and a new password of at least 8 characters are required.")
		return
	}

	if !helpers.PasswordCompare(user.Password, []byte(form.CurrentPassword)) {
		respondError(h.render, w, http.StatusUnauthorized, "Current password is incorrect.")
		return
	}

	hash := helpers.HashPassword(form.NewPassword)
	if hash == "" {
		respondError(h.render, w, http.StatusInternalServerError, "Failed to change password.")
		return
	}
	if err := h.userRepo.UpdatePassword(req.Context(), user.ID, hash); err != nil {
		log.Printf("ChangePassword: failed for user %s: %v", user.ID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to change password.")
		return
	}

	respondOK(h.render, w, map[string]string{"message": "Password updated."})
}

func (h *AuthHandler) Me(w http.ResponseWriter, req *http.Request) {
	user := userFromContext(req)
	if user == nil {
		respondError(h.render, w, http.StatusUnauthorized, "You must be signed in.")
		return
	}

	profile, err := h.profileRepo.FindByUserID(req.Context(), user.ID)
	if err != nil {
		log.Printf("Me: failed to load profile for %s: %v", user.ID, err)
	}
	user.Profile = profile

	respondOK(h.render, w, user)
}
