package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/helpers"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type ProfileHandler struct {
	profileRepo repositories.VendorProfileRepositoryImpl
	userRepo    repositories.UserRepositoryImpl
	validator   *validator.Validate
	render      *render.Render
}

func NewProfileHandler(p repositories.VendorProfileRepositoryImpl, u repositories.UserRepositoryImpl, r *render.Render) *ProfileHandler {
	return &ProfileHandler{
		profileRepo: p,
		userRepo:    u,
		validator:   validator.New(),
		render:      r,
	}
}

type ProfileForm struct {
	BusinessName string `json:"business_name" validate:"required,max=255"`
	Address      string `json:"address" validate:"max=500"`
	City         string `json:"city" validate:"max=100"`
	GSTNumber    string `json:"gst_number" validate:"max=30"`
	LogoPath     string `json:"logo_path" validate:"max=255"`
	WhatsApp     string `json:"whatsapp" validate:"max=20"`
	FirstName    string `json:"first_name" validate:"max=100"`
	LastName     string `json:"last_name" validate:"max=100"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	profile, err := h.profileRepo.FindByUserID(req.Context(), vendorID)
	if err != nil {
		log.Printf("Get: failed to fetch profile for %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch profile.")
		return
	}
	if profile == nil {
		respondError(h.render, w, http.StatusNotFound, "Profile not found.")
		return
	}

	respondOK(h.render, w, profile)
}

// Update edits business identity fields only. Metal rates move exclusively
// through the rate endpoint so every change triggers a recalculation.
func (h *ProfileHandler) Update(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	var form ProfileForm
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

	profile, err := h.profileRepo.FindByUserID(req.Context(), vendorID)
	if err != nil || profile == nil {
		respondError(h.render, w, http.StatusNotFound, "Profile not found.")
		return
	}

	profile.BusinessName = form.BusinessName
	profile.Address = form.Address
	profile.City = form.City
	profile.GSTNumber = form.GSTNumber
	profile.LogoPath = form.LogoPath
	profile.WhatsApp = form.WhatsApp

	if err := h.profileRepo.Update(req.Context(), profile); err != nil {
		log.Printf("Update: failed to update profile for %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to update profile.")
		return
	}

	if form.FirstName != "" || form.LastName != "" {
		if user := userFromContext(req); user != nil {
			if form.FirstName != "" {
				user.FirstName = form.FirstName
			}
			if form.LastName != "" {
				user.LastName = form.LastName
			}
			if err := h.userRepo.Update(req.Context(), user); err != nil {
				log.Printf("Update: failed to update contact name for %s: %v", vendorID, err)
				respondError(h.render, w, http.StatusInternalServerError, "Failed to update profile.")
				return
			}
		}
	}

	respondOK(h.render, w, profile)
}
