package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/helpers"
	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type RewardHandler struct {
	rewardRepo repositories.RewardRepositoryImpl
	validator  *validator.Validate
	render     *render.Render
}

func NewRewardHandler(repo repositories.RewardRepositoryImpl, r *render.Render) *RewardHandler {
	return &RewardHandler{
		rewardRepo: repo,
		validator:  validator.New(),
		render:     r,
	}
}

type RewardForm struct {
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	Points        int    `json:"points" validate:"required"`
	Reason        string `json:"reason" validate:"max=255"`
}

// Create appends a ledger entry. Negative points are redemptions; a redemption
// larger than the current balance is rejected.
func (h *RewardHandler) Create(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	var form RewardForm
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

	if form.Points < 0 {
		balance, err := h.rewardRepo.CustomerBalance(req.Context(), vendorID, form.CustomerEmail)
		if err != nil {
			log.Printf("Create: failed to fetch balance for %s: %v", form.CustomerEmail, err)
			respondError(h.render, w, http.StatusInternalServerError, "Failed to store reward entry.")
			return
		}
		if balance+int64(form.Points) < 0 {
			respondError(h.render, w, http.StatusBadRequest, "Redemption exceeds the customer's balance.")
			return
		}
	}

	reward := &models.Reward{
		VendorID:      vendorID,
		CustomerEmail: form.CustomerEmail,
		Points:        form.Points,
		Reason:        form.Reason,
	}
	if err := h.rewardRepo.Create(req.Context(), reward); err != nil {
		log.Printf("Create: failed to store reward entry for %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to store reward entry.")
		return
	}

	respondOK(h.render, w, reward)
}

func (h *RewardHandler) List(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	rewards, err := h.rewardRepo.GetByVendor(req.Context(), vendorID)
	if err != nil {
		log.Printf("List: failed to fetch rewards for %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch rewards.")
		return
	}

	respondOK(h.render, w, rewards)
}

func (h *RewardHandler) Balance(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)
	customerEmail := req.URL.Query().Get("customer_email")
	if customerEmail == "" {
		respondError(h.render, w, http.StatusBadRequest, "customer_email is required.")
		return
	}

	balance, err := h.rewardRepo.CustomerBalance(req.Context(), vendorID, customerEmail)
	if err != nil {
		log.Printf("Balance: failed to fetch balance for %s: %v", customerEmail, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch balance.")
		return
	}

	respondOK(h.render, w, map[string]interface{}{
		"customer_email": customerEmail,
		"balance":        balance,
	})
}
