package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type RateHandler struct {
	rateService services.RateService
	validator   *validator.Validate
	render      *render.Render
}

func NewRateHandler(s services.RateService, r *render.Render) *RateHandler {
	return &RateHandler{
		rateService: s,
		validator:   validator.New(),
		render:      r,
	}
}

type RateUpdateForm struct {
	Metal string          `json:"metal" validate:"required,oneof=gold silver platinum"`
	Rate  decimal.Decimal `json:"rate" validate:"required"`
}

// UpdateRate persists a new daily metal rate and cascades the recalculation
// across the vendor's catalog. A partial batch failure still reports which
// products were repriced; applied updates are not undone.
func (h *RateHandler) UpdateRate(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	var form RateUpdateForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Metal must be gold, silver or platinum and a rate is required.")
		return
	}

	result, err := h.rateService.UpdateRate(req.Context(), vendorID, form.Metal, form.Rate)
	if err != nil && result == nil {
		respondServiceError(h.render, w, err)
		return
	}

	payload := map[string]interface{}{
		"metal":        result.Metal,
		"rate":         result.NewRate,
		"recalculated": result.Recalculated,
		"products":     result.Products,
	}

	if err != nil {
		// Some product updates failed; the ones that committed stay applied.
		log.Printf("UpdateRate: partial failure for vendor %s: %v", vendorID, err)
		failed := make([]map[string]string, 0)
		for _, item := range result.Outcome.Failed() {
			failed = append(failed, map[string]string{"id": item.ID, "error": item.Err.Error()})
		}
		_ = h.render.JSON(w, http.StatusMultiStatus, map[string]interface{}{
			"status":  "partial",
			"message": err.Error(),
			"data":    payload,
			"failed":  failed,
		})
		return
	}

	respondOK(h.render, w, payload)
}
