package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/cataleon/cataleon/app/services"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ShareHandler struct {
	shareService services.ShareLinkService
	productRepo  repositories.ProductRepositoryImpl
	profileRepo  repositories.VendorProfileRepositoryImpl
	publicBase   string
	render       *render.Render
}

func NewShareHandler(s services.ShareLinkService, p repositories.ProductRepositoryImpl, v repositories.VendorProfileRepositoryImpl, publicBase string, r *render.Render) *ShareHandler {
	return &ShareHandler{
		shareService: s,
		productRepo:  p,
		profileRepo:  v,
		publicBase:   publicBase,
		render:       r,
	}
}

type ShareLinkForm struct {
	ProductType     string          `json:"product_type"`
	AdjustPercent   decimal.Decimal `json:"adjust_percent"`
	AdjustDirection string          `json:"adjust_direction"`
	TTLDays         int             `json:"ttl_days"`
}

// CreateShareLink issues a signed customer-facing catalog URL with the
// requested price adjustment baked into the token.
func (h *ShareHandler) CreateShareLink(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	var form ShareLinkForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	ttl := time.Duration(form.TTLDays) * 24 * time.Hour
	token, err := h.shareService.Issue(vendorID, models.ProductType(form.ProductType), form.AdjustPercent, form.AdjustDirection, ttl)
	if err != nil {
		respondServiceError(h.render, w, err)
		return
	}

	respondOK(h.render, w, map[string]string{
		"token": token,
		"url":   h.publicBase + "/share/" + token,
	})
}

// ViewShared serves the customer-facing, price-adjusted catalog subset for a
// valid share token. No session is required; the token scopes everything.
func (h *ShareHandler) ViewShared(w http.ResponseWriter, req *http.Request) {
	token := mux.Vars(req)["token"]

	claims, err := h.shareService.Validate(token)
	if err != nil {
		respondError(h.render, w, http.StatusUnauthorized, "This share link is invalid or has expired.")
		return
	}

	var products []models.Product
	if claims.ProductType != "" {
		products, err = h.productRepo.GetByVendorAndType(req.Context(), claims.VendorID, models.ProductType(claims.ProductType))
	} else {
		products, err = h.productRepo.GetByVendor(req.Context(), claims.VendorID)
	}
	if err != nil {
		log.Printf("ViewShared: failed to fetch catalog for vendor %s: %v", claims.VendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to load the shared catalog.")
		return
	}

	adjusted := h.shareService.ApplyAdjustment(products, claims)
	filtered := services.FilterProducts(adjusted, filterStateFromQuery(req))

	profile, err := h.profileRepo.FindByUserID(req.Context(), claims.VendorID)
	if err != nil {
		log.Printf("ViewShared: failed to load profile for vendor %s: %v", claims.VendorID, err)
	}

	payload := map[string]interface{}{
		"products": filtered,
		"total":    len(filtered),
	}
	if profile != nil {
		payload["vendor"] = map[string]string{
			"business_name": profile.BusinessName,
			"city":          profile.City,
			"logo_path":     profile.LogoPath,
			"whatsapp":      profile.WhatsApp,
		}
	}

	respondOK(h.render, w, payload)
}
