package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/helpers"
	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/cataleon/cataleon/app/services"
	"github.com/cataleon/cataleon/app/ws"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type InquiryHandler struct {
	inquiryRepo  repositories.InquiryRepositoryImpl
	profileRepo  repositories.VendorProfileRepositoryImpl
	shareService services.ShareLinkService
	mailer       *services.Mailer
	hub          *ws.Hub
	validator    *validator.Validate
	render       *render.Render
}

func NewInquiryHandler(i repositories.InquiryRepositoryImpl, p repositories.VendorProfileRepositoryImpl, s services.ShareLinkService, m *services.Mailer, hub *ws.Hub, r *render.Render) *InquiryHandler {
	return &InquiryHandler{
		inquiryRepo:  i,
		profileRepo:  p,
		shareService: s,
		mailer:       m,
		hub:          hub,
		validator:    validator.New(),
		render:       r,
	}
}

type InquiryForm struct {
	ProductID     string `json:"product_id"`
	CustomerName  string `json:"customer_name" validate:"required,max=100"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone" validate:"max=20"`
	Message       string `json:"message" validate:"max=2000"`
}

// Create accepts a purchase inquiry from a customer viewing a shared
// catalog. The share token in the URL scopes it to the vendor; no customer
// session exists.
func (h *InquiryHandler) Create(w http.ResponseWriter, req *http.Request) {
	token := mux.Vars(req)["token"]

	claims, err := h.shareService.Validate(token)
	if err != nil {
		respondError(h.render, w, http.StatusUnauthorized, "This share link is invalid or has expired.")
		return
	}

	var form InquiryForm
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

	inquiry := &models.Inquiry{
		VendorID:      claims.VendorID,
		ProductID:     form.ProductID,
		CustomerName:  form.CustomerName,
		CustomerEmail: form.CustomerEmail,
		CustomerPhone: form.CustomerPhone,
		Message:       form.Message,
		Status:        models.InquiryPending,
	}
	if err := h.inquiryRepo.Create(req.Context(), inquiry); err != nil {
		log.Printf("Create: failed to store inquiry for vendor %s: %v", claims.VendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to submit inquiry.")
		return
	}

	// Bump the vendor's dashboard counter.
	if count, err := h.inquiryRepo.CountPending(req.Context(), claims.VendorID); err == nil {
		h.hub.Broadcast(ws.Event{
			Type:     "inquiry.created",
			VendorID: claims.VendorID,
			Payload:  map[string]interface{}{"pending": count},
		})
	}

	respondOK(h.render, w, inquiry)
}

func (h *InquiryHandler) List(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	inquiries, err := h.inquiryRepo.GetByVendor(req.Context(), vendorID)
	if err != nil {
		log.Printf("List: failed to fetch inquiries for vendor %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch inquiries.")
		return
	}

	respondOK(h.render, w, inquiries)
}

type InquiryStatusForm struct {
	Status string `json:"status" validate:"required,oneof=pending contacted closed"`
}

// UpdateStatus moves an inquiry along pending → contacted → closed and
// notifies the customer by email when an address is on file. A mail failure
// degrades to a log line; the status change stands.
func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)
	id := mux.Vars(req)["id"]

	var form InquiryStatusForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Status must be pending, contacted or closed.")
		return
	}

	inquiry, err := h.inquiryRepo.GetByID(req.Context(), vendorID, id)
	if err != nil {
		log.Printf("UpdateStatus: failed to fetch inquiry %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to update inquiry.")
		return
	}
	if inquiry == nil {
		respondError(h.render, w, http.StatusNotFound, "Inquiry not found.")
		return
	}

	if err := h.inquiryRepo.UpdateStatus(req.Context(), vendorID, id, models.InquiryStatus(form.Status)); err != nil {
		log.Printf("UpdateStatus: failed to update inquiry %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to update inquiry.")
		return
	}

	if inquiry.CustomerEmail != "" {
		businessName := ""
		if profile, err := h.profileRepo.FindByUserID(req.Context(), vendorID); err == nil && profile != nil {
			businessName = profile.BusinessName
		}
		productName := ""
		if inquiry.Product != nil {
			productName = inquiry.Product.Name
		}
		body := services.BuildInquiryStatusEmailBody(businessName, inquiry.CustomerName, productName, models.InquiryStatus(form.Status))
		if err := h.mailer.SendHTMLEmail(inquiry.CustomerEmail, "Update on your inquiry", body); err != nil {
			log.Printf("UpdateStatus: customer email failed for inquiry %s: %v", id, err)
		}
	}

	respondOK(h.render, w, map[string]string{"id": id, "status": form.Status})
}

// SendPendingReminder emails the vendor a digest of their pending inquiries.
// Sits behind the per-IP email rate limiter.
func (h *InquiryHandler) SendPendingReminder(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)
	user := userFromContext(req)

	pending, err := h.inquiryRepo.GetPendingByVendor(req.Context(), vendorID)
	if err != nil {
		log.Printf("SendPendingReminder: failed to fetch pending inquiries for %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch pending inquiries.")
		return
	}
	if len(pending) == 0 {
		respondOK(h.render, w, map[string]interface{}{"sent": false, "pending": 0})
		return
	}

	businessName := ""
	if profile, err := h.profileRepo.FindByUserID(req.Context(), vendorID); err == nil && profile != nil {
		businessName = profile.BusinessName
	}

	body := services.BuildPendingRemindersEmailBody(businessName, pending)
	if err := h.mailer.SendHTMLEmail(user.Email, "You have pending inquiries", body); err != nil {
		log.Printf("SendPendingReminder: mail failed for %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusBadGateway, "Failed to send reminder email.")
		return
	}

	respondOK(h.render, w, map[string]interface{}{"sent": true, "pending": len(pending)})
}

// Notifications upgrades the request to a websocket subscription feeding the
// vendor's dashboard counters.
func (h *InquiryHandler) Notifications(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)
	h.hub.Subscribe(w, req, vendorID)
}
