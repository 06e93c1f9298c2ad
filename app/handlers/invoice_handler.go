package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/helpers"
	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/cataleon/cataleon/app/services"
	"github.com/cataleon/cataleon/app/utils/calc"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type InvoiceHandler struct {
	invoiceRepo repositories.InvoiceRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	profileRepo repositories.VendorProfileRepositoryImpl
	validator   *validator.Validate
	render      *render.Render
}

func NewInvoiceHandler(i repositories.InvoiceRepositoryImpl, p repositories.ProductRepositoryImpl, v repositories.VendorProfileRepositoryImpl, r *render.Render) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceRepo: i,
		productRepo: p,
		profileRepo: v,
		validator:   validator.New(),
		render:      r,
	}
}

type InvoiceItemForm struct {
	ProductID   string          `json:"product_id"`
	Description string          `json:"description" validate:"max=255"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type InvoiceForm struct {
	Kind          string            `json:"kind" validate:"omitempty,oneof=invoice estimate"`
	CustomerName  string            `json:"customer_name" validate:"required,max=100"`
	CustomerEmail string            `json:"customer_email" validate:"omitempty,email"`
	TaxPercent    decimal.Decimal   `json:"tax_percent"`
	Items         []InvoiceItemForm `json:"items" validate:"required,min=1"`
}

// Create builds an invoice or manufacturing estimate. Items referencing a
// product are priced from its stored retail price; free-form items use the
// supplied unit price.
func (h *InvoiceHandler) Create(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	var form InvoiceForm
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

	kind := models.InvoiceKind(form.Kind)
	if kind == "" {
		kind = models.KindInvoice
	}

	subtotal := decimal.Zero
	items := make([]models.InvoiceItem, 0, len(form.Items))
	for _, itemForm := range form.Items {
		quantity := itemForm.Quantity
		if quantity < 1 {
			quantity = 1
		}

		description := itemForm.Description
		unitPrice := itemForm.UnitPrice

		if itemForm.ProductID != "" {
			product, err := h.productRepo.GetByID(req.Context(), vendorID, itemForm.ProductID)
			if err != nil {
				log.Printf("Create: failed to fetch product %s: %v", itemForm.ProductID, err)
				respondError(h.render, w, http.StatusInternalServerError, "Failed to build invoice.")
				return
			}
			if product == nil {
				respondError(h.render, w, http.StatusBadRequest, fmt.Sprintf("Product %s not found.", itemForm.ProductID))
				return
			}
			unitPrice = product.RetailPrice
			if description == "" {
				description = product.Name
			}
		}

		if unitPrice.IsNegative() || description == "" {
			respondError(h.render, w, http.StatusBadRequest, "Each item needs a description and a non-negative price.")
			return
		}

		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
		subtotal = subtotal.Add(lineTotal)

		items = append(items, models.InvoiceItem{
			ProductID:   itemForm.ProductID,
			Description: description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			LineTotal:   lineTotal,
		})
	}

	taxAmount := calc.CalculateTax(subtotal, form.TaxPercent)

	invoice := &models.Invoice{
		VendorID:      vendorID,
		Kind:          kind,
		CustomerName:  form.CustomerName,
		CustomerEmail: form.CustomerEmail,
		Subtotal:      subtotal.Round(2),
		TaxPercent:    form.TaxPercent,
		TaxAmount:     taxAmount,
		GrandTotal:    calc.CalculateGrandTotal(subtotal, taxAmount),
		Items:         items,
	}

	if kind == models.KindInvoice {
		number, err := h.invoiceRepo.NextNumber(req.Context(), vendorID)
		if err != nil {
			log.Printf("Create: failed to issue invoice number for %s: %v", vendorID, err)
			respondError(h.render, w, http.StatusInternalServerError, "Failed to build invoice.")
			return
		}
		invoice.Number = number
	}

	if err := h.invoiceRepo.Create(req.Context(), invoice); err != nil {
		log.Printf("Create: failed to store invoice for %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to store invoice.")
		return
	}

	respondOK(h.render, w, invoice)
}

func (h *InvoiceHandler) List(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	invoices, err := h.invoiceRepo.GetByVendor(req.Context(), vendorID)
	if err != nil {
		log.Printf("List: failed to fetch invoices for %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch invoices.")
		return
	}

	respondOK(h.render, w, invoices)
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)
	id := mux.Vars(req)["id"]

	invoice, err := h.invoiceRepo.GetByID(req.Context(), vendorID, id)
	if err != nil {
		log.Printf("Get: failed to fetch invoice %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch invoice.")
		return
	}
	if invoice == nil {
		respondError(h.render, w, http.StatusNotFound, "Invoice not found.")
		return
	}

	respondOK(h.render, w, invoice)
}

func (h *InvoiceHandler) DownloadPDF(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)
	id := mux.Vars(req)["id"]

	invoice, err := h.invoiceRepo.GetByID(req.Context(), vendorID, id)
	if err != nil || invoice == nil {
		respondError(h.render, w, http.StatusNotFound, "Invoice not found.")
		return
	}

	profile, err := h.profileRepo.FindByUserID(req.Context(), vendorID)
	if err != nil || profile == nil {
		respondError(h.render, w, http.StatusInternalServerError, "Vendor profile is missing.")
		return
	}

	pdfBytes, err := services.GenerateInvoicePDF(profile, invoice)
	if err != nil {
		log.Printf("DownloadPDF: failed to render invoice %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to render PDF.")
		return
	}

	filename := invoice.Number
	if filename == "" {
		filename = "estimate-" + invoice.ID[:8]
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, filename))
	_, _ = w.Write(pdfBytes)
}
