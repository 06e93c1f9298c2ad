package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/cataleon/cataleon/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ExportHandler struct {
	productRepo repositories.ProductRepositoryImpl
	profileRepo repositories.VendorProfileRepositoryImpl
	exchange    services.ExchangeRateClient
	render      *render.Render
}

func NewExportHandler(p repositories.ProductRepositoryImpl, v repositories.VendorProfileRepositoryImpl, fx services.ExchangeRateClient, r *render.Render) *ExportHandler {
	return &ExportHandler{
		productRepo: p,
		profileRepo: v,
		exchange:    fx,
		render:      r,
	}
}

// CatalogPDF streams the vendor's filtered catalog as a PDF. The same query
// parameters accepted by the product list apply here, so the export matches
// whatever the vendor is currently looking at.
func (h *ExportHandler) CatalogPDF(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	profile, err := h.profileRepo.FindByUserID(req.Context(), vendorID)
	if err != nil || profile == nil {
		respondError(h.render, w, http.StatusInternalServerError, "Vendor profile is missing.")
		return
	}

	var products []models.Product
	if t := req.URL.Query().Get("type"); t != "" {
		products, err = h.productRepo.GetByVendorAndType(req.Context(), vendorID, models.ProductType(t))
	} else {
		products, err = h.productRepo.GetByVendor(req.Context(), vendorID)
	}
	if err != nil {
		log.Printf("CatalogPDF: failed to fetch products for vendor %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch products.")
		return
	}

	filtered := services.FilterProducts(products, filterStateFromQuery(req))

	pdfBytes, err := services.GenerateCatalogPDF(services.CatalogPDFConfig{
		Profile:      profile,
		GoldRate:     profile.GoldRate,
		USDToINRRate: h.exchange.USDToINR(req.Context()),
	}, filtered)
	if err != nil {
		log.Printf("CatalogPDF: failed to render catalog for vendor %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to render PDF.")
		return
	}

	filename := fmt.Sprintf("catalog-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, _ = w.Write(pdfBytes)
}

// ImportTemplate serves a pre-formatted XLSX workbook for bulk uploads of one
// product type.
func (h *ExportHandler) ImportTemplate(w http.ResponseWriter, req *http.Request) {
	productType, ok := templateTypeFromSlug(mux.Vars(req)["type"])
	if !ok {
		respondError(h.render, w, http.StatusBadRequest, "Unknown product type.")
		return
	}

	workbook, err := services.GenerateImportTemplate(productType)
	if err != nil {
		log.Printf("ImportTemplate: failed to build template for %s: %v", productType, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to build template.")
		return
	}

	filename := strings.ReplaceAll(strings.ToLower(string(productType)), " ", "-") + "-import-template.xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, _ = w.Write(workbook)
}

func templateTypeFromSlug(slug string) (models.ProductType, bool) {
	switch strings.ToLower(slug) {
	case "jewellery":
		return models.TypeJewellery, true
	case "loose-diamonds":
		return models.TypeLooseDiamonds, true
	case "gemstones":
		return models.TypeGemstones, true
	}
	return "", false
}
