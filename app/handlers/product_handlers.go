package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/helpers"
	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/cataleon/cataleon/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	productRepo repositories.ProductRepositoryImpl
	profileRepo repositories.VendorProfileRepositoryImpl
	validator   *validator.Validate
	render      *render.Render
}

func NewProductHandler(p repositories.ProductRepositoryImpl, v repositories.VendorProfileRepositoryImpl, r *render.Render) *ProductHandler {
	return &ProductHandler{
		productRepo: p,
		profileRepo: v,
		validator:   validator.New(),
		render:      r,
	}
}

type ProductForm struct {
	Name        string `json:"name" validate:"required,max=255"`
	Sku         string `json:"sku" validate:"max=100"`
	Description string `json:"description"`
	ProductType string `json:"product_type" validate:"required,oneof=Jewellery 'Loose Diamonds' Gemstones"`
	MetalType   string `json:"metal_type" validate:"max=50"`

	GrossWeight decimal.Decimal `json:"gross_weight"`
	NetWeight   decimal.Decimal `json:"net_weight"`
	Purity      decimal.Decimal `json:"purity"`
	PurityUnit  string          `json:"purity_unit" validate:"omitempty,oneof=fraction karat percent"`

	StoneWeight1   decimal.Decimal `json:"stone_weight_1"`
	StoneWeight2   decimal.Decimal `json:"stone_weight_2"`
	DiamondWeight  decimal.Decimal `json:"diamond_weight"`
	DiamondValue   decimal.Decimal `json:"diamond_value"`
	DiamondColor   string          `json:"diamond_color" validate:"max=20"`
	DiamondClarity string          `json:"diamond_clarity" validate:"max=20"`

	MakingCharge      decimal.Decimal `json:"making_charge"`
	CertificationCost decimal.Decimal `json:"certification_cost"`
	GemstoneCost      decimal.Decimal `json:"gemstone_cost"`

	Stock        int    `json:"stock"`
	DeliveryType string `json:"delivery_type" validate:"max=50"`
	ImagePath    string `json:"image_path" validate:"max=255"`
}

// List fetches the vendor's active catalog and runs it through the in-memory
// filter engine built from the query string.
func (h *ProductHandler) List(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	var (
		products []models.Product
		err      error
	)
	if t := req.URL.Query().Get("type"); t != "" {
		products, err = h.productRepo.GetByVendorAndType(req.Context(), vendorID, models.ProductType(t))
	} else {
		products, err = h.productRepo.GetByVendor(req.Context(), vendorID)
	}
	if err != nil {
		log.Printf("List: failed to fetch products for vendor %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch products.")
		return
	}

	filtered := services.FilterProducts(products, filterStateFromQuery(req))

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   filtered,
		"total":  len(filtered),
	})
}

// filterStateFromQuery rebuilds the ephemeral filter record from the query
// string; omitting a parameter leaves its predicate inactive.
func filterStateFromQuery(req *http.Request) services.FilterState {
	q := req.URL.Query()
	return services.FilterState{
		Search:           q.Get("q"),
		Name:             q.Get("name"),
		Category:         q.Get("category"),
		Sku:              q.Get("sku"),
		MetalType:        q.Get("metal_type"),
		Purity:           q.Get("purity"),
		DeliveryType:     q.Get("delivery_type"),
		Gemstone:         q.Get("gemstone"),
		MinPrice:         q.Get("min_price"),
		MaxPrice:         q.Get("max_price"),
		DiamondColor:     q.Get("diamond_color"),
		DiamondClarity:   q.Get("diamond_clarity"),
		MinDiamondWeight: q.Get("min_diamond_weight"),
		MaxDiamondWeight: q.Get("max_diamond_weight"),
		MinNetWeight:     q.Get("min_net_weight"),
		MaxNetWeight:     q.Get("max_net_weight"),
		MinGrossWeight:   q.Get("min_gross_weight"),
		MaxGrossWeight:   q.Get("max_gross_weight"),
		MinMakingCharge:  q.Get("min_making_charge"),
		MaxMakingCharge:  q.Get("max_making_charge"),
		MinStock:         q.Get("min_stock"),
		MaxStock:         q.Get("max_stock"),
		MinDiamondValue:  q.Get("min_diamond_value"),
		MaxDiamondValue:  q.Get("max_diamond_value"),
	}
}

func (h *ProductHandler) Create(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	var form ProductForm
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

	product := h.productFromForm(vendorID, &form)
	product.ID = uuid.New().String()
	product.Slug = helpers.GenerateSlug(form.Name + "-" + product.ID[:6])

	h.priceProduct(req, vendorID, product)

	if err := h.productRepo.Create(req.Context(), product); err != nil {
		log.Printf("Create: failed to create product for vendor %s: %v", vendorID, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to create product.")
		return
	}

	respondOK(h.render, w, product)
}

func (h *ProductHandler) Get(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)
	id := mux.Vars(req)["id"]

	product, err := h.productRepo.GetByID(req.Context(), vendorID, id)
	if err != nil {
		log.Printf("Get: failed to fetch product %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch product.")
		return
	}
	if product == nil {
		respondError(h.render, w, http.StatusNotFound, "Product not found.")
		return
	}

	respondOK(h.render, w, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)
	id := mux.Vars(req)["id"]

	existing, err := h.productRepo.GetByID(req.Context(), vendorID, id)
	if err != nil {
		log.Printf("Update: failed to fetch product %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch product.")
		return
	}
	if existing == nil {
		respondError(h.render, w, http.StatusNotFound, "Product not found.")
		return
	}

	var form ProductForm
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

	updated := h.productFromForm(vendorID, &form)
	updated.ID = existing.ID
	updated.Slug = existing.Slug
	updated.CreatedAt = existing.CreatedAt

	h.priceProduct(req, vendorID, updated)

	if err := h.productRepo.Update(req.Context(), updated); err != nil {
		log.Printf("Update: failed to update product %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to update product.")
		return
	}

	respondOK(h.render, w, updated)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)
	id := mux.Vars(req)["id"]

	if err := h.productRepo.SoftDelete(req.Context(), vendorID, id); err != nil {
		log.Printf("Delete: failed to soft-delete product %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to delete product.")
		return
	}

	respondOK(h.render, w, map[string]string{"message": "Product deleted."})
}

func (h *ProductHandler) productFromForm(vendorID string, form *ProductForm) *models.Product {
	return &models.Product{
		VendorID:          vendorID,
		Name:              form.Name,
		Sku:               form.Sku,
		Description:       form.Description,
		ProductType:       models.ProductType(form.ProductType),
		MetalType:         form.MetalType,
		GrossWeight:       form.GrossWeight,
		NetWeight:         form.NetWeight,
		Purity:            form.Purity,
		PurityUnit:        models.PurityUnit(form.PurityUnit),
		StoneWeight1:      form.StoneWeight1,
		StoneWeight2:      form.StoneWeight2,
		DiamondWeight:     form.DiamondWeight,
		DiamondValue:      form.DiamondValue,
		DiamondColor:      form.DiamondColor,
		DiamondClarity:    form.DiamondClarity,
		MakingCharge:      form.MakingCharge,
		CertificationCost: form.CertificationCost,
		GemstoneCost:      form.GemstoneCost,
		Stock:             form.Stock,
		DeliveryType:      form.DeliveryType,
		ImagePath:         form.ImagePath,
	}
}

// priceProduct runs the valuation rule against the vendor's current rate for
// the product's metal so the stored price pair is never stale on save.
func (h *ProductHandler) priceProduct(req *http.Request, vendorID string, product *models.Product) {
	rate := decimal.Zero
	profile, err := h.profileRepo.FindByUserID(req.Context(), vendorID)
	if err != nil {
		log.Printf("priceProduct: failed to load profile for vendor %s: %v", vendorID, err)
	} else if profile != nil {
		rate = profile.RateFor(product.MetalType)
	}

	val := services.ValueProduct(product, rate)
	product.MetalRate = rate
	product.CostPrice = val.CostPrice
	product.RetailPrice = val.RetailPrice
}
