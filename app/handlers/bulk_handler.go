package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/services"
	"github.com/unrolled/render"
)

type BulkHandler struct {
	bulkService services.BulkService
	render      *render.Render
}

func NewBulkHandler(s services.BulkService, r *render.Render) *BulkHandler {
	return &BulkHandler{bulkService: s, render: r}
}

type BulkDeleteForm struct {
	IDs []string `json:"ids"`
}

func (h *BulkHandler) DeleteSelected(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	var form BulkDeleteForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	count, err := h.bulkService.DeleteSelected(req.Context(), vendorID, services.Selection(form.IDs))
	if err != nil && count == 0 {
		respondServiceError(h.render, w, err)
		return
	}
	if err != nil {
		log.Printf("DeleteSelected: partial failure for vendor %s: %v", vendorID, err)
		_ = h.render.JSON(w, http.StatusMultiStatus, map[string]interface{}{
			"status":  "partial",
			"message": err.Error(),
			"deleted": count,
		})
		return
	}

	// The client clears its selection set on success.
	respondOK(h.render, w, map[string]interface{}{"deleted": count})
}

type BulkUpdateForm struct {
	IDs    []string            `json:"ids"`
	Fields services.BulkFields `json:"fields"`
}

func (h *BulkHandler) BulkUpdate(w http.ResponseWriter, req *http.Request) {
	vendorID := userIDFromContext(req)

	var form BulkUpdateForm
	if err := json.NewDecoder(req.Body).Decode(&form); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	outcome, err := h.bulkService.BulkUpdate(req.Context(), vendorID, services.Selection(form.IDs), form.Fields)
	if err != nil && len(outcome.Results) == 0 {
		respondServiceError(h.render, w, err)
		return
	}
	if err != nil {
		log.Printf("BulkUpdate: partial failure for vendor %s: %v", vendorID, err)
		failed := make([]map[string]string, 0)
		for _, item := range outcome.Failed() {
			failed = append(failed, map[string]string{"id": item.ID, "error": item.Err.Error()})
		}
		_ = h.render.JSON(w, http.StatusMultiStatus, map[string]interface{}{
			"status":  "partial",
			"message": err.Error(),
			"updated": outcome.Succeeded(),
			"failed":  failed,
		})
		return
	}

	respondOK(h.render, w, map[string]interface{}{"updated": outcome.Succeeded()})
}
