package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/helpers"
	"github.com/cataleon/cataleon/app/models"
	"github.com/cataleon/cataleon/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// ContentAdminHandler manages the site content only admins may touch: blog
// posts, press mentions and the brand-logo strip.
type ContentAdminHandler struct {
	contentRepo repositories.ContentRepositoryImpl
	validator   *validator.Validate
	render      *render.Render
}

func NewContentAdminHandler(c repositories.ContentRepositoryImpl, r *render.Render) *ContentAdminHandler {
	return &ContentAdminHandler{
		contentRepo: c,
		validator:   validator.New(),
		render:      r,
	}
}

type BlogPostForm struct {
	Title     string `json:"title" validate:"required,max=255"`
	Body      string `json:"body" validate:"required"`
	CoverPath string `json:"cover_path" validate:"max=255"`
	Published bool   `json:"published"`
}

type PressItemForm struct {
	Title  string `json:"title" validate:"required,max=255"`
	Outlet string `json:"outlet" validate:"max=100"`
	URL    string `json:"url" validate:"required,url,max=500"`
}

type BrandLogoForm struct {
	Name      string `json:"name" validate:"required,max=100"`
	ImagePath string `json:"image_path" validate:"required,max=255"`
	SortOrder int    `json:"sort_order"`
}

func (h *ContentAdminHandler) CreatePost(w http.ResponseWriter, req *http.Request) {
	var form BlogPostForm
	if !h.decodeAndValidate(w, req, &form) {
		return
	}

	post := &models.BlogPost{
		Title:     form.Title,
		Slug:      helpers.GenerateSlug(form.Title),
		Body:      form.Body,
		CoverPath: form.CoverPath,
		Published: form.Published,
	}
	if err := h.contentRepo.CreatePost(req.Context(), post); err != nil {
		log.Printf("CreatePost: failed to store post: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to store post.")
		return
	}

	h.respondOK(w, post)
}

func (h *ContentAdminHandler) UpdatePost(w http.ResponseWriter, req *http.Request) {
	slug := mux.Vars(req)["slug"]

	var form BlogPostForm
	if !h.decodeAndValidate(w, req, &form) {
		return
	}

	post, err := h.contentRepo.GetPostBySlug(req.Context(), slug)
	if err != nil || post == nil {
		h.respondError(w, http.StatusNotFound, "Post not found.")
		return
	}

	post.Title = form.Title
	post.Body = form.Body
	post.CoverPath = form.CoverPath
	post.Published = form.Published

	if err := h.contentRepo.UpdatePost(req.Context(), post); err != nil {
		log.Printf("UpdatePost: failed to update post %s: %v", slug, err)
		h.respondError(w, http.StatusInternalServerError, "Failed to update post.")
		return
	}

	h.respondOK(w, post)
}

func (h *ContentAdminHandler) DeletePost(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if err := h.contentRepo.DeletePost(req.Context(), id); err != nil {
		log.Printf("DeletePost: failed to delete post %s: %v", id, err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete post.")
		return
	}
	h.respondOK(w, map[string]string{"id": id})
}

// ListPosts includes drafts; the public content endpoint only serves
// published posts.
func (h *ContentAdminHandler) ListPosts(w http.ResponseWriter, req *http.Request) {
	posts, err := h.contentRepo.GetPosts(req.Context(), false)
	if err != nil {
		log.Printf("ListPosts: failed to fetch posts: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch posts.")
		return
	}
	h.respondOK(w, posts)
}

func (h *ContentAdminHandler) CreatePressItem(w http.ResponseWriter, req *http.Request) {
	var form PressItemForm
	if !h.decodeAndValidate(w, req, &form) {
		return
	}

	item := &models.PressItem{
		Title:  form.Title,
		Outlet: form.Outlet,
		URL:    form.URL,
	}
	if err := h.contentRepo.CreatePressItem(req.Context(), item); err != nil {
		log.Printf("CreatePressItem: failed to store press item: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to store press item.")
		return
	}

	h.respondOK(w, item)
}

func (h *ContentAdminHandler) DeletePressItem(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if err := h.contentRepo.DeletePressItem(req.Context(), id); err != nil {
		log.Printf("DeletePressItem: failed to delete press item %s: %v", id, err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete press item.")
		return
	}
	h.respondOK(w, map[string]string{"id": id})
}

func (h *ContentAdminHandler) CreateBrandLogo(w http.ResponseWriter, req *http.Request) {
	var form BrandLogoForm
	if !h.decodeAndValidate(w, req, &form) {
		return
	}

	logo := &models.BrandLogo{
		Name:      form.Name,
		ImagePath: form.ImagePath,
		SortOrder: form.SortOrder,
	}
	if err := h.contentRepo.CreateBrandLogo(req.Context(), logo); err != nil {
		log.Printf("CreateBrandLogo: failed to store logo: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to store logo.")
		return
	}

	h.respondOK(w, logo)
}

func (h *ContentAdminHandler) DeleteBrandLogo(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if err := h.contentRepo.DeleteBrandLogo(req.Context(), id); err != nil {
		log.Printf("DeleteBrandLogo: failed to delete logo %s: %v", id, err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete logo.")
		return
	}
	h.respondOK(w, map[string]string{"id": id})
}

func (h *ContentAdminHandler) decodeAndValidate(w http.ResponseWriter, req *http.Request, form interface{}) bool {
	if err := json.NewDecoder(req.Body).Decode(form); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body.")
		return false
	}
	if err := h.validator.Struct(form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"status": "error",
			"errors": helpers.FormatValidationErrors(validationErrors),
		})
		return false
	}
	return true
}

func (h *ContentAdminHandler) respondOK(w http.ResponseWriter, data interface{}) {
	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   data,
	})
}

func (h *ContentAdminHandler) respondError(w http.ResponseWriter, status int, message string) {
	_ = h.render.JSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
	})
}
