package handlers

import (
	"log"
	"net/http"

	"github.com/cataleon/cataleon/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// ContentHandler serves the public, read-only views of admin-managed content.
type ContentHandler struct {
	contentRepo repositories.ContentRepositoryImpl
	render      *render.Render
}

func NewContentHandler(c repositories.ContentRepositoryImpl, r *render.Render) *ContentHandler {
	return &ContentHandler{contentRepo: c, render: r}
}

func (h *ContentHandler) ListPosts(w http.ResponseWriter, req *http.Request) {
	posts, err := h.contentRepo.GetPosts(req.Context(), true)
	if err != nil {
		log.Printf("ListPosts: failed to fetch posts: %v", err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch posts.")
		return
	}
	respondOK(h.render, w, posts)
}

func (h *ContentHandler) GetPost(w http.ResponseWriter, req *http.Request) {
	slug := mux.Vars(req)["slug"]

	post, err := h.contentRepo.GetPostBySlug(req.Context(), slug)
	if err != nil {
		log.Printf("GetPost: failed to fetch post %s: %v", slug, err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch post.")
		return
	}
	if post == nil || !post.Published {
		respondError(h.render, w, http.StatusNotFound, "Post not found.")
		return
	}

	respondOK(h.render, w, post)
}

func (h *ContentHandler) ListPress(w http.ResponseWriter, req *http.Request) {
	items, err := h.contentRepo.GetPressItems(req.Context())
	if err != nil {
		log.Printf("ListPress: failed to fetch press items: %v", err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch press items.")
		return
	}
	respondOK(h.render, w, items)
}

func (h *ContentHandler) ListBrandLogos(w http.ResponseWriter, req *http.Request) {
	logos, err := h.contentRepo.GetBrandLogos(req.Context())
	if err != nil {
		log.Printf("ListBrandLogos: failed to fetch logos: %v", err)
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch logos.")
		return
	}
	respondOK(h.render, w, logos)
}
