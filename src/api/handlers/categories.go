package handlers

import (
	"context"
	"net/http"

	"assettracker/src/utils"
)

func (h *Handler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	categories, err := h.CategoriesController.GetAllCategories(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, categories, http.StatusOK)
}

func (h *Handler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := pathID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	category, err := h.CategoriesController.GetCategoryByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, category, http.StatusOK)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	input, err := decodeBody(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.CategoriesController.CreateCategory(ctx, input)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := pathID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	input, err := decodeBody(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	category, err := h.CategoriesController.UpdateCategory(ctx, id, input)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, category, http.StatusOK)
}

func (h *Handler) PatchCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := pathID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	input, err := decodeBody(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	category, err := h.CategoriesController.PatchCategory(ctx, id, input)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, category, http.StatusOK)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := pathID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.CategoriesController.DeleteCategory(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]string{"message": "Category deleted successfully"}, http.StatusOK)
}

func (h *Handler) CategoryIDRequired(w http.ResponseWriter, r *http.Request) {
	h.HandleErrors(w, utils.BadRequest("Category ID required"))
}
