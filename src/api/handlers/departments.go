package handlers

import (
	"context"
	"net/http"

	"assettracker/src/utils"
)

func (h *Handler) GetAllDepartments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	departments, err := h.DepartmentsController.GetAllDepartments(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, departments, http.StatusOK)
}

func (h *Handler) GetDepartmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := pathID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	department, err := h.DepartmentsController.GetDepartmentByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, department, http.StatusOK)
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	input, err := decodeBody(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.DepartmentsController.CreateDepartment(ctx, input)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, created, http.StatusCreated)
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
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

	department, err := h.DepartmentsController.UpdateDepartment(ctx, id, input)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, department, http.StatusOK)
}

func (h *Handler) PatchDepartment(w http.ResponseWriter, r *http.Request) {
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

	department, err := h.DepartmentsController.PatchDepartment(ctx, id, input)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, department, http.StatusOK)
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := pathID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.DepartmentsController.DeleteDepartment(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]string{"message": "Department deleted successfully"}, http.StatusOK)
}

func (h *Handler) DepartmentIDRequired(w http.ResponseWriter, r *http.Request) {
	h.HandleErrors(w, utils.BadRequest("Department ID required"))
}
