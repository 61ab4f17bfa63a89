package handlers

import (
	"context"
	"fmt"
	"net/http"

	"assettracker/src/utils"
)

func (h *Handler) GetAllAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	assets, err := h.AssetsController.GetAllAssets(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, assets, http.StatusOK)
}

func (h *Handler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := pathID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	asset, err := h.AssetsController.GetAssetByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	input, err := decodeBody(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	asset, err := h.AssetsController.CreateAsset(ctx, input)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusCreated)
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
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

	asset, err := h.AssetsController.UpdateAsset(ctx, id, input)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) PatchAsset(w http.ResponseWriter, r *http.Request) {
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

	asset, err := h.AssetsController.PatchAsset(ctx, id, input)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}

// PatchAssetDepartment serves the department sub-route; only the department
// label can change through it.
func (h *Handler) PatchAssetDepartment(w http.ResponseWriter, r *http.Request) {
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

	restricted := map[string]interface{}{}
	if department, ok := input["department"]; ok {
		restricted["department"] = department
	}

	asset, err := h.AssetsController.PatchAsset(ctx, id, restricted)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := pathID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.AssetsController.DeleteAsset(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]string{"message": "Asset deleted successfully"}, http.StatusOK)
}

// AssetIDRequired answers collection-level requests that need an id.
func (h *Handler) AssetIDRequired(w http.ResponseWriter, r *http.Request) {
	h.HandleErrors(w, utils.BadRequest("Asset ID required"))
}

// GetAssetsFile downloads the joined inventory as a spreadsheet or CSV.
func (h *Handler) GetAssetsFile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	assets, err := h.AssetsController.GetAllAssets(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "XLSX" {
		xlsxFile, err := h.ExportService.GenerateXLSX(ctx, assets)
		if err != nil {
			h.HandleErrors(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=assets.xlsx")

		if err := xlsxFile.Write(w); err != nil {
			h.HandleErrors(w, err)
			return
		}
		return
	}

	csvData, err := h.ExportService.GenerateCSV(ctx, assets)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=assets.csv")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(csvData)))
	_, _ = w.Write(csvData)
}
