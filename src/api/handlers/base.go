package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"assettracker/src/api/controllers"
	"assettracker/src/config"
	"assettracker/src/database"
	"assettracker/src/repositories"
	"assettracker/src/services"
	"assettracker/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

const requestTimeout = 10 * time.Second

type Handler struct {
	AssetsController      controllers.AssetsControllerI
	CategoriesController  controllers.CategoriesControllerI
	DepartmentsController controllers.DepartmentsControllerI
	ExportService         services.ExportServiceI
	Logger                *logrus.Logger
}

func NewHandler(cfg *config.Config) (*Handler, error) {
	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	assetRepo := repositories.NewAssetRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	departmentRepo := repositories.NewDepartmentRepository(db)

	return &Handler{
		AssetsController:      controllers.NewAssetsController(assetRepo, categoryRepo),
		CategoriesController:  controllers.NewCategoriesController(categoryRepo, assetRepo),
		DepartmentsController: controllers.NewDepartmentsController(departmentRepo, assetRepo),
		ExportService:         services.NewExportService(),
		Logger:                utils.NewLogger(logrus.InfoLevel, false, ""),
	}, nil
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	case errors.As(err, &httpErr):
		h.respond(w, nil, httpErr.Payload(), httpErr.Code)
	case errors.As(err, &pgErr):
		// Driver error text is surfaced to the caller on purpose; the
		// dashboard relies on it for diagnostics.
		h.respond(w, nil, map[string]interface{}{"error": "Database error", "details": pgErr.Error()}, http.StatusInternalServerError)
	case err != nil:
		h.respond(w, nil, map[string]interface{}{"error": "Server error", "details": err.Error()}, http.StatusInternalServerError)
	default:
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}

// decodeBody parses the request body as a JSON object, keeping absent keys
// and JSON nulls distinguishable for the allow-list update mechanics.
func decodeBody(r *http.Request) (map[string]interface{}, error) {
	var input map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, utils.BadRequest("Invalid JSON input")
	}
	return input, nil
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, utils.BadRequest("Invalid ID")
	}
	return id, nil
}

// NotFound reports unmatched routes with the diagnostic fields the dashboard
// expects alongside the error message.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	h.respond(w, r, map[string]interface{}{
		"error":          "Endpoint not found",
		"requested_path": path,
		"method":         r.Method,
		"debug_info": map[string]interface{}{
			"matched_pattern": "none",
			"request_uri":     r.RequestURI,
			"path_info":       "not available",
		},
	}, http.StatusNotFound)
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.Logger.Warnf("405 Method Not Allowed: %s %s", r.Method, r.URL.Path)
	h.respond(w, r, map[string]string{"error": "Method not allowed"}, http.StatusMethodNotAllowed)
}
