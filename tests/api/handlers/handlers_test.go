package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"assettracker/src/api"
	"assettracker/src/api/controllers"
	"assettracker/src/api/handlers"
	"assettracker/src/config"
	"assettracker/src/services"
	"assettracker/src/utils"

	"assettracker/tests/mocks"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	server      *api.Server
	categories  *mocks.CategoryRepo
	departments *mocks.DepartmentRepo
	assets      *mocks.AssetRepo
}

func newTestServer(t *testing.T) *testEnv {
	t.Helper()

	categories := mocks.NewCategoryRepo()
	departments := mocks.NewDepartmentRepo()
	assets := mocks.NewAssetRepo(categories)

	handler := &handlers.Handler{
		AssetsController:      controllers.NewAssetsController(assets, categories),
		CategoriesController:  controllers.NewCategoriesController(categories, assets),
		DepartmentsController: controllers.NewDepartmentsController(departments, assets),
		ExportService:         services.NewExportService(),
		Logger:                utils.NewLogger(logrus.ErrorLevel, false, ""),
	}

	return &testEnv{
		server:      api.NewServerWithHandler(handler, config.DefaultAllowedOrigins),
		categories:  categories,
		departments: departments,
		assets:      assets,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	e.server.ServeHTTP(recorder, req)
	return recorder
}

func decodeJSON(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload
}

func (e *testEnv) createCategory(t *testing.T, name string) int {
	t.Helper()
	recorder := e.do(t, http.MethodPost, "/api/categories", map[string]interface{}{"name": name})
	require.Equal(t, http.StatusCreated, recorder.Code)
	payload := decodeJSON(t, recorder)
	return int(payload["id"].(float64))
}

func (e *testEnv) createAsset(t *testing.T, categoryID int, name, department string) map[string]interface{} {
	t.Helper()
	recorder := e.do(t, http.MethodPost, "/api/assets", map[string]interface{}{
		"name":        name,
		"category_id": categoryID,
		"department":  department,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	return decodeJSON(t, recorder)
}

func TestHealthcheck(t *testing.T) {
	env := newTestServer(t)

	recorder := env.do(t, http.MethodGet, "/alive", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Im alive!")
}

func TestAssetEndpoints(t *testing.T) {
	t.Run("empty collection is a JSON array", func(t *testing.T) {
		env := newTestServer(t)

		recorder := env.do(t, http.MethodGet, "/api/assets", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
		assert.Equal(t, "[]", strings.TrimSpace(recorder.Body.String()))
	})

	t.Run("create applies defaults", func(t *testing.T) {
		env := newTestServer(t)
		categoryID := env.createCategory(t, "Laptops")

		asset := env.createAsset(t, categoryID, "ThinkPad X1", "IT")
		assert.Equal(t, "ThinkPad X1", asset["name"])
		assert.Equal(t, "In Use", asset["status"])
		assert.Equal(t, "General", asset["usage_type"])
		assert.Equal(t, float64(0), asset["value"])
		assert.Equal(t, time.Now().Format("2006-01-02"), asset["purchase_date"])
		assert.Nil(t, asset["warranty_expiry"])
		assert.Equal(t, "Laptops", asset["category_name"])
	})

	t.Run("create without required fields", func(t *testing.T) {
		env := newTestServer(t)

		recorder := env.do(t, http.MethodPost, "/api/assets", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		payload := decodeJSON(t, recorder)
		assert.Equal(t, "Missing required fields", payload["error"])
		assert.Equal(t, []interface{}{"name", "category_id", "department"}, payload["missing"])
	})

	t.Run("create with invalid category", func(t *testing.T) {
		env := newTestServer(t)

		recorder := env.do(t, http.MethodPost, "/api/assets", map[string]interface{}{
			"name":        "Chair",
			"category_id": 42,
			"department":  "HR",
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Invalid category ID", decodeJSON(t, recorder)["error"])
	})

	t.Run("malformed JSON body", func(t *testing.T) {
		env := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/assets", strings.NewReader("{not json"))
		recorder := httptest.NewRecorder()
		env.server.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Invalid JSON input", decodeJSON(t, recorder)["error"])
	})

	t.Run("get by id", func(t *testing.T) {
		env := newTestServer(t)
		categoryID := env.createCategory(t, "Laptops")
		created := env.createAsset(t, categoryID, "MacBook", "Design")
		id := int(created["id"].(float64))

		recorder := env.do(t, http.MethodGet, "/api/assets/"+itoa(id), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "MacBook", decodeJSON(t, recorder)["name"])

		recorder = env.do(t, http.MethodGet, "/api/assets/999999", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Asset not found", decodeJSON(t, recorder)["error"])
	})

	t.Run("patch without valid fields", func(t *testing.T) {
		env := newTestServer(t)
		categoryID := env.createCategory(t, "Laptops")
		created := env.createAsset(t, categoryID, "MacBook", "Design")
		id := int(created["id"].(float64))

		recorder := env.do(t, http.MethodPatch, "/api/assets/"+itoa(id), map[string]interface{}{
			"unknown": "value",
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "No valid fields to update", decodeJSON(t, recorder)["error"])
	})

	t.Run("department sub-route ignores other fields", func(t *testing.T) {
		env := newTestServer(t)
		categoryID := env.createCategory(t, "Laptops")
		created := env.createAsset(t, categoryID, "MacBook", "Design")
		id := int(created["id"].(float64))

		recorder := env.do(t, http.MethodPatch, "/api/assets/"+itoa(id)+"/department", map[string]interface{}{
			"department": "Finance",
			"status":     "Retired",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		payload := decodeJSON(t, recorder)
		assert.Equal(t, "Finance", payload["department"])
		assert.Equal(t, "In Use", payload["status"])
	})

	t.Run("delete", func(t *testing.T) {
		env := newTestServer(t)
		categoryID := env.createCategory(t, "Laptops")
		created := env.createAsset(t, categoryID, "MacBook", "Design")
		id := int(created["id"].(float64))

		recorder := env.do(t, http.MethodDelete, "/api/assets/"+itoa(id), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Asset deleted successfully", decodeJSON(t, recorder)["message"])

		recorder = env.do(t, http.MethodDelete, "/api/assets/"+itoa(id), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("collection verbs need an id", func(t *testing.T) {
		env := newTestServer(t)

		for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
			recorder := env.do(t, method, "/api/assets", map[string]interface{}{"status": "Retired"})
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, "Asset ID required", decodeJSON(t, recorder)["error"])
		}
	})
}

func TestCategoryEndpoints(t *testing.T) {
	t.Run("create returns id and message", func(t *testing.T) {
		env := newTestServer(t)

		recorder := env.do(t, http.MethodPost, "/api/categories", map[string]interface{}{
			"name": "Laptops",
		})
		assert.Equal(t, http.StatusCreated, recorder.Code)

		payload := decodeJSON(t, recorder)
		assert.Equal(t, "Category created successfully", payload["message"])
		assert.NotZero(t, payload["id"])
	})

	t.Run("delete blocked by referencing assets", func(t *testing.T) {
		env := newTestServer(t)
		categoryID := env.createCategory(t, "Laptops")
		env.createAsset(t, categoryID, "ThinkPad", "IT")

		recorder := env.do(t, http.MethodDelete, "/api/categories/"+itoa(categoryID), nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		payload := decodeJSON(t, recorder)
		assert.Equal(t, "Cannot delete category", payload["error"])
		assert.Equal(t, "Category is being used by 1 asset(s)", payload["message"])
	})

	t.Run("collection verbs need an id", func(t *testing.T) {
		env := newTestServer(t)

		recorder := env.do(t, http.MethodPut, "/api/categories", map[string]interface{}{"name": "X"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "Category ID required", decodeJSON(t, recorder)["error"])
	})
}

func TestDepartmentEndpoints(t *testing.T) {
	t.Run("full round trip", func(t *testing.T) {
		env := newTestServer(t)

		recorder := env.do(t, http.MethodPost, "/api/departments", map[string]interface{}{
			"name":        "IT",
			"description": "Information technology",
		})
		require.Equal(t, http.StatusCreated, recorder.Code)
		id := int(decodeJSON(t, recorder)["id"].(float64))

		recorder = env.do(t, http.MethodGet, "/api/departments", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		recorder = env.do(t, http.MethodPatch, "/api/departments/"+itoa(id), map[string]interface{}{
			"name": "Engineering",
		})
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Engineering", decodeJSON(t, recorder)["name"])

		recorder = env.do(t, http.MethodDelete, "/api/departments/"+itoa(id), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Department deleted successfully", decodeJSON(t, recorder)["message"])
	})

	t.Run("delete blocked while assets use the name", func(t *testing.T) {
		env := newTestServer(t)

		recorder := env.do(t, http.MethodPost, "/api/departments", map[string]interface{}{"name": "IT"})
		require.Equal(t, http.StatusCreated, recorder.Code)
		id := int(decodeJSON(t, recorder)["id"].(float64))

		categoryID := env.createCategory(t, "Laptops")
		env.createAsset(t, categoryID, "ThinkPad", "IT")

		recorder = env.do(t, http.MethodDelete, "/api/departments/"+itoa(id), nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		payload := decodeJSON(t, recorder)
		assert.Equal(t, "Cannot delete department", payload["error"])
		assert.Equal(t, "Department is being used by 1 asset(s)", payload["message"])
	})
}

func TestRouting(t *testing.T) {
	t.Run("unknown endpoint returns debug payload", func(t *testing.T) {
		env := newTestServer(t)

		recorder := env.do(t, http.MethodGet, "/api/unknown/", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		payload := decodeJSON(t, recorder)
		assert.Equal(t, "Endpoint not found", payload["error"])
		assert.Equal(t, "/api/unknown", payload["requested_path"])
		assert.Equal(t, http.MethodGet, payload["method"])

		debugInfo, ok := payload["debug_info"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "none", debugInfo["matched_pattern"])
		assert.Equal(t, "not available", debugInfo["path_info"])
	})

	t.Run("non-numeric asset id falls through to 404", func(t *testing.T) {
		env := newTestServer(t)

		recorder := env.do(t, http.MethodGet, "/api/assets/abc", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "Endpoint not found", decodeJSON(t, recorder)["error"])
	})

	t.Run("method not allowed", func(t *testing.T) {
		env := newTestServer(t)

		recorder := env.do(t, http.MethodPost, "/alive", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
		assert.Equal(t, "Method not allowed", decodeJSON(t, recorder)["error"])
	})

	t.Run("trailing slash is stripped", func(t *testing.T) {
		env := newTestServer(t)

		recorder := env.do(t, http.MethodGet, "/api/assets/", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestGetAssetsFile(t *testing.T) {
	env := newTestServer(t)
	categoryID := env.createCategory(t, "Laptops")
	env.createAsset(t, categoryID, "ThinkPad", "IT")

	t.Run("CSV by default", func(t *testing.T) {
		recorder := env.do(t, http.MethodGet, "/api/assets/file", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=assets.csv", recorder.Header().Get("Content-Disposition"))
		assert.Contains(t, recorder.Body.String(), "ThinkPad")
	})

	t.Run("XLSX on request", func(t *testing.T) {
		recorder := env.do(t, http.MethodGet, "/api/assets/file?format=XLSX", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=assets.xlsx", recorder.Header().Get("Content-Disposition"))
		assert.NotEmpty(t, recorder.Body.Bytes())
	})
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
