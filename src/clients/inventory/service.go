package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"assettracker/src/schemas"
	"assettracker/src/utils"
	"assettracker/src/utils/requests"
)

// ServiceClient is the Go counterpart of the dashboard's asset service: a
// thin typed wrapper over the HTTP API with no logic of its own.
type ServiceClient struct {
	BaseURL string
	API     *requests.ExternalAPIService
}

func NewClient(baseURL string, httpClient *http.Client) *ServiceClient {
	return &ServiceClient{
		BaseURL: baseURL,
		API:     requests.NewExternalAPIService(httpClient),
	}
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// decodeInto drains the response, turning non-2xx payloads into *utils.HTTPError.
func decodeInto(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return utils.NewHTTPError(resp.StatusCode, resp.Status)
		}
		extras := map[string]interface{}{}
		if apiErr.Message != "" {
			extras["message"] = apiErr.Message
		}
		if apiErr.Details != "" {
			extras["details"] = apiErr.Details
		}
		return utils.NewHTTPErrorWithExtras(resp.StatusCode, apiErr.Error, extras)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *ServiceClient) GetAssets(ctx context.Context) ([]schemas.AssetResponse, error) {
	resp, err := c.API.Get(ctx, c.BaseURL+"/api/assets", nil)
	if err != nil {
		return nil, err
	}
	var assets []schemas.AssetResponse
	if err := decodeInto(resp, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (c *ServiceClient) GetAsset(ctx context.Context, id int) (*schemas.AssetResponse, error) {
	resp, err := c.API.Get(ctx, fmt.Sprintf("%s/api/assets/%d", c.BaseURL, id), nil)
	if err != nil {
		return nil, err
	}
	var asset schemas.AssetResponse
	if err := decodeInto(resp, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *ServiceClient) CreateAsset(ctx context.Context, req *schemas.CreateAssetRequest) (*schemas.AssetResponse, error) {
	resp, err := c.API.Post(ctx, c.BaseURL+"/api/assets", nil, req)
	if err != nil {
		return nil, err
	}
	var asset schemas.AssetResponse
	if err := decodeInto(resp, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// UpdateAsset issues a full update over the allow-listed fields.
func (c *ServiceClient) UpdateAsset(ctx context.Context, id int, fields map[string]interface{}) (*schemas.AssetResponse, error) {
	resp, err := c.API.Put(ctx, fmt.Sprintf("%s/api/assets/%d", c.BaseURL, id), nil, fields)
	if err != nil {
		return nil, err
	}
	var asset schemas.AssetResponse
	if err := decodeInto(resp, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// PatchAsset issues a partial update of any allow-listed field set.
func (c *ServiceClient) PatchAsset(ctx context.Context, id int, fields map[string]interface{}) (*schemas.AssetResponse, error) {
	resp, err := c.API.Patch(ctx, fmt.Sprintf("%s/api/assets/%d", c.BaseURL, id), nil, fields)
	if err != nil {
		return nil, err
	}
	var asset schemas.AssetResponse
	if err := decodeInto(resp, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *ServiceClient) DeleteAsset(ctx context.Context, id int) (*schemas.MessageResponse, error) {
	resp, err := c.API.Delete(ctx, fmt.Sprintf("%s/api/assets/%d", c.BaseURL, id), nil)
	if err != nil {
		return nil, err
	}
	var message schemas.MessageResponse
	if err := decodeInto(resp, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// ChangeAssetDepartment uses the dedicated department sub-route.
func (c *ServiceClient) ChangeAssetDepartment(ctx context.Context, id int, department string) (*schemas.AssetResponse, error) {
	resp, err := c.API.Patch(ctx, fmt.Sprintf("%s/api/assets/%d/department", c.BaseURL, id), nil,
		map[string]interface{}{"department": department})
	if err != nil {
		return nil, err
	}
	var asset schemas.AssetResponse
	if err := decodeInto(resp, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (c *ServiceClient) UpdateAssetStatus(ctx context.Context, id int, status string) (*schemas.AssetResponse, error) {
	return c.PatchAsset(ctx, id, map[string]interface{}{"status": status})
}

func (c *ServiceClient) UpdateWarrantyExpiry(ctx context.Context, id int, warrantyExpiry string) (*schemas.AssetResponse, error) {
	return c.PatchAsset(ctx, id, map[string]interface{}{"warranty_expiry": warrantyExpiry})
}

func (c *ServiceClient) UpdateAssetPurchaseDate(ctx context.Context, id int, purchaseDate string) (*schemas.AssetResponse, error) {
	return c.PatchAsset(ctx, id, map[string]interface{}{"purchase_date": purchaseDate})
}

func (c *ServiceClient) GetCategories(ctx context.Context) ([]schemas.CategoryResponse, error) {
	resp, err := c.API.Get(ctx, c.BaseURL+"/api/categories", nil)
	if err != nil {
		return nil, err
	}
	var categories []schemas.CategoryResponse
	if err := decodeInto(resp, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *ServiceClient) CreateCategory(ctx context.Context, req *schemas.CreateCategoryRequest) (*schemas.CategoryCreateResponse, error) {
	resp, err := c.API.Post(ctx, c.BaseURL+"/api/categories", nil, req)
	if err != nil {
		return nil, err
	}
	var created schemas.CategoryCreateResponse
	if err := decodeInto(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *ServiceClient) UpdateCategory(ctx context.Context, id int, req *schemas.CreateCategoryRequest) (*schemas.CategoryResponse, error) {
	resp, err := c.API.Put(ctx, fmt.Sprintf("%s/api/categories/%d", c.BaseURL, id), nil, req)
	if err != nil {
		return nil, err
	}
	var category schemas.CategoryResponse
	if err := decodeInto(resp, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *ServiceClient) DeleteCategory(ctx context.Context, id int) (*schemas.MessageResponse, error) {
	resp, err := c.API.Delete(ctx, fmt.Sprintf("%s/api/categories/%d", c.BaseURL, id), nil)
	if err != nil {
		return nil, err
	}
	var message schemas.MessageResponse
	if err := decodeInto(resp, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *ServiceClient) GetDepartments(ctx context.Context) ([]schemas.DepartmentResponse, error) {
	resp, err := c.API.Get(ctx, c.BaseURL+"/api/departments", nil)
	if err != nil {
		return nil, err
	}
	var departments []schemas.DepartmentResponse
	if err := decodeInto(resp, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (c *ServiceClient) CreateDepartment(ctx context.Context, req *schemas.CreateDepartmentRequest) (*schemas.DepartmentCreateResponse, error) {
	resp, err := c.API.Post(ctx, c.BaseURL+"/api/departments", nil, req)
	if err != nil {
		return nil, err
	}
	var created schemas.DepartmentCreateResponse
	if err := decodeInto(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
