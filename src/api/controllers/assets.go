package controllers

import (
	"context"
	"errors"
	"time"

	"assettracker/src/models"
	"assettracker/src/repositories"
	"assettracker/src/schemas"
	"assettracker/src/utils"

	"github.com/jackc/pgx/v5"
)

// assetAllowedFields is the fixed allow-list of columns settable through
// PUT/PATCH. Keys outside it are silently ignored, not rejected.
var assetAllowedFields = []string{
	"name",
	"category_id",
	"department",
	"status",
	"purchase_date",
	"warranty_expiry",
	"value",
	"usage_type",
}

// assetRequiredFields is the creation contract, in reporting order.
var assetRequiredFields = []string{"name", "category_id", "department"}

type AssetsControllerI interface {
	GetAllAssets(ctx context.Context) ([]schemas.AssetResponse, error)
	GetAssetByID(ctx context.Context, id int) (*schemas.AssetResponse, error)
	CreateAsset(ctx context.Context, input map[string]interface{}) (*schemas.AssetResponse, error)
	UpdateAsset(ctx context.Context, id int, input map[string]interface{}) (*schemas.AssetResponse, error)
	PatchAsset(ctx context.Context, id int, input map[string]interface{}) (*schemas.AssetResponse, error)
	DeleteAsset(ctx context.Context, id int) error
}

type AssetsController struct {
	Assets     repositories.AssetRepository
	Categories repositories.CategoryRepository
}

func NewAssetsController(assets repositories.AssetRepository, categories repositories.CategoryRepository) *AssetsController {
	return &AssetsController{Assets: assets, Categories: categories}
}

func toAssetResponse(asset *models.AssetWithCategory) schemas.AssetResponse {
	return schemas.AssetResponse{
		ID:             asset.ID,
		Name:           asset.Name,
		CategoryID:     asset.CategoryID,
		Department:     asset.Department,
		Status:         asset.Status,
		PurchaseDate:   utils.FormatShortDate(asset.PurchaseDate),
		WarrantyExpiry: utils.FormatShortDatePtr(asset.WarrantyExpiry),
		Value:          asset.Value,
		UsageType:      asset.UsageType,
		CategoryName:   asset.CategoryName,
	}
}

func (c *AssetsController) GetAllAssets(ctx context.Context) ([]schemas.AssetResponse, error) {
	assets, err := c.Assets.GetAllWithCategory(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.AssetResponse, 0, len(assets))
	for i := range assets {
		responses = append(responses, toAssetResponse(&assets[i]))
	}
	return responses, nil
}

func (c *AssetsController) GetAssetByID(ctx context.Context, id int) (*schemas.AssetResponse, error) {
	asset, err := c.Assets.GetByIDWithCategory(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFound("Asset not found")
	}
	if err != nil {
		return nil, err
	}
	response := toAssetResponse(asset)
	return &response, nil
}

func (c *AssetsController) CreateAsset(ctx context.Context, input map[string]interface{}) (*schemas.AssetResponse, error) {
	var missing []string
	for _, field := range assetRequiredFields {
		if _, ok := input[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, utils.NewHTTPErrorWithExtras(400, "Missing required fields",
			map[string]interface{}{"missing": missing})
	}

	categoryID, ok := toInt(input["category_id"])
	if !ok {
		return nil, utils.BadRequest("Invalid category ID")
	}
	exists, err := c.Categories.Exists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.BadRequest("Invalid category ID")
	}

	asset := models.Asset{
		Name:       toString(input["name"]),
		CategoryID: &categoryID,
		Department: toString(input["department"]),
		Status:     "In Use",
		Value:      0,
		UsageType:  "General",
	}
	if status, ok := input["status"].(string); ok {
		asset.Status = status
	}
	if usageType, ok := input["usage_type"].(string); ok {
		asset.UsageType = usageType
	}
	if value, ok := input["value"]; ok && value != nil {
		if f, ok := value.(float64); ok {
			asset.Value = f
		}
	}

	// Creation accepts the purchaseDate spelling; updates use purchase_date.
	asset.PurchaseDate = time.Now()
	if raw, ok := input["purchaseDate"]; ok && raw != nil {
		parsed, err := parseDateValue("purchaseDate", raw)
		if err != nil {
			return nil, err
		}
		asset.PurchaseDate = parsed.(time.Time)
	}
	if raw, ok := input["warranty_expiry"]; ok && raw != nil {
		parsed, err := parseDateValue("warranty_expiry", raw)
		if err != nil {
			return nil, err
		}
		t := parsed.(time.Time)
		asset.WarrantyExpiry = &t
	}

	if err := c.Assets.Create(ctx, &asset); err != nil {
		return nil, err
	}

	created, err := c.Assets.GetByIDWithCategory(ctx, asset.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.InternalServerError("Failed to fetch created asset")
	}
	if err != nil {
		return nil, err
	}
	response := toAssetResponse(created)
	return &response, nil
}

// UpdateAsset applies a full update: every allow-listed key present in the
// input is written, JSON nulls included, and category_id is existence-checked
// before any SQL is issued.
func (c *AssetsController) UpdateAsset(ctx context.Context, id int, input map[string]interface{}) (*schemas.AssetResponse, error) {
	var updates []repositories.FieldUpdate
	for _, field := range assetAllowedFields {
		value, ok := input[field]
		if !ok {
			continue
		}

		switch field {
		case "category_id":
			categoryID, ok := toInt(value)
			if !ok {
				return nil, utils.BadRequest("Invalid category ID")
			}
			exists, err := c.Categories.Exists(ctx, categoryID)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, utils.BadRequest("Invalid category ID")
			}
			updates = append(updates, repositories.FieldUpdate{Column: field, Value: categoryID})
		case "purchase_date", "warranty_expiry":
			parsed, err := parseDateValue(field, value)
			if err != nil {
				return nil, err
			}
			updates = append(updates, repositories.FieldUpdate{Column: field, Value: parsed})
		default:
			updates = append(updates, repositories.FieldUpdate{Column: field, Value: value})
		}
	}

	return c.applyUpdates(ctx, id, updates)
}

// PatchAsset applies a partial update with the same allow-list mechanics, but
// JSON nulls are skipped and category_id is not existence-checked.
func (c *AssetsController) PatchAsset(ctx context.Context, id int, input map[string]interface{}) (*schemas.AssetResponse, error) {
	var updates []repositories.FieldUpdate
	for _, field := range assetAllowedFields {
		value, ok := input[field]
		if !ok || value == nil {
			continue
		}

		switch field {
		case "category_id":
			if categoryID, ok := toInt(value); ok {
				value = categoryID
			}
			updates = append(updates, repositories.FieldUpdate{Column: field, Value: value})
		case "purchase_date", "warranty_expiry":
			parsed, err := parseDateValue(field, value)
			if err != nil {
				return nil, err
			}
			updates = append(updates, repositories.FieldUpdate{Column: field, Value: parsed})
		default:
			updates = append(updates, repositories.FieldUpdate{Column: field, Value: value})
		}
	}

	return c.applyUpdates(ctx, id, updates)
}

func (c *AssetsController) applyUpdates(ctx context.Context, id int, updates []repositories.FieldUpdate) (*schemas.AssetResponse, error) {
	if len(updates) == 0 {
		return nil, utils.BadRequest("No valid fields to update")
	}

	if err := c.Assets.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}

	updated, err := c.Assets.GetByIDWithCategory(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFound("Asset not found")
	}
	if err != nil {
		return nil, err
	}
	response := toAssetResponse(updated)
	return &response, nil
}

func (c *AssetsController) DeleteAsset(ctx context.Context, id int) error {
	exists, err := c.Assets.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NotFound("Asset not found")
	}
	return c.Assets.Delete(ctx, id)
}
