package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"assettracker/src/models"
	"assettracker/src/repositories"
	"assettracker/src/schemas"
	"assettracker/src/utils"

	"github.com/jackc/pgx/v5"
)

var categoryAllowedFields = []string{"name", "description"}

type CategoriesControllerI interface {
	GetAllCategories(ctx context.Context) ([]schemas.CategoryResponse, error)
	GetCategoryByID(ctx context.Context, id int) (*schemas.CategoryResponse, error)
	CreateCategory(ctx context.Context, input map[string]interface{}) (*schemas.CategoryCreateResponse, error)
	UpdateCategory(ctx context.Context, id int, input map[string]interface{}) (*schemas.CategoryResponse, error)
	PatchCategory(ctx context.Context, id int, input map[string]interface{}) (*schemas.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id int) error
}

type CategoriesController struct {
	Categories repositories.CategoryRepository
	Assets     repositories.AssetRepository
}

func NewCategoriesController(categories repositories.CategoryRepository, assets repositories.AssetRepository) *CategoriesController {
	return &CategoriesController{Categories: categories, Assets: assets}
}

func toCategoryResponse(category *models.Category) schemas.CategoryResponse {
	return schemas.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

func (c *CategoriesController) GetAllCategories(ctx context.Context) ([]schemas.CategoryResponse, error) {
	categories, err := c.Categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, toCategoryResponse(&categories[i]))
	}
	return responses, nil
}

func (c *CategoriesController) GetCategoryByID(ctx context.Context, id int) (*schemas.CategoryResponse, error) {
	category, err := c.Categories.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFound("Category not found")
	}
	if err != nil {
		return nil, err
	}
	response := toCategoryResponse(category)
	return &response, nil
}

func (c *CategoriesController) CreateCategory(ctx context.Context, input map[string]interface{}) (*schemas.CategoryCreateResponse, error) {
	name, _ := input["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.BadRequest("Category name is required")
	}

	category := models.Category{Name: name}
	if description, ok := input["description"].(string); ok {
		category.Description = &description
	}

	if err := c.Categories.Create(ctx, &category); err != nil {
		return nil, err
	}

	return &schemas.CategoryCreateResponse{
		ID:      category.ID,
		Message: "Category created successfully",
	}, nil
}

// UpdateCategory is a full overwrite, not a partial update: name is required
// and description is written unconditionally, absent meaning NULL.
func (c *CategoriesController) UpdateCategory(ctx context.Context, id int, input map[string]interface{}) (*schemas.CategoryResponse, error) {
	name, _ := input["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.BadRequest("Category name is required")
	}

	var description interface{}
	if d, ok := input["description"].(string); ok {
		description = d
	}

	updates := []repositories.FieldUpdate{
		{Column: "name", Value: name},
		{Column: "description", Value: description},
	}
	if err := c.Categories.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}

	return c.GetCategoryByID(ctx, id)
}

func (c *CategoriesController) PatchCategory(ctx context.Context, id int, input map[string]interface{}) (*schemas.CategoryResponse, error) {
	var updates []repositories.FieldUpdate
	for _, field := range categoryAllowedFields {
		value, ok := input[field]
		if !ok || value == nil {
			continue
		}
		updates = append(updates, repositories.FieldUpdate{Column: field, Value: value})
	}
	if len(updates) == 0 {
		return nil, utils.BadRequest("No valid fields to update")
	}

	if err := c.Categories.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}

	return c.GetCategoryByID(ctx, id)
}

func (c *CategoriesController) DeleteCategory(ctx context.Context, id int) error {
	count, err := c.Assets.CountByCategoryID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.NewHTTPErrorWithExtras(400, "Cannot delete category", map[string]interface{}{
			"message": fmt.Sprintf("Category is being used by %d asset(s)", count),
		})
	}

	exists, err := c.Categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NotFound("Category not found")
	}
	return c.Categories.Delete(ctx, id)
}
