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

var departmentAllowedFields = []string{"name", "description"}

type DepartmentsControllerI interface {
	GetAllDepartments(ctx context.Context) ([]schemas.DepartmentResponse, error)
	GetDepartmentByID(ctx context.Context, id int) (*schemas.DepartmentResponse, error)
	CreateDepartment(ctx context.Context, input map[string]interface{}) (*schemas.DepartmentCreateResponse, error)
	UpdateDepartment(ctx context.Context, id int, input map[string]interface{}) (*schemas.DepartmentResponse, error)
	PatchDepartment(ctx context.Context, id int, input map[string]interface{}) (*schemas.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id int) error
}

// DepartmentsController mirrors the category handler; departments are the
// lookup list behind the asset department labels.
type DepartmentsController struct {
	Departments repositories.DepartmentRepository
	Assets      repositories.AssetRepository
}

func NewDepartmentsController(departments repositories.DepartmentRepository, assets repositories.AssetRepository) *DepartmentsController {
	return &DepartmentsController{Departments: departments, Assets: assets}
}

func toDepartmentResponse(department *models.Department) schemas.DepartmentResponse {
	return schemas.DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
	}
}

func (c *DepartmentsController) GetAllDepartments(ctx context.Context) ([]schemas.DepartmentResponse, error) {
	departments, err := c.Departments.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, toDepartmentResponse(&departments[i]))
	}
	return responses, nil
}

func (c *DepartmentsController) GetDepartmentByID(ctx context.Context, id int) (*schemas.DepartmentResponse, error) {
	department, err := c.Departments.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFound("Department not found")
	}
	if err != nil {
		return nil, err
	}
	response := toDepartmentResponse(department)
	return &response, nil
}

func (c *DepartmentsController) CreateDepartment(ctx context.Context, input map[string]interface{}) (*schemas.DepartmentCreateResponse, error) {
	name, _ := input["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.BadRequest("Department name is required")
	}

	department := models.Department{Name: name}
	if description, ok := input["description"].(string); ok {
		department.Description = &description
	}

	if err := c.Departments.Create(ctx, &department); err != nil {
		return nil, err
	}

	return &schemas.DepartmentCreateResponse{
		ID:      department.ID,
		Message: "Department created successfully",
	}, nil
}

func (c *DepartmentsController) UpdateDepartment(ctx context.Context, id int, input map[string]interface{}) (*schemas.DepartmentResponse, error) {
	name, _ := input["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.BadRequest("Department name is required")
	}

	var description interface{}
	if d, ok := input["description"].(string); ok {
		description = d
	}

	updates := []repositories.FieldUpdate{
		{Column: "name", Value: name},
		{Column: "description", Value: description},
	}
	if err := c.Departments.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}

	return c.GetDepartmentByID(ctx, id)
}

func (c *DepartmentsController) PatchDepartment(ctx context.Context, id int, input map[string]interface{}) (*schemas.DepartmentResponse, error) {
	var updates []repositories.FieldUpdate
	for _, field := range departmentAllowedFields {
		value, ok := input[field]
		if !ok || value == nil {
			continue
		}
		updates = append(updates, repositories.FieldUpdate{Column: field, Value: value})
	}
	if len(updates) == 0 {
		return nil, utils.BadRequest("No valid fields to update")
	}

	if err := c.Departments.UpdateFields(ctx, id, updates); err != nil {
		return nil, err
	}

	return c.GetDepartmentByID(ctx, id)
}

// DeleteDepartment refuses to remove a department while any asset still
// carries its name as the department label.
func (c *DepartmentsController) DeleteDepartment(ctx context.Context, id int) error {
	department, err := c.Departments.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return utils.NotFound("Department not found")
	}
	if err != nil {
		return err
	}

	count, err := c.Assets.CountByDepartmentName(ctx, department.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.NewHTTPErrorWithExtras(400, "Cannot delete department", map[string]interface{}{
			"message": fmt.Sprintf("Department is being used by %d asset(s)", count),
		})
	}
	return c.Departments.Delete(ctx, id)
}
