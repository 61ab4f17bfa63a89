package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"assettracker/src/models"
	"assettracker/src/repositories"

	"github.com/jackc/pgx/v5"
)

// In-memory repository implementations for controller and handler tests.
// They return pgx.ErrNoRows where the real pgx-backed repositories would.

type CategoryRepo struct {
	mu         sync.Mutex
	nextID     int
	Categories map[int]models.Category
}

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{nextID: 1, Categories: map[int]models.Category{}}
}

func (r *CategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	categories := make([]models.Category, 0, len(r.Categories))
	for _, category := range r.Categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.Categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &category, nil
}

func (r *CategoryRepo) Create(ctx context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	category.ID = r.nextID
	r.nextID++
	r.Categories[category.ID] = *category
	return nil
}

func (r *CategoryRepo) UpdateFields(ctx context.Context, id int, updates []repositories.FieldUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.Categories[id]
	if !ok {
		return nil
	}
	for _, update := range updates {
		switch update.Column {
		case "name":
			if s, ok := update.Value.(string); ok {
				category.Name = s
			}
		case "description":
			if update.Value == nil {
				category.Description = nil
			} else if s, ok := update.Value.(string); ok {
				category.Description = &s
			}
		}
	}
	r.Categories[id] = category
	return nil
}

func (r *CategoryRepo) Exists(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.Categories[id]
	return ok, nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Categories, id)
	return nil
}

type DepartmentRepo struct {
	mu          sync.Mutex
	nextID      int
	Departments map[int]models.Department
}

func NewDepartmentRepo() *DepartmentRepo {
	return &DepartmentRepo{nextID: 1, Departments: map[int]models.Department{}}
}

func (r *DepartmentRepo) GetAll(ctx context.Context) ([]models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	departments := make([]models.Department, 0, len(r.Departments))
	for _, department := range r.Departments {
		departments = append(departments, department)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].Name < departments[j].Name })
	return departments, nil
}

func (r *DepartmentRepo) GetByID(ctx context.Context, id int) (*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	department, ok := r.Departments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &department, nil
}

func (r *DepartmentRepo) Create(ctx context.Context, department *models.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	department.ID = r.nextID
	r.nextID++
	r.Departments[department.ID] = *department
	return nil
}

func (r *DepartmentRepo) UpdateFields(ctx context.Context, id int, updates []repositories.FieldUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	department, ok := r.Departments[id]
	if !ok {
		return nil
	}
	for _, update := range updates {
		switch update.Column {
		case "name":
			if s, ok := update.Value.(string); ok {
				department.Name = s
			}
		case "description":
			if update.Value == nil {
				department.Description = nil
			} else if s, ok := update.Value.(string); ok {
				department.Description = &s
			}
		}
	}
	r.Departments[id] = department
	return nil
}

func (r *DepartmentRepo) Exists(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.Departments[id]
	return ok, nil
}

func (r *DepartmentRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Departments, id)
	return nil
}

type AssetRepo struct {
	mu         sync.Mutex
	nextID     int
	Assets     map[int]models.Asset
	categories *CategoryRepo
}

func NewAssetRepo(categories *CategoryRepo) *AssetRepo {
	return &AssetRepo{nextID: 1, Assets: map[int]models.Asset{}, categories: categories}
}

func (r *AssetRepo) join(asset models.Asset) models.AssetWithCategory {
	joined := models.AssetWithCategory{
		ID:             asset.ID,
		Name:           asset.Name,
		CategoryID:     asset.CategoryID,
		Department:     asset.Department,
		Status:         asset.Status,
		PurchaseDate:   asset.PurchaseDate,
		WarrantyExpiry: asset.WarrantyExpiry,
		Value:          asset.Value,
		UsageType:      asset.UsageType,
	}
	if asset.CategoryID != nil && r.categories != nil {
		if category, ok := r.categories.Categories[*asset.CategoryID]; ok {
			name := category.Name
			joined.CategoryName = &name
		}
	}
	return joined
}

func (r *AssetRepo) GetAllWithCategory(ctx context.Context) ([]models.AssetWithCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	assets := make([]models.AssetWithCategory, 0, len(r.Assets))
	for _, asset := range r.Assets {
		assets = append(assets, r.join(asset))
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID > assets[j].ID })
	return assets, nil
}

func (r *AssetRepo) GetByIDWithCategory(ctx context.Context, id int) (*models.AssetWithCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, ok := r.Assets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	joined := r.join(asset)
	return &joined, nil
}

func (r *AssetRepo) Create(ctx context.Context, asset *models.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset.ID = r.nextID
	r.nextID++
	r.Assets[asset.ID] = *asset
	return nil
}

func (r *AssetRepo) UpdateFields(ctx context.Context, id int, updates []repositories.FieldUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, ok := r.Assets[id]
	if !ok {
		return nil
	}
	for _, update := range updates {
		switch update.Column {
		case "name":
			if s, ok := update.Value.(string); ok {
				asset.Name = s
			}
		case "category_id":
			if n, ok := update.Value.(int); ok {
				asset.CategoryID = &n
			} else if update.Value == nil {
				asset.CategoryID = nil
			}
		case "department":
			if s, ok := update.Value.(string); ok {
				asset.Department = s
			}
		case "status":
			if s, ok := update.Value.(string); ok {
				asset.Status = s
			}
		case "purchase_date":
			if t, ok := update.Value.(time.Time); ok {
				asset.PurchaseDate = t
			}
		case "warranty_expiry":
			if t, ok := update.Value.(time.Time); ok {
				asset.WarrantyExpiry = &t
			} else if update.Value == nil {
				asset.WarrantyExpiry = nil
			}
		case "value":
			if f, ok := update.Value.(float64); ok {
				asset.Value = f
			}
		case "usage_type":
			if s, ok := update.Value.(string); ok {
				asset.UsageType = s
			}
		}
	}
	r.Assets[id] = asset
	return nil
}

func (r *AssetRepo) Exists(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.Assets[id]
	return ok, nil
}

func (r *AssetRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Assets, id)
	return nil
}

func (r *AssetRepo) CountByCategoryID(ctx context.Context, categoryID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, asset := range r.Assets {
		if asset.CategoryID != nil && *asset.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *AssetRepo) CountByDepartmentName(ctx context.Context, name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, asset := range r.Assets {
		if asset.Department == name {
			count++
		}
	}
	return count, nil
}
