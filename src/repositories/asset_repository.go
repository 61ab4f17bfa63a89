package repositories

import (
	"context"
	"fmt"
	"strings"

	"assettracker/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FieldUpdate binds one allow-listed column to the value it should be set to.
type FieldUpdate struct {
	Column string
	Value  interface{}
}

type AssetRepository interface {
	GetAllWithCategory(ctx context.Context) ([]models.AssetWithCategory, error)
	GetByIDWithCategory(ctx context.Context, id int) (*models.AssetWithCategory, error)
	Create(ctx context.Context, asset *models.Asset) error
	UpdateFields(ctx context.Context, id int, updates []FieldUpdate) error
	Exists(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) error
	CountByCategoryID(ctx context.Context, categoryID int) (int, error)
	CountByDepartmentName(ctx context.Context, name string) (int, error)
}

type assetRepo struct {
	db *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) AssetRepository {
	return &assetRepo{db: db}
}

const assetJoinedColumns = `a.id, a.name, a.category_id, a.department, a.status,
	a.purchase_date, a.warranty_expiry, a.value, a.usage_type, c.name AS category_name`

func (r *assetRepo) GetAllWithCategory(ctx context.Context) ([]models.AssetWithCategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+assetJoinedColumns+`
		FROM asset a
		LEFT JOIN category c ON a.category_id = c.id
		ORDER BY a.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.AssetWithCategory
	for rows.Next() {
		var asset models.AssetWithCategory
		if err := rows.Scan(
			&asset.ID,
			&asset.Name,
			&asset.CategoryID,
			&asset.Department,
			&asset.Status,
			&asset.PurchaseDate,
			&asset.WarrantyExpiry,
			&asset.Value,
			&asset.UsageType,
			&asset.CategoryName,
		); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func (r *assetRepo) GetByIDWithCategory(ctx context.Context, id int) (*models.AssetWithCategory, error) {
	var asset models.AssetWithCategory
	err := r.db.QueryRow(ctx, `
		SELECT `+assetJoinedColumns+`
		FROM asset a
		LEFT JOIN category c ON a.category_id = c.id
		WHERE a.id = $1`, id).Scan(
		&asset.ID,
		&asset.Name,
		&asset.CategoryID,
		&asset.Department,
		&asset.Status,
		&asset.PurchaseDate,
		&asset.WarrantyExpiry,
		&asset.Value,
		&asset.UsageType,
		&asset.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepo) Create(ctx context.Context, asset *models.Asset) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO asset (name, category_id, department, status, purchase_date, warranty_expiry, value, usage_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		asset.Name, asset.CategoryID, asset.Department, asset.Status,
		asset.PurchaseDate, asset.WarrantyExpiry, asset.Value, asset.UsageType,
	).Scan(&asset.ID)
}

// UpdateFields issues a parameterized UPDATE over the given column bindings.
// Callers are responsible for only passing allow-listed columns.
func (r *assetRepo) UpdateFields(ctx context.Context, id int, updates []FieldUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	assignments := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	for i, update := range updates {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", update.Column, i+1))
		args = append(args, update.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE asset SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(args))
	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func (r *assetRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM asset WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *assetRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM asset WHERE id = $1`, id)
	return err
}

func (r *assetRepo) CountByCategoryID(ctx context.Context, categoryID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM asset WHERE category_id = $1`, categoryID).Scan(&count)
	return count, err
}

func (r *assetRepo) CountByDepartmentName(ctx context.Context, name string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM asset WHERE department = $1`, name).Scan(&count)
	return count, err
}
