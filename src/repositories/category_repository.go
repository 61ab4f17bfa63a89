package repositories

import (
	"context"
	"fmt"
	"strings"

	"assettracker/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	UpdateFields(ctx context.Context, id int, updates []FieldUpdate) error
	Exists(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) error
}

type categoryRepo struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM category ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *categoryRepo) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var category models.Category
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description FROM category WHERE id = $1`, id,
	).Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO category (name, description) VALUES ($1, $2) RETURNING id`,
		category.Name, category.Description,
	).Scan(&category.ID)
}

func (r *categoryRepo) UpdateFields(ctx context.Context, id int, updates []FieldUpdate) error {
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

	query := fmt.Sprintf("UPDATE category SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(args))
	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func (r *categoryRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM category WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *categoryRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM category WHERE id = $1`, id)
	return err
}
