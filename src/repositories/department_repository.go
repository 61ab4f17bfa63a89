package repositories

import (
	"context"
	"fmt"
	"strings"

	"assettracker/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DepartmentRepository interface {
	GetAll(ctx context.Context) ([]models.Department, error)
	GetByID(ctx context.Context, id int) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	UpdateFields(ctx context.Context, id int, updates []FieldUpdate) error
	Exists(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) error
}

type departmentRepo struct {
	db *pgxpool.Pool
}

func NewDepartmentRepository(db *pgxpool.Pool) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) GetAll(ctx context.Context) ([]models.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM department ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name, &department.Description); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}
	return departments, rows.Err()
}

func (r *departmentRepo) GetByID(ctx context.Context, id int) (*models.Department, error) {
	var department models.Department
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description FROM department WHERE id = $1`, id,
	).Scan(&department.ID, &department.Name, &department.Description)
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepo) Create(ctx context.Context, department *models.Department) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO department (name, description) VALUES ($1, $2) RETURNING id`,
		department.Name, department.Description,
	).Scan(&department.ID)
}

func (r *departmentRepo) UpdateFields(ctx context.Context, id int, updates []FieldUpdate) error {
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

	query := fmt.Sprintf("UPDATE department SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(args))
	_, err := r.db.Exec(ctx, query, args...)
	return err
}

func (r *departmentRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM department WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *departmentRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM department WHERE id = $1`, id)
	return err
}
