package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
	"github.com/varunhirthik/warehouse-management/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL
// (usable con pool o tx).
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// Create persiste un departamento nuevo (solo usado por el seed).
func (r *DepartmentRepo) Create(ctx context.Context, department *entity.Department) error {
	query := `
		INSERT INTO departments (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id`
	err := r.q.QueryRow(ctx, query, department.Name).Scan(&department.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		// Ya existía: recuperar el id para que el seed sea idempotente.
		return r.q.QueryRow(ctx, `SELECT id FROM departments WHERE name = $1`, department.Name).Scan(&department.ID)
	}
	if err != nil {
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento por id; nil si no existe.
func (r *DepartmentRepo) GetByID(ctx context.Context, id int64) (*entity.Department, error) {
	var d entity.Department
	err := r.q.QueryRow(ctx, `SELECT id, name FROM departments WHERE id = $1`, id).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}

// ListByName devuelve todos los departamentos ordenados por nombre ascendente.
func (r *DepartmentRepo) ListByName(ctx context.Context) ([]*entity.Department, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
