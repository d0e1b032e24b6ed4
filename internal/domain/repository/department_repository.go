package repository

import (
	"context"

	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
)

// DepartmentRepository define el puerto de persistencia para Department (DIP).
// Los departamentos son datos de referencia: se crean en el seed y solo se leen.
type DepartmentRepository interface {
	Create(ctx context.Context, department *entity.Department) error
	GetByID(ctx context.Context, id int64) (*entity.Department, error)
	// ListByName devuelve todos los departamentos ordenados por nombre ascendente.
	// El orden es contrato del dashboard, no un detalle incidental.
	ListByName(ctx context.Context) ([]*entity.Department, error)
}
