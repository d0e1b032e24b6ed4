// Package report contiene los casos de uso read-only derivados del ledger:
// el dashboard de stock y utilidad por departamento y el listado de
// productos con stock. Nunca muta el historial.
package report

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/varunhirthik/warehouse-management/internal/application/dto"
	"github.com/varunhirthik/warehouse-management/internal/domain"
	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
	"github.com/varunhirthik/warehouse-management/internal/domain/repository"
)

// DashboardUseCase arma el reporte de stock y utilidad por departamento.
//
// Toda la agregación (sumas de quantity_change y de utilidad por venta) la
// resuelve ReportRepository sobre el historial completo; aquí solo se
// componen los totales y se redondea a 2 decimales para presentación.
type DashboardUseCase struct {
	departmentRepo repository.DepartmentRepository
	reportRepo     repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(departmentRepo repository.DepartmentRepository, reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{departmentRepo: departmentRepo, reportRepo: reportRepo}
}

// Build genera el dashboard con los departamentos visibles para el actor:
// todos para manager, exactamente el propio para staff. Departamentos por
// nombre ascendente y productos por nombre ascendente dentro de cada uno;
// el orden es contrato, no detalle incidental.
//
// Un producto aparece en un departamento sii su stock actual ≠ 0 o su
// utilidad acumulada ≠ 0; con ambos en cero se omite (filtro de
// presentación, no borrado).
func (uc *DashboardUseCase) Build(ctx context.Context, actor entity.Actor) (*dto.DashboardResponse, error) {
	departments, err := uc.visibleDepartments(ctx, actor)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		Departments:   make([]dto.DashboardDepartmentDTO, 0, len(departments)),
		OverallProfit: decimal.Zero,
	}
	overall := decimal.Zero

	for _, dept := range departments {
		rows, err := uc.reportRepo.DepartmentActivity(ctx, dept.ID)
		if err != nil {
			return nil, err
		}
		products := make([]dto.DashboardProductDTO, 0, len(rows))
		deptProfit := decimal.Zero
		for _, row := range rows {
			products = append(products, dto.DashboardProductDTO{
				ID:           row.ID,
				Name:         row.Name,
				CostPrice:    row.CostPrice,
				CurrentStock: row.CurrentStock,
				TotalProfit:  row.TotalProfit.Round(2),
			})
			// El total se acumula a precisión completa; el redondeo es solo
			// al emitir cada valor.
			deptProfit = deptProfit.Add(row.TotalProfit)
		}
		out.Departments = append(out.Departments, dto.DashboardDepartmentDTO{
			ID:                    dept.ID,
			Name:                  dept.Name,
			Products:              products,
			TotalDepartmentProfit: deptProfit.Round(2),
		})
		overall = overall.Add(deptProfit)
	}

	out.OverallProfit = overall.Round(2)
	return out, nil
}

// ProductsByDepartment lista todos los productos del catálogo con su stock en
// el departamento, incluidos los de stock cero, ordenados por nombre.
// La política de acceso se aplica antes de cualquier lectura.
func (uc *DashboardUseCase) ProductsByDepartment(ctx context.Context, actor entity.Actor, departmentID int64) (*dto.ProductListResponse, error) {
	if !actor.CanAccess(departmentID) {
		return nil, domain.ErrForbidden
	}
	rows, err := uc.reportRepo.DepartmentProducts(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Products: make([]dto.ProductStockDTO, 0, len(rows))}
	for _, row := range rows {
		out.Products = append(out.Products, dto.ProductStockDTO{
			ID:           row.ID,
			Name:         row.Name,
			CostPrice:    row.CostPrice,
			CurrentStock: row.CurrentStock,
		})
	}
	return out, nil
}

// visibleDepartments resuelve el alcance del actor. Para staff cuyo
// departamento ya no exista devuelve un dashboard vacío en lugar de error.
func (uc *DashboardUseCase) visibleDepartments(ctx context.Context, actor entity.Actor) ([]*entity.Department, error) {
	if actor.IsManager() {
		return uc.departmentRepo.ListByName(ctx)
	}
	dept, err := uc.departmentRepo.GetByID(ctx, actor.DepartmentID)
	if err != nil {
		return nil, err
	}
	if dept == nil {
		return nil, nil
	}
	return []*entity.Department{dept}, nil
}
