package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductActivityRow resume la actividad de un producto en un departamento:
// stock actual (suma de quantity_change) y utilidad acumulada de sus ventas.
// TotalProfit viene a precisión completa; el redondeo a 2 decimales es
// responsabilidad de la capa de presentación.
type ProductActivityRow struct {
	ID           int64
	Name         string
	CostPrice    decimal.Decimal
	CurrentStock int64
	TotalProfit  decimal.Decimal
}

// ProductStockRow es un producto con su stock actual en un departamento.
type ProductStockRow struct {
	ID           int64
	Name         string
	CostPrice    decimal.Decimal
	CurrentStock int64
}

// ReportRepository define las consultas read-only de agregación sobre el ledger
// (stock y utilidad). Nunca muta el historial.
type ReportRepository interface {
	// DepartmentActivity devuelve los productos con stock ≠ 0 o utilidad ≠ 0
	// en el departamento, ordenados por nombre ascendente. Es un filtro de
	// presentación del dashboard, no un borrado.
	DepartmentActivity(ctx context.Context, departmentID int64) ([]ProductActivityRow, error)
	// DepartmentProducts devuelve todos los productos del catálogo con su stock
	// en el departamento (incluidos los de stock cero), ordenados por nombre.
	DepartmentProducts(ctx context.Context, departmentID int64) ([]ProductStockRow, error)
}
