package postgres

import (
	"context"
	"fmt"

	"github.com/varunhirthik/warehouse-management/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre el ledger: stock actual y
// utilidad realizada se pliegan desde el historial completo en cada consulta.
// A esta escala de datos no se materializa ningún saldo.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// DepartmentActivity devuelve los productos con stock ≠ 0 o utilidad ≠ 0 en el
// departamento, ordenados por nombre.
//
// Utilidad por fila de venta: (selling_price − cost_price) × |quantity_change|;
// los imports aportan 0. El NUMERIC viaja a precisión completa (codec
// shopspring/decimal); el redondeo es de la capa de presentación.
func (r *ReportRepo) DepartmentActivity(ctx context.Context, departmentID int64) ([]repository.ProductActivityRow, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    p.cost_price,
	    COALESCE(SUM(it.quantity_change), 0)::BIGINT AS current_stock,
	    COALESCE(SUM(
	        CASE
	            WHEN it.transaction_type = 'sale'
	            THEN (it.selling_price - p.cost_price) * ABS(it.quantity_change)
	            ELSE 0
	        END
	    ), 0) AS total_profit
	FROM products p
	LEFT JOIN inventory_transactions it
	       ON it.product_id = p.id AND it.department_id = $1
	GROUP BY p.id, p.name, p.cost_price
	HAVING COALESCE(SUM(it.quantity_change), 0) <> 0
	    OR COALESCE(SUM(
	        CASE
	            WHEN it.transaction_type = 'sale'
	            THEN (it.selling_price - p.cost_price) * ABS(it.quantity_change)
	            ELSE 0
	        END
	    ), 0) <> 0
	ORDER BY p.name`

	rows, err := r.q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("department activity: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductActivityRow
	for rows.Next() {
		var row repository.ProductActivityRow
		if err := rows.Scan(&row.ID, &row.Name, &row.CostPrice, &row.CurrentStock, &row.TotalProfit); err != nil {
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// DepartmentProducts devuelve todos los productos del catálogo con su stock en
// el departamento (incluidos los de stock cero), ordenados por nombre.
func (r *ReportRepo) DepartmentProducts(ctx context.Context, departmentID int64) ([]repository.ProductStockRow, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    p.cost_price,
	    COALESCE(SUM(it.quantity_change), 0)::BIGINT AS current_stock
	FROM products p
	LEFT JOIN inventory_transactions it
	       ON it.product_id = p.id AND it.department_id = $1
	GROUP BY p.id, p.name, p.cost_price
	ORDER BY p.name`

	rows, err := r.q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("department products: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductStockRow
	for rows.Next() {
		var row repository.ProductStockRow
		if err := rows.Scan(&row.ID, &row.Name, &row.CostPrice, &row.CurrentStock); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
