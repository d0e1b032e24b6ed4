package dto

import "github.com/shopspring/decimal"

// DashboardProductDTO producto listado en el dashboard de un departamento.
// TotalProfit ya viene redondeado a 2 decimales (solo en presentación).
type DashboardProductDTO struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	CurrentStock int64           `json:"current_stock"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}

// DashboardDepartmentDTO departamento con sus productos activos y utilidad total.
type DashboardDepartmentDTO struct {
	ID                    int64                 `json:"id"`
	Name                  string                `json:"name"`
	Products              []DashboardProductDTO `json:"products"`
	TotalDepartmentProfit decimal.Decimal       `json:"total_department_profit"`
}

// DashboardResponse respuesta de GET /dashboard, limitada a los departamentos
// visibles para el actor (todos para manager, el propio para staff).
type DashboardResponse struct {
	Departments   []DashboardDepartmentDTO `json:"departments"`
	OverallProfit decimal.Decimal          `json:"overall_profit"`
}

// ProductStockDTO producto con su stock actual en un departamento.
type ProductStockDTO struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	CurrentStock int64           `json:"current_stock"`
}

// ProductListResponse respuesta de GET /products/:department_id.
type ProductListResponse struct {
	Products []ProductStockDTO `json:"products"`
}
