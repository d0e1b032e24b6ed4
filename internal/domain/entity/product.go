package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo del café.
// CostPrice es fijo por producto (sin versionado histórico de costos);
// el stock no se guarda aquí: se deriva del ledger por (producto, departamento).
type Product struct {
	ID        int64
	Name      string
	CostPrice decimal.Decimal // costo unitario, no negativo
}
