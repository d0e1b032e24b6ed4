package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del ledger.
const (
	TypeImport = "import" // entrada de stock, quantity_change positivo
	TypeSale   = "sale"   // venta, quantity_change negativo, lleva selling_price
)

// ValidType indica si t es un tipo de transacción conocido.
func ValidType(t string) bool {
	return t == TypeImport || t == TypeSale
}

// InventoryTransaction es una entrada del ledger append-only de movimientos.
// Inmutable una vez escrita; no existe update ni delete.
// Invariante: el signo de QuantityChange corresponde al tipo
// (import ⇒ positivo, sale ⇒ negativo); el write path normaliza el signo.
type InventoryTransaction struct {
	ID             int64
	ProductID      int64
	DepartmentID   int64
	QuantityChange int64
	Type           string
	SellingPrice   decimal.Decimal // precio unitario de venta; 0 en imports
	Timestamp      time.Time
}

// Profit devuelve la utilidad realizada de esta transacción dado el costo del
// producto: (selling_price − cost_price) × |quantity_change| para ventas, 0 para imports.
func (t *InventoryTransaction) Profit(costPrice decimal.Decimal) decimal.Decimal {
	if t.Type != TypeSale {
		return decimal.Zero
	}
	qty := t.QuantityChange
	if qty < 0 {
		qty = -qty
	}
	return t.SellingPrice.Sub(costPrice).Mul(decimal.NewFromInt(qty))
}
