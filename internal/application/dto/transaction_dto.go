package dto

import "github.com/shopspring/decimal"

// LogTransactionRequest body para POST /log_transaction.
// Los campos requeridos son punteros para distinguir "ausente" de "cero"
// y poder responder 'Missing required field: <campo>' como espera el cliente.
type LogTransactionRequest struct {
	ProductID      *int64           `json:"product_id"`
	DepartmentID   *int64           `json:"department_id"`
	QuantityChange *int64           `json:"quantity_change"`
	Type           *string          `json:"type"`
	SellingPrice   *decimal.Decimal `json:"selling_price"` // opcional; ausente = 0, incluso en ventas
}

// MissingField devuelve el nombre del primer campo requerido ausente, o "".
func (r *LogTransactionRequest) MissingField() string {
	switch {
	case r.ProductID == nil:
		return "product_id"
	case r.DepartmentID == nil:
		return "department_id"
	case r.QuantityChange == nil:
		return "quantity_change"
	case r.Type == nil:
		return "type"
	}
	return ""
}

// LogTransactionResponse respuesta 201 de POST /log_transaction.
// QuantityChange es el valor ya normalizado de signo que quedó en el ledger.
type LogTransactionResponse struct {
	Message        string          `json:"message"`
	Product        string          `json:"product"`
	Department     string          `json:"department"`
	QuantityChange int64           `json:"quantity_change"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
}
