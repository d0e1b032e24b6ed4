package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/varunhirthik/warehouse-management/internal/application/dto"
	"github.com/varunhirthik/warehouse-management/internal/application/ledger"
)

// TransactionHandler maneja el registro de imports y ventas en el ledger.
type TransactionHandler struct {
	uc *ledger.LogTransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.LogTransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// LogTransaction registra una transacción de inventario.
// POST /log_transaction
//
// Body: {product_id, department_id, quantity_change, type, selling_price?}.
// 201 con {message, product, department, quantity_change, selling_price};
// 400 campo faltante / tipo inválido / stock insuficiente; 403 acceso
// denegado; 404 producto o departamento desconocido.
func (h *TransactionHandler) LogTransaction(c *fiber.Ctx) error {
	var in dto.LogTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("Invalid JSON body"))
	}
	if field := in.MissingField(); field != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("Missing required field: " + field))
	}

	sellingPrice := decimal.Zero
	if in.SellingPrice != nil {
		sellingPrice = *in.SellingPrice
	}
	out, err := h.uc.Log(c.Context(), GetActor(c), ledger.LogInput{
		ProductID:      *in.ProductID,
		DepartmentID:   *in.DepartmentID,
		QuantityChange: *in.QuantityChange,
		Type:           *in.Type,
		SellingPrice:   sellingPrice,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
