// Package ledger contiene el write path del ledger de inventario:
// validación, normalización de signo y registro transaccional de
// imports y ventas con control de stock suficiente.
package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/varunhirthik/warehouse-management/internal/application/dto"
	"github.com/varunhirthik/warehouse-management/internal/domain"
	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
	"github.com/varunhirthik/warehouse-management/internal/domain/repository"
)

// LogInput entrada ya parseada para registrar una transacción.
// SellingPrice ausente se trata como 0, también en ventas (compatibilidad
// con los clientes existentes; documentado, no corrección silenciosa).
type LogInput struct {
	ProductID      int64
	DepartmentID   int64
	QuantityChange int64
	Type           string
	SellingPrice   decimal.Decimal
}

// LogTransactionUseCase registra transacciones del ledger de forma atómica:
// la lectura de stock, la validación de suficiencia y el insert ocurren dentro
// de una sola transacción de DB con bloqueo por par (producto, departamento).
type LogTransactionUseCase struct {
	txRunner       TxRunner
	productRepo    repository.ProductRepository
	departmentRepo repository.DepartmentRepository
}

// NewLogTransactionUseCase construye el caso de uso.
func NewLogTransactionUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	departmentRepo repository.DepartmentRepository,
) *LogTransactionUseCase {
	return &LogTransactionUseCase{
		txRunner:       txRunner,
		productRepo:    productRepo,
		departmentRepo: departmentRepo,
	}
}

// Log valida, normaliza y persiste una transacción en nombre del actor.
//
// Orden de las reglas:
//  1. Política de acceso: se corta antes de tocar cualquier dato del
//     departamento (sin fuga parcial).
//  2. Tipo ∈ {import, sale}.
//  3. quantity_change ≠ 0 y selling_price ≥ 0.
//  4. Producto y departamento deben existir.
//  5. Normalización de signo: sale fuerza negativo, import fuerza positivo.
//     Nunca rechaza un signo contradictorio; es idempotente.
//  6. Solo para ventas, dentro de la tx de DB: stock actual ≥ |cantidad|.
func (uc *LogTransactionUseCase) Log(ctx context.Context, actor entity.Actor, in LogInput) (*dto.LogTransactionResponse, error) {
	if !actor.CanAccess(in.DepartmentID) {
		return nil, domain.ErrForbidden
	}
	if !entity.ValidType(in.Type) {
		return nil, domain.ErrInvalidType
	}
	// Una transacción de cantidad cero sería una entrada no-op en el ledger;
	// se rechaza explícitamente.
	if in.QuantityChange == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.SellingPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	department, err := uc.departmentRepo.GetByID(ctx, in.DepartmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrDepartmentNotFound
	}

	quantity := normalizeSign(in.Type, in.QuantityChange)
	now := time.Now()

	err = uc.txRunner.Run(ctx, func(txRepo repository.TransactionRepository) error {
		// Serializa escrituras del mismo par; dos ventas concurrentes ya no
		// pueden leer el mismo stock y pasar ambas la validación.
		if err := txRepo.LockPair(ctx, in.ProductID, in.DepartmentID); err != nil {
			return err
		}
		if in.Type == entity.TypeSale {
			stock, err := txRepo.CurrentStock(ctx, in.ProductID, in.DepartmentID)
			if err != nil {
				return err
			}
			requested := -quantity
			if stock < requested {
				return &domain.InsufficientStockError{Available: stock, Requested: requested}
			}
		}
		return txRepo.Create(ctx, &entity.InventoryTransaction{
			ProductID:      in.ProductID,
			DepartmentID:   in.DepartmentID,
			QuantityChange: quantity,
			Type:           in.Type,
			SellingPrice:   in.SellingPrice,
			Timestamp:      now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.LogTransactionResponse{
		Message:        successMessage(in.Type),
		Product:        product.Name,
		Department:     department.Name,
		QuantityChange: quantity,
		SellingPrice:   in.SellingPrice,
	}, nil
}

// normalizeSign fuerza el signo según el tipo: negativo para ventas,
// positivo para imports. El valor absoluto del cliente se respeta.
func normalizeSign(txType string, quantity int64) int64 {
	abs := quantity
	if abs < 0 {
		abs = -abs
	}
	if txType == entity.TypeSale {
		return -abs
	}
	return abs
}

// successMessage arma el mensaje de confirmación, ej. "Sale logged successfully".
func successMessage(txType string) string {
	switch txType {
	case entity.TypeSale:
		return "Sale logged successfully"
	case entity.TypeImport:
		return "Import logged successfully"
	}
	return "Transaction logged successfully"
}
