package postgres

import (
	"context"
	"fmt"

	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
	"github.com/varunhirthik/warehouse-management/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto sobre el ledger en PostgreSQL
// (usable con pool o tx; las escrituras siempre llegan vía TxRunner).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción del ledger. Solo INSERT: el historial es
// append-only y no existe camino de update/delete.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions
			(product_id, department_id, quantity_change, transaction_type, selling_price, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		tx.ProductID, tx.DepartmentID, tx.QuantityChange, tx.Type, tx.SellingPrice, tx.Timestamp,
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// CurrentStock suma quantity_change para el par (producto, departamento);
// cero si no hay filas.
func (r *TransactionRepo) CurrentStock(ctx context.Context, productID, departmentID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(quantity_change), 0)::BIGINT
		FROM inventory_transactions
		WHERE product_id = $1 AND department_id = $2`
	var stock int64
	if err := r.q.QueryRow(ctx, query, productID, departmentID).Scan(&stock); err != nil {
		return 0, fmt.Errorf("current stock: %w", err)
	}
	return stock, nil
}

// LockPair toma un advisory lock transaccional sobre el par
// (producto, departamento). El ledger no tiene fila de agregado que bloquear
// con SELECT FOR UPDATE, así que el lock de par cumple ese papel: serializa
// la secuencia leer-stock → validar → insertar frente a ventas concurrentes.
// Se libera solo al terminar la transacción.
func (r *TransactionRepo) LockPair(ctx context.Context, productID, departmentID int64) error {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1::int4, $2::int4)`, productID, departmentID); err != nil {
		return fmt.Errorf("lock pair: %w", err)
	}
	return nil
}
