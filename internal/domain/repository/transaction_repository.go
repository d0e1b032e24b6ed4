package repository

import (
	"context"

	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
)

// TransactionRepository define el puerto sobre el ledger append-only.
// No existe Update ni Delete: el historial es la única fuente de verdad.
type TransactionRepository interface {
	// Create persiste una transacción ya normalizada y validada.
	Create(ctx context.Context, tx *entity.InventoryTransaction) error
	// CurrentStock devuelve la suma de quantity_change para el par
	// (producto, departamento); cero si no hay filas.
	CurrentStock(ctx context.Context, productID, departmentID int64) (int64, error)
	// LockPair serializa escrituras concurrentes sobre el mismo par
	// (producto, departamento) dentro de la transacción de DB en curso.
	// La secuencia leer-stock → validar → insertar debe observar un snapshot
	// consistente o dos ventas simultáneas pueden dejar stock negativo.
	LockPair(ctx context.Context, productID, departmentID int64) error
}
