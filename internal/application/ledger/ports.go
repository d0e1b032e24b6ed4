package ledger

import (
	"context"

	"github.com/varunhirthik/warehouse-management/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de ledger atado a esa tx. Garantiza que la secuencia
// leer-stock → validar → insertar sea atómica frente a ventas concurrentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(txRepo repository.TransactionRepository) error) error
}
