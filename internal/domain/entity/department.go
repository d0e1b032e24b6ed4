package entity

// Department representa un departamento del café (ej. "Kitchen").
// Datos de referencia: se crean en el seed y no se modifican en operación normal.
type Department struct {
	ID   int64
	Name string // único
}
