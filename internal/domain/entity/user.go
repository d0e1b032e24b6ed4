package entity

import "time"

// Roles válidos para User.
const (
	RoleManager = "manager" // ve y escribe todos los departamentos
	RoleStaff   = "staff"   // limitado a su propio departamento
)

// ValidRole indica si r es un rol conocido.
func ValidRole(r string) bool {
	return r == RoleManager || r == RoleStaff
}

// User representa un usuario del sistema.
// DepartmentID es nil para managers y obligatorio para staff.
// LastLogin se actualiza en cada autenticación exitosa; los usuarios no se borran.
type User struct {
	ID           int64
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	DepartmentID *int64
	FullName     string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// Actor es la identidad autenticada que acompaña cada operación.
// Se construye desde los claims del JWT; la política de acceso es una función
// pura de (actor, departamento), sin estado ambiente ni consultas a la DB.
type Actor struct {
	UserID       int64
	Role         string
	DepartmentID int64 // 0 para managers
}

// CanAccess decide si el actor puede leer/escribir datos del departamento dado.
// Manager: siempre true (incluso para departamentos inexistentes; la existencia
// la valida quien consulta). Staff: solo su propio departamento.
func (a Actor) CanAccess(departmentID int64) bool {
	if a.Role == RoleManager {
		return true
	}
	return a.DepartmentID == departmentID
}

// IsManager indica si el actor tiene rol manager.
func (a Actor) IsManager() bool {
	return a.Role == RoleManager
}
