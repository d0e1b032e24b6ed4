package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
)

// La política de acceso es una función pura de (actor, departamento):
// manager accede a todo; staff solo a su propio departamento.
func TestActor_CanAccess_Staff(t *testing.T) {
	actor := entity.Actor{UserID: 7, Role: entity.RoleStaff, DepartmentID: 2}

	assert.True(t, actor.CanAccess(2), "staff debe acceder a su propio departamento")
	assert.False(t, actor.CanAccess(1), "staff no debe acceder a otro departamento")
	assert.False(t, actor.CanAccess(999), "staff no debe acceder a un departamento inexistente")
	assert.False(t, actor.CanAccess(0))
}

// Manager responde true para cualquier id, incluso inexistente: la existencia
// del departamento la valida quien consulta, no la política.
func TestActor_CanAccess_ManagerSiempre(t *testing.T) {
	actor := entity.Actor{UserID: 1, Role: entity.RoleManager}

	for _, deptID := range []int64{1, 2, 0, -5, 999999} {
		assert.True(t, actor.CanAccess(deptID), "manager debe acceder al departamento %d", deptID)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleManager))
	assert.True(t, entity.ValidRole(entity.RoleStaff))
	assert.False(t, entity.ValidRole("admin"))
	assert.False(t, entity.ValidRole(""))
}
