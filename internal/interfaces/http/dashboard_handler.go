package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/varunhirthik/warehouse-management/internal/application/dto"
	"github.com/varunhirthik/warehouse-management/internal/application/report"
)

// DashboardHandler maneja los reportes derivados del ledger.
type DashboardHandler struct {
	uc *report.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *report.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard devuelve stock y utilidad por departamento, limitado al
// alcance del actor (todos los departamentos para manager, el propio
// para staff).
// GET /dashboard
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.Build(c.Context(), GetActor(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// GetProductsByDepartment lista todos los productos con su stock actual en
// un departamento, incluidos los de stock cero.
// GET /products/:department_id
func (h *DashboardHandler) GetProductsByDepartment(c *fiber.Ctx) error {
	departmentID, err := strconv.ParseInt(c.Params("department_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("department_id must be an integer"))
	}
	out, err := h.uc.ProductsByDepartment(c.Context(), GetActor(c), departmentID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
