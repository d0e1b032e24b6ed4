package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/varunhirthik/warehouse-management/internal/application/dto"
	"github.com/varunhirthik/warehouse-management/internal/domain"
)

// writeDomainError traduce un error de dominio a la respuesta HTTP del contrato:
// 400 validación, 403 acceso denegado, 404 no encontrado, 409 duplicado,
// 500 genérico para todo lo demás (el detalle queda en el log, no en el wire).
func writeDomainError(c *fiber.Ctx, err error) error {
	if ise, ok := domain.IsInsufficientStock(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:     ise.Error(),
			Available: &ise.Available,
			Requested: &ise.Requested,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError(`Transaction type must be "import" or "sale"`))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("Invalid transaction data"))
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("Product not found"))
	case errors.Is(err, domain.ErrDepartmentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("Department not found"))
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("User not found"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("Resource not found"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.NewError("Access denied"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("Invalid username or password"))
	case errors.Is(err, domain.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("Username already exists"))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("Internal server error"))
}
