package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/varunhirthik/warehouse-management/internal/application/auth"
	"github.com/varunhirthik/warehouse-management/internal/application/dto"
	"github.com/varunhirthik/warehouse-management/internal/domain"
)

// UserHandler administración de usuarios (solo manager) y consulta del propio.
type UserHandler struct {
	uc *auth.AuthUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *auth.AuthUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// CreateUser da de alta un usuario.
// POST /users (manager)
//
// Body: {username, password, role, department_id?, full_name};
// department_id obligatorio salvo role=manager; username único (409).
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("Invalid JSON body"))
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("password must be at least 8 characters"))
	}
	user, err := h.uc.CreateUser(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("username, password, full_name, a valid role and (for staff) department_id are required"))
		}
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ListUsers lista todos los usuarios.
// GET /users (manager)
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// UserInfo devuelve los datos del usuario autenticado.
// GET /user-info
func (h *UserHandler) UserInfo(c *fiber.Ctx) error {
	actor := GetActor(c)
	out, err := h.uc.UserInfo(c.Context(), actor.UserID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
