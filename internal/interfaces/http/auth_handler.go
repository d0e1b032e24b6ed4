package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/varunhirthik/warehouse-management/internal/application/auth"
	"github.com/varunhirthik/warehouse-management/internal/application/dto"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica username/password y devuelve un JWT.
// POST /login
//
// 200 {token, user}; 401 credenciales inválidas (sin distinguir usuario
// inexistente de contraseña incorrecta).
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("Invalid JSON body"))
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("username and password are required"))
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
