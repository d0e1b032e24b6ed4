package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/varunhirthik/warehouse-management/internal/application/dto"
	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
	"github.com/varunhirthik/warehouse-management/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUserID       = "user_id"
	LocalRole         = "role"
	LocalDepartmentID = "department_id"
)

// AuthMiddleware valida el Bearer Token JWT y deja user_id, role y
// department_id en c.Locals para que los handlers construyan el Actor.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("Authentication required"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("Authorization header must be 'Bearer <token>'"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("Authentication required"))
		}
		userID, role, departmentID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("Invalid or expired token"))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		c.Locals(LocalDepartmentID, departmentID)
		return c.Next()
	}
}

// RequireManager autoriza solo a usuarios con rol manager.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireManager() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if actor.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("Authentication required"))
		}
		if !actor.IsManager() {
			return c.Status(fiber.StatusForbidden).JSON(dto.NewError("Manager role required"))
		}
		return c.Next()
	}
}

// GetActor reconstruye el Actor desde los locals (después del middleware de auth).
// La política de acceso queda así como función pura de (actor, departamento),
// sin identidad global implícita.
func GetActor(c *fiber.Ctx) entity.Actor {
	actor := entity.Actor{}
	if v, ok := c.Locals(LocalUserID).(int64); ok {
		actor.UserID = v
	}
	if v, ok := c.Locals(LocalRole).(string); ok {
		actor.Role = v
	}
	if v, ok := c.Locals(LocalDepartmentID).(int64); ok {
		actor.DepartmentID = v
	}
	return actor
}
