package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/varunhirthik/warehouse-management/internal/application/auth"
	"github.com/varunhirthik/warehouse-management/internal/application/dto"
	"github.com/varunhirthik/warehouse-management/internal/application/ledger"
	"github.com/varunhirthik/warehouse-management/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LogTransaction *ledger.LogTransactionUseCase
	Dashboard      *report.DashboardUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
//
// El middleware de auth se ata ruta por ruta (no a un grupo "/") para que
// las rutas desconocidas caigan en el fallback 404 del contrato en lugar
// de responder 401.
func Router(app *fiber.App, deps RouterDeps) {
	authRequired := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/login", authHandler.Login)

	// Ledger (protegido; la política por departamento se aplica en el caso de uso)
	transactionHandler := NewTransactionHandler(deps.LogTransaction)
	app.Post("/log_transaction", authRequired, transactionHandler.LogTransaction)

	// Reportes (protegido)
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	app.Get("/dashboard", authRequired, dashboardHandler.GetDashboard)
	app.Get("/products/:department_id", authRequired, dashboardHandler.GetProductsByDepartment)

	// Usuarios
	userHandler := NewUserHandler(deps.AuthUC)
	app.Get("/user-info", authRequired, userHandler.UserInfo)
	app.Get("/users", authRequired, RequireManager(), userHandler.ListUsers)
	app.Post("/users", authRequired, RequireManager(), userHandler.CreateUser)

	// Ruta no registrada → 404 con el cuerpo del contrato.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("Endpoint not found"))
	})
}
