package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/varunhirthik/warehouse-management/internal/application/auth"
	"github.com/varunhirthik/warehouse-management/internal/application/ledger"
	"github.com/varunhirthik/warehouse-management/internal/application/report"
	"github.com/varunhirthik/warehouse-management/internal/infrastructure/postgres"
	httpRouter "github.com/varunhirthik/warehouse-management/internal/interfaces/http"
	"github.com/varunhirthik/warehouse-management/pkg/config"
	"github.com/varunhirthik/warehouse-management/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	departmentRepo := postgres.NewDepartmentRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	logTransactionUC := ledger.NewLogTransactionUseCase(txRunner, productRepo, departmentRepo)
	dashboardUC := report.NewDashboardUseCase(departmentRepo, reportRepo)
	authUC := auth.NewAuthUseCase(userRepo, departmentRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LogTransaction: logTransactionUC,
		Dashboard:      dashboardUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	// Apagado limpio con SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("apagando servidor")
		_ = app.Shutdown()
	}()

	addr := cfg.HTTP.Addr()
	log.Info().Str("addr", addr).Msg("servidor HTTP escuchando")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
}
