package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	appauth "github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/Empleados-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Empleados-api/internal/interfaces/http"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Medio durable: documentos JSON bajo el directorio de datos
	store, err := localstore.New(afero.NewOsFs(), cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}

	employeeRepo := localstore.NewEmployeeRepository(store, log)
	sessionRepo := localstore.NewSessionRepository(store, log)

	// Siembra explícita en el arranque: después de esto, listar es lectura pura
	if err := employeeRepo.EnsureSeeded(); err != nil {
		log.Fatal().Err(err).Msg("sembrar directorio")
	}

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	dashboardUC := usecase.NewDashboardUseCase(employeeRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	exportUC := usecase.NewExportUseCase(employeeUC, pdfGenerator)
	authUC := appauth.NewAuthUseCase(sessionRepo, appauth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Empleados API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmployeeUC:  employeeUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
