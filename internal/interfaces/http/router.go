package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC  *usecase.EmployeeUseCase
	DashboardUC *usecase.DashboardUseCase
	ExportUC    *usecase.ExportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público; logout es idempotente)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token y sesión abierta)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	protected.Get("/auth/me", authHandler.Me)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	exportHandler := NewExportHandler(deps.ExportUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	// La ruta estática va antes que :id para que Fiber no la capture como parámetro
	employees.Get("/export/pdf", exportHandler.RosterPDF)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Patch("/:id/status", employeeHandler.SetStatus)
	employees.Delete("/:id", employeeHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
