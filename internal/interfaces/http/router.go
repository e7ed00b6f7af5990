package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	InventoryUC  *usecase.InventoryUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	TaskUC       *usecase.TaskUseCase
	ActivityUC   *usecase.ActivityUseCase
	ExpirationUC *usecase.ExpirationUseCase
	DashboardUC  *usecase.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	actors := actorResolver{auth: deps.AuthUC}

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.ActivityUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sesión (protegido)
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/profile", authHandler.UpdateProfile)
	protected.Post("/auth/logout", authHandler.Logout)

	// Inventario (protegido; borrar es solo admin)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, actors)
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Post("/scan", inventoryHandler.Scan)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", RequireRole("admin"), inventoryHandler.Delete)

	// Empleados (protegido, solo alta y listado)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, actors)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)

	// Tareas (protegido; borrar es solo admin)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC, actors)
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Patch("/:id/status", taskHandler.ChangeStatus)
	tasks.Delete("/:id", RequireRole("admin"), taskHandler.Delete)

	// Bitácora (protegido)
	activity := protected.Group("/activity")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activity.Get("/", activityHandler.List)
	activity.Get("/export", activityHandler.Export)

	// Vencimientos (protegido)
	expirations := protected.Group("/expirations")
	expirationHandler := NewExpirationHandler(deps.ExpirationUC)
	expirations.Get("/", expirationHandler.List)
	expirations.Get("/report", expirationHandler.Report)

	// Tablero (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
