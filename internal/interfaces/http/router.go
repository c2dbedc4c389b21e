package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/choperia-api/internal/application/analytics"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/application/auth"
	"github.com/seu-usuario/choperia-api/internal/application/stock"
	"github.com/seu-usuario/choperia-api/internal/application/usecase"
	"github.com/seu-usuario/choperia-api/internal/infrastructure/pdf"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CategoryUC  *usecase.CategoryUseCase
	EventUC     *usecase.EventUseCase
	EntryUC     *usecase.EntryUseCase
	OutputUC    *usecase.OutputUseCase
	StockUC     *stock.UseCase
	DashboardUC *analytics.DashboardUseCase
	Report      *pdf.MonthlyReportGenerator
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Remoções exigem gerente ou admin
	manager := RequireLevel(entity.LevelManager, entity.LevelAdmin)

	// Categorias
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Patch("/:id/status", categoryHandler.ToggleStatus)
	categories.Delete("/:id", manager, categoryHandler.Delete)

	// Eventos
	events := protected.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.List)
	events.Get("/:id", eventHandler.GetByID)
	events.Put("/:id", eventHandler.Update)
	events.Delete("/:id", manager, eventHandler.Delete)

	// Entradas (receitas)
	entries := protected.Group("/entries")
	entryHandler := NewEntryHandler(deps.EntryUC)
	entries.Post("/", entryHandler.Create)
	entries.Get("/", entryHandler.List)
	entries.Get("/:id", entryHandler.GetByID)
	entries.Put("/:id", entryHandler.Update)
	entries.Delete("/:id", manager, entryHandler.Delete)

	// Saídas (despesas)
	outputs := protected.Group("/outputs")
	outputHandler := NewOutputHandler(deps.OutputUC)
	outputs.Post("/", outputHandler.Create)
	outputs.Get("/", outputHandler.List)
	outputs.Get("/:id", outputHandler.GetByID)
	outputs.Put("/:id", outputHandler.Update)
	outputs.Delete("/:id", manager, outputHandler.Delete)

	// Estoque
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/", stockHandler.Create)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/:id", stockHandler.GetByID)
	stockGroup.Put("/:id", stockHandler.Update)
	stockGroup.Delete("/:id", manager, stockHandler.Delete)
	stockGroup.Post("/:id/exits", stockHandler.RegisterExit)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Report)
	dashboard.Get("/", dashboardHandler.GetDashboard)
	dashboard.Get("/report", dashboardHandler.GetMonthlyReport)
}
