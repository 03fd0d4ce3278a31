package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bizness/bizness-api/internal/application/analytics"
	"github.com/bizness/bizness-api/internal/application/auth"
	"github.com/bizness/bizness-api/internal/application/pricing"
	"github.com/bizness/bizness-api/internal/application/report"
	"github.com/bizness/bizness-api/internal/application/usecase"
	"github.com/bizness/bizness-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	BusinessUC    *usecase.BusinessUseCase
	ProductUC     *usecase.ProductUseCase
	MaterialUC    *usecase.MaterialUseCase
	TodoUC        *usecase.TodoUseCase
	FileUC        *usecase.FileUseCase
	TransactionUC *usecase.TransactionUseCase
	OverviewUC    *analytics.OverviewUseCase
	ReportUC      *report.ReportUseCase
	CalculatorUC  *pricing.CalculatorUseCase
	AIUC          *usecase.AIUseCase
	JWTSecret     string
	ServiceName   string
	AIRateLimit   RateLimit // compartido por /ai y el cálculo de HPP
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/me", authHandler.Me)

	// Admin
	adminHandler := NewAdminHandler(deps.UserUC)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Patch("/users/:id/status", adminHandler.UpdateUserStatus)

	// Businesses
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	protected.Get("/businesses", businessHandler.List)
	protected.Post("/businesses", businessHandler.Create)

	biz := protected.Group("/businesses/:businessID", RequireBusinessAccess(deps.BusinessUC))
	biz.Get("/", businessHandler.Get)
	biz.Put("/", businessHandler.Update)
	biz.Delete("/", businessHandler.Delete)

	// Products (export.csv antes de /:id)
	productHandler := NewProductHandler(deps.ProductUC, deps.ReportUC)
	products := biz.Group("/products")
	products.Get("/export.csv", productHandler.ExportCSV)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.Get)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Raw materials
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials := biz.Group("/materials")
	materials.Get("/summary", materialHandler.Summary)
	materials.Get("/", materialHandler.List)
	materials.Post("/", materialHandler.Create)
	materials.Get("/:id", materialHandler.Get)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)
	materials.Post("/:id/restock", materialHandler.Restock)

	// To-do
	todoHandler := NewTodoHandler(deps.TodoUC)
	todos := biz.Group("/todos")
	todos.Get("/", todoHandler.List)
	todos.Post("/", todoHandler.Create)
	todos.Put("/:id", todoHandler.Update)
	todos.Delete("/:id", todoHandler.Delete)
	todos.Patch("/:id/toggle", todoHandler.Toggle)

	// Files
	fileHandler := NewFileHandler(deps.FileUC)
	files := biz.Group("/files")
	files.Get("/", fileHandler.List)
	files.Post("/", fileHandler.Create)
	files.Delete("/:id", fileHandler.Delete)

	// Transactions
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions := biz.Group("/transactions")
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)

	// Overview y reportes
	analyticsHandler := NewAnalyticsHandler(deps.OverviewUC, deps.ReportUC)
	biz.Get("/overview", analyticsHandler.Overview)
	reports := biz.Group("/reports")
	reports.Get("/financial", analyticsHandler.FinancialReport)
	reports.Get("/products", analyticsHandler.ProductPerformance)
	reports.Get("/inventory.pdf", analyticsHandler.InventoryPDF)

	aiLimit := RateLimitByUser(deps.AIRateLimit)

	// Herramientas de precio y HPP
	pricingHandler := NewPricingHandler(deps.CalculatorUC)
	tools := protected.Group("/tools")
	tools.Post("/pricing/selling-price", pricingHandler.SellingPrice)
	tools.Post("/pricing/margin", pricingHandler.Margin)
	tools.Post("/hpp/calculate", aiLimit, pricingHandler.Calculate)
	tools.Post("/hpp/report.pdf", aiLimit, pricingHandler.ReportPDF)

	// IA
	aiHandler := NewAIHandler(deps.AIUC)
	ai := protected.Group("/ai", aiLimit)
	ai.Post("/chat", aiHandler.Chat)
	ai.Post("/ocr", aiHandler.OCR)
}
