package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/opwolken/facturatie-api/internal/application/auth"
	"github.com/opwolken/facturatie-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DashboardUC *usecase.DashboardUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	CustomerUC  *usecase.CustomerUseCase
	SettingsUC  *usecase.SettingsUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require a Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protected)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.GetDashboard)
	dashboard.Get("/financieel", dashboardHandler.GetFinancial)

	// Invoices (protected)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Post("/:id/send", invoiceHandler.Send)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id/ubl", invoiceHandler.ExportUBL)

	// Expenses (protected)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Post("/import", expenseHandler.Import)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Customers (protected)
	klanten := protected.Group("/klanten")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	klanten.Post("/", customerHandler.Create)
	klanten.Get("/", customerHandler.List)
	klanten.Get("/:id", customerHandler.GetByID)
	klanten.Put("/:id", customerHandler.Update)
	klanten.Delete("/:id", customerHandler.Delete)

	// Settings (protected)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Save)
}
