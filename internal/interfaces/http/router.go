package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/analytics"
	"github.com/jhoicas/Comercio-api/internal/application/auth"
	"github.com/jhoicas/Comercio-api/internal/application/billing"
	"github.com/jhoicas/Comercio-api/internal/application/catalog"
	"github.com/jhoicas/Comercio-api/internal/application/ledger"
	"github.com/jhoicas/Comercio-api/internal/application/posting"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *catalog.ProductUseCase
	PartnerUC     *catalog.PartnerUseCase
	CreateInvoice *posting.CreateInvoiceUseCase
	CashPayment   *posting.CashPaymentUseCase
	InvoiceQuery  *billing.InvoiceQueryUseCase
	InvoicePDF    *billing.PDFUseCase
	Ledger        *ledger.LedgerUseCase
	Dashboard     *analytics.DashboardUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con rol de la tienda)
	protected := api.Group("/",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleVendedor),
	)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Partners: clientes y proveedores, su libro y sus pagos (protegido)
	partners := protected.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	ledgerHandler := NewLedgerHandler(deps.Ledger, deps.CashPayment)
	partners.Post("/", partnerHandler.Create)
	partners.Get("/", partnerHandler.List)
	partners.Get("/:id/ledger", ledgerHandler.GetLedger)
	partners.Post("/:id/payments", ledgerHandler.AddPayment)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoiceQuery, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
