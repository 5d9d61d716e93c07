package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Comercio-api/internal/application/analytics"
	"github.com/jhoicas/Comercio-api/internal/application/auth"
	"github.com/jhoicas/Comercio-api/internal/application/billing"
	"github.com/jhoicas/Comercio-api/internal/application/catalog"
	appledger "github.com/jhoicas/Comercio-api/internal/application/ledger"
	"github.com/jhoicas/Comercio-api/internal/application/posting"
	infrapdf "github.com/jhoicas/Comercio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Comercio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Comercio-api/internal/interfaces/http"
	"github.com/jhoicas/Comercio-api/pkg/config"
	"github.com/jhoicas/Comercio-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := catalog.NewProductUseCase(productRepo)
	partnerUC := catalog.NewPartnerUseCase(partnerRepo)
	createInvoiceUC := posting.NewCreateInvoiceUseCase(txRunner)
	cashPaymentUC := posting.NewCashPaymentUseCase(partnerRepo, transactionRepo)
	invoiceQueryUC := billing.NewInvoiceQueryUseCase(invoiceRepo, partnerRepo)
	ledgerUC := appledger.NewLedgerUseCase(partnerRepo, transactionRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, partnerRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		PartnerUC:     partnerUC,
		CreateInvoice: createInvoiceUC,
		CashPayment:   cashPaymentUC,
		InvoiceQuery:  invoiceQueryUC,
		InvoicePDF:    invoicePDFUC,
		Ledger:        ledgerUC,
		Dashboard:     dashboardUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
