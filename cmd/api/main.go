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
	"github.com/opwolken/facturatie-api/internal/application/auth"
	"github.com/opwolken/facturatie-api/internal/application/usecase"
	infraemail "github.com/opwolken/facturatie-api/internal/infrastructure/email"
	infrapdf "github.com/opwolken/facturatie-api/internal/infrastructure/pdf"
	"github.com/opwolken/facturatie-api/internal/infrastructure/postgres"
	"github.com/opwolken/facturatie-api/internal/infrastructure/ubl"
	httpRouter "github.com/opwolken/facturatie-api/internal/interfaces/http"
	"github.com/opwolken/facturatie-api/pkg/config"
	"github.com/opwolken/facturatie-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("configuratie laden: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("applicatie starten")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("verbinding met PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, cfg.Auth, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	ublExporter := ubl.NewExporter()

	// Mailer stays nil without SMTP settings; sending then fails with a clear
	// validation error instead of a dial timeout.
	var mailer usecase.InvoiceMailer
	if cfg.SMTP.Enabled() {
		mailer = infraemail.NewSMTPMailer(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP niet geconfigureerd, facturen versturen is uitgeschakeld")
	}

	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, customerRepo, settingsRepo, pdfGenerator, mailer, ublExporter)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUC := usecase.NewDashboardUseCase(invoiceRepo, expenseRepo, settingsRepo, cfg.Tax.Factor)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Facturatie API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DashboardUC: dashboardUC,
		InvoiceUC:   invoiceUC,
		ExpenseUC:   expenseUC,
		CustomerUC:  customerUC,
		SettingsUC:  settingsUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP-server gestopt")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("stopsignaal ontvangen, server afsluiten...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server afsluiten")
	}

	log.Info().Msg("applicatie gestopt")
}
