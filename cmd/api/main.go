package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/oroplan-admin/internal/application/auth"
	"github.com/tu-usuario/oroplan-admin/internal/application/reports"
	"github.com/tu-usuario/oroplan-admin/internal/cache"
	infrapdf "github.com/tu-usuario/oroplan-admin/internal/infrastructure/pdf"
	"github.com/tu-usuario/oroplan-admin/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/oroplan-admin/internal/interfaces/http"
	"github.com/tu-usuario/oroplan-admin/internal/notifier"
	"github.com/tu-usuario/oroplan-admin/pkg/config"
	"github.com/tu-usuario/oroplan-admin/pkg/logger"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	gateways := reports.Gateways{
		Customers:   postgres.NewCustomerRepository(pool),
		Staff:       postgres.NewStaffRepository(pool),
		Schemes:     postgres.NewSchemeRepository(pool),
		Payments:    postgres.NewPaymentRepository(pool),
		Withdrawals: postgres.NewWithdrawalRepository(pool),
		Rates:       postgres.NewMarketRateRepository(pool),
		Whitelist:   postgres.NewWhitelistRepository(pool),
	}

	// Caché y notifier explícitos e inyectados, uno por proceso.
	reportCache := cache.New(log.Component("cache"))
	changeNotifier := notifier.New(cfg.Report.EventBuffer, log.Component("notifier"))
	defer changeNotifier.Close()

	reportSvc := reports.NewService(
		gateways,
		reportCache,
		reports.TTLs{
			Dashboard:   cfg.Report.DashboardTTL,
			MarketRates: cfg.Report.MarketRatesTTL,
		},
		infrapdf.NewMarotoPDFGenerator(),
		log.Component("reports"),
	)
	reportSvc.BindInvalidation(changeNotifier)

	// Listener LISTEN/NOTIFY: los triggers de la DB anuncian la colección
	// modificada y el notifier invalida los reportes que dependen de ella.
	listener := postgres.NewChangeListener(
		cfg.DB.ConnectionString(),
		cfg.Report.ListenChannel,
		changeNotifier.Notify,
		log.Component("listener"),
	)
	go func() {
		if err := listener.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("listener de cambios finalizado")
		}
	}()

	authUC := auth.NewAuthUseCase(gateways.Whitelist, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "OroPlan Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Reports:   reportSvc,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
		Log:       log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop() // detiene el listener de cambios

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
