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

	_ "github.com/malarguetech/taller-api/docs"
	"github.com/malarguetech/taller-api/internal/application/auth"
	"github.com/malarguetech/taller-api/internal/application/inventory"
	"github.com/malarguetech/taller-api/internal/application/taller"
	"github.com/malarguetech/taller-api/internal/application/usecase"
	"github.com/malarguetech/taller-api/internal/infrastructure/mail"
	infrapdf "github.com/malarguetech/taller-api/internal/infrastructure/pdf"
	"github.com/malarguetech/taller-api/internal/infrastructure/postgres"
	"github.com/malarguetech/taller-api/internal/infrastructure/qr"
	httpRouter "github.com/malarguetech/taller-api/internal/interfaces/http"
	"github.com/malarguetech/taller-api/pkg/config"
	"github.com/malarguetech/taller-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	deviceRepo := postgres.NewDeviceRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	orderPartRepo := postgres.NewOrderPartRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledger := inventory.NewStockLedger(txRunner)
	notifier := mail.NewSMTPNotifier(cfg.SMTP)
	if !notifier.Enabled() {
		log.Warn().Msg("SMTP sin configurar: las notificaciones de estado se descartan")
	}

	customerUC := usecase.NewCustomerUseCase(customerRepo)
	deviceUC := usecase.NewDeviceUseCase(deviceRepo, customerRepo)
	partUC := usecase.NewPartUseCase(partRepo, movementRepo)
	dashboardUC := usecase.NewDashboardUseCase(orderRepo, partRepo)

	orderUC := taller.NewOrderUseCase(
		txRunner, orderRepo, orderPartRepo, partRepo, deviceRepo, customerRepo,
		ledger, notifier, cfg.Site, log.Component("ordenes"),
	)

	receiptUC := taller.NewReceiptUseCase(
		orderRepo, orderPartRepo, partRepo, deviceRepo, customerRepo,
		infrapdf.NewMarotoReceiptGenerator(cfg.App.Name),
		qr.NewGenerator(),
		cfg.Site,
	)

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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		DeviceUC:    deviceUC,
		PartUC:      partUC,
		DashboardUC: dashboardUC,
		Ledger:      ledger,
		OrderUC:     orderUC,
		ReceiptUC:   receiptUC,
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
