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

	"github.com/puntoclave/retail-api/internal/application/auth"
	"github.com/puntoclave/retail-api/internal/application/caja"
	"github.com/puntoclave/retail-api/internal/application/inventory"
	"github.com/puntoclave/retail-api/internal/application/usecase"
	infrapdf "github.com/puntoclave/retail-api/internal/infrastructure/pdf"
	"github.com/puntoclave/retail-api/internal/infrastructure/postgres"
	httpapi "github.com/puntoclave/retail-api/internal/interfaces/http"
	"github.com/puntoclave/retail-api/pkg/config"
	"github.com/puntoclave/retail-api/pkg/logger"
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

	branchRepo := postgres.NewBranchRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	cashRepo := postgres.NewCashSessionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	authUC := auth.NewUseCase(userRepo, sessionRepo, sessionTTL)
	inventoryUC := inventory.NewUseCase(stockRepo, movementRepo, transferRepo, productRepo, branchRepo, txRunner)
	cajaUC := caja.NewUseCase(cashRepo, infrapdf.NewCloseReceiptGenerator())
	branchUC := usecase.NewBranchUseCase(branchRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	userUC := usecase.NewUserUseCase(userRepo, branchRepo)

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Ping a la base sin exponer detalles del error.
	app.Get("/test-db", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			log.Error().Err(err).Msg("ping a PostgreSQL")
			return c.JSON(fiber.Map{"ok": false})
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	router := &httpapi.Router{
		Auth:     httpapi.NewAuthHandler(authUC, cfg.Session.CookieName, sessionTTL),
		Stock:    httpapi.NewStockHandler(inventoryUC),
		Movement: httpapi.NewMovementHandler(inventoryUC),
		Transfer: httpapi.NewTransferHandler(inventoryUC),
		Caja:     httpapi.NewCajaHandler(cajaUC),
		User:     httpapi.NewUserHandler(userUC),
		Branch:   httpapi.NewBranchHandler(branchUC),
		Product:  httpapi.NewProductHandler(productUC),
		Session:  httpapi.SessionMiddleware(authUC, cfg.Session.CookieName),
	}
	router.Register(app)

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
