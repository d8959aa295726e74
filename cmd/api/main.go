package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gbgescom/supermarche-api/internal/application/auth"
	"github.com/gbgescom/supermarche-api/internal/application/bootstrap"
	"github.com/gbgescom/supermarche-api/internal/application/usecase"
	"github.com/gbgescom/supermarche-api/internal/infrastructure/postgres"
	"github.com/gbgescom/supermarche-api/internal/infrastructure/redisstore"
	httpRouter "github.com/gbgescom/supermarche-api/internal/interfaces/http"
	"github.com/gbgescom/supermarche-api/pkg/config"
	"github.com/gbgescom/supermarche-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient, err := redisstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	categorieRepo := postgres.NewCategorieRepository(pool)
	produitRepo := postgres.NewProduitRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	sessionStore := redisstore.NewSessionStore(redisClient)

	if cfg.App.SeedDefaults {
		seeder := bootstrap.NewSeeder(userRepo, categorieRepo, log)
		if err := seeder.Run(); err != nil {
			log.Fatal().Err(err).Msg("sembrar datos por defecto")
		}
	}

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	authUC := auth.NewAuthUseCase(userRepo, sessionStore, sessionTTL)
	produitUC := usecase.NewProduitUseCase(produitRepo, txRunner)

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
		AuthUC:        authUC,
		ProduitUC:     produitUC,
		SessionSecret: cfg.Session.Secret,
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
