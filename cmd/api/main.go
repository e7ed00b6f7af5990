package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Farmacia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/records"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/scanner"
	httpRouter "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
	"github.com/jhoicas/Farmacia-api/pkg/config"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
	"github.com/jhoicas/Farmacia-api/pkg/metrics"
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

	store, err := postgres.NewDocumentStore(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar document store")
	}

	m := metrics.New(cfg.App.Name)

	userRepo := records.NewUserAdapter(store, m)
	inventoryRepo := records.NewInventoryAdapter(store, m)
	employeeRepo := records.NewEmployeeAdapter(store, m)
	taskRepo := records.NewTaskAdapter(store, m)
	activityRepo := records.NewActivityAdapter(store, m)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	activityUC := usecase.NewActivityUseCase(activityRepo, log, cfg.App.Locale)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, activityUC, scanner.NewNoHardware(), cfg.App.Locale)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, activityUC, cfg.App.Locale)
	taskUC := usecase.NewTaskUseCase(taskRepo, activityUC, cfg.App.Locale)

	// PDF: reporte de vencimientos para descarga desde el panel
	reportGen := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	expirationUC := usecase.NewExpirationUseCase(inventoryRepo, reportGen)
	dashboardUC := usecase.NewDashboardUseCase(inventoryRepo, taskRepo, activityRepo, cfg.App.Locale)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		m.HTTPRequests.WithLabelValues(c.Route().Path, strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FarmaTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(m.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		InventoryUC:  inventoryUC,
		EmployeeUC:   employeeUC,
		TaskUC:       taskUC,
		ActivityUC:   activityUC,
		ExpirationUC: expirationUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
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
