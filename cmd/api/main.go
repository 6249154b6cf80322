package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dashboard-export-service/internal/config"
	"dashboard-export-service/internal/logging"
	pg "dashboard-export-service/internal/platform/postgres"
	"dashboard-export-service/internal/telemetry"

	eventsHttp "dashboard-export-service/internal/events/adapters/http/fiber"
	eventsRepoPg "dashboard-export-service/internal/events/adapters/postgres"
	eventsUsecase "dashboard-export-service/internal/events/core/usecase"

	metricsHttp "dashboard-export-service/internal/metrics/adapters/http/fiber"
	metricsRepoPg "dashboard-export-service/internal/metrics/adapters/postgres"
	metricsUsecase "dashboard-export-service/internal/metrics/core/usecase"

	chartHttp "dashboard-export-service/internal/chart/adapters/http/fiber"
	chartUsecase "dashboard-export-service/internal/chart/core/usecase"

	"dashboard-export-service/internal/export/adapters/countries"
	exportHttp "dashboard-export-service/internal/export/adapters/http/fiber"
	"dashboard-export-service/internal/export/adapters/outbox"
	exportUsecase "dashboard-export-service/internal/export/core/usecase"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "dashboard-export-service/docs"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	// DB connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.QueryTimeout)
	sqlDB, err := pg.Open(ctx, cfg.Database.DSN, pg.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	cancel()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer sqlDB.Close()

	db := pg.NewDB(sqlDB, cfg.Database.QueryTimeout)

	if cfg.Database.Migrate {
		if err := db.Migrate(context.Background()); err != nil {
			logging.Fatal().Err(err).Msg("failed to apply schema")
		}
	}

	rec := telemetry.New()

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(db)
	metricsRepository := metricsRepoPg.NewMetricsRepository(db)

	// Usecases
	storeEventUC := eventsUsecase.NewStoreEventUseCase(eventRepository)
	getMetricsUC := metricsUsecase.NewGetMetricsUseCase(metricsRepository)
	buildChartUC := chartUsecase.NewBuildChartUseCase(getMetricsUC, rec)
	exportUC := exportUsecase.NewExportUseCase(
		getMetricsUC,
		countries.NewNamer(),
		outbox.NewDir(cfg.Export.OutboxDir),
		rec,
		exportUsecase.Options{
			FilenamePrefix: cfg.Export.FilenamePrefix,
			DefaultLocale:  cfg.Export.DefaultLocale,
		},
	)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "dashboard-export-service",
		BodyLimit:             cfg.Server.BodyLimit,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
		Immutable:             true,
	})
	app.Use(recover.New())
	app.Use(logging.Middleware())
	app.Use(rec.Middleware())

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(storeEventUC)
	app.Post("/events", eventsHandler.CreateEvent)
	app.Post("/events/bulk", eventsHandler.BulkCreateEvents)

	// metrics endpoints
	metricsHandler := metricsHttp.NewMetricsHandler(getMetricsUC)
	app.Get("/projects/:pid/timeseries", metricsHandler.GetTimeSeries)
	app.Get("/projects/:pid/breakdown", metricsHandler.GetBreakdown)

	// chart endpoint
	chartHandler := chartHttp.NewChartHandler(buildChartUC)
	app.Get("/projects/:pid/chart", chartHandler.GetChart)

	// export endpoints
	exportHandler := exportHttp.NewExportHandler(exportUC)
	app.Get("/projects/:pid/export", exportHandler.ExportProject)
	app.Post("/projects/:pid/export/async", exportHandler.ExportProjectAsync)
	app.Post("/export", exportHandler.ExportBreakdown)

	// Ops
	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := sqlDB.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics/prometheus", rec.Handler())

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			logging.Error().Err(err).Msg("fiber stopped")
		}
	}()

	logging.Info().Str("addr", cfg.Server.Addr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logging.Info().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("fiber shutdown error")
	}

	logging.Info().Msg("server exiting")
}
