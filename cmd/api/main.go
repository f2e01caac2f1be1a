package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"psdgrader/docs"
	"psdgrader/internal/analysis"
	"psdgrader/internal/archive"
	"psdgrader/internal/config"
	"psdgrader/internal/database"
	"psdgrader/internal/database/migration"
	handlers "psdgrader/internal/http/handler"
	"psdgrader/internal/http/middleware"
	"psdgrader/internal/metrics"
	"psdgrader/internal/otel"
	"psdgrader/internal/pattern"
	"psdgrader/internal/psd"
	"psdgrader/internal/repository/postgres"
	"psdgrader/internal/scoring"
	"psdgrader/internal/service"
	"psdgrader/internal/storage"
)

// @title PSD Grader API
// @version 1.0
// @description Grades Photoshop documents against instructor criteria.
// @BasePath /
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := run(logger); err != nil {
		logger.Error("server_failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, otel.SettingsFromEnv(), logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}
	gradingMetrics, err := metrics.NewGrading(reg)
	if err != nil {
		return err
	}

	presets, err := config.LoadPresets(cfg.Grader.PresetsPath)
	if err != nil {
		return err
	}

	matcher, err := pattern.NewMatcher(cfg.Grader.PatternCacheSize)
	if err != nil {
		return err
	}
	analyzer := analysis.NewAnalyzer(psd.NewParser(psd.OOVDecoder{}, psd.WithTimeout(cfg.Grader.DecodeTimeout())))
	expander := archive.NewExpander(archive.ZipReader{}, analyzer, cfg.Grader.MaxEntryBytes(),
		archive.WithWorkers(cfg.Grader.Workers))
	grader := service.NewGraderService(analyzer, expander, scoring.NewEngine(matcher), service.GraderOptions{
		Workers:       cfg.Grader.Workers,
		PassThreshold: cfg.Grader.PassThreshold,
		Logger:        logger,
		Metrics:       gradingMetrics,
	})

	deps := handlers.Dependencies{Grader: grader, Matcher: matcher, Presets: presets}
	if cfg.ArchiveEnabled() {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()
		reg.MustRegister(collectors.NewDBStatsCollector(db, cfg.Database.Name))

		if err := migration.EnsureMigrated(ctx, db, logger); err != nil {
			return err
		}

		objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
		deps.DB = db
		deps.Batches = service.NewBatchService(objStore, postgres.NewBatchPostgres(db))
		logger.Info("archive_enabled", "bucket", cfg.MinIO.Bucket, "database", cfg.Database.Name)
	} else {
		logger.Info("archive_disabled")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.Grader.MaxUploadBytes(),
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	app.Use(httpMetrics.Handler())
	app.Use(middleware.Logger())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	handlers.RegisterRoutes(app, deps)

	registerSwagger(app, cfg)

	go func() {
		<-ctx.Done()
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	logger.Info("server_starting", "addr", ":"+cfg.Port, "workers", cfg.Grader.Workers, "presets", len(presets))
	return app.Listen(":" + cfg.Port)
}

// registerSwagger serves the API docs for the configured public host and scheme.
func registerSwagger(app *fiber.App, cfg *config.AppConfig) {
	docs.SwaggerInfo.Host = cfg.AppHost
	docs.SwaggerInfo.Schemes = []string{cfg.AppScheme}
	app.Get("/swagger/*", swagger.HandlerDefault)
}
