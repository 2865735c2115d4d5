package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deliveryhub/cmd"
	_ "deliveryhub/docs"
	httpadapter "deliveryhub/internal/adapters/in/http"
	"deliveryhub/internal/adapters/out/postgres"
	"deliveryhub/internal/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := telemetry.InitLogger(os.Stdout, slog.LevelInfo)

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, configs.OTelEndpoint, configs.ServiceVersion)
	if err != nil {
		log.Fatalf("init tracer provider: %v", err)
	}
	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider(configs.ServiceVersion)
	if err != nil {
		log.Fatalf("init meter provider: %v", err)
	}

	if configs.DBAutoMigrate {
		if err = postgres.MigrateUp(configs.DatabaseURL()); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}

	gormDB, sqlDB, err := postgres.Open(ctx, configs.DatabaseURL(), postgres.DefaultPoolConfig())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("compose application: %v", err)
	}

	orderMetrics, err := telemetry.NewOrderMetrics()
	if err != nil {
		log.Fatalf("register order metrics: %v", err)
	}

	e, err := httpadapter.NewEcho(
		httpadapter.NewServer(app.Handlers(), orderMetrics, logger),
		httpadapter.RouterConfig{
			Tokens:  app.Tokens(),
			Metrics: metricsHandler,
			Logger:  logger,
		},
	)
	if err != nil {
		log.Fatalf("build http server: %v", err)
	}
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware("deliveryhub")))

	go func() {
		logger.Info("http server starting", slog.String("port", configs.HTTPPort))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.Any("error", err))
	}
	if err = app.Close(); err != nil {
		logger.Error("close publisher", slog.Any("error", err))
	}
	if err = sqlDB.Close(); err != nil {
		logger.Error("close database", slog.Any("error", err))
	}
	if err = shutdownMeter(shutdownCtx); err != nil {
		logger.Error("meter provider shutdown", slog.Any("error", err))
	}
	if err = shutdownTracer(shutdownCtx); err != nil {
		logger.Error("tracer provider shutdown", slog.Any("error", err))
	}
}
