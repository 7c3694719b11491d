package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ErlanBelekov/period/clock"
	"github.com/ErlanBelekov/period/config"
	"github.com/ErlanBelekov/period/humanize"
	"github.com/ErlanBelekov/period/internal/health"
	ctxlog "github.com/ErlanBelekov/period/internal/log"
	"github.com/ErlanBelekov/period/internal/metrics"
	httptransport "github.com/ErlanBelekov/period/internal/transport/http"
	"github.com/ErlanBelekov/period/internal/transport/http/handler"
	"github.com/ErlanBelekov/period/relative"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := ctxlog.New(cfg.Env, cfg.SlogLevel(), os.Stdout)

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	if !cfg.AuthEnabled() {
		logger.Warn("JWT_SECRET not set, /v1 is unauthenticated")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	wall := clock.System{}
	engine := relative.NewEngine(wall)
	humanizer := humanize.New(wall)

	offsetHandler := handler.NewOffsetHandler(engine, humanizer, logger)
	humanizeHandler := handler.NewHumanizeHandler(humanizer)
	calendarHandler := handler.NewCalendarHandler(wall)

	metrics.Register()
	checker := health.NewChecker(map[string]health.Pinger{
		"clock": health.ClockPinger{Clock: wall},
	}, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, offsetHandler, humanizeHandler, calendarHandler, []byte(cfg.JWTSecret)),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}
