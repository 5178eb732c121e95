package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/graderly/essay-engine/internal/config"
	"github.com/graderly/essay-engine/internal/monitoring"
	"github.com/graderly/essay-engine/internal/ratelimit"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.FromEnv()
	if issues := cfg.Validate(); len(issues) > 0 {
		for _, issue := range issues {
			slog.Error("Invalid configuration", "issue", issue)
		}
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)

	appMetrics := monitoring.NewMetrics()
	appLogger := monitoring.NewLogger()

	redisClient, err := ratelimit.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, 0)
	if err != nil {
		slog.Warn("Redis unavailable, continuing with in-memory rate limiting", "error", err)
	}
	defer redisClient.Close()

	server, err := newServer(cfg, appLogger, appMetrics, redisClient)
	if err != nil {
		slog.Error("Failed to build server", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.router,
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Port, "default_rubric", cfg.DefaultRubric)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// registerProfiling mounts pprof endpoints when profiling is enabled.
func registerProfiling(s *server) {
	if !s.cfg.EnableProfiling {
		return
	}
	slog.Info("Enabling performance profiling endpoints")
	s.router.GET("/debug/pprof/*filepath", wrapPprof(pprof.Index))
	s.router.GET("/debug/pprof/cmdline", wrapPprof(pprof.Cmdline))
	s.router.GET("/debug/pprof/profile", wrapPprof(pprof.Profile))
	s.router.GET("/debug/pprof/symbol", wrapPprof(pprof.Symbol))
	s.router.GET("/debug/pprof/trace", wrapPprof(pprof.Trace))
}

func wrapPprof(h http.HandlerFunc) gin.HandlerFunc {
	return gin.WrapF(h)
}
