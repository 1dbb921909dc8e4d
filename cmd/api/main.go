package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/serenitylabs/medspa-scheduler/internal/cache"
	"github.com/serenitylabs/medspa-scheduler/internal/config"
	dbpkg "github.com/serenitylabs/medspa-scheduler/internal/db"
	"github.com/serenitylabs/medspa-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	setupLogger(cfg.LogLevel)

	db, err := dbpkg.Open(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer dbpkg.Close(db)

	var cacheClient *cache.Client
	if cfg.RedisURL != "" {
		cacheClient, err = cache.New(cfg.RedisURL)
		if err != nil {
			// The cache is an optimization; run without it.
			slog.Warn("redis unavailable, continuing without cache", "error", err)
			cacheClient = nil
		}
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		if err := dbpkg.Ping(db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cacheClient, cfg)

	slog.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
