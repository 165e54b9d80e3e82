package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"makerskills-api/core/cache"
	"makerskills-api/core/config"
	"makerskills-api/core/database"
	"makerskills-api/core/logger"
	"makerskills-api/core/middleware"
	"makerskills-api/core/storage"
	"makerskills-api/core/worker"
	"makerskills-api/modules/auth"
	"makerskills-api/modules/blogs"
	"makerskills-api/modules/bootcamps"
	"makerskills-api/modules/categories"
	"makerskills-api/modules/events"
	"makerskills-api/modules/herosection"
	"makerskills-api/modules/offerings"
	"makerskills-api/modules/orders"
	"makerskills-api/modules/participants"
	"makerskills-api/modules/partners"
	"makerskills-api/modules/products"
	"makerskills-api/modules/projects"
	"makerskills-api/modules/reviews"
	"makerskills-api/modules/workshops"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}

	// Redis backs login throttling, the token blacklist, and the
	// reconciliation worker. The API stays up without it.
	c, err := cache.InitCache(cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, login throttling and background jobs disabled", "error", err)
		c = nil
	}

	store, err := storage.New(cfg.Upload)
	if err != nil {
		return fmt.Errorf("failed to init upload storage: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(requestLogger())

	if local, ok := store.(interface{ BaseDir() string }); ok {
		e.Static("/uploads", local.BaseDir())
	}

	mw := middleware.NewMiddleware(c)

	auth.Init(e, db, c, mw)
	participants.Init(e, db, mw)
	events.Init(e, db, mw, store)
	workshops.Init(e, db, mw, store)
	categories.Init(e, db, mw)
	products.Init(e, db, mw, store)
	orders.Init(e, db, mw)
	bootcamps.Init(e, db, mw, store)
	projects.Init(e, db, mw)
	offerings.Init(e, db, mw)
	blogs.Init(e, db, mw, store)
	reviews.Init(e, db, mw, store)
	partners.Init(e, db, mw, store)
	herosection.Init(e, db, mw, store)

	var w *worker.Worker
	if c != nil {
		w, err = worker.Start(&db, cfg.Redis)
		if err != nil {
			logger.Warn("Failed to start background worker", "error", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Info("Server starting", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("Shutting down", "signal", sig.String())
	}

	if w != nil {
		w.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return err
		}
	}
}
