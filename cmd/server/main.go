package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expenses-backend/internal/config"
	"expenses-backend/internal/database"
	"expenses-backend/internal/expense"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("database init failed", "error", err)
		os.Exit(1)
	}

	app := newApp(cfg, db)

	go func() {
		slog.Info("server listening", "port", cfg.HTTPPort)
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newApp(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	// Fiber refuses credentials together with a wildcard origin, so
	// they are only allowed for an explicit origin list.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: cfg.CORSOrigins != "*",
	}))

	app.Get("/healthz", healthHandler(db))

	app.Get("/expenses", expense.ListExpensesHandler(db))
	app.Post("/expenses", expense.CreateExpenseHandler(db))
	app.Delete("/expenses/:expense_id", expense.DeleteExpenseHandler(db))

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{"detail": e.Message})
	}
	slog.Error("unexpected error", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": "Internal server error",
	})
}

func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Database unavailable")
		}
		if err := sqlDB.PingContext(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Database unavailable")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
