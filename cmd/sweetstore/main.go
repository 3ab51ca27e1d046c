package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"sweetbliss/internal/config"
	"sweetbliss/internal/http/handlers"
	applog "sweetbliss/internal/log"
	"sweetbliss/internal/repos"
)

func main() {
	cfg := config.Load()

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	deps := handlers.NewStoreDeps(db)

	api := app.Group("/api")
	api.Get("/items", deps.Items.List)
	api.Get("/items/low-stock", deps.Items.LowStock)
	api.Get("/items/:id", deps.Items.Get)
	api.Post("/items", deps.Items.Create)
	api.Put("/items/:id", deps.Items.Update)
	api.Delete("/items/:id", deps.Items.Delete)
	api.Get("/dashboard/stats", deps.Items.Stats)
	api.Get("/categories", deps.Categories.List)
	api.Get("/categories/:id", deps.Categories.Get)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(":" + cfg.StorePort))
}
