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
	"sweetbliss/internal/gateway"
	"sweetbliss/internal/http/handlers"
	applog "sweetbliss/internal/log"
	"sweetbliss/internal/source"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	client := gateway.New(cfg.BackendURL, cfg.UpstreamTimeout)

	var src source.DataSource = &source.Remote{Client: client}
	if cfg.StaticFallback {
		src = &source.Fallback{Primary: src, Standby: source.Static{}}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and answer generically; internals stay server-side
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))

	deps := handlers.NewGatewayDeps(client, src)

	// Item proxy (pass-through to the store)
	app.Get("/items", deps.Proxy.List)
	app.Post("/items", deps.Proxy.Create)

	// Aggregate views over the fallback-capable source
	api := app.Group("/api")
	api.Get("/inventory", deps.Inventory.View)
	api.Get("/dashboard/stats", deps.Dashboard.Stats)
	api.Get("/categories/stats", deps.Dashboard.CategoryStats)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
