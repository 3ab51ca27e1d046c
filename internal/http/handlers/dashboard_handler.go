package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sweetbliss/internal/gateway"
	"sweetbliss/internal/log"
	"sweetbliss/internal/query"
	"sweetbliss/internal/source"
)

// DashboardHandler serves the aggregate views. It reads whole snapshots
// through the configured data source, so a dead upstream degrades to the
// demo dataset rather than an empty dashboard.
type DashboardHandler struct {
	Source source.DataSource
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	items, err := h.Source.FetchItems(c.Context(), gateway.ListParams{})
	if err != nil {
		log.Error(c, "dashboard.stats.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch items",
		})
	}
	stats := query.Stats(items)
	return c.JSON(fiber.Map{
		"totalItems":      stats.TotalItems,
		"totalStock":      stats.TotalStock,
		"totalValue":      stats.TotalValue,
		"lowStockItems":   stats.LowStockItems,
		"stockByCategory": query.SeededStockByCategory(items, query.DefaultCategories),
	})
}

func (h *DashboardHandler) CategoryStats(c *fiber.Ctx) error {
	items, err := h.Source.FetchItems(c.Context(), gateway.ListParams{})
	if err != nil {
		log.Error(c, "dashboard.categories.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch items",
		})
	}
	return c.JSON(query.AggregateByCategory(items))
}
