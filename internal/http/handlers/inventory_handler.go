package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sweetbliss/internal/gateway"
	"sweetbliss/internal/log"
	"sweetbliss/internal/query"
	"sweetbliss/internal/source"
)

// InventoryHandler serves the inventory table view: a snapshot filtered and
// ordered by the caller's criteria.
type InventoryHandler struct {
	Source source.DataSource
}

func (h *InventoryHandler) View(c *fiber.Ctx) error {
	items, err := h.Source.FetchItems(c.Context(), gateway.ListParams{})
	if err != nil {
		log.Error(c, "inventory.view.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch items",
		})
	}

	crit := query.Criteria{
		Search:   c.Query("search"),
		Category: c.Query("category", "all"),
		Sort:     query.SortKey(c.Query("sort", string(query.SortName))),
	}
	view := query.FilterAndSort(items, crit)
	return c.JSON(fiber.Map{"items": view, "count": len(view)})
}
