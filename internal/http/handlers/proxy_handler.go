package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"sweetbliss/internal/gateway"
	"sweetbliss/internal/log"
)

// ProxyHandler relays /items traffic to the upstream store. Bodies pass
// through unmodified in both directions; failures collapse to a generic 500
// so upstream detail never reaches the caller.
type ProxyHandler struct {
	Client *gateway.Client
}

func (h *ProxyHandler) upstreamCtx(c *fiber.Ctx) context.Context {
	ctx := context.Context(c.Context())
	if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
		ctx = gateway.WithRequestID(ctx, rid)
	}
	return ctx
}

func listParams(c *fiber.Ctx) gateway.ListParams {
	return gateway.ListParams{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		MinStock: c.Query("minStock"),
		MaxStock: c.Query("maxStock"),
		Page:     c.Query("page"),
		Size:     c.Query("size"),
		SortBy:   c.Query("sortBy"),
		SortDir:  c.Query("sortDir"),
	}
}

func (h *ProxyHandler) List(c *fiber.Ctx) error {
	body, err := h.Client.ListItemsRaw(h.upstreamCtx(c), listParams(c))
	if err != nil {
		logUpstreamFailure(c, "items.list", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch items",
		})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

func (h *ProxyHandler) Create(c *fiber.Ctx) error {
	body, err := h.Client.CreateItemRaw(h.upstreamCtx(c), c.Body())
	if err != nil {
		logUpstreamFailure(c, "items.create", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create item",
		})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusCreated).Send(body)
}

func logUpstreamFailure(c *fiber.Ctx, action string, err error) {
	var ue *gateway.UpstreamError
	if errors.As(err, &ue) {
		log.Upstream(c, action+".upstream", ue.Status, err, map[string]any{"body": ue.Body})
		return
	}
	log.Error(c, action+".gateway", err, nil)
}
