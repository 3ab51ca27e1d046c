package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sweetbliss/internal/domain"
	"sweetbliss/internal/log"
	"sweetbliss/internal/repos"
	"sweetbliss/internal/services"
	"sweetbliss/internal/validate"
)

// StoreItemsHandler is the item CRUD surface of the sweetstore app.
type StoreItemsHandler struct {
	Svc *services.ItemService
}

func itemFilter(c *fiber.Ctx) (repos.ItemFilter, error) {
	f := repos.ItemFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		SortBy:   c.Query("sortBy", "name"),
		SortDir:  c.Query("sortDir", "asc"),
	}
	fl := func(key string, dst **float64) error {
		s := c.Query(key)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
	in := func(key string, dst **int) error {
		s := c.Query(key)
		if s == "" {
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
	for _, step := range []error{
		fl("minPrice", &f.MinPrice),
		fl("maxPrice", &f.MaxPrice),
		in("minStock", &f.MinStock),
		in("maxStock", &f.MaxStock),
		in("page", &f.Page),
		in("size", &f.Size),
	} {
		if step != nil {
			return f, step
		}
	}
	return f, nil
}

func (h *StoreItemsHandler) List(c *fiber.Ctx) error {
	f, err := itemFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query parameter"})
	}
	items, err := h.Svc.List(f)
	if err != nil {
		log.Error(c, "store.items.list", err, nil)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(items)
}

func (h *StoreItemsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	it, err := h.Svc.Get(int64(id))
	if err == services.ErrNotFound {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		log.Error(c, "store.items.get", err, nil)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(it)
}

func (h *StoreItemsHandler) Create(c *fiber.Ctx) error {
	var p domain.ItemPayload
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if errs := validate.ItemPayload(p); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	it, err := h.Svc.Create(p)
	if err == services.ErrDuplicateName {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		log.Error(c, "store.items.create", err, nil)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	log.Info(c, "store.items.created", map[string]any{"id": it.ID, "name": it.Name})
	return c.Status(fiber.StatusCreated).JSON(it)
}

func (h *StoreItemsHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	var p domain.ItemPayload
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if errs := validate.ItemPayload(p); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}
	it, err := h.Svc.Update(int64(id), p)
	if err == services.ErrNotFound {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		log.Error(c, "store.items.update", err, nil)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(it)
}

func (h *StoreItemsHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	switch err := h.Svc.Delete(int64(id)); err {
	case nil:
		return c.SendStatus(fiber.StatusNoContent)
	case services.ErrNotFound:
		return c.SendStatus(fiber.StatusNotFound)
	default:
		log.Error(c, "store.items.delete", err, nil)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
}

func (h *StoreItemsHandler) LowStock(c *fiber.Ctx) error {
	threshold := validate.Threshold(c.Query("threshold"), 10)
	items, err := h.Svc.LowStock(threshold)
	if err != nil {
		log.Error(c, "store.items.lowstock", err, nil)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(items)
}

func (h *StoreItemsHandler) Stats(c *fiber.Ctx) error {
	s, err := h.Svc.Stats()
	if err != nil {
		log.Error(c, "store.stats", err, nil)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(s)
}
