package handlers

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"sweetbliss/internal/log"
	"sweetbliss/internal/repos"
)

type StoreCategoriesHandler struct {
	Cats *repos.CategoryRepo
}

func (h *StoreCategoriesHandler) List(c *fiber.Ctx) error {
	cats, err := h.Cats.List()
	if err != nil {
		log.Error(c, "store.categories.list", err, nil)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(cats)
}

func (h *StoreCategoriesHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	cat, err := h.Cats.Get(int64(id))
	if err == sql.ErrNoRows {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		log.Error(c, "store.categories.get", err, nil)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(cat)
}
