package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// yearParam reads the :year route segment.
func yearParam(c *fiber.Ctx) (*int, error) {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "year must be a positive number")
	}
	return &year, nil
}

// yearQuery reads ?year=; nil selects the active edition.
func yearQuery(c *fiber.Ctx) (*int, error) {
	raw := c.Query("year")
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "year must be a positive number")
	}
	return &year, nil
}

func activeQuery(c *fiber.Ctx) *bool {
	raw := c.Query("active")
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
