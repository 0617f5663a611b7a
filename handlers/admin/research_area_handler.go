package handlers

import (
	"ristcon.api/models"
	"ristcon.api/pkg/apiresponse"
	"ristcon.api/services"

	"github.com/gofiber/fiber/v2"
)

type ResearchAreaHandler struct {
	service services.IResearchAreaService
}

func NewResearchAreaHandler(service services.IResearchAreaService) *ResearchAreaHandler {
	return &ResearchAreaHandler{service: service}
}

// ListAreas GET /research-categories/:id/areas
func (h *ResearchAreaHandler) ListAreas(c *fiber.Ctx) error {
	categoryID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	areas, err := h.service.ListResearchAreas(c.UserContext(), categoryID)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, areas)
}

// AddArea POST /research-categories/:id/areas
func (h *ResearchAreaHandler) AddArea(c *fiber.Ctx) error {
	categoryID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	area := newEntity[models.ResearchArea]()
	if err := c.BodyParser(area); err != nil {
		return invalidBody(err)
	}
	created, err := h.service.AddResearchArea(c.UserContext(), categoryID, area)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Created(c, "Research area created", created)
}

func (h *ResearchAreaHandler) UpdateArea(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	area := newEntity[models.ResearchArea]()
	if err := c.BodyParser(area); err != nil {
		return invalidBody(err)
	}
	updated, err := h.service.UpdateResearchArea(c.UserContext(), id, area)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, updated)
}

func (h *ResearchAreaHandler) DeleteArea(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteResearchArea(c.UserContext(), id); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Message(c, "Research area deleted")
}
