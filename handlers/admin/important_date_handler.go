package handlers

import (
	"time"

	"ristcon.api/pkg/apiresponse"
	"ristcon.api/services"

	"github.com/gofiber/fiber/v2"
)

type ImportantDateHandler struct {
	service services.IImportantDateService
}

func NewImportantDateHandler(service services.IImportantDateService) *ImportantDateHandler {
	return &ImportantDateHandler{service: service}
}

type extendRequest struct {
	NewDate time.Time `json:"new_date"`
}

// ExtendImportantDate POST /important-dates/:id/extend
func (h *ImportantDateHandler) ExtendImportantDate(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req extendRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	date, err := h.service.ExtendImportantDate(c.UserContext(), id, req.NewDate)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, date)
}
