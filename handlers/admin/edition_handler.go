package handlers

import (
	"context"

	"ristcon.api/configs/configslog"
	"ristcon.api/middlewares"
	"ristcon.api/models"
	"ristcon.api/pkg/apiresponse"
	"ristcon.api/pkg/includes"
	"ristcon.api/pkg/queryparams"
	"ristcon.api/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type EditionHandler struct {
	service services.IEditionService
}

func NewEditionHandler(service services.IEditionService) *EditionHandler {
	return &EditionHandler{service: service}
}

func (h *EditionHandler) ListEditions(c *fiber.Ctx) error {
	result, err := h.service.ListEditions(c.UserContext(), queryparams.Parse(c), includes.Parse(c.Query("include")))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.WithMeta(c, result.Data, result.Meta)
}

func (h *EditionHandler) GetEdition(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	edition, err := h.service.GetEditionByID(c.UserContext(), id, includes.Parse(c.Query("include")))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, edition)
}

func (h *EditionHandler) CreateEdition(c *fiber.Ctx) error {
	var input services.CreateEditionInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(err)
	}
	edition, err := h.service.CreateEdition(c.UserContext(), input)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Created(c, "Edition created", edition)
}

func (h *EditionHandler) UpdateEdition(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var input services.UpdateEditionInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(err)
	}
	edition, err := h.service.UpdateEdition(c.UserContext(), id, input)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, edition)
}

func (h *EditionHandler) DeleteEdition(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteEdition(c.UserContext(), id); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Message(c, "Edition deleted")
}

func (h *EditionHandler) ActivateEdition(c *fiber.Ctx) error {
	return h.transition(c, "activate", h.service.ActivateEdition)
}

func (h *EditionHandler) PublishEdition(c *fiber.Ctx) error {
	return h.transition(c, "publish", h.service.PublishEdition)
}

func (h *EditionHandler) ArchiveEdition(c *fiber.Ctx) error {
	return h.transition(c, "archive", h.service.ArchiveEdition)
}

func (h *EditionHandler) CancelEdition(c *fiber.Ctx) error {
	return h.transition(c, "cancel", h.service.CancelEdition)
}

type transitionFunc func(ctx context.Context, id uint) (*models.Edition, error)

func (h *EditionHandler) transition(c *fiber.Ctx, action string, fn transitionFunc) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	edition, err := fn(c.UserContext(), id)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	configslog.Log.Info("Edition lifecycle change",
		zap.String("action", action),
		zap.Uint("id", id),
		zap.Any("admin", c.Locals(middlewares.LocalAdminEmail)),
	)
	return apiresponse.Success(c, edition)
}
