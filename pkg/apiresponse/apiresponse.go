// Package apiresponse writes the JSON envelope shared by every endpoint.
package apiresponse

import (
	"errors"

	"ristcon.api/configs/configslog"
	"ristcon.api/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Meta    any               `json:"meta,omitempty"`
}

func Success(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Status: "success", Data: data})
}

func Created(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Status: "success", Message: message, Data: data})
}

func Message(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Status: "success", Message: message})
}

func WithMeta(c *fiber.Ctx, data, meta any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Status: "success", Data: data, Meta: meta})
}

func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Status: "error", Message: message})
}

// StatusFor maps a service error kind to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrPolicyViolation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrValidationFailed):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// Error writes err with the status of its kind. Unclassified errors are logged and hidden.
func Error(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if status == fiber.StatusInternalServerError {
		configslog.Log.Error("Request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals("requestid")),
			zap.Error(err),
		)
		return Fail(c, status, "Internal server error")
	}

	env := Envelope{Status: "error", Message: err.Error()}
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		env.Message = string(services.ErrValidationFailed)
		env.Errors = verr.Fields
	}
	return c.Status(status).JSON(env)
}
