package handlers

import (
	"ristcon.api/models"
	"ristcon.api/pkg/apiresponse"
	"ristcon.api/pkg/queryparams"
	"ristcon.api/repositories"
	"ristcon.api/services"

	"github.com/gofiber/fiber/v2"
)

// FilterFunc turns list query parameters into repository scopes for one kind.
type FilterFunc func(params queryparams.ListParams) []repositories.QueryScope

// ScopedHandler exposes CRUD for one edition-scoped kind.
type ScopedHandler[T any] struct {
	service services.IScopedService[T]
	filter  FilterFunc
	label   string
}

func NewScopedHandler[T any](service services.IScopedService[T], label string, filter FilterFunc) *ScopedHandler[T] {
	return &ScopedHandler[T]{service: service, filter: filter, label: label}
}

// newEntity allocates a payload with the model's defaults so omitted booleans keep them.
func newEntity[T any]() *T {
	entity := new(T)
	if d, ok := any(entity).(models.Defaulter); ok {
		d.ApplyDefaults()
	}
	return entity
}

// List GET /editions/:editionId/<kind>
func (h *ScopedHandler[T]) List(c *fiber.Ctx) error {
	editionID, err := idParam(c, "editionId")
	if err != nil {
		return err
	}
	var scopes []repositories.QueryScope
	if h.filter != nil {
		scopes = h.filter(queryparams.Parse(c))
	}
	rows, err := h.service.List(c.UserContext(), editionID, scopes...)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, rows)
}

func (h *ScopedHandler[T]) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	entity, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, entity)
}

// Create POST /editions/:editionId/<kind>
func (h *ScopedHandler[T]) Create(c *fiber.Ctx) error {
	editionID, err := idParam(c, "editionId")
	if err != nil {
		return err
	}
	entity := newEntity[T]()
	if err := c.BodyParser(entity); err != nil {
		return invalidBody(err)
	}
	created, err := h.service.Create(c.UserContext(), editionID, entity)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Created(c, h.label+" created", created)
}

// Update PUT /<kind>/:id
func (h *ScopedHandler[T]) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	entity := newEntity[T]()
	if err := c.BodyParser(entity); err != nil {
		return invalidBody(err)
	}
	updated, err := h.service.Update(c.UserContext(), id, entity)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, updated)
}

func (h *ScopedHandler[T]) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Message(c, h.label+" deleted")
}

// Upsert PUT /editions/:editionId/<singleton>
func (h *ScopedHandler[T]) Upsert(c *fiber.Ctx) error {
	editionID, err := idParam(c, "editionId")
	if err != nil {
		return err
	}
	entity := newEntity[T]()
	if err := c.BodyParser(entity); err != nil {
		return invalidBody(err)
	}
	saved, err := h.service.Upsert(c.UserContext(), editionID, entity)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, saved)
}

// GetSingleton GET /editions/:editionId/<singleton>
func (h *ScopedHandler[T]) GetSingleton(c *fiber.Ctx) error {
	editionID, err := idParam(c, "editionId")
	if err != nil {
		return err
	}
	rows, err := h.service.List(c.UserContext(), editionID)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	if len(rows) == 0 {
		return apiresponse.Error(c, services.ErrRecordNotFound)
	}
	return apiresponse.Success(c, rows[0])
}
