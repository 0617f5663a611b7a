package handlers

import (
	"ristcon.api/pkg/apiresponse"
	"ristcon.api/repositories"

	"github.com/gofiber/fiber/v2"
)

type CommitteeTypeHandler struct {
	repo repositories.ICommitteeTypeRepository
}

func NewCommitteeTypeHandler(repo repositories.ICommitteeTypeRepository) *CommitteeTypeHandler {
	return &CommitteeTypeHandler{repo: repo}
}

// ListCommitteeTypes GET /committee-types
func (h *CommitteeTypeHandler) ListCommitteeTypes(c *fiber.Ctx) error {
	types, err := h.repo.FindAll(c.UserContext())
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, types)
}
