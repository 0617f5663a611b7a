package handlers

import (
	"ristcon.api/pkg/apiresponse"
	"ristcon.api/pkg/includes"
	"ristcon.api/pkg/queryparams"
	"ristcon.api/services"

	"github.com/gofiber/fiber/v2"
)

// ConferenceHandler serves the public read API.
type ConferenceHandler struct {
	service services.IConferenceService
}

func NewConferenceHandler(service services.IConferenceService) *ConferenceHandler {
	return &ConferenceHandler{service: service}
}

// ListConferences GET /conferences?status=&year=&include=&page=&per_page=
func (h *ConferenceHandler) ListConferences(c *fiber.Ctx) error {
	params := queryparams.Parse(c)
	result, err := h.service.ListConferences(c.UserContext(), params, includes.Parse(c.Query("include")))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.WithMeta(c, result.Data, result.Meta)
}

// GetActiveConference GET /conferences/active
func (h *ConferenceHandler) GetActiveConference(c *fiber.Ctx) error {
	edition, err := h.service.GetConference(c.UserContext(), nil, includes.Parse(c.Query("include")))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, edition)
}

// GetConference GET /conferences/:year?include=speakers,committees
func (h *ConferenceHandler) GetConference(c *fiber.Ctx) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	edition, err := h.service.GetConference(c.UserContext(), year, includes.Parse(c.Query("include")))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, edition)
}

func (h *ConferenceHandler) GetSpeakers(c *fiber.Ctx) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	speakers, err := h.service.GetSpeakers(c.UserContext(), year, c.Query("type"))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, speakers)
}

func (h *ConferenceHandler) GetImportantDates(c *fiber.Ctx) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	dates, err := h.service.GetImportantDates(c.UserContext(), year)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, dates)
}

func (h *ConferenceHandler) GetCommittees(c *fiber.Ctx) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	groups, err := h.service.GetCommittees(c.UserContext(), year, c.Query("type"))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, groups)
}

func (h *ConferenceHandler) GetContacts(c *fiber.Ctx) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	contacts, err := h.service.GetContacts(c.UserContext(), year)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, contacts)
}

func (h *ConferenceHandler) GetDocuments(c *fiber.Ctx) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	filter := services.DocumentFilter{Category: c.Query("category"), Active: activeQuery(c)}
	documents, err := h.service.GetDocuments(c.UserContext(), year, filter)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, documents)
}

func (h *ConferenceHandler) GetResearchAreas(c *fiber.Ctx) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	categories, err := h.service.GetResearchCategories(c.UserContext(), year)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, categories)
}

func (h *ConferenceHandler) GetLocation(c *fiber.Ctx) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	location, err := h.service.GetLocation(c.UserContext(), year)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, location)
}

func (h *ConferenceHandler) GetAuthorInstructions(c *fiber.Ctx) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	instructions, err := h.service.GetAuthorInstructions(c.UserContext(), year)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, instructions)
}

func (h *ConferenceHandler) GetAssets(c *fiber.Ctx) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	assets, err := h.service.GetAssets(c.UserContext(), year, c.Query("type"))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, assets)
}

func (h *ConferenceHandler) GetSocialMedia(c *fiber.Ctx) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	links, err := h.service.GetSocialMedia(c.UserContext(), year)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, links)
}

// GetRegistration serves both /registration?year= and /conferences/:year/registration.
func (h *ConferenceHandler) GetRegistration(c *fiber.Ctx) error {
	year, err := h.optionalYear(c)
	if err != nil {
		return err
	}
	summary, err := h.service.GetRegistrationSummary(c.UserContext(), year)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, summary)
}

func (h *ConferenceHandler) GetRegistrationFees(c *fiber.Ctx) error {
	year, err := yearQuery(c)
	if err != nil {
		return err
	}
	fees, err := h.service.GetRegistrationFees(c.UserContext(), year)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, fees)
}

func (h *ConferenceHandler) GetPaymentPolicies(c *fiber.Ctx) error {
	year, err := yearQuery(c)
	if err != nil {
		return err
	}
	policies, err := h.service.GetPaymentPolicies(c.UserContext(), year)
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, policies)
}

func (h *ConferenceHandler) GetPaymentInformation(c *fiber.Ctx) error {
	year, err := h.optionalYear(c)
	if err != nil {
		return err
	}
	info, err := h.service.GetPaymentInformation(c.UserContext(), year, c.Query("type"))
	if err != nil {
		return apiresponse.Error(c, err)
	}
	return apiresponse.Success(c, info)
}

func (h *ConferenceHandler) optionalYear(c *fiber.Ctx) (*int, error) {
	if c.Params("year") != "" {
		return yearParam(c)
	}
	return yearQuery(c)
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
