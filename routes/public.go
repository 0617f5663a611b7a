package routes

import (
	api_handlers "ristcon.api/handlers/api"
	"ristcon.api/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerPublicRoutes defines the unauthenticated read API under /api/v1.
func registerPublicRoutes(router fiber.Router, db *gorm.DB) {
	h := api_handlers.NewConferenceHandler(services.NewConferenceService(db))

	router.Get("/health", api_handlers.Health)

	conferences := router.Group("/conferences")
	conferences.Get("/", h.ListConferences)
	conferences.Get("/active", h.GetActiveConference)
	conferences.Get("/:year", h.GetConference)
	conferences.Get("/:year/speakers", h.GetSpeakers)
	conferences.Get("/:year/important-dates", h.GetImportantDates)
	conferences.Get("/:year/committees", h.GetCommittees)
	conferences.Get("/:year/contacts", h.GetContacts)
	conferences.Get("/:year/documents", h.GetDocuments)
	conferences.Get("/:year/research-areas", h.GetResearchAreas)
	conferences.Get("/:year/location", h.GetLocation)
	conferences.Get("/:year/author-instructions", h.GetAuthorInstructions)
	conferences.Get("/:year/assets", h.GetAssets)
	conferences.Get("/:year/social-media", h.GetSocialMedia)
	conferences.Get("/:year/registration", h.GetRegistration)
	conferences.Get("/:year/payment-information", h.GetPaymentInformation)

	// Without ?year= these resolve to the active edition.
	router.Get("/registration", h.GetRegistration)
	router.Get("/registration/fees", h.GetRegistrationFees)
	router.Get("/registration/policies", h.GetPaymentPolicies)
	router.Get("/payment-information", h.GetPaymentInformation)
}
