package routes

import (
	admin_handlers "ristcon.api/handlers/admin"
	"ristcon.api/middlewares"
	"ristcon.api/repositories"
	"ristcon.api/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerAdminRoutes defines the authenticated management API under /api/v1/admin.
func registerAdminRoutes(router fiber.Router, db *gorm.DB) {
	admin := router.Group("/admin", middlewares.AdminAuth(services.NewAuthService(db)))

	editions := admin_handlers.NewEditionHandler(services.NewEditionService(db))
	admin.Get("/editions", editions.ListEditions)
	admin.Post("/editions", editions.CreateEdition)
	admin.Get("/editions/:id", editions.GetEdition)
	admin.Put("/editions/:id", editions.UpdateEdition)
	admin.Delete("/editions/:id", editions.DeleteEdition)
	admin.Post("/editions/:id/activate", editions.ActivateEdition)
	admin.Post("/editions/:id/publish", editions.PublishEdition)
	admin.Post("/editions/:id/archive", editions.ArchiveEdition)
	admin.Post("/editions/:id/cancel", editions.CancelEdition)

	committeeTypes := admin_handlers.NewCommitteeTypeHandler(repositories.NewCommitteeTypeRepository(db))
	admin.Get("/committee-types", committeeTypes.ListCommitteeTypes)

	scoped := services.NewScopedServices(db)
	registerScoped(admin, "important-dates", admin_handlers.NewScopedHandler(scoped.ImportantDates, "Important date", admin_handlers.ImportantDateFilter))
	registerScoped(admin, "speakers", admin_handlers.NewScopedHandler(scoped.Speakers, "Speaker", admin_handlers.SpeakerFilter))
	registerScoped(admin, "committee-members", admin_handlers.NewScopedHandler(scoped.CommitteeMembers, "Committee member", admin_handlers.CommitteeFilter))
	registerScoped(admin, "contacts", admin_handlers.NewScopedHandler(scoped.ContactPersons, "Contact person", nil))
	registerScoped(admin, "documents", admin_handlers.NewScopedHandler(scoped.Documents, "Document", admin_handlers.DocumentFilter))
	registerScoped(admin, "assets", admin_handlers.NewScopedHandler(scoped.Assets, "Asset", admin_handlers.AssetFilter))
	registerScoped(admin, "research-categories", admin_handlers.NewScopedHandler(scoped.ResearchCategories, "Research category", admin_handlers.ActiveFilter))
	registerScoped(admin, "submission-methods", admin_handlers.NewScopedHandler(scoped.SubmissionMethods, "Submission method", nil))
	registerScoped(admin, "presentation-guidelines", admin_handlers.NewScopedHandler(scoped.PresentationGuidelines, "Presentation guideline", nil))
	registerScoped(admin, "payment-information", admin_handlers.NewScopedHandler(scoped.PaymentInformation, "Payment information", nil))
	registerScoped(admin, "registration-fees", admin_handlers.NewScopedHandler(scoped.RegistrationFees, "Registration fee", admin_handlers.ActiveFilter))
	registerScoped(admin, "payment-policies", admin_handlers.NewScopedHandler(scoped.PaymentPolicies, "Payment policy", admin_handlers.ActiveFilter))
	registerScoped(admin, "social-media", admin_handlers.NewScopedHandler(scoped.SocialMediaLinks, "Social media link", admin_handlers.ActiveFilter))
	registerScoped(admin, "abstract-formats", admin_handlers.NewScopedHandler(scoped.AbstractFormats, "Abstract format", nil))

	registerSingleton(admin, "location", admin_handlers.NewScopedHandler(scoped.EventLocations, "Event location", nil))
	registerSingleton(admin, "author-config", admin_handlers.NewScopedHandler(scoped.AuthorPageConfigs, "Author page config", nil))

	dates := admin_handlers.NewImportantDateHandler(services.NewImportantDateService(db))
	admin.Post("/important-dates/:id/extend", dates.ExtendImportantDate)

	areas := admin_handlers.NewResearchAreaHandler(services.NewResearchAreaService(db))
	admin.Get("/research-categories/:id/areas", areas.ListAreas)
	admin.Post("/research-categories/:id/areas", areas.AddArea)
	admin.Put("/research-areas/:id", areas.UpdateArea)
	admin.Delete("/research-areas/:id", areas.DeleteArea)
}

func registerScoped[T any](router fiber.Router, kind string, h *admin_handlers.ScopedHandler[T]) {
	router.Get("/editions/:editionId/"+kind, h.List)
	router.Post("/editions/:editionId/"+kind, h.Create)
	router.Get("/"+kind+"/:id", h.Get)
	router.Put("/"+kind+"/:id", h.Update)
	router.Delete("/"+kind+"/:id", h.Delete)
}

func registerSingleton[T any](router fiber.Router, kind string, h *admin_handlers.ScopedHandler[T]) {
	router.Get("/editions/:editionId/"+kind, h.GetSingleton)
	router.Put("/editions/:editionId/"+kind, h.Upsert)
	router.Delete("/"+kind+"/:id", h.Delete)
}
