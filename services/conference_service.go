package services

import (
	"context"
	"errors"

	"ristcon.api/models"
	"ristcon.api/pkg/includes"
	"ristcon.api/pkg/queryparams"
	"ristcon.api/repositories"

	"gorm.io/gorm"
)

// CommitteeGroup is one committee with its members, in committee display order.
type CommitteeGroup struct {
	CommitteeType models.CommitteeType     `json:"committee_type"`
	Members       []models.CommitteeMember `json:"members"`
}

// AuthorInstructions bundles everything the author page of an edition shows.
type AuthorInstructions struct {
	EditionYear            int                            `json:"edition_year"`
	Config                 *models.AuthorPageConfig       `json:"config"`
	SubmissionMethods      []models.SubmissionMethod      `json:"submission_methods"`
	PresentationGuidelines []models.PresentationGuideline `json:"presentation_guidelines"`
	AbstractFormats        []models.AbstractFormat        `json:"abstract_formats"`
}

// RegistrationSummary holds the active fees and policies of an edition.
type RegistrationSummary struct {
	EditionYear int                      `json:"edition_year"`
	Fees        []models.RegistrationFee `json:"fees"`
	Policies    []models.PaymentPolicy   `json:"policies"`
}

// DocumentFilter narrows the public document list.
type DocumentFilter struct {
	Category string
	Active   *bool
}

// IConferenceService serves the public, year-addressed read views.
// A nil year means the active edition.
type IConferenceService interface {
	ListConferences(ctx context.Context, params queryparams.ListParams, incs includes.Set) (*queryparams.PaginatedResult, error)
	GetConference(ctx context.Context, year *int, incs includes.Set) (*models.Edition, error)
	GetSpeakers(ctx context.Context, year *int, speakerType string) ([]models.Speaker, error)
	GetImportantDates(ctx context.Context, year *int) ([]models.ImportantDate, error)
	GetCommittees(ctx context.Context, year *int, committeeName string) ([]CommitteeGroup, error)
	GetContacts(ctx context.Context, year *int) ([]models.ContactPerson, error)
	GetDocuments(ctx context.Context, year *int, filter DocumentFilter) ([]models.ConferenceDocument, error)
	GetResearchCategories(ctx context.Context, year *int) ([]models.ResearchCategory, error)
	GetLocation(ctx context.Context, year *int) (*models.EventLocation, error)
	GetAuthorInstructions(ctx context.Context, year *int) (*AuthorInstructions, error)
	GetAssets(ctx context.Context, year *int, assetType string) ([]models.ConferenceAsset, error)
	GetSocialMedia(ctx context.Context, year *int) ([]models.SocialMediaLink, error)
	GetRegistrationSummary(ctx context.Context, year *int) (*RegistrationSummary, error)
	GetRegistrationFees(ctx context.Context, year *int) ([]models.RegistrationFee, error)
	GetPaymentPolicies(ctx context.Context, year *int) ([]models.PaymentPolicy, error)
	GetPaymentInformation(ctx context.Context, year *int, paymentType string) ([]models.PaymentInformation, error)
}

// ConferenceService implements IConferenceService with one repository per scoped kind.
type ConferenceService struct {
	editions IEditionService

	importantDates    repositories.IScopedRepository[models.ImportantDate]
	speakers          repositories.IScopedRepository[models.Speaker]
	committeeMembers  repositories.IScopedRepository[models.CommitteeMember]
	committeeTypes    repositories.ICommitteeTypeRepository
	contacts          repositories.IScopedRepository[models.ContactPerson]
	documents         repositories.IScopedRepository[models.ConferenceDocument]
	assets            repositories.IScopedRepository[models.ConferenceAsset]
	categories        repositories.IScopedRepository[models.ResearchCategory]
	areas             repositories.IResearchAreaRepository
	submissionMethods repositories.IScopedRepository[models.SubmissionMethod]
	guidelines        repositories.IScopedRepository[models.PresentationGuideline]
	paymentInfo       repositories.IScopedRepository[models.PaymentInformation]
	fees              repositories.IScopedRepository[models.RegistrationFee]
	policies          repositories.IScopedRepository[models.PaymentPolicy]
	socialLinks       repositories.IScopedRepository[models.SocialMediaLink]
	abstractFormats   repositories.IScopedRepository[models.AbstractFormat]
	locations         repositories.IScopedRepository[models.EventLocation]
	authorConfigs     repositories.IScopedRepository[models.AuthorPageConfig]
}

// NewConferenceService wires every repository the read views need onto db.
func NewConferenceService(db *gorm.DB) IConferenceService {
	return &ConferenceService{
		editions:          NewEditionService(db),
		importantDates:    repositories.NewScopedRepository[models.ImportantDate](db),
		speakers:          repositories.NewScopedRepository[models.Speaker](db),
		committeeMembers:  repositories.NewScopedRepository[models.CommitteeMember](db),
		committeeTypes:    repositories.NewCommitteeTypeRepository(db),
		contacts:          repositories.NewScopedRepository[models.ContactPerson](db),
		documents:         repositories.NewScopedRepository[models.ConferenceDocument](db),
		assets:            repositories.NewScopedRepository[models.ConferenceAsset](db),
		categories:        repositories.NewScopedRepository[models.ResearchCategory](db),
		areas:             repositories.NewResearchAreaRepository(db),
		submissionMethods: repositories.NewScopedRepository[models.SubmissionMethod](db),
		guidelines:        repositories.NewScopedRepository[models.PresentationGuideline](db),
		paymentInfo:       repositories.NewScopedRepository[models.PaymentInformation](db),
		fees:              repositories.NewScopedRepository[models.RegistrationFee](db),
		policies:          repositories.NewScopedRepository[models.PaymentPolicy](db),
		socialLinks:       repositories.NewScopedRepository[models.SocialMediaLink](db),
		abstractFormats:   repositories.NewScopedRepository[models.AbstractFormat](db),
		locations:         repositories.NewScopedRepository[models.EventLocation](db),
		authorConfigs:     repositories.NewScopedRepository[models.AuthorPageConfig](db),
	}
}

// resolveEdition picks the edition for year, or the active edition when year is nil.
func (s *ConferenceService) resolveEdition(ctx context.Context, year *int, incs includes.Set) (*models.Edition, error) {
	if year == nil {
		return s.editions.GetActiveEdition(ctx, incs)
	}
	return s.editions.GetEditionByYear(ctx, *year, incs)
}

func (s *ConferenceService) editionID(ctx context.Context, year *int) (uint, int, error) {
	edition, err := s.resolveEdition(ctx, year, nil)
	if err != nil {
		return 0, 0, err
	}
	return edition.ID, edition.Year, nil
}

// ListConferences lists editions for the public archive.
func (s *ConferenceService) ListConferences(ctx context.Context, params queryparams.ListParams, incs includes.Set) (*queryparams.PaginatedResult, error) {
	return s.editions.ListEditions(ctx, params, incs)
}

func (s *ConferenceService) GetConference(ctx context.Context, year *int, incs includes.Set) (*models.Edition, error) {
	return s.resolveEdition(ctx, year, incs)
}

// GetSpeakers filters by speaker type when one is given.
func (s *ConferenceService) GetSpeakers(ctx context.Context, year *int, speakerType string) ([]models.Speaker, error) {
	id, _, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.speakers.FindByEdition(ctx, id, WhereEqual("speaker_type", speakerType))
}

// GetImportantDates lists dates chronologically; timeline fields are filled on load.
func (s *ConferenceService) GetImportantDates(ctx context.Context, year *int) ([]models.ImportantDate, error) {
	id, _, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.importantDates.FindByEdition(ctx, id, OrderBy("date_value ASC"))
}

// GetCommittees groups members by committee. Committees without members are left out.
func (s *ConferenceService) GetCommittees(ctx context.Context, year *int, committeeName string) ([]CommitteeGroup, error) {
	id, _, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	members, err := s.committeeMembers.FindByEdition(ctx, id, WhereCommitteeName(committeeName))
	if err != nil {
		return nil, err
	}
	types, err := s.committeeTypes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return groupCommittees(types, members), nil
}

func groupCommittees(types []models.CommitteeType, members []models.CommitteeMember) []CommitteeGroup {
	byType := make(map[uint][]models.CommitteeMember)
	for _, m := range members {
		byType[m.CommitteeTypeID] = append(byType[m.CommitteeTypeID], m)
	}
	groups := make([]CommitteeGroup, 0, len(byType))
	for _, t := range types {
		if list, ok := byType[t.ID]; ok {
			groups = append(groups, CommitteeGroup{CommitteeType: t, Members: list})
		}
	}
	return groups
}

func (s *ConferenceService) GetContacts(ctx context.Context, year *int) ([]models.ContactPerson, error) {
	id, _, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.contacts.FindByEdition(ctx, id)
}

// GetDocuments applies the category and availability filter.
func (s *ConferenceService) GetDocuments(ctx context.Context, year *int, filter DocumentFilter) ([]models.ConferenceDocument, error) {
	id, _, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.documents.FindByEdition(ctx, id,
		WhereEqual("document_category", filter.Category),
		WhereActive("is_active", filter.Active))
}

// GetResearchCategories returns active categories, each carrying only its active areas.
func (s *ConferenceService) GetResearchCategories(ctx context.Context, year *int) ([]models.ResearchCategory, error) {
	id, _, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	active := true
	categories, err := s.categories.FindByEdition(ctx, id, WhereActive("is_active", &active))
	if err != nil {
		return nil, err
	}
	for i := range categories {
		areas, err := s.areas.FindByCategory(ctx, categories[i].ID, true)
		if err != nil {
			return nil, err
		}
		categories[i].Areas = areas
	}
	return categories, nil
}

// GetLocation returns the edition's venue; an edition without one is a not found error.
func (s *ConferenceService) GetLocation(ctx context.Context, year *int) (*models.EventLocation, error) {
	id, _, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	location, err := s.locations.FindOneByEdition(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrRecordNotFound)
	}
	return location, nil
}

// GetAuthorInstructions tolerates a missing author config and returns the lists alone.
func (s *ConferenceService) GetAuthorInstructions(ctx context.Context, year *int) (*AuthorInstructions, error) {
	id, editionYear, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	out := &AuthorInstructions{EditionYear: editionYear}

	config, err := s.authorConfigs.FindOneByEdition(ctx, id)
	switch {
	case err == nil:
		out.Config = config
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}
	if out.SubmissionMethods, err = s.submissionMethods.FindByEdition(ctx, id); err != nil {
		return nil, err
	}
	if out.PresentationGuidelines, err = s.guidelines.FindByEdition(ctx, id); err != nil {
		return nil, err
	}
	if out.AbstractFormats, err = s.abstractFormats.FindByEdition(ctx, id); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ConferenceService) GetAssets(ctx context.Context, year *int, assetType string) ([]models.ConferenceAsset, error) {
	id, _, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.assets.FindByEdition(ctx, id, WhereEqual("asset_type", assetType))
}

func (s *ConferenceService) GetSocialMedia(ctx context.Context, year *int) ([]models.SocialMediaLink, error) {
	id, _, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	active := true
	return s.socialLinks.FindByEdition(ctx, id, WhereActive("is_active", &active))
}

// GetRegistrationSummary returns only active fees and policies.
func (s *ConferenceService) GetRegistrationSummary(ctx context.Context, year *int) (*RegistrationSummary, error) {
	id, editionYear, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	summary := &RegistrationSummary{EditionYear: editionYear}
	if summary.Fees, err = s.activeFees(ctx, id); err != nil {
		return nil, err
	}
	if summary.Policies, err = s.activePolicies(ctx, id); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *ConferenceService) GetRegistrationFees(ctx context.Context, year *int) ([]models.RegistrationFee, error) {
	id, _, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.activeFees(ctx, id)
}

func (s *ConferenceService) GetPaymentPolicies(ctx context.Context, year *int) ([]models.PaymentPolicy, error) {
	id, _, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.activePolicies(ctx, id)
}

// GetPaymentInformation filters by payment type when one is given.
func (s *ConferenceService) GetPaymentInformation(ctx context.Context, year *int, paymentType string) ([]models.PaymentInformation, error) {
	id, _, err := s.editionID(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.paymentInfo.FindByEdition(ctx, id, WhereEqual("payment_type", paymentType))
}

func (s *ConferenceService) activeFees(ctx context.Context, editionID uint) ([]models.RegistrationFee, error) {
	active := true
	return s.fees.FindByEdition(ctx, editionID, WhereActive("is_active", &active))
}

func (s *ConferenceService) activePolicies(ctx context.Context, editionID uint) ([]models.PaymentPolicy, error) {
	active := true
	return s.policies.FindByEdition(ctx, editionID, WhereActive("is_active", &active))
}

var _ IConferenceService = (*ConferenceService)(nil)
