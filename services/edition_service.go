package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ristcon.api/configs/configslog"
	"ristcon.api/models"
	"ristcon.api/pkg/includes"
	"ristcon.api/pkg/queryparams"
	"ristcon.api/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateEditionInput is the admin payload for a new edition. Name, slug and site version are derived when empty.
type CreateEditionInput struct {
	Year              int              `json:"year" validate:"required,gte=1900,lte=2200"`
	EditionNumber     int              `json:"edition_number" validate:"required,gt=0"`
	Name              string           `json:"name" validate:"omitempty,max=255"`
	ConferenceDate    time.Time        `json:"conference_date" validate:"required"`
	VenueType         models.VenueType `json:"venue_type" validate:"omitempty,oneof=physical virtual hybrid"`
	VenueLocation     *string          `json:"venue_location" validate:"omitempty,max=255"`
	Theme             string           `json:"theme" validate:"required"`
	Description       *string          `json:"description"`
	GeneralEmail      string           `json:"general_email" validate:"required,email"`
	AvailabilityHours *string          `json:"availability_hours" validate:"omitempty,max=255"`
	CopyrightYear     int              `json:"copyright_year" validate:"omitempty,gte=1900"`
	SiteVersion       string           `json:"site_version" validate:"omitempty,max=20"`
	IsLegacySite      bool             `json:"is_legacy_site"`
	LegacyWebsiteURL  *string          `json:"legacy_website_url" validate:"omitempty,url"`
}

// UpdateEditionInput is a partial update; nil fields are left untouched.
type UpdateEditionInput struct {
	Year              *int              `json:"year" validate:"omitempty,gte=1900,lte=2200"`
	EditionNumber     *int              `json:"edition_number" validate:"omitempty,gt=0"`
	Name              *string           `json:"name" validate:"omitempty,min=1,max=255"`
	ConferenceDate    *time.Time        `json:"conference_date"`
	VenueType         *models.VenueType `json:"venue_type" validate:"omitempty,oneof=physical virtual hybrid"`
	VenueLocation     *string           `json:"venue_location" validate:"omitempty,max=255"`
	Theme             *string           `json:"theme" validate:"omitempty,min=1"`
	Description       *string           `json:"description"`
	GeneralEmail      *string           `json:"general_email" validate:"omitempty,email"`
	AvailabilityHours *string           `json:"availability_hours" validate:"omitempty,max=255"`
	CopyrightYear     *int              `json:"copyright_year" validate:"omitempty,gte=1900"`
	SiteVersion       *string           `json:"site_version" validate:"omitempty,min=1,max=20"`
	IsLegacySite      *bool             `json:"is_legacy_site"`
	LegacyWebsiteURL  *string           `json:"legacy_website_url" validate:"omitempty,url"`
}

// IEditionService is the interface for the edition registry and its lifecycle.
// Lifecycle methods return a PolicyViolation kind error when the transition is not allowed.
type IEditionService interface {
	CreateEdition(ctx context.Context, input CreateEditionInput) (*models.Edition, error)
	UpdateEdition(ctx context.Context, id uint, input UpdateEditionInput) (*models.Edition, error)
	GetEditionByID(ctx context.Context, id uint, incs includes.Set) (*models.Edition, error)
	GetEditionByYear(ctx context.Context, year int, incs includes.Set) (*models.Edition, error)
	GetActiveEdition(ctx context.Context, incs includes.Set) (*models.Edition, error)
	ListEditions(ctx context.Context, params queryparams.ListParams, incs includes.Set) (*queryparams.PaginatedResult, error)
	ActivateEdition(ctx context.Context, id uint) (*models.Edition, error)
	PublishEdition(ctx context.Context, id uint) (*models.Edition, error)
	ArchiveEdition(ctx context.Context, id uint) (*models.Edition, error)
	CancelEdition(ctx context.Context, id uint) (*models.Edition, error)
	DeleteEdition(ctx context.Context, id uint) error
}

// EditionService implements IEditionService.
type EditionService struct {
	db   *gorm.DB
	repo repositories.IEditionRepository
}

// NewEditionService creates an EditionService backed by db.
func NewEditionService(db *gorm.DB) IEditionService {
	return &EditionService{db: db, repo: repositories.NewEditionRepository(db)}
}

// CreateEdition stores a draft, inactive edition. A taken year or slug is a validation failure.
func (s *EditionService) CreateEdition(ctx context.Context, input CreateEditionInput) (*models.Edition, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	edition := &models.Edition{
		Year:              input.Year,
		EditionNumber:     input.EditionNumber,
		Name:              input.Name,
		Slug:              models.SlugForYear(input.Year),
		Status:            models.EditionStatusDraft,
		IsActiveEdition:   false,
		ConferenceDate:    input.ConferenceDate,
		VenueType:         input.VenueType,
		VenueLocation:     input.VenueLocation,
		Theme:             input.Theme,
		Description:       input.Description,
		GeneralEmail:      input.GeneralEmail,
		AvailabilityHours: input.AvailabilityHours,
		CopyrightYear:     input.CopyrightYear,
		SiteVersion:       input.SiteVersion,
		IsLegacySite:      input.IsLegacySite,
		LegacyWebsiteURL:  input.LegacyWebsiteURL,
	}
	if edition.Name == "" {
		edition.Name = fmt.Sprintf("RISTCON %d", input.Year)
	}
	if edition.VenueType == "" {
		edition.VenueType = models.VenueTypePhysical
	}
	if edition.CopyrightYear == 0 {
		edition.CopyrightYear = input.Year
	}
	if edition.SiteVersion == "" {
		edition.SiteVersion = models.DefaultSiteVersion
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewEditionRepositoryTx(tx)
		taken, err := repo.ExistsByYearOrSlug(ctx, edition.Year, edition.Slug, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrEditionYearTaken
		}
		return repo.Create(ctx, edition)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEditionYearTaken
		}
		if !errors.Is(err, ErrEditionYearTaken) {
			configslog.Log.Error("EditionService.CreateEdition failed", zap.Int("year", input.Year), zap.Error(err))
		}
		return nil, err
	}
	configslog.SLog.Infof("Edition %d created (id=%d)", edition.Year, edition.ID)
	return edition, nil
}

// UpdateEdition applies the non-nil fields of input. The slug follows the year.
func (s *EditionService) UpdateEdition(ctx context.Context, id uint, input UpdateEditionInput) (*models.Edition, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	var updated *models.Edition
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewEditionRepositoryTx(tx)
		edition, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundOr(err, ErrEditionNotFound)
		}

		if input.Year != nil && *input.Year != edition.Year {
			slug := models.SlugForYear(*input.Year)
			taken, err := repo.ExistsByYearOrSlug(ctx, *input.Year, slug, edition.ID)
			if err != nil {
				return err
			}
			if taken {
				return ErrEditionYearTaken
			}
			edition.Year = *input.Year
			edition.Slug = slug
		}
		applyEditionInput(edition, input)

		if err := repo.Update(ctx, edition); err != nil {
			return notFoundOr(err, ErrEditionNotFound)
		}
		updated = edition
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func applyEditionInput(e *models.Edition, in UpdateEditionInput) {
	if in.EditionNumber != nil {
		e.EditionNumber = *in.EditionNumber
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.ConferenceDate != nil {
		e.ConferenceDate = *in.ConferenceDate
	}
	if in.VenueType != nil {
		e.VenueType = *in.VenueType
	}
	if in.VenueLocation != nil {
		e.VenueLocation = in.VenueLocation
	}
	if in.Theme != nil {
		e.Theme = *in.Theme
	}
	if in.Description != nil {
		e.Description = in.Description
	}
	if in.GeneralEmail != nil {
		e.GeneralEmail = *in.GeneralEmail
	}
	if in.AvailabilityHours != nil {
		e.AvailabilityHours = in.AvailabilityHours
	}
	if in.CopyrightYear != nil {
		e.CopyrightYear = *in.CopyrightYear
	}
	if in.SiteVersion != nil {
		e.SiteVersion = *in.SiteVersion
	}
	if in.IsLegacySite != nil {
		e.IsLegacySite = *in.IsLegacySite
	}
	if in.LegacyWebsiteURL != nil {
		e.LegacyWebsiteURL = in.LegacyWebsiteURL
	}
	now := time.Now()
	e.LastUpdated = &now
}

func (s *EditionService) GetEditionByID(ctx context.Context, id uint, incs includes.Set) (*models.Edition, error) {
	edition, err := s.repo.FindByID(ctx, id, incs)
	if err != nil {
		return nil, notFoundOr(err, ErrEditionNotFound)
	}
	return edition, nil
}

// GetEditionByYear loads a live edition by year with the requested includes.
func (s *EditionService) GetEditionByYear(ctx context.Context, year int, incs includes.Set) (*models.Edition, error) {
	edition, err := s.repo.FindByYear(ctx, year, incs)
	if err != nil {
		return nil, notFoundOr(err, ErrEditionNotFound)
	}
	return edition, nil
}

func (s *EditionService) GetActiveEdition(ctx context.Context, incs includes.Set) (*models.Edition, error) {
	edition, err := s.repo.FindActive(ctx, incs)
	if err != nil {
		return nil, notFoundOr(err, ErrNoActiveEdition)
	}
	return edition, nil
}

// ListEditions returns one page of editions, newest year first by default.
func (s *EditionService) ListEditions(ctx context.Context, params queryparams.ListParams, incs includes.Set) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.Status != "" && !models.EditionStatus(params.Status).Valid() {
		return nil, &ValidationError{Fields: map[string]string{"status": "must be one of: draft published archived cancelled"}}
	}
	editions, total, err := s.repo.FindAllPaginated(ctx, params, incs)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: editions,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: total, TotalPages: queryparams.CalculateTotalPages(total, params.PerPage),
		},
	}, nil
}

// lifecycle runs fn on the locked edition inside one transaction and saves it when fn succeeds.
func (s *EditionService) lifecycle(ctx context.Context, id uint, fn func(repo repositories.IEditionRepository, e *models.Edition) (bool, error)) (*models.Edition, error) {
	var result *models.Edition
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.LockEditions(ctx, tx); err != nil {
			return err
		}
		repo := repositories.NewEditionRepositoryTx(tx)
		edition, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundOr(err, ErrEditionNotFound)
		}
		changed, err := fn(repo, edition)
		if err != nil {
			return err
		}
		if changed {
			if err := repo.Update(ctx, edition); err != nil {
				return err
			}
		}
		result = edition
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ActivateEdition makes id the only active edition. Any status may be activated.
func (s *EditionService) ActivateEdition(ctx context.Context, id uint) (*models.Edition, error) {
	edition, err := s.lifecycle(ctx, id, func(repo repositories.IEditionRepository, e *models.Edition) (bool, error) {
		cleared, err := repo.ClearActiveExcept(ctx, e.ID)
		if err != nil {
			return false, err
		}
		if cleared > 0 {
			configslog.SLog.Debugf("%d edition(s) deactivated before activating %d", cleared, e.Year)
		}
		if e.IsActiveEdition {
			return false, nil
		}
		e.IsActiveEdition = true
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	configslog.SLog.Infof("Active edition is now %d", edition.Year)
	return edition, nil
}

// PublishEdition moves a draft edition to published.
func (s *EditionService) PublishEdition(ctx context.Context, id uint) (*models.Edition, error) {
	return s.lifecycle(ctx, id, func(_ repositories.IEditionRepository, e *models.Edition) (bool, error) {
		if e.Status != models.EditionStatusDraft {
			return false, ErrPublishNotDraft
		}
		e.Status = models.EditionStatusPublished
		return true, nil
	})
}

// ArchiveEdition moves a published or cancelled edition to archived. Archiving an archived edition is a no-op.
func (s *EditionService) ArchiveEdition(ctx context.Context, id uint) (*models.Edition, error) {
	return s.lifecycle(ctx, id, func(_ repositories.IEditionRepository, e *models.Edition) (bool, error) {
		if e.IsActiveEdition {
			return false, ErrArchiveActive
		}
		switch e.Status {
		case models.EditionStatusArchived:
			return false, nil
		case models.EditionStatusDraft:
			return false, ErrArchiveDraft
		}
		e.Status = models.EditionStatusArchived
		return true, nil
	})
}

// CancelEdition moves a draft or published, non-active edition to cancelled.
func (s *EditionService) CancelEdition(ctx context.Context, id uint) (*models.Edition, error) {
	return s.lifecycle(ctx, id, func(_ repositories.IEditionRepository, e *models.Edition) (bool, error) {
		if e.IsActiveEdition {
			return false, ErrCancelActive
		}
		if e.Status == models.EditionStatusArchived || e.Status == models.EditionStatusCancelled {
			return false, ErrCancelFinished
		}
		e.Status = models.EditionStatusCancelled
		return true, nil
	})
}

// DeleteEdition removes every scoped row of the edition and soft deletes the edition itself.
func (s *EditionService) DeleteEdition(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.LockEditions(ctx, tx); err != nil {
			return err
		}
		repo := repositories.NewEditionRepositoryTx(tx)
		edition, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundOr(err, ErrEditionNotFound)
		}
		if !edition.CanBeDeleted() {
			return ErrDeleteProtected
		}

		deleted, err := repo.DeleteScopedChildren(ctx, edition.ID)
		if err != nil {
			configslog.Log.Error("EditionService.DeleteEdition: child cleanup failed", zap.Uint("id", id), zap.Error(err))
			return err
		}
		if err := repo.SoftDelete(ctx, edition); err != nil {
			return err
		}
		configslog.Log.Info("Edition deleted", zap.Int("year", edition.Year), zap.Any("deleted_rows", deleted))
		return nil
	})
}

var _ IEditionService = (*EditionService)(nil)
