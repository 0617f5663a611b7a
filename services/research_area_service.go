package services

import (
	"context"

	"ristcon.api/models"
	"ristcon.api/repositories"

	"gorm.io/gorm"
)

// IResearchAreaService manages the research areas nested under a category.
type IResearchAreaService interface {
	ListResearchAreas(ctx context.Context, categoryID uint) ([]models.ResearchArea, error)
	AddResearchArea(ctx context.Context, categoryID uint, area *models.ResearchArea) (*models.ResearchArea, error)
	UpdateResearchArea(ctx context.Context, id uint, area *models.ResearchArea) (*models.ResearchArea, error)
	DeleteResearchArea(ctx context.Context, id uint) error
}

// ResearchAreaService implements IResearchAreaService.
type ResearchAreaService struct {
	db *gorm.DB
}

// NewResearchAreaService creates a ResearchAreaService backed by db.
func NewResearchAreaService(db *gorm.DB) IResearchAreaService {
	return &ResearchAreaService{db: db}
}

func (s *ResearchAreaService) ListResearchAreas(ctx context.Context, categoryID uint) ([]models.ResearchArea, error) {
	categories := repositories.NewScopedRepository[models.ResearchCategory](s.db)
	if _, err := categories.FindByID(ctx, categoryID); err != nil {
		return nil, notFoundOr(err, ErrRecordNotFound)
	}
	return repositories.NewResearchAreaRepository(s.db).FindByCategory(ctx, categoryID, false)
}

// AddResearchArea attaches area to an existing category.
func (s *ResearchAreaService) AddResearchArea(ctx context.Context, categoryID uint, area *models.ResearchArea) (*models.ResearchArea, error) {
	if err := validateStruct(area); err != nil {
		return nil, err
	}
	area.ID = 0
	area.CategoryID = categoryID
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := repositories.NewScopedRepository[models.ResearchCategory](tx)
		if _, err := categories.FindByIDForUpdate(ctx, categoryID); err != nil {
			return notFoundOr(err, ErrRecordNotFound)
		}
		return repositories.NewResearchAreaRepositoryTx(tx).Create(ctx, area)
	})
	if err != nil {
		return nil, err
	}
	return area, nil
}

// UpdateResearchArea replaces the area's fields; the area stays under its category.
func (s *ResearchAreaService) UpdateResearchArea(ctx context.Context, id uint, area *models.ResearchArea) (*models.ResearchArea, error) {
	if err := validateStruct(area); err != nil {
		return nil, err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewResearchAreaRepositoryTx(tx)
		existing, err := repo.FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err, ErrRecordNotFound)
		}
		area.ID = existing.ID
		area.CategoryID = existing.CategoryID
		area.CreatedAt = existing.CreatedAt
		return repo.Update(ctx, area)
	})
	if err != nil {
		return nil, err
	}
	return area, nil
}

func (s *ResearchAreaService) DeleteResearchArea(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewResearchAreaRepositoryTx(tx)
		existing, err := repo.FindByID(ctx, id)
		if err != nil {
			return notFoundOr(err, ErrRecordNotFound)
		}
		return repo.Delete(ctx, existing)
	})
}

var _ IResearchAreaService = (*ResearchAreaService)(nil)
