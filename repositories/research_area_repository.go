package repositories

import (
	"context"

	"ristcon.api/models"

	"gorm.io/gorm"
)

// IResearchAreaRepository is the interface for research_areas storage.
type IResearchAreaRepository interface {
	FindByCategory(ctx context.Context, categoryID uint, activeOnly bool) ([]models.ResearchArea, error)
	FindByID(ctx context.Context, id uint) (*models.ResearchArea, error)
	Create(ctx context.Context, area *models.ResearchArea) error
	Update(ctx context.Context, area *models.ResearchArea) error
	Delete(ctx context.Context, area *models.ResearchArea) error
}

// ResearchAreaRepository implements IResearchAreaRepository.
type ResearchAreaRepository struct {
	db *gorm.DB
}

// NewResearchAreaRepository creates a ResearchAreaRepository on db.
func NewResearchAreaRepository(db *gorm.DB) IResearchAreaRepository {
	return &ResearchAreaRepository{db: db}
}

// NewResearchAreaRepositoryTx binds the repository to an open transaction.
func NewResearchAreaRepositoryTx(tx *gorm.DB) IResearchAreaRepository {
	return &ResearchAreaRepository{db: tx}
}

func (r *ResearchAreaRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindByCategory lists a category's areas in display order, optionally active ones only.
func (r *ResearchAreaRepository) FindByCategory(ctx context.Context, categoryID uint, activeOnly bool) ([]models.ResearchArea, error) {
	areas := make([]models.ResearchArea, 0)
	query := r.getDB(ctx).Where("category_id = ?", categoryID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("display_order ASC, id ASC").Find(&areas).Error
	return areas, err
}

func (r *ResearchAreaRepository) FindByID(ctx context.Context, id uint) (*models.ResearchArea, error) {
	var area models.ResearchArea
	if err := r.getDB(ctx).First(&area, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &area, nil
}

func (r *ResearchAreaRepository) Create(ctx context.Context, area *models.ResearchArea) error {
	return translateError(r.getDB(ctx).Create(area).Error)
}

func (r *ResearchAreaRepository) Update(ctx context.Context, area *models.ResearchArea) error {
	return translateError(r.getDB(ctx).Save(area).Error)
}

func (r *ResearchAreaRepository) Delete(ctx context.Context, area *models.ResearchArea) error {
	return translateError(r.getDB(ctx).Delete(area).Error)
}

var _ IResearchAreaRepository = (*ResearchAreaRepository)(nil)
