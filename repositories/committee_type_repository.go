package repositories

import (
	"context"

	"ristcon.api/models"

	"gorm.io/gorm"
)

// ICommitteeTypeRepository reads and writes the global committee_types lookup.
type ICommitteeTypeRepository interface {
	FindAll(ctx context.Context) ([]models.CommitteeType, error)
	FindByID(ctx context.Context, id uint) (*models.CommitteeType, error)
	FindByName(ctx context.Context, name string) (*models.CommitteeType, error)
	Create(ctx context.Context, committeeType *models.CommitteeType) error
}

// CommitteeTypeRepository implements ICommitteeTypeRepository.
type CommitteeTypeRepository struct {
	db *gorm.DB
}

// NewCommitteeTypeRepository creates a CommitteeTypeRepository on db.
func NewCommitteeTypeRepository(db *gorm.DB) ICommitteeTypeRepository {
	return &CommitteeTypeRepository{db: db}
}

// NewCommitteeTypeRepositoryTx binds the repository to an open transaction.
func NewCommitteeTypeRepositoryTx(tx *gorm.DB) ICommitteeTypeRepository {
	return &CommitteeTypeRepository{db: tx}
}

// FindAll returns every committee type in display order.
func (r *CommitteeTypeRepository) FindAll(ctx context.Context) ([]models.CommitteeType, error) {
	types := make([]models.CommitteeType, 0)
	err := r.db.WithContext(ctx).Order("display_order ASC, id ASC").Find(&types).Error
	return types, err
}

func (r *CommitteeTypeRepository) FindByID(ctx context.Context, id uint) (*models.CommitteeType, error) {
	var committeeType models.CommitteeType
	if err := r.db.WithContext(ctx).First(&committeeType, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &committeeType, nil
}

func (r *CommitteeTypeRepository) FindByName(ctx context.Context, name string) (*models.CommitteeType, error) {
	var committeeType models.CommitteeType
	if err := r.db.WithContext(ctx).Where("committee_name = ?", name).First(&committeeType).Error; err != nil {
		return nil, translateError(err)
	}
	return &committeeType, nil
}

func (r *CommitteeTypeRepository) Create(ctx context.Context, committeeType *models.CommitteeType) error {
	return translateError(r.db.WithContext(ctx).Create(committeeType).Error)
}

var _ ICommitteeTypeRepository = (*CommitteeTypeRepository)(nil)
