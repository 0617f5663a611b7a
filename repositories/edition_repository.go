package repositories

import (
	"context"
	"errors"
	"fmt"

	"ristcon.api/configs/configslog"
	"ristcon.api/models"
	"ristcon.api/pkg/includes"
	"ristcon.api/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IEditionRepository is the interface for conference_editions storage.
// Soft deleted editions are invisible to every finder.
type IEditionRepository interface {
	Create(ctx context.Context, edition *models.Edition) error
	Update(ctx context.Context, edition *models.Edition) error
	FindByID(ctx context.Context, id uint, incs includes.Set) (*models.Edition, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Edition, error)
	FindByYear(ctx context.Context, year int, incs includes.Set) (*models.Edition, error)
	FindActive(ctx context.Context, incs includes.Set) (*models.Edition, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams, incs includes.Set) ([]models.Edition, int64, error)
	ExistsByYearOrSlug(ctx context.Context, year int, slug string, excludeID uint) (bool, error)
	ClearActiveExcept(ctx context.Context, id uint) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	DeleteScopedChildren(ctx context.Context, editionID uint) (map[string]int64, error)
	SoftDelete(ctx context.Context, edition *models.Edition) error
}

// EditionRepository implements IEditionRepository.
type EditionRepository struct {
	db *gorm.DB
}

var allowedEditionSortColumns = map[string]string{
	"year":            "year",
	"edition_number":  "edition_number",
	"conference_date": "conference_date",
	"status":          "status",
	"created_at":      "created_at",
}

// NewEditionRepository creates an EditionRepository on db.
func NewEditionRepository(db *gorm.DB) IEditionRepository {
	return &EditionRepository{db: db}
}

// NewEditionRepositoryTx binds the repository to an open transaction.
func NewEditionRepositoryTx(tx *gorm.DB) IEditionRepository {
	return &EditionRepository{db: tx}
}

func (r *EditionRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *EditionRepository) Create(ctx context.Context, edition *models.Edition) error {
	if edition == nil {
		return errors.New("nil edition")
	}
	return translateError(r.getDB(ctx).Omit(clause.Associations).Create(edition).Error)
}

func (r *EditionRepository) Update(ctx context.Context, edition *models.Edition) error {
	if edition == nil || edition.ID == 0 {
		return errors.New("edition without id cannot be updated")
	}
	return translateError(r.getDB(ctx).Omit(clause.Associations).Save(edition).Error)
}

func (r *EditionRepository) FindByID(ctx context.Context, id uint, incs includes.Set) (*models.Edition, error) {
	var edition models.Edition
	err := incs.Apply(r.getDB(ctx)).First(&edition, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EditionRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &edition, nil
}

// FindByIDForUpdate locks the row for the rest of the surrounding transaction.
func (r *EditionRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.Edition, error) {
	var edition models.Edition
	err := r.getDB(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&edition, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &edition, nil
}

func (r *EditionRepository) FindByYear(ctx context.Context, year int, incs includes.Set) (*models.Edition, error) {
	var edition models.Edition
	err := incs.Apply(r.getDB(ctx)).Where("year = ?", year).First(&edition).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EditionRepository.FindByYear: DB error", zap.Int("year", year), zap.Error(err))
		return nil, err
	}
	return &edition, nil
}

func (r *EditionRepository) FindActive(ctx context.Context, incs includes.Set) (*models.Edition, error) {
	var edition models.Edition
	err := incs.Apply(r.getDB(ctx)).Where("is_active_edition = ?", true).First(&edition).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &edition, nil
}

// FindAllPaginated applies the status and year filters and a whitelisted sort.
func (r *EditionRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams, incs includes.Set) ([]models.Edition, int64, error) {
	var editions []models.Edition
	var total int64

	query := r.getDB(ctx).Model(&models.Edition{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Year != 0 {
		query = query.Where("year = ?", params.Year)
	}
	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("EditionRepository.FindAllPaginated: count error", zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return []models.Edition{}, 0, nil
	}

	column, ok := allowedEditionSortColumns[params.SortBy]
	if !ok {
		column = queryparams.DefaultSortBy
	}
	err := incs.Apply(query).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: params.OrderBy == "desc"}).
		Offset(params.CalculateOffset()).
		Limit(params.PerPage).
		Find(&editions).Error
	if err != nil {
		configslog.Log.Error("EditionRepository.FindAllPaginated: find error", zap.Error(err))
		return nil, 0, err
	}
	return editions, total, nil
}

// ExistsByYearOrSlug checks live editions only; soft deleted rows do not block reuse.
func (r *EditionRepository) ExistsByYearOrSlug(ctx context.Context, year int, slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.getDB(ctx).Model(&models.Edition{}).Where("year = ? OR slug = ?", year, slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ClearActiveExcept unsets is_active_edition on every edition but id and returns how many changed.
func (r *EditionRepository) ClearActiveExcept(ctx context.Context, id uint) (int64, error) {
	result := r.getDB(ctx).Model(&models.Edition{}).
		Where("is_active_edition = ? AND id <> ?", true, id).
		Update("is_active_edition", false)
	return result.RowsAffected, result.Error
}

func (r *EditionRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Edition{}).Where("is_active_edition = ?", true).Count(&count).Error
	return count, err
}

// DeleteScopedChildren hard deletes every row the edition owns, research areas included.
// The returned map holds the deleted row count per table.
func (r *EditionRepository) DeleteScopedChildren(ctx context.Context, editionID uint) (map[string]int64, error) {
	db := r.getDB(ctx)
	deleted := make(map[string]int64)

	categories := db.Model(&models.ResearchCategory{}).Select("id").Where("edition_id = ?", editionID)
	result := db.Where("category_id IN (?)", categories).Delete(&models.ResearchArea{})
	if result.Error != nil {
		return nil, fmt.Errorf("deleting research areas: %w", result.Error)
	}
	deleted[models.ResearchArea{}.TableName()] = result.RowsAffected

	for _, table := range models.ScopedTables() {
		result := db.Where("edition_id = ?", editionID).Delete(table.Model)
		if result.Error != nil {
			return nil, fmt.Errorf("deleting %s: %w", table.Name, result.Error)
		}
		deleted[table.Name] = result.RowsAffected
	}
	return deleted, nil
}

func (r *EditionRepository) SoftDelete(ctx context.Context, edition *models.Edition) error {
	return r.getDB(ctx).Delete(edition).Error
}

var _ IEditionRepository = (*EditionRepository)(nil)
