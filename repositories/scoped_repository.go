package repositories

import (
	"context"
	"errors"

	"ristcon.api/configs/configslog"
	"ristcon.api/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IScopedRepository is the storage contract shared by every edition-scoped table.
type IScopedRepository[T any] interface {
	FindByEdition(ctx context.Context, editionID uint, scopes ...QueryScope) ([]T, error)
	FindOneByEdition(ctx context.Context, editionID uint) (*T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}

// ScopedRepository implements IScopedRepository for any model whose pointer is a models.Entity.
type ScopedRepository[T any, PT interface {
	*T
	models.Entity
}] struct {
	db *gorm.DB
}

// NewScopedRepository creates the repository for T on db.
// Pass a transaction handle to run its queries inside that transaction.
func NewScopedRepository[T any, PT interface {
	*T
	models.Entity
}](db *gorm.DB) IScopedRepository[T] {
	return &ScopedRepository[T, PT]{db: db}
}

func (r *ScopedRepository[T, PT]) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *ScopedRepository[T, PT]) tableName() string {
	var zero T
	return PT(&zero).TableName()
}

var primaryKeyOrder = clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey}}

// FindByEdition returns the edition's rows ordered by display_order then primary key.
func (r *ScopedRepository[T, PT]) FindByEdition(ctx context.Context, editionID uint, scopes ...QueryScope) ([]T, error) {
	table := r.tableName()
	query := r.getDB(ctx).Model(new(T)).Where(table+".edition_id = ?", editionID)
	for _, scope := range scopes {
		if scope != nil {
			query = scope(query)
		}
	}
	rows := make([]T, 0)
	err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Table: table, Name: "display_order"}}).
		Order(primaryKeyOrder).
		Find(&rows).Error
	if err != nil {
		configslog.Log.Error("ScopedRepository.FindByEdition: DB error",
			zap.String("table", table), zap.Uint("edition_id", editionID), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// FindOneByEdition serves the one-per-edition tables.
func (r *ScopedRepository[T, PT]) FindOneByEdition(ctx context.Context, editionID uint) (*T, error) {
	entity := new(T)
	err := r.getDB(ctx).Where("edition_id = ?", editionID).Order(primaryKeyOrder).First(entity).Error
	if err != nil {
		return nil, translateError(err)
	}
	return entity, nil
}

func (r *ScopedRepository[T, PT]) FindByID(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	entity := new(T)
	if err := r.getDB(ctx).First(entity, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			configslog.Log.Error("ScopedRepository.FindByID: DB error",
				zap.String("table", r.tableName()), zap.Uint("id", id), zap.Error(err))
		}
		return nil, translateError(err)
	}
	return entity, nil
}

// FindByIDForUpdate locks the row for the rest of the transaction.
func (r *ScopedRepository[T, PT]) FindByIDForUpdate(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	entity := new(T)
	err := r.getDB(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(entity, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return entity, nil
}

// Create rejects rows without an edition; associations are never written.
func (r *ScopedRepository[T, PT]) Create(ctx context.Context, entity *T) error {
	if PT(entity).Scope().EditionID == 0 {
		return errors.New("scoped row without edition_id cannot be created")
	}
	return translateError(r.getDB(ctx).Omit(clause.Associations).Create(entity).Error)
}

// Update writes every column of the row; callers carry over edition_id and created_at.
func (r *ScopedRepository[T, PT]) Update(ctx context.Context, entity *T) error {
	if PT(entity).GetID() == 0 {
		return errors.New("scoped row without id cannot be updated")
	}
	return translateError(r.getDB(ctx).Omit(clause.Associations).Save(entity).Error)
}

func (r *ScopedRepository[T, PT]) Delete(ctx context.Context, entity *T) error {
	return translateError(r.getDB(ctx).Delete(entity).Error)
}

var _ IScopedRepository[models.Speaker] = (*ScopedRepository[models.Speaker, *models.Speaker])(nil)
