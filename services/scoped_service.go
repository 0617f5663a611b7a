package services

import (
	"context"
	"errors"

	"ristcon.api/configs/configslog"
	"ristcon.api/models"
	"ristcon.api/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IScopedService is the CRUD surface every edition-scoped kind exposes to the admin API.
type IScopedService[T any] interface {
	List(ctx context.Context, editionID uint, scopes ...repositories.QueryScope) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, editionID uint, entity *T) (*T, error)
	Update(ctx context.Context, id uint, entity *T) (*T, error)
	Delete(ctx context.Context, id uint) error
	// Upsert creates or replaces the edition's only row; it serves one-per-edition kinds.
	Upsert(ctx context.Context, editionID uint, entity *T) (*T, error)
}

// WriteCheck runs inside the write transaction after validation.
type WriteCheck[T any] func(ctx context.Context, tx *gorm.DB, entity *T) error

// ScopedService implements IScopedService for one scoped kind.
type ScopedService[T any, PT interface {
	*T
	models.Entity
}] struct {
	db    *gorm.DB
	repo  repositories.IScopedRepository[T]
	check WriteCheck[T]
}

// NewScopedService creates the service for T. check may be nil.
func NewScopedService[T any, PT interface {
	*T
	models.Entity
}](db *gorm.DB, check WriteCheck[T]) IScopedService[T] {
	return &ScopedService[T, PT]{
		db:    db,
		repo:  repositories.NewScopedRepository[T, PT](db),
		check: check,
	}
}

func (s *ScopedService[T, PT]) txRepo(tx *gorm.DB) repositories.IScopedRepository[T] {
	return repositories.NewScopedRepository[T, PT](tx)
}

func (s *ScopedService[T, PT]) table() string {
	var zero T
	return PT(&zero).TableName()
}

// List returns the edition's rows in display order.
func (s *ScopedService[T, PT]) List(ctx context.Context, editionID uint, scopes ...repositories.QueryScope) ([]T, error) {
	if _, err := repositories.NewEditionRepository(s.db).FindByID(ctx, editionID, nil); err != nil {
		return nil, notFoundOr(err, ErrEditionNotFound)
	}
	return s.repo.FindByEdition(ctx, editionID, scopes...)
}

func (s *ScopedService[T, PT]) Get(ctx context.Context, id uint) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrRecordNotFound)
	}
	return entity, nil
}

// Create forces edition_id to editionID whatever the payload carried.
func (s *ScopedService[T, PT]) Create(ctx context.Context, editionID uint, entity *T) (*T, error) {
	if err := validateStruct(entity); err != nil {
		return nil, err
	}
	PT(entity).SetID(0)
	PT(entity).Scope().EditionID = editionID

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repositories.NewEditionRepositoryTx(tx).FindByIDForUpdate(ctx, editionID); err != nil {
			return notFoundOr(err, ErrEditionNotFound)
		}
		if s.check != nil {
			if err := s.check(ctx, tx, entity); err != nil {
				return err
			}
		}
		return notFoundOr(s.txRepo(tx).Create(ctx, entity), ErrRecordNotFound)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, PT(entity).GetID())
}

// Update replaces the row's fields. The row keeps its edition and creation time.
func (s *ScopedService[T, PT]) Update(ctx context.Context, id uint, entity *T) (*T, error) {
	if err := validateStruct(entity); err != nil {
		return nil, err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.txRepo(tx)
		existing, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundOr(err, ErrRecordNotFound)
		}
		carryOver[T, PT](existing, entity)
		if s.check != nil {
			if err := s.check(ctx, tx, entity); err != nil {
				return err
			}
		}
		return notFoundOr(repo.Update(ctx, entity), ErrRecordNotFound)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *ScopedService[T, PT]) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.txRepo(tx)
		existing, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundOr(err, ErrRecordNotFound)
		}
		if err := repo.Delete(ctx, existing); err != nil {
			configslog.Log.Error("ScopedService.Delete failed", zap.String("table", s.table()), zap.Uint("id", id), zap.Error(err))
			return err
		}
		return nil
	})
}

func (s *ScopedService[T, PT]) Upsert(ctx context.Context, editionID uint, entity *T) (*T, error) {
	if err := validateStruct(entity); err != nil {
		return nil, err
	}
	PT(entity).Scope().EditionID = editionID

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The edition row lock serializes concurrent upserts for the same edition.
		if _, err := repositories.NewEditionRepositoryTx(tx).FindByIDForUpdate(ctx, editionID); err != nil {
			return notFoundOr(err, ErrEditionNotFound)
		}
		repo := s.txRepo(tx)
		existing, err := repo.FindOneByEdition(ctx, editionID)
		switch {
		case err == nil:
			carryOver[T, PT](existing, entity)
			return repo.Update(ctx, entity)
		case errors.Is(err, repositories.ErrNotFound):
			PT(entity).SetID(0)
			return repo.Create(ctx, entity)
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, PT(entity).GetID())
}

// carryOver copies the identity columns of existing onto the incoming payload.
func carryOver[T any, PT interface {
	*T
	models.Entity
}](existing, incoming *T) {
	src := PT(existing)
	dst := PT(incoming)
	dst.SetID(src.GetID())
	dst.Scope().EditionID = src.Scope().EditionID
	dst.Scope().CreatedAt = src.Scope().CreatedAt
}

var _ IScopedService[models.Speaker] = (*ScopedService[models.Speaker, *models.Speaker])(nil)
