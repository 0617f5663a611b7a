package services

import (
	"context"
	"time"

	"ristcon.api/models"
	"ristcon.api/repositories"

	"gorm.io/gorm"
)

// IImportantDateService is the interface for deadline extensions.
type IImportantDateService interface {
	ExtendImportantDate(ctx context.Context, id uint, newDate time.Time) (*models.ImportantDate, error)
}

// ImportantDateService implements IImportantDateService.
type ImportantDateService struct {
	db *gorm.DB
}

// NewImportantDateService creates an ImportantDateService backed by db.
func NewImportantDateService(db *gorm.DB) IImportantDateService {
	return &ImportantDateService{db: db}
}

// ExtendImportantDate pushes a deadline later. original_date keeps the value from before the first extension.
func (s *ImportantDateService) ExtendImportantDate(ctx context.Context, id uint, newDate time.Time) (*models.ImportantDate, error) {
	if newDate.IsZero() {
		return nil, &ValidationError{Fields: map[string]string{"new_date": "is required"}}
	}
	var extended *models.ImportantDate
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewScopedRepository[models.ImportantDate](tx)
		date, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return notFoundOr(err, ErrRecordNotFound)
		}
		if !models.StartOfDayUTC(newDate).After(models.StartOfDayUTC(date.DateValue)) {
			return ErrExtendNotLater
		}
		date.Extend(newDate)
		if err := repo.Update(ctx, date); err != nil {
			return err
		}
		extended = date
		return nil
	})
	if err != nil {
		return nil, err
	}
	extended.ApplyTimeline(time.Now())
	return extended, nil
}

var _ IImportantDateService = (*ImportantDateService)(nil)
