package seeders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"ristcon.api/configs/configslog"
	"ristcon.api/models"
	"ristcon.api/repositories"
	"ristcon.api/services"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BackfillReport summarizes one backfill run.
type BackfillReport struct {
	EditionsCreated int              `json:"editions_created"`
	YearsSkipped    []int            `json:"years_skipped"`
	RowsUpdated     map[string]int64 `json:"rows_updated"`
	TablesSkipped   []string         `json:"tables_skipped"`
}

func (r *BackfillReport) TotalRowsUpdated() int64 {
	var total int64
	for _, n := range r.RowsUpdated {
		total += n
	}
	return total
}

// IntegrityError carries every post-backfill check that failed.
type IntegrityError struct {
	Failures []error
}

func (e *IntegrityError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("%s: %s", services.ErrIntegrityViolation, strings.Join(msgs, "; "))
}

func (e *IntegrityError) Unwrap() error { return services.ErrIntegrityViolation }

// EditionBackfill moves single-conference data onto editions.
// CurrentYear is the edition that ends up active.
type EditionBackfill struct {
	CurrentYear int
	Now         func() time.Time
}

func (b EditionBackfill) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

// Run creates the missing editions, links scoped rows to them and validates the result,
// all in one transaction. Any failed check rolls everything back.
func (b EditionBackfill) Run(ctx context.Context, db *gorm.DB) (*BackfillReport, error) {
	if b.CurrentYear == 0 {
		return nil, errors.New("backfill needs a current edition year")
	}
	report := &BackfillReport{RowsUpdated: make(map[string]int64)}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.LockEditions(ctx, tx); err != nil {
			return err
		}
		if !tx.Migrator().HasTable(&models.Conference{}) {
			return errors.New("legacy conferences table does not exist")
		}
		if err := b.createEditions(tx, report); err != nil {
			return err
		}
		mapping, err := conferenceEditionMap(tx)
		if err != nil {
			return err
		}
		if err := linkScopedRows(tx, mapping, report); err != nil {
			return err
		}
		return b.validate(tx)
	})
	if err != nil {
		configslog.Log.Error("Edition backfill rolled back", zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Edition backfill done: %d edition(s) created, %d row(s) linked",
		report.EditionsCreated, report.TotalRowsUpdated())
	return report, nil
}

func (b EditionBackfill) createEditions(tx *gorm.DB, report *BackfillReport) error {
	var conferences []models.Conference
	if err := tx.Unscoped().Order("year ASC, id ASC").Find(&conferences).Error; err != nil {
		return fmt.Errorf("reading conferences: %w", err)
	}
	today := models.StartOfDayUTC(b.now())

	for _, c := range conferences {
		var existing int64
		if err := tx.Unscoped().Model(&models.Edition{}).Where("year = ?", c.Year).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			configslog.SLog.Warnf("Edition %d already exists, skipping conference %d", c.Year, c.ID)
			report.YearsSkipped = append(report.YearsSkipped, c.Year)
			continue
		}

		edition := editionFromConference(c, today, b.CurrentYear)
		if err := tx.Omit(clause.Associations).Create(&edition).Error; err != nil {
			configslog.Log.Error("Edition could not be created from conference",
				zap.Uint("conference_id", c.ID), zap.Int("year", c.Year), zap.Error(err))
			return err
		}
		configslog.SLog.Infof(" -> edition %d created with status %s", edition.Year, edition.Status)
		report.EditionsCreated++
	}
	return nil
}

func editionFromConference(c models.Conference, today time.Time, currentYear int) models.Edition {
	status := models.EditionStatusArchived
	switch {
	case strings.EqualFold(c.Status, models.LegacyStatusCancelled):
		status = models.EditionStatusCancelled
	case !models.StartOfDayUTC(c.ConferenceDate).Before(today):
		status = models.EditionStatusPublished
	}

	siteVersion := models.DefaultSiteVersion
	if c.SiteVersion != nil && *c.SiteVersion != "" {
		siteVersion = *c.SiteVersion
	}
	venueType := models.VenueType(c.VenueType)
	if venueType == "" {
		venueType = models.VenueTypePhysical
	}

	edition := models.Edition{
		Year:              c.Year,
		EditionNumber:     c.EditionNumber,
		Name:              fmt.Sprintf("RISTCON %d", c.Year),
		Slug:              models.SlugForYear(c.Year),
		Status:            status,
		IsActiveEdition:   c.Year == currentYear,
		ConferenceDate:    c.ConferenceDate,
		VenueType:         venueType,
		VenueLocation:     c.VenueLocation,
		Theme:             c.Theme,
		Description:       c.Description,
		GeneralEmail:      c.GeneralEmail,
		AvailabilityHours: c.AvailabilityHours,
		CopyrightYear:     c.CopyrightYear,
		SiteVersion:       siteVersion,
		LastUpdated:       c.LastUpdated,
	}
	edition.CreatedAt = c.CreatedAt
	edition.UpdatedAt = c.UpdatedAt
	edition.DeletedAt = c.DeletedAt
	return edition
}

type conferenceEdition struct {
	ConferenceID uint
	EditionID    uint
}

// conferenceEditionMap joins on year; soft deleted rows on either side are included.
func conferenceEditionMap(tx *gorm.DB) ([]conferenceEdition, error) {
	var pairs []conferenceEdition
	err := tx.Raw(`SELECT c.id AS conference_id, e.id AS edition_id
		FROM conferences c
		JOIN conference_editions e ON e.year = c.year
		ORDER BY c.id`).Scan(&pairs).Error
	if err != nil {
		return nil, fmt.Errorf("mapping conferences to editions: %w", err)
	}
	return pairs, nil
}

func linkScopedRows(tx *gorm.DB, pairs []conferenceEdition, report *BackfillReport) error {
	m := tx.Migrator()
	for _, table := range models.ScopedTables() {
		if !m.HasTable(table.Model) || !m.HasColumn(table.Model, "conference_id") || !m.HasColumn(table.Model, "edition_id") {
			report.TablesSkipped = append(report.TablesSkipped, table.Name)
			continue
		}
		var updated int64
		for _, p := range pairs {
			result := tx.Table(table.Name).
				Where("conference_id = ? AND edition_id IS NULL", p.ConferenceID).
				UpdateColumn("edition_id", p.EditionID)
			if result.Error != nil {
				return fmt.Errorf("linking %s rows of conference %d: %w", table.Name, p.ConferenceID, result.Error)
			}
			updated += result.RowsAffected
		}
		report.RowsUpdated[table.Name] = updated
		if updated > 0 {
			configslog.SLog.Infof(" -> %s: %d row(s) linked", table.Name, updated)
		}
	}
	sort.Strings(report.TablesSkipped)
	return nil
}

func (b EditionBackfill) validate(tx *gorm.DB) error {
	var errs error

	var conferences, editions int64
	if err := tx.Unscoped().Model(&models.Conference{}).Count(&conferences).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Model(&models.Edition{}).Count(&editions).Error; err != nil {
		return err
	}
	if conferences != editions {
		errs = multierr.Append(errs, fmt.Errorf("%d editions for %d conferences", editions, conferences))
	}

	m := tx.Migrator()
	for _, table := range models.ScopedTables() {
		if !m.HasTable(table.Model) || !m.HasColumn(table.Model, "edition_id") {
			continue
		}
		var orphans int64
		if err := tx.Table(table.Name).Where("edition_id IS NULL").Count(&orphans).Error; err != nil {
			return err
		}
		if orphans > 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s has %d rows without edition_id", table.Name, orphans))
		}
	}

	var active []models.Edition
	if err := tx.Where("is_active_edition = ?", true).Find(&active).Error; err != nil {
		return err
	}
	switch {
	case len(active) != 1:
		errs = multierr.Append(errs, fmt.Errorf("expected exactly one active edition, found %d", len(active)))
	case active[0].Year != b.CurrentYear:
		errs = multierr.Append(errs, fmt.Errorf("active edition is %d, expected %d", active[0].Year, b.CurrentYear))
	}

	if errs != nil {
		return &IntegrityError{Failures: multierr.Errors(errs)}
	}
	return nil
}
