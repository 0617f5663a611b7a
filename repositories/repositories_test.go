package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ristcon.api/database/migrations"
	"ristcon.api/models"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.MigrateCommitteeTypesTable(db))
	require.NoError(t, migrations.MigrateEditionsTable(db))
	require.NoError(t, migrations.PrepareScopedTables(db))
	return db
}

func createEdition(t *testing.T, db *gorm.DB, year int, active bool) *models.Edition {
	t.Helper()
	edition := &models.Edition{
		Year:            year,
		EditionNumber:   year - 2013,
		Name:            fmt.Sprintf("RISTCON %d", year),
		Slug:            models.SlugForYear(year),
		Status:          models.EditionStatusDraft,
		IsActiveEdition: active,
		ConferenceDate:  time.Date(year, time.January, 21, 0, 0, 0, 0, time.UTC),
		VenueType:       models.VenueTypePhysical,
		Theme:           "Research and innovation",
		GeneralEmail:    "ristcon@sci.ruh.ac.lk",
		CopyrightYear:   year,
		SiteVersion:     models.DefaultSiteVersion,
	}
	require.NoError(t, db.Create(edition).Error)
	return edition
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, translateError(gorm.ErrDuplicatedKey), ErrDuplicate)

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uniq_conference_editions_year"}
	err := translateError(fmt.Errorf("insert: %w", pgErr))
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "uniq_conference_editions_year")

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other))
}

func TestClearActiveExcept(t *testing.T) {
	db := newTestDB(t)
	repo := NewEditionRepository(db)
	ctx := context.Background()
	old := createEdition(t, db, 2025, true)
	next := createEdition(t, db, 2026, false)

	cleared, err := repo.ClearActiveExcept(ctx, next.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = repo.FindActive(ctx, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	reloaded, err := repo.FindByID(ctx, old.ID, nil)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActiveEdition)
}

func TestExistsByYearOrSlugIgnoresSelf(t *testing.T) {
	db := newTestDB(t)
	repo := NewEditionRepository(db)
	ctx := context.Background()
	e := createEdition(t, db, 2026, false)

	taken, err := repo.ExistsByYearOrSlug(ctx, 2026, "2026", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsByYearOrSlug(ctx, 2026, "2026", e.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestDeleteScopedChildrenCounts(t *testing.T) {
	db := newTestDB(t)
	e := createEdition(t, db, 2026, false)
	for _, name := range []string{"A. Perera", "B. Silva"} {
		contact := &models.ContactPerson{FullName: name, Role: "Secretary"}
		contact.EditionID = e.ID
		require.NoError(t, db.Create(contact).Error)
	}

	deleted, err := NewEditionRepository(db).DeleteScopedChildren(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted["contact_persons"])
	assert.Zero(t, deleted["speakers"])
	assert.Contains(t, deleted, "research_areas")
}

func TestScopedFindOneByEdition(t *testing.T) {
	db := newTestDB(t)
	e := createEdition(t, db, 2026, false)
	repo := NewScopedRepository[models.AuthorPageConfig](db)
	ctx := context.Background()

	_, err := repo.FindOneByEdition(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	cfg := &models.AuthorPageConfig{ConferenceFormat: "hybrid"}
	cfg.EditionID = e.ID
	require.NoError(t, repo.Create(ctx, cfg))

	found, err := repo.FindOneByEdition(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, found.ID)
	assert.Equal(t, "hybrid", found.ConferenceFormat)

	assert.Error(t, repo.Create(ctx, &models.AuthorPageConfig{ConferenceFormat: "virtual"}))
}

func TestCommitteeTypeLookup(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommitteeTypeRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.CommitteeType{CommitteeName: "Editorial Board", DisplayOrder: 2}))
	require.NoError(t, repo.Create(ctx, &models.CommitteeType{CommitteeName: "Advisory Board", DisplayOrder: 1}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Advisory Board", all[0].CommitteeName)

	found, err := repo.FindByName(ctx, "Editorial Board")
	require.NoError(t, err)
	assert.Equal(t, 2, found.DisplayOrder)

	_, err = repo.FindByName(ctx, "Nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
