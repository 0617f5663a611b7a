package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ristcon.api/models"
	"ristcon.api/pkg/includes"
	"ristcon.api/pkg/queryparams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateInput(year int) CreateEditionInput {
	return CreateEditionInput{
		Year:           year,
		EditionNumber:  year - 2013,
		ConferenceDate: time.Date(year, time.January, 21, 0, 0, 0, 0, time.UTC),
		Theme:          "Science for a sustainable future",
		GeneralEmail:   "ristcon@sci.ruh.ac.lk",
	}
}

func TestCreateEditionAppliesDefaults(t *testing.T) {
	svc := NewEditionService(newTestDB(t))

	edition, err := svc.CreateEdition(context.Background(), validCreateInput(2027))
	require.NoError(t, err)

	assert.NotZero(t, edition.ID)
	assert.Equal(t, "RISTCON 2027", edition.Name)
	assert.Equal(t, "2027", edition.Slug)
	assert.Equal(t, models.EditionStatusDraft, edition.Status)
	assert.False(t, edition.IsActiveEdition)
	assert.Equal(t, models.VenueTypePhysical, edition.VenueType)
	assert.Equal(t, 2027, edition.CopyrightYear)
	assert.Equal(t, models.DefaultSiteVersion, edition.SiteVersion)
}

func TestCreateEditionRejectsTakenYear(t *testing.T) {
	svc := NewEditionService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateEdition(ctx, validCreateInput(2027))
	require.NoError(t, err)

	_, err = svc.CreateEdition(ctx, validCreateInput(2027))
	assert.ErrorIs(t, err, ErrEditionYearTaken)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestCreateEditionValidation(t *testing.T) {
	svc := NewEditionService(newTestDB(t))

	input := validCreateInput(2027)
	input.Theme = ""
	input.GeneralEmail = "not-an-email"

	_, err := svc.CreateEdition(context.Background(), input)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "theme")
	assert.Contains(t, verr.Fields, "general_email")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestUpdateEditionMovesSlugWithYear(t *testing.T) {
	db := newTestDB(t)
	svc := NewEditionService(db)
	ctx := context.Background()
	edition := seedEdition(t, db, 2027, models.EditionStatusDraft, false)
	seedEdition(t, db, 2028, models.EditionStatusDraft, false)

	year := 2029
	theme := "Updated theme"
	updated, err := svc.UpdateEdition(ctx, edition.ID, UpdateEditionInput{Year: &year, Theme: &theme})
	require.NoError(t, err)
	assert.Equal(t, 2029, updated.Year)
	assert.Equal(t, "2029", updated.Slug)
	assert.Equal(t, "Updated theme", updated.Theme)
	assert.NotNil(t, updated.LastUpdated)

	taken := 2028
	_, err = svc.UpdateEdition(ctx, edition.ID, UpdateEditionInput{Year: &taken})
	assert.ErrorIs(t, err, ErrEditionYearTaken)

	_, err = svc.UpdateEdition(ctx, 9999, UpdateEditionInput{Theme: &theme})
	assert.ErrorIs(t, err, ErrEditionNotFound)
}

func TestActivateEditionKeepsSingleActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewEditionService(db)
	ctx := context.Background()
	previous := seedEdition(t, db, 2025, models.EditionStatusPublished, true)
	next := seedEdition(t, db, 2026, models.EditionStatusDraft, false)

	activated, err := svc.ActivateEdition(ctx, next.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActiveEdition)
	assert.Equal(t, models.EditionStatusDraft, activated.Status)

	reloaded, err := svc.GetEditionByID(ctx, previous.ID, nil)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActiveEdition)

	active, err := svc.GetActiveEdition(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, next.ID, active.ID)

	// Activating the active edition again changes nothing.
	again, err := svc.ActivateEdition(ctx, next.ID)
	require.NoError(t, err)
	assert.True(t, again.IsActiveEdition)

	_, err = svc.ActivateEdition(ctx, 9999)
	assert.ErrorIs(t, err, ErrEditionNotFound)
}

func TestActivateEditionConcurrently(t *testing.T) {
	db := newTestDB(t)
	svc := NewEditionService(db)
	ids := []uint{
		seedEdition(t, db, 2024, models.EditionStatusArchived, false).ID,
		seedEdition(t, db, 2025, models.EditionStatusPublished, true).ID,
		seedEdition(t, db, 2026, models.EditionStatusDraft, false).ID,
	}

	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			_, err := svc.ActivateEdition(context.Background(), id)
			assert.NoError(t, err)
		}(ids[i%len(ids)])
	}
	wg.Wait()

	var active int64
	require.NoError(t, db.Model(&models.Edition{}).Where("is_active_edition = ?", true).Count(&active).Error)
	assert.Equal(t, int64(1), active)
}

func TestGetActiveEditionWithoutActive(t *testing.T) {
	db := newTestDB(t)
	seedEdition(t, db, 2026, models.EditionStatusDraft, false)

	_, err := NewEditionService(db).GetActiveEdition(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoActiveEdition)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublishEdition(t *testing.T) {
	db := newTestDB(t)
	svc := NewEditionService(db)
	ctx := context.Background()
	edition := seedEdition(t, db, 2026, models.EditionStatusDraft, false)

	published, err := svc.PublishEdition(ctx, edition.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EditionStatusPublished, published.Status)

	_, err = svc.PublishEdition(ctx, edition.ID)
	assert.ErrorIs(t, err, ErrPublishNotDraft)
	assert.ErrorIs(t, err, ErrPolicyViolation)
}

func TestArchiveEdition(t *testing.T) {
	db := newTestDB(t)
	svc := NewEditionService(db)
	ctx := context.Background()
	active := seedEdition(t, db, 2026, models.EditionStatusPublished, true)
	draft := seedEdition(t, db, 2027, models.EditionStatusDraft, false)
	cancelled := seedEdition(t, db, 2023, models.EditionStatusCancelled, false)
	past := seedEdition(t, db, 2025, models.EditionStatusPublished, false)

	_, err := svc.ArchiveEdition(ctx, active.ID)
	assert.ErrorIs(t, err, ErrArchiveActive)
	assert.ErrorIs(t, err, ErrPolicyViolation)

	_, err = svc.ArchiveEdition(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrArchiveDraft)

	archived, err := svc.ArchiveEdition(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EditionStatusArchived, archived.Status)

	again, err := svc.ArchiveEdition(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EditionStatusArchived, again.Status)

	// Archiving one edition leaves every other edition as it was.
	var reloaded models.Edition
	require.NoError(t, db.First(&reloaded, active.ID).Error)
	assert.Equal(t, models.EditionStatusPublished, reloaded.Status)
	assert.True(t, reloaded.IsActiveEdition)

	reloaded = models.Edition{}
	require.NoError(t, db.First(&reloaded, draft.ID).Error)
	assert.Equal(t, models.EditionStatusDraft, reloaded.Status)

	reloaded = models.Edition{}
	require.NoError(t, db.First(&reloaded, cancelled.ID).Error)
	assert.Equal(t, models.EditionStatusCancelled, reloaded.Status)
}

func TestArchiveCancelledEdition(t *testing.T) {
	db := newTestDB(t)
	svc := NewEditionService(db)
	cancelled := seedEdition(t, db, 2023, models.EditionStatusCancelled, false)

	archived, err := svc.ArchiveEdition(context.Background(), cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EditionStatusArchived, archived.Status)
	assert.False(t, archived.IsActiveEdition)
}

func TestCancelEdition(t *testing.T) {
	db := newTestDB(t)
	svc := NewEditionService(db)
	ctx := context.Background()
	active := seedEdition(t, db, 2026, models.EditionStatusPublished, true)
	draft := seedEdition(t, db, 2027, models.EditionStatusDraft, false)

	_, err := svc.CancelEdition(ctx, active.ID)
	assert.ErrorIs(t, err, ErrCancelActive)

	cancelled, err := svc.CancelEdition(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EditionStatusCancelled, cancelled.Status)

	_, err = svc.CancelEdition(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrCancelFinished)
}

func TestDeleteEditionGuards(t *testing.T) {
	db := newTestDB(t)
	svc := NewEditionService(db)
	ctx := context.Background()
	published := seedEdition(t, db, 2025, models.EditionStatusPublished, false)
	activeDraft := seedEdition(t, db, 2026, models.EditionStatusDraft, true)

	assert.ErrorIs(t, svc.DeleteEdition(ctx, published.ID), ErrDeleteProtected)
	assert.ErrorIs(t, svc.DeleteEdition(ctx, activeDraft.ID), ErrDeleteProtected)
	assert.ErrorIs(t, svc.DeleteEdition(ctx, 9999), ErrEditionNotFound)
}

func TestDeleteEditionRemovesScopedRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewEditionService(db)
	ctx := context.Background()
	doomed := seedEdition(t, db, 2027, models.EditionStatusDraft, false)
	kept := seedEdition(t, db, 2026, models.EditionStatusPublished, true)

	seedSpeaker(t, db, doomed.ID, "Prof. A", 1)
	seedSpeaker(t, db, doomed.ID, "Prof. B", 2)
	seedSpeaker(t, db, kept.ID, "Prof. C", 1)

	category := &models.ResearchCategory{CategoryCode: "A", CategoryName: "Life Sciences", IsActive: true}
	category.EditionID = doomed.ID
	require.NoError(t, db.Create(category).Error)
	require.NoError(t, db.Create(&models.ResearchArea{CategoryID: category.ID, AreaName: "Botany", IsActive: true}).Error)

	require.NoError(t, svc.DeleteEdition(ctx, doomed.ID))

	assert.Zero(t, countRows(t, db, "speakers", doomed.ID))
	assert.Zero(t, countRows(t, db, "research_categories", doomed.ID))
	assert.Equal(t, int64(1), countRows(t, db, "speakers", kept.ID))

	var areas int64
	require.NoError(t, db.Model(&models.ResearchArea{}).Where("category_id = ?", category.ID).Count(&areas).Error)
	assert.Zero(t, areas)

	_, err := svc.GetEditionByID(ctx, doomed.ID, nil)
	assert.ErrorIs(t, err, ErrEditionNotFound)

	var soft models.Edition
	require.NoError(t, db.Unscoped().First(&soft, doomed.ID).Error)
	assert.True(t, soft.DeletedAt.Valid)

	// A soft deleted edition does not block its year.
	_, err = svc.CreateEdition(ctx, validCreateInput(2027))
	assert.NoError(t, err)
}

func TestGetEditionWithIncludes(t *testing.T) {
	db := newTestDB(t)
	edition := seedEdition(t, db, 2026, models.EditionStatusPublished, true)
	seedSpeaker(t, db, edition.ID, "Second", 2)
	seedSpeaker(t, db, edition.ID, "First", 1)

	svc := NewEditionService(db)
	loaded, err := svc.GetEditionByYear(context.Background(), 2026, includes.Parse("speakers"))
	require.NoError(t, err)
	require.Len(t, loaded.Speakers, 2)
	assert.Equal(t, "First", loaded.Speakers[0].FullName)
	assert.Equal(t, "Second", loaded.Speakers[1].FullName)

	bare, err := svc.GetEditionByYear(context.Background(), 2026, nil)
	require.NoError(t, err)
	assert.Nil(t, bare.Speakers)

	_, err = svc.GetEditionByYear(context.Background(), 1999, nil)
	assert.ErrorIs(t, err, ErrEditionNotFound)
}

func TestListEditions(t *testing.T) {
	db := newTestDB(t)
	svc := NewEditionService(db)
	ctx := context.Background()
	for _, year := range []int{2023, 2024, 2025} {
		seedEdition(t, db, year, models.EditionStatusArchived, false)
	}
	seedEdition(t, db, 2026, models.EditionStatusPublished, true)

	params := queryparams.DefaultListParams()
	params.PerPage = 3
	result, err := svc.ListEditions(ctx, params, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Meta.TotalItems)
	assert.Equal(t, 2, result.Meta.TotalPages)
	editions := result.Data.([]models.Edition)
	require.Len(t, editions, 3)
	assert.Equal(t, 2026, editions[0].Year)

	params = queryparams.DefaultListParams()
	params.Status = string(models.EditionStatusArchived)
	params.OrderBy = "asc"
	result, err = svc.ListEditions(ctx, params, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Meta.TotalItems)
	assert.Equal(t, 2023, result.Data.([]models.Edition)[0].Year)

	params.Status = "bogus"
	_, err = svc.ListEditions(ctx, params, nil)
	assert.ErrorIs(t, err, ErrValidationFailed)
}
