package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"ristcon.api/configs"
	"ristcon.api/database/migrations"
	"ristcon.api/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	adminEmail    = "admin@ristcon.test"
	adminPassword = "s3cret-pass"
)

type envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
	Meta    json.RawMessage   `json:"meta"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.MigrateUsersTable(db))
	require.NoError(t, migrations.MigrateCommitteeTypesTable(db))
	require.NoError(t, migrations.MigrateEditionsTable(db))
	require.NoError(t, migrations.PrepareScopedTables(db))

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Name: "Admin", Email: adminEmail, PasswordHash: string(hash), IsAdmin: true}).Error)

	app := fiber.New(configs.FiberConfig())
	SetupRoutes(app, db, &configs.AppConfig{CORSAllowOrigins: "*"})
	return app, db
}

func seedEdition(t *testing.T, db *gorm.DB, year int, status models.EditionStatus, active bool) *models.Edition {
	t.Helper()
	edition := &models.Edition{
		Year: year, EditionNumber: year - 2013, Name: "RISTCON", Slug: models.SlugForYear(year),
		Status: status, IsActiveEdition: active,
		ConferenceDate: time.Date(year, time.January, 21, 0, 0, 0, 0, time.UTC),
		VenueType:      models.VenueTypePhysical, Theme: "Theme", GeneralEmail: "ristcon@sci.ruh.ac.lk",
		CopyrightYear: year, SiteVersion: models.DefaultSiteVersion,
	}
	require.NoError(t, db.Create(edition).Error)
	return edition
}

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func do(t *testing.T, app *fiber.App, method, path, body string, admin bool) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if admin {
		req.SetBasicAuth(adminEmail, adminPassword)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func TestHealthAndRequestID(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := do(t, app, http.MethodGet, "/api/v1/nothing-here", "", false)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "error", env.Status)
}

func TestPublicConferenceByYear(t *testing.T) {
	app, db := newTestApp(t)
	edition := seedEdition(t, db, 2026, models.EditionStatusPublished, true)
	speaker := &models.Speaker{SpeakerType: models.SpeakerTypeKeynote, FullName: "Prof. Perera", Affiliation: "UoR"}
	speaker.EditionID = edition.ID
	require.NoError(t, db.Create(speaker).Error)

	status, env := do(t, app, http.MethodGet, "/api/v1/conferences/2026?include=speakers,unknown", "", false)
	require.Equal(t, http.StatusOK, status)
	var got models.Edition
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 2026, got.Year)
	require.Len(t, got.Speakers, 1)
	assert.Equal(t, "Prof. Perera", got.Speakers[0].FullName)

	status, env = do(t, app, http.MethodGet, "/api/v1/conferences/active", "", false)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, edition.ID, got.ID)

	status, _ = do(t, app, http.MethodGet, "/api/v1/conferences/1999/speakers", "", false)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, app, http.MethodGet, "/api/v1/conferences/abc/speakers", "", false)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPublicListConferencesHasMeta(t *testing.T) {
	app, db := newTestApp(t)
	seedEdition(t, db, 2025, models.EditionStatusArchived, false)
	seedEdition(t, db, 2026, models.EditionStatusPublished, true)

	status, env := do(t, app, http.MethodGet, "/api/v1/conferences?per_page=1", "", false)
	require.Equal(t, http.StatusOK, status)
	var meta struct {
		TotalItems int64 `json:"total_items"`
		TotalPages int   `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(env.Meta, &meta))
	assert.Equal(t, int64(2), meta.TotalItems)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestAdminRequiresCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := do(t, app, http.MethodGet, "/api/v1/admin/editions", "", false)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "error", env.Status)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/editions", nil)
	req.SetBasicAuth(adminEmail, "wrong")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminEditionLifecycle(t *testing.T) {
	app, db := newTestApp(t)
	current := seedEdition(t, db, 2026, models.EditionStatusPublished, true)

	body := `{"year":2027,"edition_number":14,"conference_date":"2027-01-20T00:00:00Z","theme":"Next","general_email":"ristcon@sci.ruh.ac.lk"}`
	status, env := do(t, app, http.MethodPost, "/api/v1/admin/editions", body, true)
	require.Equal(t, http.StatusCreated, status, env.Message)
	var created models.Edition
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.EditionStatusDraft, created.Status)

	status, _ = do(t, app, http.MethodPost, "/api/v1/admin/editions", body, true)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = do(t, app, http.MethodPost, "/api/v1/admin/editions", `{"year":2028}`, true)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Errors, "theme")

	path := "/api/v1/admin/editions/" + itoa(created.ID)
	status, _ = do(t, app, http.MethodPost, path+"/activate", "", true)
	require.Equal(t, http.StatusOK, status)

	var previous models.Edition
	require.NoError(t, db.First(&previous, current.ID).Error)
	assert.False(t, previous.IsActiveEdition)

	status, env = do(t, app, http.MethodPost, path+"/archive", "", true)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "cannot archive active edition", env.Message)

	status, _ = do(t, app, http.MethodDelete, path, "", true)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodGet, "/api/v1/admin/editions/9999", "", true)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAdminScopedCRUD(t *testing.T) {
	app, db := newTestApp(t)
	edition := seedEdition(t, db, 2026, models.EditionStatusDraft, false)
	base := "/api/v1/admin/editions/" + itoa(edition.ID) + "/speakers"

	status, env := do(t, app, http.MethodPost, base, `{"speaker_type":"keynote","full_name":"Prof. Perera","affiliation":"UoR","edition_id":777}`, true)
	require.Equal(t, http.StatusCreated, status, env.Message)
	var speaker models.Speaker
	require.NoError(t, json.Unmarshal(env.Data, &speaker))
	assert.Equal(t, edition.ID, speaker.EditionID)

	status, env = do(t, app, http.MethodPost, base, `{"speaker_type":"keynote"}`, true)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Errors, "full_name")

	item := "/api/v1/admin/speakers/" + itoa(speaker.ID)
	status, env = do(t, app, http.MethodPut, item, `{"speaker_type":"plenary","full_name":"Prof. Perera","affiliation":"UoR"}`, true)
	require.Equal(t, http.StatusOK, status, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &speaker))
	assert.Equal(t, models.SpeakerTypePlenary, speaker.SpeakerType)

	status, env = do(t, app, http.MethodGet, base+"?type=plenary", "", true)
	require.Equal(t, http.StatusOK, status)
	var list []models.Speaker
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	status, _ = do(t, app, http.MethodDelete, item, "", true)
	assert.Equal(t, http.StatusOK, status)
	status, _ = do(t, app, http.MethodGet, item, "", true)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, app, http.MethodPost, "/api/v1/admin/editions/9999/speakers", `{"speaker_type":"keynote","full_name":"X","affiliation":"Y"}`, true)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAdminSingletonLocation(t *testing.T) {
	app, db := newTestApp(t)
	edition := seedEdition(t, db, 2026, models.EditionStatusDraft, false)
	path := "/api/v1/admin/editions/" + itoa(edition.ID) + "/location"

	status, _ := do(t, app, http.MethodGet, path, "", true)
	assert.Equal(t, http.StatusNotFound, status)

	for _, venue := range []string{"Faculty of Science", "Main Hall"} {
		status, env := do(t, app, http.MethodPut, path,
			`{"venue_name":"`+venue+`","full_address":"Wellamadama","city":"Matara","country":"Sri Lanka"}`, true)
		require.Equal(t, http.StatusOK, status, env.Message)
	}

	status, env := do(t, app, http.MethodGet, path, "", true)
	require.Equal(t, http.StatusOK, status)
	var location models.EventLocation
	require.NoError(t, json.Unmarshal(env.Data, &location))
	assert.Equal(t, "Main Hall", location.VenueName)

	var count int64
	require.NoError(t, db.Model(&models.EventLocation{}).Where("edition_id = ?", edition.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAdminExtendImportantDate(t *testing.T) {
	app, db := newTestApp(t)
	edition := seedEdition(t, db, 2026, models.EditionStatusDraft, false)
	date := &models.ImportantDate{DateType: models.DateTypeSubmissionDeadline, DateValue: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	date.EditionID = edition.ID
	require.NoError(t, db.Create(date).Error)
	path := "/api/v1/admin/important-dates/" + itoa(date.ID) + "/extend"

	status, _ := do(t, app, http.MethodPost, path, `{"new_date":"2026-02-01T00:00:00Z"}`, true)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env := do(t, app, http.MethodPost, path, `{"new_date":"2026-03-20T00:00:00Z"}`, true)
	require.Equal(t, http.StatusOK, status, env.Message)
	var extended models.ImportantDate
	require.NoError(t, json.Unmarshal(env.Data, &extended))
	assert.True(t, extended.IsExtended)
	require.NotNil(t, extended.OriginalDate)
	assert.Equal(t, 1, extended.OriginalDate.Day())
}
