package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/services/reports"
)

func setupReportRepoTest(t *testing.T) (*ReportRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewReportRepo(&models.Config{}, sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func TestInsertReport(t *testing.T) {
	repo, mock, cleanup := setupReportRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO reports").
		WillReturnResult(sqlmock.NewResult(0, 1))

	report := &models.Report{
		ReporterID:  "acct-1",
		Category:    models.CategorySecurity,
		Language:    models.LangEnglish,
		Urgency:     models.UrgencyHigh,
		Status:      models.StatusSubmitted,
		Location:    "Juba",
		Description: "Armed group sighted",
	}
	inserted, err := repo.Insert(context.Background(), report)
	require.NoError(t, err)
	assert.NotEmpty(t, inserted.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReportNotFound(t *testing.T) {
	repo, mock, cleanup := setupReportRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM reports WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, reports.ErrReportNotFound)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo, mock, cleanup := setupReportRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE reports SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", models.StatusUnderReview)
	assert.ErrorIs(t, err, reports.ErrReportNotFound)
}

func TestListByReporter(t *testing.T) {
	repo, mock, cleanup := setupReportRepoTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "reporter_id", "category", "language", "urgency", "status", "location",
		"latitude", "longitude", "geo_cell", "description", "people_affected",
		"anonymous", "created_at", "updated_at",
	}).
		AddRow("r2", "acct-1", "health", "en", "medium", "submitted", "Juba",
			4.85, 31.57, "sdzg2", "Water point contaminated", 12, false, now, now).
		AddRow("r1", "acct-1", "security", "juba", "high", "resolved", "Juba",
			4.86, 31.58, "sdzg2", "Armed group sighted", 40, false, now.Add(-time.Hour), now)
	mock.ExpectQuery("SELECT (.+) FROM reports WHERE reporter_id").
		WithArgs("acct-1").
		WillReturnRows(rows)

	list, err := repo.ListByReporter(context.Background(), "acct-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.CategoryHealth, list[0].Category)
	assert.Equal(t, models.LangJubaArabic, list[1].Language)
	assert.Equal(t, models.StatusResolved, list[1].Status)
}

func TestSummaryAggregates(t *testing.T) {
	repo, mock, cleanup := setupReportRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT category, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"category", "count"}).
			AddRow("security", 2).AddRow("health", 1))
	mock.ExpectQuery("SELECT status, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("submitted", 3))
	mock.ExpectQuery("SELECT urgency, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"urgency", "count"}).
			AddRow("high", 2).AddRow("medium", 1))
	mock.ExpectQuery("SELECT geo_cell, COUNT").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"geo_cell", "count"}).
			AddRow("sdzg2", 2).AddRow("sdzg8", 1))

	summary, err := repo.Summary(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.ByCategory[models.CategorySecurity])
	assert.Equal(t, 3, summary.ByStatus[models.StatusSubmitted])
	assert.Equal(t, 2, summary.ByUrgency[models.UrgencyHigh])
	require.Len(t, summary.Hotspots, 2)
	assert.Equal(t, "sdzg2", summary.Hotspots[0].GeoCell)
}
