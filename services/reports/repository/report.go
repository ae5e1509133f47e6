package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/services/reports"
)

const reportColumns = `id, reporter_id, category, language, urgency, status, location,
	latitude, longitude, geo_cell, description, people_affected, anonymous,
	created_at, updated_at`

// Insert stores a new report
func (r *ReportRepo) Insert(ctx context.Context, report *models.Report) (*models.Report, error) {
	report.ID = uuid.New().String()
	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now

	query := `
		INSERT INTO reports (id, reporter_id, category, language, urgency, status, location,
			latitude, longitude, geo_cell, description, people_affected, anonymous,
			created_at, updated_at
		) VALUES (:id, :reporter_id, :category, :language, :urgency, :status, :location,
			:latitude, :longitude, :geo_cell, :description, :people_affected, :anonymous,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, report); err != nil {
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}

	return report, nil
}

// GetByID retrieves a report by its id
func (r *ReportRepo) GetByID(ctx context.Context, id string) (*models.Report, error) {
	query := fmt.Sprintf(`SELECT %s FROM reports WHERE id = $1`, reportColumns)

	var report models.Report
	err := r.db.GetContext(ctx, &report, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reports.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return &report, nil
}

// ListByReporter retrieves all reports submitted by one account, newest first
func (r *ReportRepo) ListByReporter(ctx context.Context, reporterID string) ([]models.Report, error) {
	query := fmt.Sprintf(`SELECT %s FROM reports WHERE reporter_id = $1 ORDER BY created_at DESC`, reportColumns)

	var list []models.Report
	if err := r.db.SelectContext(ctx, &list, query, reporterID); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return list, nil
}

// UpdateStatus persists a new lifecycle status
func (r *ReportRepo) UpdateStatus(ctx context.Context, id string, status models.ReportStatus) error {
	query := `UPDATE reports SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return reports.ErrReportNotFound
	}

	return nil
}

// Summary aggregates the report corpus for the analytics view.
func (r *ReportRepo) Summary(ctx context.Context, hotspotLimit int) (*models.AnalyticsSummary, error) {
	summary := &models.AnalyticsSummary{
		ByCategory: make(map[models.ReportCategory]int),
		ByStatus:   make(map[models.ReportStatus]int),
		ByUrgency:  make(map[models.ReportUrgency]int),
	}

	if err := r.db.GetContext(ctx, &summary.Total, `SELECT COUNT(*) FROM reports`); err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}

	type categoryCount struct {
		Category models.ReportCategory `db:"category"`
		Count    int                   `db:"count"`
	}
	var byCategory []categoryCount
	if err := r.db.SelectContext(ctx, &byCategory,
		`SELECT category, COUNT(*) AS count FROM reports GROUP BY category`); err != nil {
		return nil, fmt.Errorf("failed to aggregate by category: %w", err)
	}
	for _, row := range byCategory {
		summary.ByCategory[row.Category] = row.Count
	}

	type statusCount struct {
		Status models.ReportStatus `db:"status"`
		Count  int                 `db:"count"`
	}
	var byStatus []statusCount
	if err := r.db.SelectContext(ctx, &byStatus,
		`SELECT status, COUNT(*) AS count FROM reports GROUP BY status`); err != nil {
		return nil, fmt.Errorf("failed to aggregate by status: %w", err)
	}
	for _, row := range byStatus {
		summary.ByStatus[row.Status] = row.Count
	}

	type urgencyCount struct {
		Urgency models.ReportUrgency `db:"urgency"`
		Count   int                  `db:"count"`
	}
	var byUrgency []urgencyCount
	if err := r.db.SelectContext(ctx, &byUrgency,
		`SELECT urgency, COUNT(*) AS count FROM reports GROUP BY urgency`); err != nil {
		return nil, fmt.Errorf("failed to aggregate by urgency: %w", err)
	}
	for _, row := range byUrgency {
		summary.ByUrgency[row.Urgency] = row.Count
	}

	if err := r.db.SelectContext(ctx, &summary.Hotspots,
		`SELECT geo_cell, COUNT(*) AS count FROM reports
		 WHERE geo_cell <> '' GROUP BY geo_cell
		 ORDER BY count DESC LIMIT $1`, hotspotLimit); err != nil {
		return nil, fmt.Errorf("failed to aggregate hotspots: %w", err)
	}

	return summary, nil
}
