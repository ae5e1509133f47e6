package reports

import (
	"context"

	"github.com/peacelink/peacelink/internal/pkg/models"
)

// ReportRepo defines the report store interface
type ReportRepo interface {
	Insert(ctx context.Context, report *models.Report) (*models.Report, error)
	GetByID(ctx context.Context, id string) (*models.Report, error)
	ListByReporter(ctx context.Context, reporterID string) ([]models.Report, error)
	// UpdateStatus persists a new lifecycle status. Fails with
	// ErrReportNotFound when the id is unknown.
	UpdateStatus(ctx context.Context, id string, status models.ReportStatus) error
	// Summary aggregates the whole corpus for the analytics view.
	Summary(ctx context.Context, hotspotLimit int) (*models.AnalyticsSummary, error)
}
