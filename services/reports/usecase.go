package reports

import (
	"context"

	"github.com/peacelink/peacelink/internal/pkg/models"
)

// ReportUC defines the report lifecycle operations
type ReportUC interface {
	// Submit validates and stores a new report, assigning its geographic
	// cell for hotspot clustering.
	Submit(ctx context.Context, reporterID string, req *models.SubmitReportRequest) (*models.Report, error)
	GetByID(ctx context.Context, id string) (*models.Report, error)
	ListByReporter(ctx context.Context, reporterID string) ([]models.Report, error)
	// UpdateStatus enforces the lifecycle transition table.
	UpdateStatus(ctx context.Context, id string, status models.ReportStatus) (*models.Report, error)
	Summary(ctx context.Context) (*models.AnalyticsSummary, error)
}

// ReportGW defines the outbound collaborators of the report lifecycle.
type ReportGW interface {
	// PublishReportSubmitted announces a stored report for downstream
	// moderation and alerting consumers.
	PublishReportSubmitted(ctx context.Context, report *models.Report) error
}
