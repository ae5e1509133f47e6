package gateway

import (
	"context"
	"time"

	"github.com/peacelink/peacelink/internal/pkg/constants"
	"github.com/peacelink/peacelink/internal/pkg/logger"
	"github.com/peacelink/peacelink/internal/pkg/models"
)

// ReportSubmittedEvent announces a stored report to downstream consumers.
type ReportSubmittedEvent struct {
	ReportID    string                `json:"report_id"`
	Category    models.ReportCategory `json:"category"`
	Urgency     models.ReportUrgency  `json:"urgency"`
	GeoCell     string                `json:"geo_cell,omitempty"`
	SubmittedAt time.Time             `json:"submitted_at"`
}

// PublishReportSubmitted announces a stored report.
func (g *ReportGW) PublishReportSubmitted(ctx context.Context, report *models.Report) error {
	if g.producer == nil {
		return nil
	}

	event := ReportSubmittedEvent{
		ReportID:    report.ID,
		Category:    report.Category,
		Urgency:     report.Urgency,
		GeoCell:     report.GeoCell,
		SubmittedAt: report.CreatedAt,
	}
	if err := g.producer.Publish(constants.TopicReportSubmitted, event); err != nil {
		logger.Error("Failed to publish report submitted event",
			logger.String("report_id", report.ID),
			logger.Err(err))
		return err
	}
	return nil
}
