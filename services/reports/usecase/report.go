package usecase

import (
	"context"
	"fmt"

	"github.com/mmcloughlin/geohash"
	"github.com/peacelink/peacelink/internal/pkg/logger"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/services/reports"
)

// geoCellPrecision is the geohash length used for hotspot clustering;
// 5 characters covers roughly a neighborhood-sized cell.
const geoCellPrecision = 5

// hotspotLimit caps how many clusters the analytics summary returns.
const hotspotLimit = 10

// Submit validates and stores a new report
func (u *ReportUC) Submit(ctx context.Context, reporterID string, req *models.SubmitReportRequest) (*models.Report, error) {
	if !models.ValidReportCategory(req.Category) {
		return nil, reports.ErrInvalidCategory
	}
	if req.Language == "" {
		req.Language = models.LangEnglish
	}
	if !models.ValidReportLanguage(req.Language) {
		return nil, reports.ErrInvalidLanguage
	}
	if req.Urgency == "" {
		req.Urgency = models.UrgencyMedium
	}
	if !models.ValidReportUrgency(req.Urgency) {
		return nil, reports.ErrInvalidUrgency
	}
	if req.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if req.Location == "" {
		return nil, fmt.Errorf("location is required")
	}

	report := &models.Report{
		ReporterID:     reporterID,
		Category:       req.Category,
		Language:       req.Language,
		Urgency:        req.Urgency,
		Status:         models.StatusSubmitted,
		Location:       req.Location,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Description:    req.Description,
		PeopleAffected: req.PeopleAffected,
		Anonymous:      req.Anonymous,
	}
	if req.Latitude != 0 || req.Longitude != 0 {
		report.GeoCell = geohash.EncodeWithPrecision(req.Latitude, req.Longitude, geoCellPrecision)
	}

	stored, err := u.reportRepo.Insert(ctx, report)
	if err != nil {
		return nil, err
	}

	if err := u.reportGW.PublishReportSubmitted(ctx, stored); err != nil {
		logger.Warn("Failed to publish report submitted event",
			logger.String("report_id", stored.ID),
			logger.Err(err))
	}

	logger.Info("Report submitted",
		logger.String("report_id", stored.ID),
		logger.String("category", string(stored.Category)),
		logger.String("urgency", string(stored.Urgency)),
		logger.String("geo_cell", stored.GeoCell))

	return stored, nil
}

// GetByID retrieves a report by its id
func (u *ReportUC) GetByID(ctx context.Context, id string) (*models.Report, error) {
	return u.reportRepo.GetByID(ctx, id)
}

// ListByReporter retrieves the caller's own reports
func (u *ReportUC) ListByReporter(ctx context.Context, reporterID string) ([]models.Report, error) {
	return u.reportRepo.ListByReporter(ctx, reporterID)
}

// allowedTransitions is the report lifecycle: review either verifies,
// rejects, or escalates; verified work is assigned and progresses to
// resolution; closed and rejected are terminal.
var allowedTransitions = map[models.ReportStatus][]models.ReportStatus{
	models.StatusSubmitted:   {models.StatusUnderReview, models.StatusRejected, models.StatusEscalated},
	models.StatusUnderReview: {models.StatusVerified, models.StatusRejected, models.StatusEscalated},
	models.StatusVerified:    {models.StatusAssigned, models.StatusEscalated},
	models.StatusAssigned:    {models.StatusInProgress, models.StatusEscalated},
	models.StatusInProgress:  {models.StatusResolved, models.StatusEscalated},
	models.StatusResolved:    {models.StatusClosed},
	models.StatusEscalated:   {models.StatusUnderReview, models.StatusAssigned},
}

// UpdateStatus moves a report to a new lifecycle status, enforcing the
// transition table.
func (u *ReportUC) UpdateStatus(ctx context.Context, id string, status models.ReportStatus) (*models.Report, error) {
	report, err := u.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(report.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", reports.ErrInvalidTransition, report.Status, status)
	}

	if err := u.reportRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	logger.Info("Report status updated",
		logger.String("report_id", id),
		logger.String("from", string(report.Status)),
		logger.String("to", string(status)))

	report.Status = status
	return report, nil
}

// Summary aggregates the report corpus for the analytics view.
func (u *ReportUC) Summary(ctx context.Context) (*models.AnalyticsSummary, error) {
	return u.reportRepo.Summary(ctx, hotspotLimit)
}

func transitionAllowed(from, to models.ReportStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
