package usecase

import (
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/services/reports"
)

// ReportUC implements the report lifecycle
type ReportUC struct {
	reportRepo reports.ReportRepo
	reportGW   reports.ReportGW
	cfg        *models.Config
}

// NewReportUC creates a new report usecase instance
func NewReportUC(
	reportRepo reports.ReportRepo,
	reportGW reports.ReportGW,
	cfg *models.Config,
) *ReportUC {
	return &ReportUC{
		reportRepo: reportRepo,
		reportGW:   reportGW,
		cfg:        cfg,
	}
}
