package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/peacelink/peacelink/internal/pkg/logger"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/internal/utils"
	"github.com/peacelink/peacelink/services/reports"
)

// ReportHandler handles HTTP requests for report operations
type ReportHandler struct {
	reportUC reports.ReportUC
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportUC reports.ReportUC) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
	}
}

// SubmitReport handles report submission requests
func (h *ReportHandler) SubmitReport(c echo.Context) error {
	reporterID, ok := c.Get("user_id").(string)
	if !ok || reporterID == "" {
		return utils.UnauthorizedResponse(c, "Missing account identity")
	}

	var request models.SubmitReportRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	report, err := h.reportUC.Submit(c.Request().Context(), reporterID, &request)
	if err != nil {
		if errors.Is(err, reports.ErrInvalidCategory) ||
			errors.Is(err, reports.ErrInvalidLanguage) ||
			errors.Is(err, reports.ErrInvalidUrgency) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to submit report",
			logger.String("reporter_id", reporterID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to submit report")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Report submitted", report)
}

// GetReport handles report retrieval requests
func (h *ReportHandler) GetReport(c echo.Context) error {
	reportID := c.Param("id")
	if reportID == "" {
		return utils.BadRequestResponse(c, "Invalid report ID")
	}

	report, err := h.reportUC.GetByID(c.Request().Context(), reportID)
	if err != nil {
		if errors.Is(err, reports.ErrReportNotFound) {
			return utils.NotFoundResponse(c, "Report not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to retrieve report")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Report retrieved", report)
}

// MyReports lists the caller's own submissions
func (h *ReportHandler) MyReports(c echo.Context) error {
	reporterID, ok := c.Get("user_id").(string)
	if !ok || reporterID == "" {
		return utils.UnauthorizedResponse(c, "Missing account identity")
	}

	list, err := h.reportUC.ListByReporter(c.Request().Context(), reporterID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list reports")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reports retrieved", list)
}

// UpdateStatus handles moderation status changes
func (h *ReportHandler) UpdateStatus(c echo.Context) error {
	reportID := c.Param("id")
	if reportID == "" {
		return utils.BadRequestResponse(c, "Invalid report ID")
	}

	var request models.StatusUpdateRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	report, err := h.reportUC.UpdateStatus(c.Request().Context(), reportID, request.Status)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrReportNotFound):
			return utils.NotFoundResponse(c, "Report not found")
		case errors.Is(err, reports.ErrInvalidTransition):
			return utils.ConflictResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to update report")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Report status updated", report)
}

// Analytics returns the aggregated report summary
func (h *ReportHandler) Analytics(c echo.Context) error {
	summary, err := h.reportUC.Summary(c.Request().Context())
	if err != nil {
		logger.Error("Failed to build analytics summary", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to build summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Summary retrieved", summary)
}
