package models

import "time"

// ReportCategory classifies an incident report.
type ReportCategory string

const (
	CategoryConflict       ReportCategory = "conflict"
	CategoryInfrastructure ReportCategory = "infrastructure"
	CategoryHealth         ReportCategory = "health"
	CategorySecurity       ReportCategory = "security"
	CategoryLivelihoods    ReportCategory = "livelihoods"
	CategoryEducation      ReportCategory = "education"
	CategoryEnvironment    ReportCategory = "environment"
	CategoryGender         ReportCategory = "gender"
	CategoryResources      ReportCategory = "resources"
	CategoryAlerts         ReportCategory = "alerts"
	CategoryOther          ReportCategory = "other"
)

// ValidReportCategory reports whether c is a known category.
func ValidReportCategory(c ReportCategory) bool {
	switch c {
	case CategoryConflict, CategoryInfrastructure, CategoryHealth,
		CategorySecurity, CategoryLivelihoods, CategoryEducation,
		CategoryEnvironment, CategoryGender, CategoryResources,
		CategoryAlerts, CategoryOther:
		return true
	}
	return false
}

// ReportLanguage is the language a report was written in.
type ReportLanguage string

const (
	LangEnglish    ReportLanguage = "en"
	LangArabic     ReportLanguage = "ar"
	LangDinka      ReportLanguage = "dik"
	LangJubaArabic ReportLanguage = "juba"
	LangNuer       ReportLanguage = "nuer"
	LangShiluk     ReportLanguage = "shiluk"
	LangBari       ReportLanguage = "bari"
)

// ValidReportLanguage reports whether l is a supported language.
func ValidReportLanguage(l ReportLanguage) bool {
	switch l {
	case LangEnglish, LangArabic, LangDinka, LangJubaArabic,
		LangNuer, LangShiluk, LangBari:
		return true
	}
	return false
}

// ReportUrgency grades how quickly a report needs attention.
type ReportUrgency string

const (
	UrgencyCritical ReportUrgency = "critical"
	UrgencyHigh     ReportUrgency = "high"
	UrgencyMedium   ReportUrgency = "medium"
	UrgencyLow      ReportUrgency = "low"
)

// ValidReportUrgency reports whether u is a known urgency grade.
func ValidReportUrgency(u ReportUrgency) bool {
	switch u {
	case UrgencyCritical, UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	}
	return false
}

// ReportStatus tracks a report through its review lifecycle.
type ReportStatus string

const (
	StatusSubmitted   ReportStatus = "submitted"
	StatusUnderReview ReportStatus = "under_review"
	StatusVerified    ReportStatus = "verified"
	StatusAssigned    ReportStatus = "assigned"
	StatusInProgress  ReportStatus = "in_progress"
	StatusResolved    ReportStatus = "resolved"
	StatusClosed      ReportStatus = "closed"
	StatusRejected    ReportStatus = "rejected"
	StatusEscalated   ReportStatus = "escalated"
)

// Report is one community incident report.
type Report struct {
	ID         string         `json:"id" db:"id"`
	ReporterID string         `json:"reporter_id" db:"reporter_id"`
	Category   ReportCategory `json:"category" db:"category"`
	Language   ReportLanguage `json:"language" db:"language"`
	Urgency    ReportUrgency  `json:"urgency" db:"urgency"`
	Status     ReportStatus   `json:"status" db:"status"`
	Location   string         `json:"location" db:"location"`
	Latitude   float64        `json:"latitude" db:"latitude"`
	Longitude  float64        `json:"longitude" db:"longitude"`
	// GeoCell groups nearby reports for hotspot aggregation.
	GeoCell        string    `json:"geo_cell" db:"geo_cell"`
	Description    string    `json:"description" db:"description"`
	PeopleAffected int       `json:"people_affected" db:"people_affected"`
	Anonymous      bool      `json:"anonymous" db:"anonymous"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// SubmitReportRequest is the report submission payload.
type SubmitReportRequest struct {
	Category       ReportCategory `json:"category"`
	Language       ReportLanguage `json:"language"`
	Urgency        ReportUrgency  `json:"urgency"`
	Location       string         `json:"location"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	Description    string         `json:"description"`
	PeopleAffected int            `json:"people_affected"`
	Anonymous      bool           `json:"anonymous"`
}

// StatusUpdateRequest moves a report to a new lifecycle status.
type StatusUpdateRequest struct {
	Status ReportStatus `json:"status"`
}

// Hotspot is one geographic cluster of reports.
type Hotspot struct {
	GeoCell string `json:"geo_cell" db:"geo_cell"`
	Count   int    `json:"count" db:"count"`
}

// AnalyticsSummary aggregates the report corpus for the analytics view.
type AnalyticsSummary struct {
	Total      int                    `json:"total"`
	ByCategory map[ReportCategory]int `json:"by_category"`
	ByStatus   map[ReportStatus]int   `json:"by_status"`
	ByUrgency  map[ReportUrgency]int  `json:"by_urgency"`
	Hotspots   []Hotspot              `json:"hotspots"`
}
