package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/peacelink/peacelink/internal/pkg/models"
)

// ReportRepo is the Postgres-backed report store.
type ReportRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewReportRepo creates a new report repository
func NewReportRepo(cfg *models.Config, db *sqlx.DB) *ReportRepo {
	return &ReportRepo{
		cfg: cfg,
		db:  db,
	}
}
