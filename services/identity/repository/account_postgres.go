package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/services/identity"
)

const accountColumns = `id, display_name, role, location, phone, email, national_id, verified, avatar_ref, credential_hash, created_at, updated_at`

// Insert appends a new account record
func (r *PostgresAccountRepo) Insert(ctx context.Context, record *models.AccountRecord) (*models.AccountRecord, error) {
	record.ID = uuid.New().String()
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	query := `
		INSERT INTO accounts (id, display_name, role, location, phone, email,
			national_id, verified, avatar_ref, credential_hash, created_at, updated_at
		) VALUES (:id, :display_name, :role, :location, :phone, :email,
			:national_id, :verified, :avatar_ref, :credential_hash, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, identity.ErrDuplicateEmail
			}
			return nil, identity.ErrDuplicatePhone
		}
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	return record, nil
}

// GetByID retrieves an account by its id
func (r *PostgresAccountRepo) GetByID(ctx context.Context, id string) (*models.AccountRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns)

	var record models.AccountRecord
	err := r.db.GetContext(ctx, &record, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identity.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &record, nil
}

// FindByPhone retrieves an account by phone number
func (r *PostgresAccountRepo) FindByPhone(ctx context.Context, phone string) (*models.AccountRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE phone = $1`, accountColumns)

	var record models.AccountRecord
	err := r.db.GetContext(ctx, &record, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identity.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &record, nil
}

// FindByEmailAndRole retrieves an account by email, matching only when the
// stored role is in allowedRoles.
func (r *PostgresAccountRepo) FindByEmailAndRole(ctx context.Context, email string, allowedRoles []models.Role) (*models.AccountRecord, error) {
	roleNames := make([]string, len(allowedRoles))
	for i, role := range allowedRoles {
		roleNames[i] = string(role)
	}

	query, args, err := sqlx.In(
		fmt.Sprintf(`SELECT %s FROM accounts WHERE lower(email) = lower(?) AND role IN (?)`, accountColumns),
		email, roleNames,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	query = r.db.Rebind(query)

	var record models.AccountRecord
	err = r.db.GetContext(ctx, &record, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identity.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &record, nil
}
