package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/peacelink/peacelink/internal/pkg/constants"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/services/identity"
)

// Insert appends a new account record. Phone and email uniqueness is
// enforced through index keys claimed with SETNX before the record is
// written; a lost claim is rolled back.
func (r *AccountRepo) Insert(ctx context.Context, record *models.AccountRecord) (*models.AccountRecord, error) {
	record.ID = uuid.New().String()
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	phoneKey := fmt.Sprintf(constants.KeyAccountByPhone, record.Phone)
	ok, err := r.redisClient.SetNX(ctx, phoneKey, record.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to claim phone index: %w", err)
	}
	if !ok {
		return nil, identity.ErrDuplicatePhone
	}

	if record.Email != "" {
		emailKey := fmt.Sprintf(constants.KeyAccountByEmail, normalizeEmail(record.Email))
		ok, err := r.redisClient.SetNX(ctx, emailKey, record.ID, 0)
		if err != nil {
			_ = r.redisClient.Delete(ctx, phoneKey)
			return nil, fmt.Errorf("failed to claim email index: %w", err)
		}
		if !ok {
			_ = r.redisClient.Delete(ctx, phoneKey)
			return nil, identity.ErrDuplicateEmail
		}
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account: %w", err)
	}

	idKey := fmt.Sprintf(constants.KeyAccountByID, record.ID)
	if err := r.redisClient.Set(ctx, idKey, data, 0); err != nil {
		return nil, fmt.Errorf("failed to store account: %w", err)
	}

	return record, nil
}

// GetByID retrieves an account by its id
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*models.AccountRecord, error) {
	idKey := fmt.Sprintf(constants.KeyAccountByID, id)
	data, err := r.redisClient.Get(ctx, idKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, identity.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	var record models.AccountRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &record, nil
}

// FindByPhone retrieves an account by phone number
func (r *AccountRepo) FindByPhone(ctx context.Context, phone string) (*models.AccountRecord, error) {
	phoneKey := fmt.Sprintf(constants.KeyAccountByPhone, phone)
	id, err := r.redisClient.Get(ctx, phoneKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, identity.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to resolve phone index: %w", err)
	}

	return r.GetByID(ctx, id)
}

// FindByEmailAndRole retrieves an account by email, matching only when the
// stored role is in allowedRoles.
func (r *AccountRepo) FindByEmailAndRole(ctx context.Context, email string, allowedRoles []models.Role) (*models.AccountRecord, error) {
	emailKey := fmt.Sprintf(constants.KeyAccountByEmail, normalizeEmail(email))
	id, err := r.redisClient.Get(ctx, emailKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, identity.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to resolve email index: %w", err)
	}

	record, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, role := range allowedRoles {
		if record.Role == role {
			return record, nil
		}
	}
	return nil, identity.ErrAccountNotFound
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
