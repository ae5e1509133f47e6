package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/peacelink/peacelink/internal/pkg/logger"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/internal/utils"
	"github.com/peacelink/peacelink/services/identity"
	"golang.org/x/crypto/bcrypt"
)

// CompleteSignup is the wizard's terminal submission: it validates the
// collected fields against the role requirements table, requires a
// verified phone, and creates exactly one account record. No partial
// record is ever written; failures leave the store untouched.
func (u *UserUC) CompleteSignup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if !models.ValidRole(req.Role) {
		return nil, identity.ErrInvalidRole
	}

	if req.Name == "" || req.Location == "" || req.NationalID == "" {
		return nil, fmt.Errorf("%w: identity fields", identity.ErrIncompleteProfile)
	}

	isValid, formattedPhone, err := utils.ValidatePhone(req.Phone)
	if err != nil || !isValid {
		return nil, fmt.Errorf("invalid phone number format")
	}

	verified, err := u.challengeRepo.IsVerified(ctx, formattedPhone)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, identity.ErrPhoneNotVerified
	}

	if missing := u.roleTable.Missing(req.Role, req.RoleFields, req.Consents, req.Email); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", identity.ErrIncompleteProfile, missing)
	}

	record := &models.AccountRecord{
		DisplayName: req.Name,
		Role:        req.Role,
		Location:    req.Location,
		Phone:       formattedPhone,
		Email:       req.Email,
		NationalID:  req.NationalID,
		// Partner accounts are trusted at creation; everyone else waits
		// for moderation to flip the flag.
		Verified:  req.Role == models.RoleNGO,
		AvatarRef: avatarRef(req.Name),
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash credential: %w", err)
		}
		record.CredentialHash = hash
	}

	inserted, err := u.accountRepo.Insert(ctx, record)
	if err != nil {
		if errors.Is(err, identity.ErrDuplicatePhone) || errors.Is(err, identity.ErrDuplicateEmail) {
			return nil, fmt.Errorf("%w: %v", identity.ErrAccountExists, err)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	_ = u.challengeRepo.ClearVerified(ctx, formattedPhone)

	if err := u.identityGW.PublishAccountCreated(ctx, inserted); err != nil {
		logger.Warn("Failed to publish account.created event",
			logger.String("account_id", inserted.ID),
			logger.Err(err))
	}

	logger.Info("Account created",
		logger.String("account_id", inserted.ID),
		logger.String("role", string(inserted.Role)),
		logger.Bool("verified", inserted.Verified))

	return u.establishSession(inserted)
}

// avatarRef derives a display hint from the name; it is not authoritative.
func avatarRef(name string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(name)
}
