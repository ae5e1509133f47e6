package usecase

import (
	"context"
	"fmt"
	"strings"

	jwtpkg "github.com/peacelink/peacelink/internal/pkg/jwt"
	"github.com/peacelink/peacelink/internal/pkg/logger"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/internal/utils"
	"github.com/peacelink/peacelink/services/identity"
	"golang.org/x/crypto/bcrypt"
)

// RequestLoginCode issues a login challenge for an existing account.
// Unlike the signup path, the phone must already be registered with an
// individual role before a code is sent.
func (u *UserUC) RequestLoginCode(ctx context.Context, phone string) (*models.ChallengeResponse, error) {
	isValid, formattedPhone, err := utils.ValidatePhone(phone)
	if err != nil || !isValid {
		return nil, fmt.Errorf("invalid phone number format")
	}

	record, err := u.accountRepo.FindByPhone(ctx, formattedPhone)
	if err != nil {
		return nil, err
	}
	if !roleIn(record.Role, models.IndividualRoles) {
		// Credential-role accounts use the email path.
		return nil, identity.ErrAccountNotFound
	}

	return u.RequestCode(ctx, formattedPhone)
}

// LoginWithPhone verifies a login challenge code and establishes the
// session for the account registered under the phone.
func (u *UserUC) LoginWithPhone(ctx context.Context, phone, code string) (*models.AuthResponse, error) {
	isValid, formattedPhone, err := utils.ValidatePhone(phone)
	if err != nil || !isValid {
		return nil, fmt.Errorf("invalid phone number format")
	}

	record, err := u.accountRepo.FindByPhone(ctx, formattedPhone)
	if err != nil {
		return nil, err
	}
	if !roleIn(record.Role, models.IndividualRoles) {
		return nil, identity.ErrAccountNotFound
	}

	if err := u.VerifyCode(ctx, formattedPhone, code); err != nil {
		return nil, err
	}
	// Login needs no completion window; drop the verified marker now.
	_ = u.challengeRepo.ClearVerified(ctx, formattedPhone)

	return u.establishSession(record)
}

// LoginWithCredentials validates the email/password shape, looks up a
// credential-role account, and establishes the session. The response for
// a missing account and a wrong password is identical on purpose.
func (u *UserUC) LoginWithCredentials(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	record, err := u.accountRepo.FindByEmailAndRole(ctx, email, models.CredentialRoles)
	if err != nil {
		if err == identity.ErrAccountNotFound {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, err
	}

	// Accounts registered with a password must match it. Accounts without
	// a stored credential keep the demo-mode accept-any-password behavior;
	// that policy is a simplification, not a security feature.
	if len(record.CredentialHash) > 0 {
		if err := bcrypt.CompareHashAndPassword(record.CredentialHash, []byte(password)); err != nil {
			return nil, identity.ErrInvalidCredentials
		}
	}

	return u.establishSession(record)
}

// Logout clears the active session
func (u *UserUC) Logout() {
	u.sessions.Logout()
}

// CurrentSession returns the active session, or nil when logged out.
func (u *UserUC) CurrentSession() *models.Session {
	return u.sessions.Current()
}

// establishSession issues a token and records the process session.
func (u *UserUC) establishSession(record *models.AccountRecord) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(record.ID, record.Phone, record.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	u.sessions.Login(record)

	logger.Info("Session established",
		logger.String("account_id", record.ID),
		logger.String("role", string(record.Role)))

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   record.PublicCopy(),
	}, nil
}

func roleIn(role models.Role, set []models.Role) bool {
	for _, r := range set {
		if role == r {
			return true
		}
	}
	return false
}
