package usecase

import (
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/internal/pkg/roles"
	"github.com/peacelink/peacelink/services/identity"
)

// UserUC implements the identity lifecycle
type UserUC struct {
	accountRepo   identity.AccountRepo
	challengeRepo identity.ChallengeRepo
	identityGW    identity.IdentityGW
	sessions      *SessionManager
	roleTable     roles.Table
	cfg           *models.Config
}

// NewUserUC creates a new identity usecase instance
func NewUserUC(
	accountRepo identity.AccountRepo,
	challengeRepo identity.ChallengeRepo,
	identityGW identity.IdentityGW,
	roleTable roles.Table,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		accountRepo:   accountRepo,
		challengeRepo: challengeRepo,
		identityGW:    identityGW,
		sessions:      NewSessionManager(),
		roleTable:     roleTable,
		cfg:           cfg,
	}
}

// Sessions exposes the process session manager, consulted by the
// navigation resolver on every routing decision.
func (u *UserUC) Sessions() *SessionManager {
	return u.sessions
}
