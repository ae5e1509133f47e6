package identity

import (
	"context"

	"github.com/peacelink/peacelink/internal/pkg/models"
)

// AccountRepo defines the account store interface. The store is durable
// across restarts; it is not a source of truth for who is logged in.
type AccountRepo interface {
	// Insert assigns a fresh id and appends the record. Fails with
	// ErrDuplicatePhone or ErrDuplicateEmail on identifier collision.
	Insert(ctx context.Context, record *models.AccountRecord) (*models.AccountRecord, error)
	GetByID(ctx context.Context, id string) (*models.AccountRecord, error)
	FindByPhone(ctx context.Context, phone string) (*models.AccountRecord, error)
	// FindByEmailAndRole matches only if the stored role is in allowedRoles.
	FindByEmailAndRole(ctx context.Context, email string, allowedRoles []models.Role) (*models.AccountRecord, error)
}

// ChallengeRepo defines the verification challenge store interface.
// At most one challenge is active per phone at a time.
type ChallengeRepo interface {
	// Create stores a new challenge. Fails with ErrChallengeThrottled
	// while a non-expired challenge exists for the same phone.
	Create(ctx context.Context, challenge *models.VerificationChallenge) error
	Get(ctx context.Context, phone string) (*models.VerificationChallenge, error)
	// Consume destroys the challenge after a successful match and records
	// the phone as verified for the remainder of the signup window.
	Consume(ctx context.Context, phone string) error
	IsVerified(ctx context.Context, phone string) (bool, error)
	ClearVerified(ctx context.Context, phone string) error
}
