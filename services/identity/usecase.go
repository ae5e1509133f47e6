package identity

import (
	"context"

	"github.com/peacelink/peacelink/internal/pkg/models"
)

// IdentityUC defines the identity lifecycle operations: verification
// challenges, the signup wizard's terminal submission, both login paths,
// and the process session.
type IdentityUC interface {
	// Verification challenges (signup and phone-path login share these).
	RequestCode(ctx context.Context, phone string) (*models.ChallengeResponse, error)
	VerifyCode(ctx context.Context, phone, code string) error

	// Signup.
	CompleteSignup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)

	// Login.
	RequestLoginCode(ctx context.Context, phone string) (*models.ChallengeResponse, error)
	LoginWithPhone(ctx context.Context, phone, code string) (*models.AuthResponse, error)
	LoginWithCredentials(ctx context.Context, email, password string) (*models.AuthResponse, error)

	// Session.
	CurrentSession() *models.Session
	Logout()
}

// IdentityGW defines the identity gateway interface: outbound collaborators
// the lifecycle calls but does not own.
type IdentityGW interface {
	// DeliverCode hands a verification code to the delivery channel.
	DeliverCode(ctx context.Context, phone, code string) error
	// PublishAccountCreated announces a finalized account record.
	PublishAccountCreated(ctx context.Context, record *models.AccountRecord) error
}
