package models

import "time"

// ChallengeTTL is how long a verification code stays valid after issue.
const ChallengeTTL = 120 * time.Second

// VerificationChallenge is one outstanding phone verification code.
type VerificationChallenge struct {
	TargetPhone string    `json:"target_phone"`
	Code        string    `json:"code"`
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the challenge's validity window has closed.
// The boundary instant counts as expired.
func (c *VerificationChallenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// ChallengeRequest asks for a verification code.
type ChallengeRequest struct {
	Phone string `json:"phone"`
}

// ChallengeResponse reports an issued challenge. Code is surfaced directly
// to the caller in demo mode, standing in for real SMS delivery.
type ChallengeResponse struct {
	Phone     string `json:"phone"`
	Code      string `json:"code"`
	ExpiresAt int64  `json:"expires_at"`
}
