package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/peacelink/peacelink/internal/pkg/constants"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/services/identity"
)

// Challenges are kept past their expiry window so an expired code can be
// reported as expired rather than unknown; after twice the window the key
// falls out of Redis and the attempt reads as not-found.
const challengeRetention = 2 * models.ChallengeTTL

// verifiedWindow is how long a consumed challenge counts as proof of phone
// possession while the signup is being completed.
const verifiedWindow = 15 * time.Minute

// Create stores a new challenge for the target phone. While a non-expired
// challenge exists the call fails with ErrChallengeThrottled; an expired
// but still-retained one is replaced.
func (r *ChallengeRepo) Create(ctx context.Context, challenge *models.VerificationChallenge) error {
	key := fmt.Sprintf(constants.KeyChallenge, challenge.TargetPhone)

	existing, err := r.Get(ctx, challenge.TargetPhone)
	if err != nil && !errors.Is(err, identity.ErrChallengeNotFound) {
		return err
	}
	if existing != nil && !existing.Expired(time.Now()) {
		return identity.ErrChallengeThrottled
	}

	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	if err := r.redisClient.Set(ctx, key, data, challengeRetention); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}

	return nil
}

// Get retrieves the outstanding challenge for a phone
func (r *ChallengeRepo) Get(ctx context.Context, phone string) (*models.VerificationChallenge, error) {
	key := fmt.Sprintf(constants.KeyChallenge, phone)

	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, identity.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	var challenge models.VerificationChallenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &challenge, nil
}

// Consume destroys the challenge after a successful match and marks the
// phone verified for the signup completion window.
func (r *ChallengeRepo) Consume(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constants.KeyChallenge, phone)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to consume challenge: %w", err)
	}

	verifiedKey := fmt.Sprintf(constants.KeyChallengeVerified, phone)
	if err := r.redisClient.Set(ctx, verifiedKey, "1", verifiedWindow); err != nil {
		return fmt.Errorf("failed to mark phone verified: %w", err)
	}

	return nil
}

// IsVerified reports whether the phone passed verification within the
// completion window.
func (r *ChallengeRepo) IsVerified(ctx context.Context, phone string) (bool, error) {
	verifiedKey := fmt.Sprintf(constants.KeyChallengeVerified, phone)
	ok, err := r.redisClient.Exists(ctx, verifiedKey)
	if err != nil {
		return false, fmt.Errorf("failed to check verified marker: %w", err)
	}
	return ok, nil
}

// ClearVerified revokes the verified marker, used when a signup finishes
// or the phone number is edited mid-flow.
func (r *ChallengeRepo) ClearVerified(ctx context.Context, phone string) error {
	verifiedKey := fmt.Sprintf(constants.KeyChallengeVerified, phone)
	return r.redisClient.Delete(ctx, verifiedKey)
}
