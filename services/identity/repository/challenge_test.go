package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peacelink/peacelink/internal/pkg/database"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/services/identity"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func setupChallengeRepoTest(t *testing.T) (*ChallengeRepo, *miniredis.Miniredis) {
	mr, client := setupMiniredis(t)

	redisClient := &database.RedisClient{
		Client: client,
	}

	return NewChallengeRepo(redisClient), mr
}

func newChallenge(phone, code string, issuedAt time.Time) *models.VerificationChallenge {
	return &models.VerificationChallenge{
		TargetPhone: phone,
		Code:        code,
		IssuedAt:    issuedAt,
		ExpiresAt:   issuedAt.Add(models.ChallengeTTL),
	}
}

func TestCreateAndGetChallenge(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()
	ctx := context.Background()

	challenge := newChallenge("+211912345678", "483920", time.Now())
	require.NoError(t, repo.Create(ctx, challenge))

	got, err := repo.Get(ctx, "+211912345678")
	require.NoError(t, err)
	assert.Equal(t, "483920", got.Code)
	assert.Equal(t, "+211912345678", got.TargetPhone)
}

func TestCreateChallengeThrottled(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()
	ctx := context.Background()

	first := newChallenge("+211912345678", "111111", time.Now())
	require.NoError(t, repo.Create(ctx, first))

	second := newChallenge("+211912345678", "222222", time.Now())
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, identity.ErrChallengeThrottled)

	// The first code is still the outstanding one.
	got, err := repo.Get(ctx, "+211912345678")
	require.NoError(t, err)
	assert.Equal(t, "111111", got.Code)
}

func TestCreateChallengeReplacesExpired(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()
	ctx := context.Background()

	expired := newChallenge("+211912345678", "111111", time.Now().Add(-2*models.ChallengeTTL))
	require.NoError(t, repo.Create(ctx, expired))

	fresh := newChallenge("+211912345678", "222222", time.Now())
	require.NoError(t, repo.Create(ctx, fresh))

	got, err := repo.Get(ctx, "+211912345678")
	require.NoError(t, err)
	assert.Equal(t, "222222", got.Code)
}

func TestGetChallengeNotFound(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()

	_, err := repo.Get(context.Background(), "+211900000000")
	assert.ErrorIs(t, err, identity.ErrChallengeNotFound)
}

func TestChallengeFallsOutAfterRetention(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()
	ctx := context.Background()

	challenge := newChallenge("+211912345678", "483920", time.Now())
	require.NoError(t, repo.Create(ctx, challenge))

	mr.FastForward(challengeRetention + time.Second)

	_, err := repo.Get(ctx, "+211912345678")
	assert.ErrorIs(t, err, identity.ErrChallengeNotFound)
}

func TestConsumeMarksVerified(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()
	ctx := context.Background()

	challenge := newChallenge("+211912345678", "483920", time.Now())
	require.NoError(t, repo.Create(ctx, challenge))

	require.NoError(t, repo.Consume(ctx, "+211912345678"))

	// The challenge is gone; it cannot be replayed.
	_, err := repo.Get(ctx, "+211912345678")
	assert.ErrorIs(t, err, identity.ErrChallengeNotFound)

	verified, err := repo.IsVerified(ctx, "+211912345678")
	require.NoError(t, err)
	assert.True(t, verified)
}

func TestVerifiedMarkerExpires(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()
	ctx := context.Background()

	challenge := newChallenge("+211912345678", "483920", time.Now())
	require.NoError(t, repo.Create(ctx, challenge))
	require.NoError(t, repo.Consume(ctx, "+211912345678"))

	mr.FastForward(verifiedWindow + time.Second)

	verified, err := repo.IsVerified(ctx, "+211912345678")
	require.NoError(t, err)
	assert.False(t, verified)
}

func TestClearVerified(t *testing.T) {
	repo, mr := setupChallengeRepoTest(t)
	defer mr.Close()
	ctx := context.Background()

	challenge := newChallenge("+211912345678", "483920", time.Now())
	require.NoError(t, repo.Create(ctx, challenge))
	require.NoError(t, repo.Consume(ctx, "+211912345678"))

	require.NoError(t, repo.ClearVerified(ctx, "+211912345678"))

	verified, err := repo.IsVerified(ctx, "+211912345678")
	require.NoError(t, err)
	assert.False(t, verified)
}
