package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peacelink/peacelink/services/identity"
)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9')
		}
		seen[code] = true
	}
	// 50 draws from a million-value space colliding down to a handful
	// would mean the generator is broken.
	assert.Greater(t, len(seen), 40)
}

func TestRequestCodeAndVerify(t *testing.T) {
	uc, gw, _ := setupUserUC(t)
	ctx := context.Background()

	resp, err := uc.RequestCode(ctx, "0912345678")
	require.NoError(t, err)
	assert.Equal(t, "+211912345678", resp.Phone)
	assert.Len(t, resp.Code, 6)

	// The demo delivery channel saw the same code the caller did.
	assert.Equal(t, []string{resp.Code}, gw.deliveredCodes)

	require.NoError(t, uc.VerifyCode(ctx, "0912345678", resp.Code))
}

func TestRequestCodeInvalidPhone(t *testing.T) {
	uc, _, _ := setupUserUC(t)

	_, err := uc.RequestCode(context.Background(), "12345")
	assert.Error(t, err)
}

func TestRequestCodeThrottled(t *testing.T) {
	uc, _, _ := setupUserUC(t)
	ctx := context.Background()

	_, err := uc.RequestCode(ctx, "+211912345678")
	require.NoError(t, err)

	_, err = uc.RequestCode(ctx, "+211912345678")
	assert.ErrorIs(t, err, identity.ErrChallengeThrottled)
}

func TestReissueAfterExpiryInvalidatesFirstCode(t *testing.T) {
	uc, _, mr := setupUserUC(t)
	ctx := context.Background()

	first, err := uc.RequestCode(ctx, "+211912345678")
	require.NoError(t, err)

	expireOutstandingChallenge(t, uc, mr, "+211912345678")

	second, err := uc.RequestCode(ctx, "+211912345678")
	require.NoError(t, err)

	// The first code is dead: if it happens to differ from the fresh one
	// it reads as a mismatch against the replacement challenge.
	if first.Code != second.Code {
		assert.ErrorIs(t, uc.VerifyCode(ctx, "+211912345678", first.Code), identity.ErrCodeMismatch)
	}
	require.NoError(t, uc.VerifyCode(ctx, "+211912345678", second.Code))
}

func TestVerifyCodeExpired(t *testing.T) {
	uc, _, mr := setupUserUC(t)
	ctx := context.Background()

	resp, err := uc.RequestCode(ctx, "+211912345678")
	require.NoError(t, err)

	expireOutstandingChallenge(t, uc, mr, "+211912345678")

	// Correctness does not matter once the window has closed.
	err = uc.VerifyCode(ctx, "+211912345678", resp.Code)
	assert.ErrorIs(t, err, identity.ErrChallengeExpired)
}

func TestVerifyCodeMismatch(t *testing.T) {
	uc, _, _ := setupUserUC(t)
	ctx := context.Background()

	resp, err := uc.RequestCode(ctx, "+211912345678")
	require.NoError(t, err)

	wrong := "000000"
	if resp.Code == wrong {
		wrong = "111111"
	}
	assert.ErrorIs(t, uc.VerifyCode(ctx, "+211912345678", wrong), identity.ErrCodeMismatch)

	// A mismatch does not consume the challenge.
	require.NoError(t, uc.VerifyCode(ctx, "+211912345678", resp.Code))
}

func TestVerifyCodeNotFound(t *testing.T) {
	uc, _, _ := setupUserUC(t)

	err := uc.VerifyCode(context.Background(), "+211912345678", "123456")
	assert.ErrorIs(t, err, identity.ErrChallengeNotFound)
}

func TestVerifyCodeCannotBeReplayed(t *testing.T) {
	uc, _, _ := setupUserUC(t)
	ctx := context.Background()

	resp, err := uc.RequestCode(ctx, "+211912345678")
	require.NoError(t, err)
	require.NoError(t, uc.VerifyCode(ctx, "+211912345678", resp.Code))

	err = uc.VerifyCode(ctx, "+211912345678", resp.Code)
	assert.ErrorIs(t, err, identity.ErrChallengeNotFound)
}
