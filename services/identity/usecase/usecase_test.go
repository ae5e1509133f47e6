package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	"github.com/peacelink/peacelink/internal/pkg/constants"
	"github.com/peacelink/peacelink/internal/pkg/database"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/internal/pkg/roles"
	"github.com/peacelink/peacelink/services/identity/repository"
)

// fakeGateway records published events in memory.
type fakeGateway struct {
	mu              sync.Mutex
	deliveredCodes  []string
	createdAccounts []string
}

func (f *fakeGateway) DeliverCode(ctx context.Context, phone, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deliveredCodes = append(f.deliveredCodes, code)
	return nil
}

func (f *fakeGateway) PublishAccountCreated(ctx context.Context, record *models.AccountRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdAccounts = append(f.createdAccounts, record.ID)
	return nil
}

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "peacelink-test",
		},
	}
}

func setupUserUC(t *testing.T) (*UserUC, *fakeGateway, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	redisClient := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	cfg := testConfig()
	gw := &fakeGateway{}
	uc := NewUserUC(
		repository.NewAccountRepo(cfg, redisClient),
		repository.NewChallengeRepo(redisClient),
		gw,
		roles.Defaults(),
		cfg,
	)
	return uc, gw, mr
}

// expireOutstandingChallenge rewinds the stored challenge so its validity
// window has already closed, without touching the retention TTL.
func expireOutstandingChallenge(t *testing.T, uc *UserUC, mr *miniredis.Miniredis, phone string) {
	ctx := context.Background()
	challenge, err := uc.challengeRepo.Get(ctx, phone)
	require.NoError(t, err)

	challenge.IssuedAt = challenge.IssuedAt.Add(-2 * models.ChallengeTTL)
	challenge.ExpiresAt = challenge.ExpiresAt.Add(-2 * models.ChallengeTTL)
	data, err := json.Marshal(challenge)
	require.NoError(t, err)
	require.NoError(t, mr.Set(fmt.Sprintf(constants.KeyChallenge, phone), string(data)))
}

func youthSignup(phone string) *models.SignupRequest {
	return &models.SignupRequest{
		Role:       models.RoleYouth,
		Name:       "Achol Deng",
		Location:   "Juba",
		Phone:      phone,
		NationalID: "SSD-100200",
		RoleFields: map[string]string{
			"age_bracket":             "18-24",
			"focus_area":              "education",
			"language":                "en",
			"community_role":          "student",
			"accessibility":           "none",
			"emergency_contact_name":  "Nyandeng Deng",
			"emergency_contact_phone": "+211987654321",
		},
		Consents: map[string]bool{
			"data":       true,
			"alerts":     true,
			"guidelines": true,
		},
	}
}

func ngoSignup(phone, email, password string) *models.SignupRequest {
	return &models.SignupRequest{
		Role:       models.RoleNGO,
		Name:       "Mary Akello",
		Location:   "Juba",
		Phone:      phone,
		Email:      email,
		Password:   password,
		NationalID: "SSD-300400",
		RoleFields: map[string]string{
			"department":         "field-ops",
			"org_type":           "ingo",
			"sector":             "protection",
			"job_title":          "coordinator",
			"mandate":            "child protection",
			"coverage":           "central equatoria",
			"supervisor_name":    "James Lual",
			"supervisor_contact": "+211923456789",
		},
	}
}

func verifyPhone(t *testing.T, uc *UserUC, phone string) {
	ctx := context.Background()
	resp, err := uc.RequestCode(ctx, phone)
	require.NoError(t, err)
	require.NoError(t, uc.VerifyCode(ctx, phone, resp.Code))
}
