package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/services/identity"
)

// stubIdentityUC returns canned results per operation.
type stubIdentityUC struct {
	challengeResp *models.ChallengeResponse
	challengeErr  error
	verifyErr     error
	authResp      *models.AuthResponse
	authErr       error
	session       *models.Session
	loggedOut     bool
}

func (s *stubIdentityUC) RequestCode(ctx context.Context, phone string) (*models.ChallengeResponse, error) {
	return s.challengeResp, s.challengeErr
}

func (s *stubIdentityUC) VerifyCode(ctx context.Context, phone, code string) error {
	return s.verifyErr
}

func (s *stubIdentityUC) CompleteSignup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	return s.authResp, s.authErr
}

func (s *stubIdentityUC) RequestLoginCode(ctx context.Context, phone string) (*models.ChallengeResponse, error) {
	return s.challengeResp, s.challengeErr
}

func (s *stubIdentityUC) LoginWithPhone(ctx context.Context, phone, code string) (*models.AuthResponse, error) {
	return s.authResp, s.authErr
}

func (s *stubIdentityUC) LoginWithCredentials(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	return s.authResp, s.authErr
}

func (s *stubIdentityUC) CurrentSession() *models.Session {
	return s.session
}

func (s *stubIdentityUC) Logout() {
	s.loggedOut = true
}

func doRequest(t *testing.T, handler echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return rec, response
}

func TestGenerateSignupCode(t *testing.T) {
	stub := &stubIdentityUC{
		challengeResp: &models.ChallengeResponse{
			Phone:     "+211912345678",
			Code:      "483920",
			ExpiresAt: 1700000120,
		},
	}
	handler := NewAuthHandler(stub)

	rec, response := doRequest(t, handler.GenerateSignupCode,
		http.MethodPost, "/auth/signup/otp/generate", `{"phone": "+211912345678"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "483920", data["code"])
}

func TestGenerateSignupCodeMissingPhone(t *testing.T) {
	handler := NewAuthHandler(&stubIdentityUC{})

	rec, response := doRequest(t, handler.GenerateSignupCode,
		http.MethodPost, "/auth/signup/otp/generate", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, response["success"])
}

func TestGenerateSignupCodeThrottled(t *testing.T) {
	handler := NewAuthHandler(&stubIdentityUC{
		challengeErr: identity.ErrChallengeThrottled,
	})

	rec, _ := doRequest(t, handler.GenerateSignupCode,
		http.MethodPost, "/auth/signup/otp/generate", `{"phone": "+211912345678"}`)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestVerifySignupCode(t *testing.T) {
	handler := NewAuthHandler(&stubIdentityUC{})

	rec, response := doRequest(t, handler.VerifySignupCode,
		http.MethodPost, "/auth/signup/otp/verify", `{"phone": "+211912345678", "code": "483920"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Phone verified", response["message"])
}

func TestVerifySignupCodeExpired(t *testing.T) {
	handler := NewAuthHandler(&stubIdentityUC{
		verifyErr: identity.ErrChallengeExpired,
	})

	rec, _ := doRequest(t, handler.VerifySignupCode,
		http.MethodPost, "/auth/signup/otp/verify", `{"phone": "+211912345678", "code": "483920"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCompleteSignup(t *testing.T) {
	handler := NewAuthHandler(&stubIdentityUC{
		authResp: &models.AuthResponse{
			Token: "token-1",
			Account: models.AccountRecord{
				ID:   "acct-1",
				Role: models.RoleYouth,
			},
		},
	})

	rec, response := doRequest(t, handler.CompleteSignup,
		http.MethodPost, "/auth/signup/complete", `{"role": "youth", "name": "Achol Deng"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "token-1", data["token"])
}

func TestCompleteSignupConflict(t *testing.T) {
	handler := NewAuthHandler(&stubIdentityUC{
		authErr: identity.ErrAccountExists,
	})

	rec, _ := doRequest(t, handler.CompleteSignup,
		http.MethodPost, "/auth/signup/complete", `{"role": "youth"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCompleteSignupPhoneNotVerified(t *testing.T) {
	handler := NewAuthHandler(&stubIdentityUC{
		authErr: identity.ErrPhoneNotVerified,
	})

	rec, _ := doRequest(t, handler.CompleteSignup,
		http.MethodPost, "/auth/signup/complete", `{"role": "youth"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginWithCredentialsInvalid(t *testing.T) {
	handler := NewAuthHandler(&stubIdentityUC{
		authErr: identity.ErrInvalidCredentials,
	})

	rec, response := doRequest(t, handler.LoginWithCredentials,
		http.MethodPost, "/auth/login/credentials", `{"email": "ops@ngo.org", "password": "secret123"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// The message never reveals which field was wrong.
	assert.Equal(t, "Invalid email or password", response["error"])
}

func TestLoginWithPhoneUnknownAccount(t *testing.T) {
	handler := NewAuthHandler(&stubIdentityUC{
		authErr: identity.ErrAccountNotFound,
	})

	rec, _ := doRequest(t, handler.LoginWithPhone,
		http.MethodPost, "/auth/login/otp/verify", `{"phone": "+211912345678", "code": "483920"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCurrentSession(t *testing.T) {
	handler := NewAuthHandler(&stubIdentityUC{
		session: &models.Session{
			Account: models.AccountRecord{ID: "acct-1", Role: models.RoleYouth},
		},
	})

	rec, response := doRequest(t, handler.CurrentSession,
		http.MethodGet, "/session", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := response["data"].(map[string]interface{})
	account := data["account"].(map[string]interface{})
	assert.Equal(t, "acct-1", account["id"])
}

func TestCurrentSessionAbsent(t *testing.T) {
	handler := NewAuthHandler(&stubIdentityUC{})

	rec, _ := doRequest(t, handler.CurrentSession, http.MethodGet, "/session", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	stub := &stubIdentityUC{
		session: &models.Session{},
	}
	handler := NewAuthHandler(stub)

	rec, _ := doRequest(t, handler.Logout, http.MethodDelete, "/session", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stub.loggedOut)
}
