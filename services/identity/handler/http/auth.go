package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/peacelink/peacelink/internal/pkg/logger"
	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/internal/utils"
	"github.com/peacelink/peacelink/services/identity"
)

// AuthHandler handles HTTP requests for the identity lifecycle
type AuthHandler struct {
	identityUC identity.IdentityUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityUC identity.IdentityUC) *AuthHandler {
	return &AuthHandler{
		identityUC: identityUC,
	}
}

// GenerateSignupCode handles verification code requests during signup
func (h *AuthHandler) GenerateSignupCode(c echo.Context) error {
	var request models.ChallengeRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if request.Phone == "" {
		return utils.BadRequestResponse(c, "Phone is required")
	}

	response, err := h.identityUC.RequestCode(c.Request().Context(), request.Phone)
	if err != nil {
		return challengeErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code issued", response)
}

// VerifySignupCode handles code verification during signup
func (h *AuthHandler) VerifySignupCode(c echo.Context) error {
	var request models.VerifyRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if request.Phone == "" || request.Code == "" {
		return utils.BadRequestResponse(c, "Phone and code are required")
	}

	if err := h.identityUC.VerifyCode(c.Request().Context(), request.Phone, request.Code); err != nil {
		return challengeErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Phone verified", nil)
}

// CompleteSignup handles the signup wizard's terminal submission
func (h *AuthHandler) CompleteSignup(c echo.Context) error {
	var request models.SignupRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	response, err := h.identityUC.CompleteSignup(c.Request().Context(), &request)
	if err != nil {
		logger.Warn("Signup submission rejected",
			logger.String("role", string(request.Role)),
			logger.Err(err))
		return signupErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", response)
}

// GenerateLoginCode handles verification code requests for the phone login path
func (h *AuthHandler) GenerateLoginCode(c echo.Context) error {
	var request models.LoginRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if request.Phone == "" {
		return utils.BadRequestResponse(c, "Phone is required")
	}

	response, err := h.identityUC.RequestLoginCode(c.Request().Context(), request.Phone)
	if err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			return utils.NotFoundResponse(c, "No account registered for this phone")
		}
		return challengeErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code issued", response)
}

// LoginWithPhone handles code verification for the phone login path
func (h *AuthHandler) LoginWithPhone(c echo.Context) error {
	var request models.VerifyRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if request.Phone == "" || request.Code == "" {
		return utils.BadRequestResponse(c, "Phone and code are required")
	}

	response, err := h.identityUC.LoginWithPhone(c.Request().Context(), request.Phone, request.Code)
	if err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			return utils.NotFoundResponse(c, "No account registered for this phone")
		}
		return challengeErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", response)
}

// LoginWithCredentials handles the email/password login path
func (h *AuthHandler) LoginWithCredentials(c echo.Context) error {
	var request models.CredentialLoginRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if request.Email == "" || request.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	response, err := h.identityUC.LoginWithCredentials(c.Request().Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			// Generic on purpose: the response never confirms which field
			// was wrong.
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", response)
}

// CurrentSession returns the active session for the authenticated caller
func (h *AuthHandler) CurrentSession(c echo.Context) error {
	session := h.identityUC.CurrentSession()
	if session == nil {
		return utils.UnauthorizedResponse(c, "No active session")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session active", session)
}

// Logout clears the active session
func (h *AuthHandler) Logout(c echo.Context) error {
	h.identityUC.Logout()
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// challengeErrorResponse maps verification challenge failures onto HTTP
// statuses. Every one of them is recoverable by the caller.
func challengeErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, identity.ErrChallengeThrottled):
		return utils.TooManyRequestsResponse(c, err.Error())
	case errors.Is(err, identity.ErrChallengeNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, identity.ErrChallengeExpired),
		errors.Is(err, identity.ErrCodeMismatch):
		return utils.UnauthorizedResponse(c, err.Error())
	default:
		return utils.BadRequestResponse(c, err.Error())
	}
}

// signupErrorResponse maps signup failures onto HTTP statuses.
func signupErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, identity.ErrAccountExists):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, identity.ErrPhoneNotVerified):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, identity.ErrIncompleteProfile),
		errors.Is(err, identity.ErrInvalidRole):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, "Failed to create account")
	}
}
