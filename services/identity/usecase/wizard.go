package usecase

import (
	"context"
	"fmt"

	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/peacelink/peacelink/internal/utils"
	"github.com/peacelink/peacelink/services/identity"
)

// WizardState enumerates the signup wizard's states.
type WizardState int

const (
	StateRoleSelection WizardState = iota
	StateProfileEntry
	StatePhoneCollected
	StateOtpPending
	StatePhoneVerified
	StateSubmitting
	StateComplete
)

func (s WizardState) String() string {
	switch s {
	case StateRoleSelection:
		return "role_selection"
	case StateProfileEntry:
		return "profile_entry"
	case StatePhoneCollected:
		return "phone_collected"
	case StateOtpPending:
		return "otp_pending"
	case StatePhoneVerified:
		return "phone_verified"
	case StateSubmitting:
		return "submitting"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

// SignupWizard drives one in-progress signup through role selection,
// profile entry, phone verification, and submission. Abandoning the wizard
// loses only in-memory progress; nothing reaches the account store before
// Submit succeeds.
type SignupWizard struct {
	uc       *UserUC
	state    WizardState
	verified bool
	req      models.SignupRequest
}

// NewSignupWizard starts a fresh signup flow
func (u *UserUC) NewSignupWizard() *SignupWizard {
	return &SignupWizard{
		uc:    u,
		state: StateRoleSelection,
		req: models.SignupRequest{
			RoleFields: make(map[string]string),
			Consents:   make(map[string]bool),
		},
	}
}

// State returns the wizard's current state
func (w *SignupWizard) State() WizardState {
	return w.state
}

// Collected returns the fields gathered so far.
func (w *SignupWizard) Collected() models.SignupRequest {
	return w.req
}

// SelectRole fixes the role for the rest of the flow. Re-selecting a
// different role mid-flow discards all role-specific answers: they are
// not transferable between role schemas.
func (w *SignupWizard) SelectRole(role models.Role) error {
	if w.state >= StateSubmitting {
		return fmt.Errorf("cannot change role in state %s", w.state)
	}
	if !models.ValidRole(role) {
		return identity.ErrInvalidRole
	}

	if w.req.Role != "" && w.req.Role != role {
		w.req.RoleFields = make(map[string]string)
		w.req.Consents = make(map[string]bool)
	}
	w.req.Role = role

	if w.state == StateRoleSelection {
		w.state = StateProfileEntry
	}
	return nil
}

// EnterProfile records the shared identity fields.
func (w *SignupWizard) EnterProfile(name, location, nationalID string) error {
	if w.state < StateProfileEntry || w.state >= StateSubmitting {
		return fmt.Errorf("cannot edit profile in state %s", w.state)
	}
	w.req.Name = name
	w.req.Location = location
	w.req.NationalID = nationalID
	return nil
}

// SetPhone records the phone number. Any edit after verification revokes
// the verified state and the flow returns to collecting a code.
func (w *SignupWizard) SetPhone(ctx context.Context, phone string) error {
	if w.state < StateProfileEntry || w.state >= StateSubmitting {
		return fmt.Errorf("cannot edit phone in state %s", w.state)
	}
	if !utils.PlausiblePhone(phone) {
		return fmt.Errorf("phone number is too short")
	}

	if w.req.Phone != "" && w.req.Phone != phone && w.verified {
		if _, formatted, err := utils.ValidatePhone(w.req.Phone); err == nil {
			_ = w.uc.challengeRepo.ClearVerified(ctx, formatted)
		}
		w.verified = false
	}

	w.req.Phone = phone
	w.state = StatePhoneCollected
	return nil
}

// SetEmail records the contact email (required for partner roles).
func (w *SignupWizard) SetEmail(email string) {
	w.req.Email = email
}

// SetPassword records an optional credential for the email login path.
func (w *SignupWizard) SetPassword(password string) {
	w.req.Password = password
}

// SetRoleField records one role-specific answer.
func (w *SignupWizard) SetRoleField(name, value string) {
	w.req.RoleFields[name] = value
}

// SetConsent records one consent acknowledgement.
func (w *SignupWizard) SetConsent(name string, granted bool) {
	w.req.Consents[name] = granted
}

// RequestCode asks for a verification code for the collected phone,
// subject to the one-active-challenge throttle.
func (w *SignupWizard) RequestCode(ctx context.Context) (*models.ChallengeResponse, error) {
	if w.state != StatePhoneCollected && w.state != StateOtpPending {
		return nil, fmt.Errorf("cannot request code in state %s", w.state)
	}

	resp, err := w.uc.RequestCode(ctx, w.req.Phone)
	if err != nil {
		return nil, err
	}
	w.state = StateOtpPending
	return resp, nil
}

// SubmitCode verifies the received code. Failure keeps the wizard in
// OtpPending so the user can retry or request a fresh code.
func (w *SignupWizard) SubmitCode(ctx context.Context, code string) error {
	if w.state != StateOtpPending {
		return fmt.Errorf("cannot submit code in state %s", w.state)
	}

	if err := w.uc.VerifyCode(ctx, w.req.Phone, code); err != nil {
		return err
	}
	w.verified = true
	w.state = StatePhoneVerified
	return nil
}

// Submit runs the terminal transition. Validation failures return the
// wizard to ProfileEntry without discarding anything entered so far;
// success completes the flow and establishes the session.
func (w *SignupWizard) Submit(ctx context.Context) (*models.AuthResponse, error) {
	if w.state == StateComplete {
		return nil, fmt.Errorf("signup already complete")
	}
	if !w.verified {
		return nil, identity.ErrPhoneNotVerified
	}

	w.state = StateSubmitting
	resp, err := w.uc.CompleteSignup(ctx, &w.req)
	if err != nil {
		// Phone verification survives a validation round-trip; the store
		// marker is untouched unless the phone itself is edited.
		w.state = StateProfileEntry
		return nil, err
	}

	w.state = StateComplete
	return resp, nil
}
