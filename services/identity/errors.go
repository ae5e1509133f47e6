package identity

import "errors"

// Account store failures.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicatePhone  = errors.New("an account already exists for this phone number")
	ErrDuplicateEmail  = errors.New("an account already exists for this email")
)

// Verification challenge failures. All are recoverable: the caller retries
// or requests a fresh code.
var (
	ErrChallengeNotFound  = errors.New("no verification code outstanding for this phone")
	ErrChallengeExpired   = errors.New("verification code has expired")
	ErrCodeMismatch       = errors.New("verification code does not match")
	ErrChallengeThrottled = errors.New("a verification code is already outstanding for this phone")
)

// Signup and login failures.
var (
	ErrAccountExists      = errors.New("an account already exists for this identity")
	ErrIncompleteProfile  = errors.New("required profile fields are missing")
	ErrPhoneNotVerified   = errors.New("phone number has not been verified")
	ErrInvalidRole        = errors.New("unknown role")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
