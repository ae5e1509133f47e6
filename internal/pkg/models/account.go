package models

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleYouth     Role = "youth"
	RoleLeader    Role = "leader"
	RoleNGO       Role = "ngo"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// IndividualRoles sign up and log in with phone verification.
var IndividualRoles = []Role{RoleYouth, RoleLeader}

// CredentialRoles log in with email and password.
var CredentialRoles = []Role{RoleNGO, RoleModerator, RoleAdmin}

// ValidRole reports whether role is a member of the closed enumeration.
func ValidRole(role Role) bool {
	switch role {
	case RoleYouth, RoleLeader, RoleNGO, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// AccountRecord is the stored identity of a registered account.
type AccountRecord struct {
	ID          string    `json:"id" db:"id"`
	DisplayName string    `json:"name" db:"display_name"`
	Role        Role      `json:"role" db:"role"`
	Location    string    `json:"location" db:"location"`
	Phone       string    `json:"phone,omitempty" db:"phone"`
	Email       string    `json:"email,omitempty" db:"email"`
	NationalID  string    `json:"national_id,omitempty" db:"national_id"`
	Verified    bool      `json:"verified" db:"verified"`
	AvatarRef   string    `json:"avatar_ref,omitempty" db:"avatar_ref"`
	// CredentialHash never leaves the process in API responses.
	CredentialHash []byte    `json:"-" db:"credential_hash"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// PublicCopy returns the record with the stored credential stripped.
func (a *AccountRecord) PublicCopy() AccountRecord {
	copied := *a
	copied.CredentialHash = nil
	return copied
}

// LoginRequest asks for a login verification code (phone path).
type LoginRequest struct {
	Phone string `json:"phone"`
}

// VerifyRequest submits a verification code for a phone.
type VerifyRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// CredentialLoginRequest is the email/password login payload.
type CredentialLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by every successful authentication path.
type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresAt int64         `json:"expires_at"`
	Account   AccountRecord `json:"account"`
}
