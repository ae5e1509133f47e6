package models

// SignupRequest carries a completed signup wizard's collected fields for
// the terminal submission. Role-specific answers travel in RoleFields and
// Consents and are validated against the role requirements table.
type SignupRequest struct {
	Role       Role              `json:"role" validate:"required"`
	Name       string            `json:"name" validate:"required"`
	Location   string            `json:"location" validate:"required"`
	Phone      string            `json:"phone" validate:"required"`
	Email      string            `json:"email"`
	Password   string            `json:"password"`
	NationalID string            `json:"national_id" validate:"required"`
	RoleFields map[string]string `json:"role_fields"`
	Consents   map[string]bool   `json:"consents"`
}
