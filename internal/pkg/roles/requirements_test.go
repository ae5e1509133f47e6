package roles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peacelink/peacelink/internal/pkg/models"
)

func TestDefaultsCoverAllRoles(t *testing.T) {
	table := Defaults()
	for _, role := range []models.Role{
		models.RoleYouth,
		models.RoleLeader,
		models.RoleNGO,
		models.RoleModerator,
		models.RoleAdmin,
	} {
		_, ok := table[role]
		assert.True(t, ok, "role %s", role)
	}

	// Email is a credential-role requirement only.
	assert.False(t, table[models.RoleYouth].RequiresEmail)
	assert.False(t, table[models.RoleLeader].RequiresEmail)
	assert.True(t, table[models.RoleNGO].RequiresEmail)
	assert.True(t, table[models.RoleModerator].RequiresEmail)
	assert.True(t, table[models.RoleAdmin].RequiresEmail)
}

func TestMissingFields(t *testing.T) {
	table := Defaults()

	missing := table.Missing(models.RoleLeader, map[string]string{
		"leadership_title": "chief",
		"community":        "Bor",
		"experience":       "5-10",
	}, nil, "")
	assert.ElementsMatch(t, []string{"area_of_influence", "reference_name", "reference_phone"}, missing)
}

func TestMissingConsents(t *testing.T) {
	table := Defaults()

	fields := map[string]string{
		"age_bracket":             "18-24",
		"focus_area":              "education",
		"language":                "en",
		"community_role":          "student",
		"accessibility":           "none",
		"emergency_contact_name":  "Nyandeng",
		"emergency_contact_phone": "+211987654321",
	}
	missing := table.Missing(models.RoleYouth, fields, map[string]bool{
		"data":   true,
		"alerts": true,
		// guidelines deliberately unacknowledged
	}, "")
	assert.Equal(t, []string{"consent:guidelines"}, missing)
}

func TestMissingEmail(t *testing.T) {
	table := Defaults()

	missing := table.Missing(models.RoleModerator, nil, nil, "")
	assert.Equal(t, []string{"email"}, missing)

	missing = table.Missing(models.RoleModerator, nil, nil, "mod@peacelink.org")
	assert.Empty(t, missing)
}

func TestMissingUnknownRole(t *testing.T) {
	table := Defaults()
	assert.Empty(t, table.Missing("chief", nil, nil, ""))
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roles.yaml")
	content := []byte(`roles:
  youth:
    fields:
      - age_bracket
    consents:
      - data
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	table, err := Load(path)
	require.NoError(t, err)

	// The file replaces the youth requirement wholesale.
	assert.Equal(t, []string{"age_bracket"}, table[models.RoleYouth].Fields)
	assert.Equal(t, []string{"data"}, table[models.RoleYouth].Consents)

	// Roles the file does not mention keep their defaults.
	assert.True(t, table[models.RoleNGO].RequiresEmail)
}

func TestLoadRejectsUnknownRole(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roles.yaml")
	content := []byte(`roles:
  chief:
    fields:
      - anything
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	table, err := Load("")
	require.NoError(t, err)
	assert.Len(t, table, 5)
}
