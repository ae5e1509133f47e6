package roles

import (
	"fmt"

	"github.com/peacelink/peacelink/internal/pkg/models"
	"github.com/spf13/viper"
)

// Requirement lists what a role must supply before signup may complete.
type Requirement struct {
	Fields        []string `mapstructure:"fields"`
	Consents      []string `mapstructure:"consents"`
	RequiresEmail bool     `mapstructure:"requires_email"`
}

// Table maps each role to its requirement set. Validation is data-driven:
// changing a role's required fields is a configuration edit, not a code edit.
type Table map[models.Role]Requirement

// Defaults returns the compiled-in requirement table.
func Defaults() Table {
	return Table{
		models.RoleYouth: {
			Fields: []string{
				"age_bracket",
				"focus_area",
				"language",
				"community_role",
				"accessibility",
				"emergency_contact_name",
				"emergency_contact_phone",
			},
			Consents: []string{"data", "alerts", "guidelines"},
		},
		models.RoleLeader: {
			Fields: []string{
				"leadership_title",
				"community",
				"experience",
				"area_of_influence",
				"reference_name",
				"reference_phone",
			},
		},
		models.RoleNGO: {
			Fields: []string{
				"department",
				"org_type",
				"sector",
				"job_title",
				"mandate",
				"coverage",
				"supervisor_name",
				"supervisor_contact",
			},
			RequiresEmail: true,
		},
		models.RoleModerator: {RequiresEmail: true},
		models.RoleAdmin:     {RequiresEmail: true},
	}
}

// Load reads a requirement table from a YAML file, falling back to the
// defaults for roles the file does not mention. An empty path returns the
// defaults unchanged.
func Load(path string) (Table, error) {
	table := Defaults()
	if path == "" {
		return table, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read roles file: %w", err)
	}

	var loaded map[string]Requirement
	if err := v.UnmarshalKey("roles", &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse roles file: %w", err)
	}

	for name, req := range loaded {
		role := models.Role(name)
		if !models.ValidRole(role) {
			return nil, fmt.Errorf("unknown role %q in roles file", name)
		}
		table[role] = req
	}

	return table, nil
}

// Missing returns the requirement names the profile has not satisfied, in
// table order: absent or blank fields, unacknowledged consents, and a
// missing email where the role demands one.
func (t Table) Missing(role models.Role, fields map[string]string, consents map[string]bool, email string) []string {
	req, ok := t[role]
	if !ok {
		return nil
	}

	var missing []string
	for _, name := range req.Fields {
		if fields[name] == "" {
			missing = append(missing, name)
		}
	}
	for _, name := range req.Consents {
		if !consents[name] {
			missing = append(missing, "consent:"+name)
		}
	}
	if req.RequiresEmail && email == "" {
		missing = append(missing, "email")
	}

	return missing
}
