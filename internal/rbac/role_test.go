package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    Role
		expectError bool
	}{
		{name: "raw admin code", raw: "admin", expected: RoleAdministrator},
		{name: "raw manager code", raw: "manager", expected: RoleMenaxher},
		{name: "raw technician code", raw: "technician", expected: RoleServiser},
		{name: "raw agent code", raw: "agent", expected: RoleAgjent},
		{name: "unknown role", raw: "bogus", expectError: true},
		{name: "empty role", raw: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := Normalize(tt.raw)
			if tt.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownRole)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, role)
			}
		})
	}
}

// Canonical names are fixed points of normalization.
func TestNormalizeIdempotent(t *testing.T) {
	for _, role := range Roles() {
		normalized, err := Normalize(string(role))
		assert.NoError(t, err)
		assert.Equal(t, role, normalized)
	}
}
