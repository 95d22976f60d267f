package rbac

import (
	"errors"
	"fmt"
)

// Role is a canonical role name, used as a key into the permission matrix.
type Role string

const (
	// RoleAdministrator has full access to every module.
	RoleAdministrator Role = "Administrator"
	// RoleMenaxher manages customers, orders and staff workload.
	RoleMenaxher Role = "Menaxher"
	// RoleServiser works on services, tasks and tickets.
	RoleServiser Role = "Serviser"
	// RoleAgjent handles customer intake and orders.
	RoleAgjent Role = "Agjent"
)

// ErrUnknownRole is returned when a raw role string has no canonical mapping.
var ErrUnknownRole = errors.New("unknown role")

// roleAliases maps raw role codes as stored on user records to canonical
// roles. Canonical names map to themselves so normalization is idempotent.
var roleAliases = map[string]Role{
	"admin":      RoleAdministrator,
	"manager":    RoleMenaxher,
	"technician": RoleServiser,
	"agent":      RoleAgjent,

	string(RoleAdministrator): RoleAdministrator,
	string(RoleMenaxher):      RoleMenaxher,
	string(RoleServiser):      RoleServiser,
	string(RoleAgjent):        RoleAgjent,
}

// Normalize maps a raw role string to its canonical Role. Unknown raw roles
// are an error rather than a silent pass-through, so a misspelled role can
// never slip past a permission check.
func Normalize(raw string) (Role, error) {
	role, ok := roleAliases[raw]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, raw)
	}
	return role, nil
}

// Roles returns every canonical role.
func Roles() []Role {
	return []Role{RoleAdministrator, RoleMenaxher, RoleServiser, RoleAgjent}
}
