package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bizdesk/internal/auth"
)

func sessionWithRole(role string) *auth.Session {
	return &auth.Session{UserID: 1, Name: "Test User", Role: role}
}

func allActions() []Action {
	return []Action{ActionView, ActionCreate, ActionEdit, ActionDelete, ActionExport}
}

func TestHasPermissionNoSession(t *testing.T) {
	for _, module := range Modules() {
		for _, action := range allActions() {
			assert.False(t, HasPermission(nil, module, action),
				"nil session must never grant %s on %s", action, module)
		}
	}
}

func TestHasPermissionUnknownRole(t *testing.T) {
	sess := sessionWithRole("weird-legacy-role")
	for _, module := range Modules() {
		assert.False(t, HasPermission(sess, module, ActionView))
	}
}

func TestHasPermissionUnknownModule(t *testing.T) {
	for _, role := range Roles() {
		sess := sessionWithRole(string(role))
		for _, action := range allActions() {
			assert.False(t, HasPermission(sess, "no-such-module", action))
		}
	}
}

// The raw "technician" code normalizes to Serviser, which may view the
// service catalog but not edit it.
func TestTechnicianServicesAccess(t *testing.T) {
	sess := sessionWithRole("technician")

	assert.True(t, CanView(sess, ModuleServices))
	assert.False(t, CanEdit(sess, ModuleServices))
	assert.False(t, CanDelete(sess, ModuleServices))
	assert.True(t, CanEdit(sess, ModuleTickets))
	assert.False(t, CanView(sess, ModuleUsers))
}

func TestCanEditOrDeleteIsConjunction(t *testing.T) {
	// Menaxher may edit tickets but not delete them.
	manager := sessionWithRole("manager")
	assert.True(t, CanEdit(manager, ModuleTickets))
	assert.False(t, CanDelete(manager, ModuleTickets))
	assert.False(t, CanEditOrDelete(manager, ModuleTickets))

	admin := sessionWithRole("admin")
	assert.True(t, CanEditOrDelete(admin, ModuleTickets))
}

func TestCanExport(t *testing.T) {
	assert.True(t, CanExport(sessionWithRole("manager"), ModuleCustomers))
	assert.False(t, CanExport(sessionWithRole("agent"), ModuleCustomers))
	assert.False(t, CanExport(sessionWithRole("technician"), ModuleOrders))
}

// Every canonical role must list every module explicitly, even when all
// actions are denied.
func TestMatrixListsEveryModuleForEveryRole(t *testing.T) {
	for _, role := range Roles() {
		perms, ok := matrix[role]
		assert.True(t, ok, "role %s missing from matrix", role)
		for _, module := range Modules() {
			_, ok := perms[module]
			assert.True(t, ok, "role %s missing module %s", role, module)
		}
	}
}
