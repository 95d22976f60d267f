package rbac

// Module identifiers. The same strings key the permission matrix and tag
// navigation entries.
const (
	ModuleDashboard = "dashboard"
	ModuleCustomers = "customers"
	ModuleOrders    = "orders"
	ModuleServices  = "services"
	ModuleTasks     = "tasks"
	ModuleTickets   = "tickets"
	ModuleUsers     = "users"
	ModuleComments  = "comments"
	ModuleActivity  = "activity"
)

// Action is a permission matrix action.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
)

// Permission is the per-module action record stored in the matrix.
type Permission struct {
	View   bool
	Create bool
	Edit   bool
	Delete bool
	Export bool
}

var (
	full     = Permission{View: true, Create: true, Edit: true, Delete: true, Export: true}
	readOnly = Permission{View: true}
	none     = Permission{}
)

// matrix is static configuration: every canonical role lists every module
// explicitly, even when all actions are denied. A module missing under a
// role would read as "no access" anyway, but an explicit entry makes the
// denial intentional rather than an oversight.
var matrix = map[Role]map[string]Permission{
	RoleAdministrator: {
		ModuleDashboard: readOnly,
		ModuleCustomers: full,
		ModuleOrders:    full,
		ModuleServices:  full,
		ModuleTasks:     full,
		ModuleTickets:   full,
		ModuleUsers:     full,
		ModuleComments:  {View: true, Create: true, Edit: true, Delete: true},
		ModuleActivity:  {View: true, Export: true},
	},
	RoleMenaxher: {
		ModuleDashboard: readOnly,
		ModuleCustomers: {View: true, Create: true, Edit: true, Export: true},
		ModuleOrders:    {View: true, Create: true, Edit: true, Export: true},
		ModuleServices:  {View: true, Create: true, Edit: true},
		ModuleTasks:     {View: true, Create: true, Edit: true, Delete: true},
		ModuleTickets:   {View: true, Create: true, Edit: true},
		ModuleUsers:     readOnly,
		ModuleComments:  {View: true, Create: true},
		ModuleActivity:  readOnly,
	},
	RoleServiser: {
		ModuleDashboard: readOnly,
		ModuleCustomers: readOnly,
		ModuleOrders:    readOnly,
		ModuleServices:  readOnly,
		ModuleTasks:     {View: true, Create: true, Edit: true},
		ModuleTickets:   {View: true, Edit: true},
		ModuleUsers:     none,
		ModuleComments:  {View: true, Create: true},
		ModuleActivity:  none,
	},
	RoleAgjent: {
		ModuleDashboard: readOnly,
		ModuleCustomers: {View: true, Create: true, Edit: true},
		ModuleOrders:    {View: true, Create: true, Edit: true},
		ModuleServices:  readOnly,
		ModuleTasks:     readOnly,
		ModuleTickets:   {View: true, Create: true},
		ModuleUsers:     none,
		ModuleComments:  {View: true, Create: true},
		ModuleActivity:  none,
	},
}

// Modules returns every module identifier known to the matrix.
func Modules() []string {
	return []string{
		ModuleDashboard,
		ModuleCustomers,
		ModuleOrders,
		ModuleServices,
		ModuleTasks,
		ModuleTickets,
		ModuleUsers,
		ModuleComments,
		ModuleActivity,
	}
}
