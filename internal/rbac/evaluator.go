package rbac

import "bizdesk/internal/auth"

// HasPermission reports whether the session may perform action on module.
// It is a pure function of its inputs: nothing is cached, so a session change
// between calls is reflected immediately. A nil session, an unknown role, or
// a module absent from the role's matrix entry all evaluate to false.
func HasPermission(sess *auth.Session, module string, action Action) bool {
	if sess == nil {
		return false
	}
	role, err := Normalize(sess.Role)
	if err != nil {
		return false
	}
	perms, ok := matrix[role]
	if !ok {
		return false
	}
	p, ok := perms[module]
	if !ok {
		return false
	}
	switch action {
	case ActionView:
		return p.View
	case ActionCreate:
		return p.Create
	case ActionEdit:
		return p.Edit
	case ActionDelete:
		return p.Delete
	case ActionExport:
		return p.Export
	default:
		return false
	}
}

// CanView reports view access on module.
func CanView(sess *auth.Session, module string) bool {
	return HasPermission(sess, module, ActionView)
}

// CanCreate reports create access on module.
func CanCreate(sess *auth.Session, module string) bool {
	return HasPermission(sess, module, ActionCreate)
}

// CanEdit reports edit access on module.
func CanEdit(sess *auth.Session, module string) bool {
	return HasPermission(sess, module, ActionEdit)
}

// CanDelete reports delete access on module.
func CanDelete(sess *auth.Session, module string) bool {
	return HasPermission(sess, module, ActionDelete)
}

// CanExport reports export access on module.
func CanExport(sess *auth.Session, module string) bool {
	return HasPermission(sess, module, ActionExport)
}

// CanEditOrDelete requires edit and delete to both be granted.
func CanEditOrDelete(sess *auth.Session, module string) bool {
	return CanEdit(sess, module) && CanDelete(sess, module)
}
