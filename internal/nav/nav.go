// Package nav holds the static navigation tree and filters it per session.
package nav

import (
	"bizdesk/internal/auth"
	"bizdesk/internal/rbac"
)

// Entry is a navigation entry. A leaf entry carries the module whose view
// permission gates it; a parent entry is gated by its sub-entries.
type Entry struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Icon     string  `json:"icon"`
	Module   string  `json:"module,omitempty"`
	SubItems []Entry `json:"sub_items,omitempty"`
}

// homeEntryID names the landing entry, which is never permission-gated.
const homeEntryID = "home"

// entries is static configuration: the full ordered navigation tree before
// any permission filtering.
var entries = []Entry{
	{ID: homeEntryID, Label: "Ballina", Icon: "home"},
	{ID: "klientet", Label: "Klientët", Icon: "users", SubItems: []Entry{
		{ID: "customers", Label: "Klientët", Icon: "user", Module: rbac.ModuleCustomers},
		{ID: "orders", Label: "Porositë", Icon: "shopping-cart", Module: rbac.ModuleOrders},
	}},
	{ID: "detyra", Label: "Detyrat", Icon: "clipboard", SubItems: []Entry{
		{ID: "services", Label: "Shërbimet", Icon: "tool", Module: rbac.ModuleServices},
		{ID: "tasks", Label: "Detyrat", Icon: "check-square", Module: rbac.ModuleTasks},
		{ID: "tickets", Label: "Tiketat", Icon: "life-buoy", Module: rbac.ModuleTickets},
	}},
	{ID: "administrata", Label: "Administrata", Icon: "settings", SubItems: []Entry{
		{ID: "users", Label: "Përdoruesit", Icon: "user-check", Module: rbac.ModuleUsers},
		{ID: "activity", Label: "Aktiviteti", Icon: "list", Module: rbac.ModuleActivity},
	}},
}

// Entries returns the unfiltered navigation tree.
func Entries() []Entry {
	return entries
}

// VisibleFor filters the tree down to what the session may view. The home
// entry is always included. A leaf is included iff the session can view its
// module; a parent is included iff at least one of its sub-entries is, and
// then carries only the visible sub-entries.
func VisibleFor(sess *auth.Session) []Entry {
	return filter(entries, sess)
}

func filter(src []Entry, sess *auth.Session) []Entry {
	var out []Entry
	for _, e := range src {
		if e.ID == homeEntryID {
			out = append(out, e)
			continue
		}
		if len(e.SubItems) == 0 {
			if rbac.CanView(sess, e.Module) {
				out = append(out, e)
			}
			continue
		}
		visible := filter(e.SubItems, sess)
		if len(visible) > 0 {
			e.SubItems = visible
			out = append(out, e)
		}
	}
	return out
}

// IsActive reports whether entry should be highlighted for the selected
// entry ID. A parent is active on itself or any of its declared sub-entries;
// a leaf only on exact match. Membership is checked against the declared
// tree, not the filtered one, so highlighting is stable under permission
// changes.
func IsActive(e Entry, selectedID string) bool {
	if e.ID == selectedID {
		return true
	}
	for _, sub := range e.SubItems {
		if sub.ID == selectedID {
			return true
		}
	}
	return false
}
