package dashboard

import (
	"shippy/internal/logging"
	"shippy/internal/store"
)

// Tab identifies one of the dashboard's views.
type Tab int

const (
	TabOverview Tab = iota
	TabProducts
	TabSalary
	TabTeam
)

// String returns the tab's key name.
func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "overview"
	case TabProducts:
		return "products"
	case TabSalary:
		return "salary"
	case TabTeam:
		return "team"
	default:
		return "unknown"
	}
}

// Title returns the header title for the tab.
func (t Tab) Title() string {
	switch t {
	case TabOverview:
		return "Dashboard Overview"
	case TabProducts:
		return "Products"
	case TabSalary:
		return "Salary"
	case TabTeam:
		return "Team"
	default:
		return "Shippy"
	}
}

// Subtitle returns the header description for the tab.
func (t Tab) Subtitle() string {
	switch t {
	case TabOverview:
		return "Welcome to your Shippy admin dashboard"
	case TabProducts:
		return "Manage your product inventory"
	case TabSalary:
		return "Track and manage salary information"
	case TabTeam:
		return "Manage team members and roles"
	default:
		return ""
	}
}

// Tabs lists every tab in display order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabProducts, TabSalary, TabTeam}
}

// Router holds the active tab selection and the session-scoped
// authentication flag. Authentication is deliberately not persisted:
// every process start lands on the login page, and any stale
// shippy_auth key left by older builds is cleared on construction.
type Router struct {
	st            *store.Store
	active        Tab
	authenticated bool
	log           *logging.Logger
}

// NewRouter creates a router in the logged-out state and removes any
// persisted authentication flag.
func NewRouter(st *store.Store) *Router {
	r := &Router{
		st:     st,
		active: TabOverview,
		log:    logging.Get(logging.CategoryUI),
	}
	if err := st.Delete(store.KeyAuth); err != nil {
		r.log.Warn("could not clear stale auth flag: %v", err)
	}
	return r
}

// Active returns the current tab.
func (r *Router) Active() Tab {
	return r.active
}

// Navigate switches the active tab. There is no guard logic beyond
// the top-level authenticated switch.
func (r *Router) Navigate(t Tab) {
	r.active = t
	r.log.Debug("navigated to %s", t)
}

// Authenticated reports whether the session is logged in.
func (r *Router) Authenticated() bool {
	return r.authenticated
}

// Login marks the session as authenticated. The flag lives in memory
// only, so a restart always requires a fresh login.
func (r *Router) Login() {
	r.authenticated = true
	r.active = TabOverview
	r.log.Info("session authenticated")
}

// Logout clears the session flag and deletes any persisted auth key.
func (r *Router) Logout() {
	r.authenticated = false
	if err := r.st.Delete(store.KeyAuth); err != nil {
		r.log.Warn("could not delete auth flag: %v", err)
	}
	r.log.Info("session ended")
}
