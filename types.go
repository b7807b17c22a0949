package oneclient

import "time"

// Status is the authorization state of the client session. Every
// protected-view decision derives from it; no component may render an
// authorization decision while the status is [StatusLoading].
type Status uint8

const (
	// StatusLoading means a persisted token exists but the profile
	// exchange has not settled yet. Guards must render a neutral
	// waiting state, never the protected view and never a redirect.
	StatusLoading Status = iota
	// StatusAuthenticated means both token and profile are present.
	StatusAuthenticated
	// StatusAnonymous means neither token nor profile is present.
	StatusAnonymous
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Role is the coarse permission tier assigned to a workspace user. Roles
// govern which navigation entries and guarded routes are visible;
// fine-grained authorization stays server-side.
type Role string

const (
	// RoleSuperAdmin is the platform operator role with cross-company reach.
	RoleSuperAdmin Role = "super_admin"
	// RoleMainHandler is the platform support role, second to super_admin.
	RoleMainHandler Role = "main_handler"
	// RoleAdmin administers a single company workspace.
	RoleAdmin Role = "admin"
	// RoleCEO is a company executive with management visibility.
	RoleCEO Role = "ceo"
	// RoleHR manages employees and leave approvals.
	RoleHR Role = "hr"
	// RoleManager manages projects and reads user lists.
	RoleManager Role = "manager"
	// RoleServer is a service-desk account with limited management reads.
	RoleServer Role = "server"
	// RoleEmployee is the default member role.
	RoleEmployee Role = "employee"
)

var knownRoles = []Role{
	RoleSuperAdmin,
	RoleMainHandler,
	RoleAdmin,
	RoleCEO,
	RoleHR,
	RoleManager,
	RoleServer,
	RoleEmployee,
}

// Known reports whether the role is one of the platform's defined tiers.
// Unknown roles are carried verbatim (the server may add tiers); they
// simply match no allow-list that does not name them.
func (r Role) Known() bool {
	for _, known := range knownRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Roles returns the platform's defined role tiers in privilege order.
func Roles() []Role {
	out := make([]Role, len(knownRoles))
	copy(out, knownRoles)
	return out
}

// Profile is the resolved identity of the authenticated user. It is owned
// exclusively by [Session]: replaced wholesale on refresh, never mutated
// field by field.
type Profile struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	Role                   Role      `json:"role"`
	Department             string    `json:"department,omitempty"`
	Company                string    `json:"company,omitempty"`
	Subscription           string    `json:"subscription,omitempty"`
	BiometricEnabled       bool      `json:"biometric_enabled,omitempty"`
	BiometricSetupRequired bool      `json:"biometric_setup_required,omitempty"`
	CreatedAt              time.Time `json:"created_at,omitzero"`
}

// Clone returns a deep copy. Nil in, nil out.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// Snapshot is an immutable point-in-time view of the session. The profile
// is a copy; mutating it has no effect on the session.
type Snapshot struct {
	Status     Status
	Token      string
	Profile    *Profile
	Generation uint64
}

// Authenticated reports whether the snapshot carries a settled,
// authenticated session.
func (s Snapshot) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.Token != "" && s.Profile != nil
}

// Role returns the profile role, or false when the session has not
// resolved an identity.
func (s Snapshot) Role() (Role, bool) {
	if s.Profile == nil {
		return "", false
	}
	return s.Profile.Role, true
}

// NavigationEntry is one static navigation item: a path, its display
// metadata, and the roles allowed to see it. Entries are configuration
// data; they are filtered per render, never persisted.
type NavigationEntry struct {
	Path         string
	Label        string
	Icon         string
	AllowedRoles []Role
}

// Allows reports whether the given role may see this entry. An empty
// allow-list admits every authenticated role.
func (e NavigationEntry) Allows(role Role) bool {
	if len(e.AllowedRoles) == 0 {
		return true
	}
	for _, allowed := range e.AllowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Route is a guarded destination: the path being navigated to and,
// optionally, the roles allowed to render it. An empty allow-list means
// any authenticated session may enter.
type Route struct {
	Path         string
	AllowedRoles []Role
}

// RegisterAccount is the input for [Session.Register]. Company is the new
// workspace name; Domain is the optional domain attached during the
// sign-up wizard.
type RegisterAccount struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
	Domain   string `json:"domain,omitempty"`
}
