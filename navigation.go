package oneclient

// managementRoles are the roles that run the business side of a
// workspace: pipeline, reporting, and cross-team visibility.
var managementRoles = []Role{
	RoleSuperAdmin, RoleMainHandler, RoleAdmin, RoleCEO, RoleManager,
}

// DefaultNavigation returns the platform's built-in navigation set, in
// render order. An empty allow-list admits every authenticated role.
func DefaultNavigation() []NavigationEntry {
	return []NavigationEntry{
		{Path: "/dashboard", Label: "Dashboard", Icon: "home"},
		{Path: "/crm", Label: "CRM", Icon: "target", AllowedRoles: roleList(managementRoles)},
		{Path: "/projects", Label: "Projects", Icon: "kanban"},
		{Path: "/hr", Label: "HR", Icon: "users"},
		{Path: "/finance", Label: "Finance", Icon: "wallet"},
		{Path: "/subscription", Label: "Subscription", Icon: "credit-card"},
		{Path: "/validation", Label: "Validation", Icon: "lightbulb"},
		{Path: "/users", Label: "Users", Icon: "user-cog", AllowedRoles: []Role{
			RoleSuperAdmin, RoleMainHandler, RoleAdmin, RoleCEO, RoleHR, RoleManager, RoleServer,
		}},
		{Path: "/audit-logs", Label: "Audit Logs", Icon: "scroll", AllowedRoles: []Role{
			RoleSuperAdmin, RoleMainHandler, RoleAdmin, RoleCEO, RoleHR,
		}},
		{Path: "/analytics", Label: "Analytics", Icon: "bar-chart", AllowedRoles: roleList(managementRoles)},
	}
}

func roleList(roles []Role) []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// VisibleNavigation filters entries down to those the given role may
// see, preserving the original order. It is pure: the same inputs always
// produce the same output, and the input slice is never mutated.
func VisibleNavigation(entries []NavigationEntry, role Role) []NavigationEntry {
	visible := make([]NavigationEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Allows(role) {
			visible = append(visible, entry)
		}
	}
	return visible
}

// Navigation returns the navigation entries visible to the current
// session's role, or nil when no profile is resolved.
func (s *Session) Navigation() []NavigationEntry {
	s.mu.Lock()
	var role Role
	ok := s.profile != nil
	if ok {
		role = s.profile.Role
	}
	s.mu.Unlock()

	if !ok {
		return nil
	}
	return VisibleNavigation(s.nav, role)
}
