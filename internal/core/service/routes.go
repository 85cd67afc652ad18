package service

import (
	"strings"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

const (
	RouteHome     = "/"
	RouteLogin    = "/login"
	RouteRegister = "/register"

	RouteStudentDashboard       = "/student/dashboard"
	RouteStudentProfile         = "/student/profile"
	RouteStudentJobs            = "/student/jobs"
	RouteStudentApplications    = "/student/applications"
	RouteStudentRecommendations = "/student/recommendations"

	RouteRecruiterDashboard    = "/recruiter/dashboard"
	RouteRecruiterJobs         = "/recruiter/jobs"
	RouteRecruiterJobCreate    = "/recruiter/jobs/create"
	RouteRecruiterApplications = "/recruiter/applications"
)

var loginRedirects = map[domain.Role]string{
	domain.RoleStudent:   RouteStudentDashboard,
	domain.RoleRecruiter: RouteRecruiterDashboard,
}

// Students finish their profile right after signing up.
var registerRedirects = map[domain.Role]string{
	domain.RoleStudent:   RouteStudentProfile,
	domain.RoleRecruiter: RouteRecruiterDashboard,
}

// LoginRedirect is where a successful login lands for role.
func LoginRedirect(role domain.Role) string {
	return lookupRedirect(loginRedirects, role)
}

// RegisterRedirect is where a successful signup lands for role.
func RegisterRedirect(role domain.Role) string {
	return lookupRedirect(registerRedirects, role)
}

func lookupRedirect(table map[domain.Role]string, role domain.Role) string {
	if path, ok := table[role]; ok {
		return path
	}
	return RouteHome
}

// routeRule restricts every path under prefix to roles.
type routeRule struct {
	prefix string
	roles  []domain.Role
}

var routeRules = []routeRule{
	{prefix: "/student", roles: []domain.Role{domain.RoleStudent}},
	{prefix: "/recruiter", roles: []domain.Role{domain.RoleRecruiter}},
}

// AllowedRoles returns the roles admitted to path and whether the path is
// protected at all.
func AllowedRoles(path string) ([]domain.Role, bool) {
	for _, rule := range routeRules {
		if path == rule.prefix || strings.HasPrefix(path, rule.prefix+"/") {
			return rule.roles, true
		}
	}
	return nil, false
}

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var navigation = map[domain.Role][]NavItem{
	domain.RoleStudent: {
		{Label: "Dashboard", Path: RouteStudentDashboard},
		{Label: "Profile", Path: RouteStudentProfile},
		{Label: "Browse Jobs", Path: RouteStudentJobs},
		{Label: "My Applications", Path: RouteStudentApplications},
		{Label: "AI Recommendations", Path: RouteStudentRecommendations},
	},
	domain.RoleRecruiter: {
		{Label: "Dashboard", Path: RouteRecruiterDashboard},
		{Label: "Post Job", Path: RouteRecruiterJobCreate},
		{Label: "Applications", Path: RouteRecruiterApplications},
	},
}

// NavigationItems lists the views reachable by the session's identity.
// Anonymous sessions get none.
func NavigationItems(s domain.Session) []NavItem {
	if !s.IsAuthenticated || s.Identity == nil {
		return []NavItem{}
	}
	items := navigation[s.Identity.Role]
	out := make([]NavItem, len(items))
	copy(out, items)
	return out
}
