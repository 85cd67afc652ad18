package service

import "github.com/talentbridge/recruitment-client/internal/core/domain"

// Decision is the outcome of a route guard check. When Allow is false,
// Redirect names the view to go to instead.
type Decision struct {
	Allow    bool
	Redirect string
}

// Guard decides whether the session may open a view restricted to allowed.
// Anonymous sessions go to login; authenticated sessions with the wrong role
// go home. An empty allowed set admits any authenticated identity.
func Guard(s domain.Session, allowed ...domain.Role) Decision {
	if !s.IsAuthenticated || s.Identity == nil {
		return Decision{Redirect: RouteLogin}
	}
	if !s.Identity.HasRole(allowed...) {
		return Decision{Redirect: RouteHome}
	}
	return Decision{Allow: true}
}

// GuardPath applies Guard with the roles the route table assigns to path.
// Public paths are always allowed.
func GuardPath(s domain.Session, path string) Decision {
	roles, protected := AllowedRoles(path)
	if !protected {
		return Decision{Allow: true}
	}
	return Guard(s, roles...)
}
