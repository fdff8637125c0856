// Package routegate translates {session state, requested route} into the
// view to render or the route to redirect to. It is a continuously
// re-evaluated guard: every navigation decision re-reads the session, so a
// logout observed on the next evaluation immediately falls back to root.
package routegate

import "github.com/hopechain/hopechain/internal/identity"

// Route names the navigable paths.
type Route string

const (
	RouteRoot        Route = "/"
	RouteDashboard   Route = "/dashboard"
	RouteMarketplace Route = "/marketplace"
)

// View names the renderable surfaces.
type View string

const (
	ViewLanding     View = "landing"
	ViewDashboard   View = "dashboard"
	ViewMarketplace View = "marketplace"
)

// Decision is the outcome of a single navigation evaluation: either a view
// to render or a route to redirect to, never both.
type Decision struct {
	Render   View
	Redirect Route
}

// Redirected reports whether the decision is a redirect.
func (d Decision) Redirected() bool {
	return d.Redirect != ""
}

// HomeRoute maps a role to its landing target after authentication.
func HomeRoute(role identity.Role) Route {
	if role == identity.RoleDonor {
		return RouteDashboard
	}
	return RouteMarketplace
}

// Resolve evaluates one navigation request. Guards deny by falling back to
// root; they never auto-correct to the "right" route. Root then performs the
// role-appropriate redirect, which preserves the two-hop behavior for e.g. a
// donor requesting the marketplace.
func Resolve(occupied bool, role identity.Role, route Route) Decision {
	switch route {
	case RouteRoot:
		if occupied {
			return Decision{Redirect: HomeRoute(role)}
		}
		return Decision{Render: ViewLanding}
	case RouteDashboard:
		if occupied && role == identity.RoleDonor {
			return Decision{Render: ViewDashboard}
		}
		return Decision{Redirect: RouteRoot}
	case RouteMarketplace:
		if occupied && role.CanApply() {
			return Decision{Render: ViewMarketplace}
		}
		return Decision{Redirect: RouteRoot}
	default:
		return Decision{Redirect: RouteRoot}
	}
}

// maxHops bounds redirect chains. Two hops suffice for every reachable
// state; the bound only fences future guard edits against cycles.
const maxHops = 4

// Follow resolves a request to its terminal view, collecting the redirect
// chain along the way. The HTTP layer issues one redirect per hop; Follow
// exists so the end-to-end navigation outcome is testable without a client.
func Follow(occupied bool, role identity.Role, route Route) (View, []Route) {
	var hops []Route
	for i := 0; i < maxHops; i++ {
		d := Resolve(occupied, role, route)
		if !d.Redirected() {
			return d.Render, hops
		}
		hops = append(hops, d.Redirect)
		route = d.Redirect
	}
	return ViewLanding, hops
}
