package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hopechain/hopechain/internal/grants"
	"github.com/hopechain/hopechain/internal/routegate"
	"github.com/hopechain/hopechain/internal/session"
)

// RegisterViewRoutes wires the role-gated navigation surface. Every request
// re-reads the session store and re-evaluates the guard, so a logout is
// observed on the very next navigation. Denials redirect one hop at a time:
// a donor requesting the marketplace bounces to root, and root forwards to
// the dashboard.
func RegisterViewRoutes(app *fiber.App, store *session.Store, grantsSvc *grants.Service) {
	resolve := func(c *fiber.Ctx, route routegate.Route) (routegate.Decision, bool) {
		id, occupied := store.Current()
		d := routegate.Resolve(occupied, id.Role, route)
		if d.Redirected() {
			return d, true
		}
		return d, false
	}

	app.Get("/", func(c *fiber.Ctx) error {
		if d, redirected := resolve(c, routegate.RouteRoot); redirected {
			return c.Redirect(string(d.Redirect), http.StatusFound)
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"view":     routegate.ViewLanding,
			"headline": "Transparent giving on HopeChain",
			"body":     "Connect donors with individuals and organizations in need.",
		})
	})

	app.Get("/dashboard", func(c *fiber.Ctx) error {
		if d, redirected := resolve(c, routegate.RouteDashboard); redirected {
			return c.Redirect(string(d.Redirect), http.StatusFound)
		}
		id, _ := store.Current()
		dash, err := grantsSvc.DonorDashboard(c.UserContext(), id.ID)
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"view":      routegate.ViewDashboard,
			"dashboard": dash,
		})
	})

	app.Get("/marketplace", func(c *fiber.Ctx) error {
		if d, redirected := resolve(c, routegate.RouteMarketplace); redirected {
			return c.Redirect(string(d.Redirect), http.StatusFound)
		}
		listing, err := grantsSvc.Search(c.UserContext(), grants.SearchQuery{})
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"view":    routegate.ViewMarketplace,
			"grants":  listing,
			"summary": grants.Summarize(listing),
		})
	})
}
