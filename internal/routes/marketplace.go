package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hopechain/hopechain/internal/grants"
)

// RegisterMarketplaceRoutes wires grant listing, publication, applications
// and the donor dashboard aggregate.
func RegisterMarketplaceRoutes(r fiber.Router, h *grants.Handler) {
	r.Get("/grants", h.List)
	r.Post("/grants", h.Create)
	r.Post("/grants/:grantId/apply", h.Apply)
	r.Get("/dashboard/stats", h.Dashboard)
}
