package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hopechain/hopechain/internal/airdrop"
)

// RegisterAirdropRoutes wires the rewards panel endpoints.
func RegisterAirdropRoutes(r fiber.Router, h *airdrop.Handler) {
	r.Get("/airdrop", h.Summary)
	r.Post("/airdrop/claim", h.Claim)
}
