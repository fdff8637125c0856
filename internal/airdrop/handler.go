package airdrop

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hopechain/hopechain/internal/middleware"
)

// Handler exposes the rewards panel HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an airdrop HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Summary serves the rewards panel for the signed-in identity.
func (h *Handler) Summary(c *fiber.Ctx) error {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "sign in required")
	}
	return c.Status(http.StatusOK).JSON(h.service.Summarize(id))
}

// Claim reports the claimable balance for the signed-in identity.
func (h *Handler) Claim(c *fiber.Ctx) error {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "sign in required")
	}

	amount, err := h.service.Claim(c.UserContext(), id)
	if errors.Is(err, ErrNothingToClaim) {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"claimed":  amount,
		"currency": "SUI",
	})
}
