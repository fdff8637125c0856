package currency

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hopechain/hopechain/internal/middleware"
)

// Handler exposes converter HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a currency HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Rates serves the supported currencies and the static rate table.
func (h *Handler) Rates(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"currencies":   Currencies(),
		"rates":        Rates(),
		"last_updated": time.Now().UTC().Format(time.RFC3339),
	})
}

type convertRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

// Convert executes a demo conversion for the signed-in identity.
func (h *Handler) Convert(c *fiber.Ctx) error {
	user, ok := middleware.CurrentIdentity(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "sign in required")
	}

	var req convertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	tx, err := h.service.Convert(c.UserContext(), user.ID, req.Amount, req.From, req.To)
	switch {
	case errors.Is(err, ErrSameCurrency), errors.Is(err, ErrUnknownPair), errors.Is(err, ErrInvalidAmount):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(tx)
}

// Recent serves the signed-in identity's latest conversions.
func (h *Handler) Recent(c *fiber.Ctx) error {
	user, ok := middleware.CurrentIdentity(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "sign in required")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"transactions": h.service.Recent(user.ID),
	})
}
