package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hopechain/hopechain/internal/currency"
)

// RegisterCurrencyRoutes wires the converter endpoints.
func RegisterCurrencyRoutes(r fiber.Router, h *currency.Handler) {
	r.Get("/currency/rates", h.Rates)
	r.Post("/currency/convert", h.Convert)
	r.Get("/currency/recent", h.Recent)
}
