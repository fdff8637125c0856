package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hopechain/hopechain/internal/identity"
	"github.com/hopechain/hopechain/internal/routegate"
	"github.com/hopechain/hopechain/internal/session"
)

// RegisterAuthRoutes wires the session store mutators.
func RegisterAuthRoutes(r fiber.Router, store *session.Store, rateLimiter fiber.Handler) {
	group := r.Group("/auth")

	login := func(c *fiber.Ctx) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		if !store.Login(c.UserContext(), req.Email, req.Password) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "invalid credentials",
			})
		}

		id, _ := store.Current()
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"success":  true,
			"identity": id,
			"redirect": routegate.HomeRoute(id.Role),
		})
	}
	if rateLimiter != nil {
		group.Post("/login", rateLimiter, login)
	} else {
		group.Post("/login", login)
	}

	group.Post("/register", func(c *fiber.Ctx) error {
		var draft identity.RegistrationDraft
		if err := c.BodyParser(&draft); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		if !draft.Role.Valid() {
			return fiber.NewError(http.StatusBadRequest, "unknown role")
		}

		if !store.Register(c.UserContext(), draft) {
			return fiber.NewError(http.StatusInternalServerError, "registration could not be persisted")
		}

		id, _ := store.Current()
		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"success":  true,
			"identity": id,
			"redirect": routegate.HomeRoute(id.Role),
		})
	})

	group.Post("/logout", func(c *fiber.Ctx) error {
		store.Logout(c.UserContext())
		return c.Status(http.StatusOK).JSON(fiber.Map{"status": "logged_out"})
	})

	group.Get("/me", func(c *fiber.Ctx) error {
		id, ok := store.Current()
		if !ok {
			return c.Status(http.StatusOK).JSON(fiber.Map{
				"authenticated": false,
				"loading":       store.Loading(),
			})
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"authenticated": true,
			"loading":       store.Loading(),
			"identity":      id,
			"display_name":  id.DisplayName(),
		})
	})
}
