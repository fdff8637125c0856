package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hopechain/hopechain/internal/identity"
	"github.com/hopechain/hopechain/internal/session"
)

// IdentityLocal is the fiber Locals key holding the authenticated identity.
const IdentityLocal = "identity"

// RequireSession rejects API calls made with no active session. The session
// store is re-read on every request, so a logout takes effect immediately.
func RequireSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := store.Current()
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, "sign in required")
		}
		c.Locals(IdentityLocal, id)
		return c.Next()
	}
}

// CurrentIdentity pulls the identity stored by RequireSession.
func CurrentIdentity(c *fiber.Ctx) (identity.Identity, bool) {
	id, ok := c.Locals(IdentityLocal).(identity.Identity)
	return id, ok
}
