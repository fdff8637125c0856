package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/hopechain/hopechain/internal/airdrop"
	"github.com/hopechain/hopechain/internal/config"
	"github.com/hopechain/hopechain/internal/currency"
	"github.com/hopechain/hopechain/internal/grants"
	"github.com/hopechain/hopechain/internal/identity"
	"github.com/hopechain/hopechain/internal/middleware"
	"github.com/hopechain/hopechain/internal/notification"
	"github.com/hopechain/hopechain/internal/session"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger

	// Store overrides the session store Setup would otherwise build.
	// Tests use it to inject zero-delay stores.
	Store *session.Store
}

// Setup configures middlewares and all application routes. Without a
// database or Redis the demo runs on in-memory backends, mirroring how the
// original app ran entirely client-side.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	RegisterHealthRoutes(app, d)

	// Session store: Redis-backed slot when available, in-memory otherwise.
	store := d.Store
	if store == nil {
		var persister session.Persister
		if d.Cache != nil {
			persister = session.NewRedisPersister(d.Cache)
		} else {
			persister = session.NewMemoryPersister()
		}
		store = session.New(identity.NewDemoDirectory(), persister, d.Logger,
			session.WithDelays(d.Cfg.LoginDelay, d.Cfg.RegisterDelay))
		store.Initialize(context.Background())
	}

	// Services and handlers
	var grantsRepo grants.Repository
	if d.DB != nil {
		grantsRepo = grants.NewPostgresRepository(d.DB)
	} else {
		grantsRepo = grants.NewMemoryRepository()
	}
	notifier := notification.NewLoggerNotifier(d.Logger)
	grantsSvc := grants.NewService(grantsRepo, notifier)
	grantsHandler := grants.NewHandler(grantsSvc)
	currencyHandler := currency.NewHandler(currency.NewService())
	airdropHandler := airdrop.NewHandler(airdrop.NewService(notifier))

	// Role-gated views
	RegisterViewRoutes(app, store, grantsSvc)

	// API routes
	api := app.Group("/api/v1", middleware.Audit(d.Logger))
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	rateLimiter := middleware.LoginRateLimit(d.Cache, 5)
	RegisterAuthRoutes(api, store, rateLimiter)

	// Session-gated APIs
	protected := api.Group("", middleware.RequireSession(store))
	if d.Cache != nil {
		protected.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}
	RegisterMarketplaceRoutes(protected, grantsHandler)
	RegisterCurrencyRoutes(protected, currencyHandler)
	RegisterAirdropRoutes(protected, airdropHandler)

	// Unknown routes fall back to root; API misses stay JSON 404s.
	app.Use(func(c *fiber.Ctx) error {
		if len(c.Path()) >= 5 && c.Path()[:5] == "/api/" {
			return fiber.NewError(http.StatusNotFound, "not found")
		}
		return c.Redirect("/", http.StatusFound)
	})

	return nil
}
