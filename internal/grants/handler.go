package grants

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hopechain/hopechain/internal/identity"
	"github.com/hopechain/hopechain/internal/middleware"
)

// Handler exposes marketplace and dashboard HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a grants HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List serves the marketplace listing with search, filter and sort.
func (h *Handler) List(c *fiber.Ctx) error {
	q := SearchQuery{
		Term:     c.Query("q"),
		Category: Category(c.Query("category")),
		Sort:     c.Query("sort", SortNewest),
	}

	grants, err := h.service.Search(c.UserContext(), q)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"grants":  grants,
		"summary": Summarize(grants),
	})
}

type applyRequest struct {
	Message   string   `json:"message"`
	Documents []string `json:"documents"`
}

// Apply submits a grant application for the signed-in identity.
func (h *Handler) Apply(c *fiber.Ctx) error {
	applicant, ok := middleware.CurrentIdentity(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "sign in required")
	}

	var req applyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.Apply(c.UserContext(), ApplyInput{
		GrantID:   c.Params("grantId"),
		Applicant: applicant,
		Message:   req.Message,
		Documents: req.Documents,
	})
	switch {
	case errors.Is(err, ErrGrantNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrRoleCannotApply):
		return fiber.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrGrantNotActive), errors.Is(err, ErrApplicationsFull):
		return fiber.NewError(http.StatusConflict, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(app)
}

// Create publishes a new grant for a donor.
func (h *Handler) Create(c *fiber.Ctx) error {
	donor, ok := middleware.CurrentIdentity(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "sign in required")
	}

	var draft GrantDraft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	grant, err := h.service.CreateGrant(c.UserContext(), donor, draft)
	switch {
	case errors.Is(err, ErrRoleCannotPublish):
		return fiber.NewError(http.StatusForbidden, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(grant)
}

// Dashboard serves the donor dashboard aggregate.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	donor, ok := middleware.CurrentIdentity(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "sign in required")
	}
	if donor.Role != identity.RoleDonor {
		return fiber.NewError(http.StatusForbidden, "dashboard is donor only")
	}

	dash, err := h.service.DonorDashboard(c.UserContext(), donor.ID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(dash)
}
