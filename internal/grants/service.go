package grants

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hopechain/hopechain/internal/identity"
	"github.com/hopechain/hopechain/internal/notification"
)

var (
	// ErrRoleCannotApply occurs when a donor attempts to apply for a grant.
	ErrRoleCannotApply = errors.New("role cannot apply for grants")
	// ErrGrantNotActive occurs when applying to a closed or completed grant.
	ErrGrantNotActive = errors.New("grant is not active")
	// ErrRoleCannotPublish occurs when a non-donor attempts to create a grant.
	ErrRoleCannotPublish = errors.New("only donors can publish grants")
)

// Service exposes marketplace and dashboard operations.
type Service struct {
	repo     Repository
	notifier notification.Notifier
	now      func() time.Time
}

// NewService builds a grants service.
func NewService(repo Repository, notifier notification.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier, now: time.Now}
}

// Search lists active grants matching the query term and category, in the
// requested order. The term matches title or description, case-insensitively.
func (s *Service) Search(ctx context.Context, q SearchQuery) ([]Grant, error) {
	all, err := s.repo.ListGrants(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(q.Term)
	var matched []Grant
	for _, g := range all {
		if g.Status != StatusActive {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(g.Title), term) &&
			!strings.Contains(strings.ToLower(g.Description), term) {
			continue
		}
		if q.Category != "" && g.Category != q.Category {
			continue
		}
		matched = append(matched, g)
	}

	sortGrants(matched, q.Sort)
	return matched, nil
}

func sortGrants(grants []Grant, by string) {
	sort.SliceStable(grants, func(i, j int) bool {
		a, b := grants[i], grants[j]
		switch by {
		case SortAmountHigh:
			return a.Amount > b.Amount
		case SortAmountLow:
			return a.Amount < b.Amount
		case SortDeadline:
			return a.Deadline.Before(b.Deadline)
		case SortRating:
			return a.DonorRating > b.DonorRating
		default: // newest
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

// Summarize aggregates a listing: count, total amount, total applications,
// mean donor rating rounded to one decimal.
func Summarize(grants []Grant) Summary {
	sum := Summary{Count: len(grants)}
	if len(grants) == 0 {
		return sum
	}
	var rating float64
	for _, g := range grants {
		sum.TotalAmount += g.Amount
		sum.TotalApplications += g.CurrentApplications
		rating += g.DonorRating
	}
	sum.AverageRating = math.Round(rating/float64(len(grants))*10) / 10
	return sum
}

// ApplyInput captures a grant application submission.
type ApplyInput struct {
	GrantID   string
	Applicant identity.Identity
	Message   string
	Documents []string
}

// Apply submits an application on behalf of an individual or organization.
// The grant must be active and under its application cap.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (Application, error) {
	if !input.Applicant.Role.CanApply() {
		return Application{}, ErrRoleCannotApply
	}

	grant, err := s.repo.GetGrant(ctx, input.GrantID)
	if err != nil {
		return Application{}, err
	}
	if grant.Status != StatusActive {
		return Application{}, ErrGrantNotActive
	}

	app := Application{
		ID:            uuid.NewString(),
		GrantID:       grant.ID,
		ApplicantID:   input.Applicant.ID,
		ApplicantName: input.Applicant.DisplayName(),
		ApplicantType: string(input.Applicant.Role),
		Status:        ApplicationPending,
		SubmittedAt:   s.now().UTC(),
		Documents:     input.Documents,
		Message:       input.Message,
	}

	if err := s.repo.CreateApplication(ctx, app); err != nil {
		return Application{}, err
	}

	_ = s.notifier.Send(ctx, notification.Message{
		Kind:        notification.KindApplicationSubmitted,
		Destination: grant.DonorID,
		Body:        fmt.Sprintf("%s applied for %q", app.ApplicantName, grant.Title),
	})

	return app, nil
}

// GrantDraft captures the fields of a grant creation form.
type GrantDraft struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Amount          int64    `json:"amount"`
	Currency        string   `json:"currency"`
	Category        Category `json:"category"`
	Eligibility     []string `json:"eligibility"`
	Requirements    []string `json:"requirements"`
	Deadline        string   `json:"deadline"`
	MaxApplications int      `json:"max_applications"`
}

// CreateGrant publishes a new active grant on behalf of a donor.
func (s *Service) CreateGrant(ctx context.Context, donor identity.Identity, draft GrantDraft) (Grant, error) {
	if donor.Role != identity.RoleDonor {
		return Grant{}, ErrRoleCannotPublish
	}

	deadline, err := time.Parse("2006-01-02", draft.Deadline)
	if err != nil {
		return Grant{}, fmt.Errorf("parse deadline: %w", err)
	}

	grant := Grant{
		ID:               uuid.NewString(),
		DonorID:          donor.ID,
		DonorName:        donor.DisplayName(),
		DonorRating:      donor.Rating,
		Title:            draft.Title,
		Description:      draft.Description,
		Amount:           draft.Amount,
		Currency:         draft.Currency,
		Category:         draft.Category,
		Eligibility:      draft.Eligibility,
		Requirements:     draft.Requirements,
		Deadline:         deadline,
		MaxApplications:  draft.MaxApplications,
		Status:           StatusActive,
		CreatedAt:        s.now().UTC(),
		SuccessfulGrants: 0,
	}

	if err := s.repo.CreateGrant(ctx, grant); err != nil {
		return Grant{}, err
	}
	return grant, nil
}

// Dashboard bundles everything the donor dashboard renders.
type Dashboard struct {
	Stats        DonorStats    `json:"stats"`
	Grants       []Grant       `json:"grants"`
	Applications []Application `json:"applications"`
}

// DonorDashboard assembles the dashboard for a donor: the fixed demo
// aggregate plus the donor's grants and the applications submitted to them.
func (s *Service) DonorDashboard(ctx context.Context, donorID string) (Dashboard, error) {
	all, err := s.repo.ListGrants(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	owned := make(map[string]bool)
	var grants []Grant
	for _, g := range all {
		if g.DonorID == donorID {
			grants = append(grants, g)
			owned[g.ID] = true
		}
	}

	apps, err := s.repo.ListApplications(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	var incoming []Application
	for _, a := range apps {
		if owned[a.GrantID] {
			incoming = append(incoming, a)
		}
	}

	return Dashboard{Stats: demoDonorStats, Grants: grants, Applications: incoming}, nil
}
