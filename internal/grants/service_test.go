package grants

import (
	"context"
	"errors"
	"testing"

	"github.com/hopechain/hopechain/internal/identity"
	"github.com/hopechain/hopechain/internal/logging"
	"github.com/hopechain/hopechain/internal/notification"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository(), notification.NewLoggerNotifier(logging.Discard()))
}

func TestSearchTermAndCategory(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	all, err := svc.Search(ctx, SearchQuery{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 active demo grants, got %d", len(all))
	}

	byTerm, err := svc.Search(ctx, SearchQuery{Term: "RESEARCH"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byTerm) != 1 || byTerm[0].ID != "3" {
		t.Fatalf("case-insensitive term search failed: %+v", byTerm)
	}

	byCategory, err := svc.Search(ctx, SearchQuery{Category: CategoryHealthcare})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byCategory) != 2 {
		t.Fatalf("expected 2 healthcare grants, got %d", len(byCategory))
	}

	none, err := svc.Search(ctx, SearchQuery{Term: "no such grant"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result, got %d", len(none))
	}
}

func TestSearchSortOrders(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ids := func(gs []Grant) []string {
		out := make([]string, len(gs))
		for i, g := range gs {
			out[i] = g.ID
		}
		return out
	}
	equal := func(a, b []string) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}

	cases := []struct {
		sort string
		want []string
	}{
		{SortNewest, []string{"3", "4", "2", "1"}},
		{SortAmountHigh, []string{"1", "3", "4", "2"}},
		{SortAmountLow, []string{"2", "4", "3", "1"}},
		{SortDeadline, []string{"2", "1", "4", "3"}},
	}
	for _, tc := range cases {
		got, err := svc.Search(ctx, SearchQuery{Sort: tc.sort})
		if err != nil {
			t.Fatalf("search %s: %v", tc.sort, err)
		}
		if !equal(ids(got), tc.want) {
			t.Fatalf("sort %s: expected %v, got %v", tc.sort, tc.want, ids(got))
		}
	}
}

func TestSummarize(t *testing.T) {
	svc := newTestService()
	all, err := svc.Search(context.Background(), SearchQuery{})
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	sum := Summarize(all)
	if sum.Count != 4 {
		t.Fatalf("count: got %d", sum.Count)
	}
	if sum.TotalAmount != 95000 {
		t.Fatalf("total amount: got %d", sum.TotalAmount)
	}
	if sum.TotalApplications != 36 {
		t.Fatalf("total applications: got %d", sum.TotalApplications)
	}
	if sum.AverageRating != 4.8 {
		t.Fatalf("average rating: got %v", sum.AverageRating)
	}

	if got := Summarize(nil); got.Count != 0 || got.AverageRating != 0 {
		t.Fatalf("empty summary: %+v", got)
	}
}

func TestApply(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	org := identity.NewDemoDirectory().All()[2]
	app, err := svc.Apply(ctx, ApplyInput{
		GrantID:   "3",
		Applicant: org,
		Message:   "Requesting support for our community health study.",
		Documents: []string{"proposal.pdf"},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if app.Status != ApplicationPending {
		t.Fatalf("expected pending application, got %s", app.Status)
	}
	if app.ApplicantName != "Hope Medical Center" {
		t.Fatalf("applicant name must come from display name, got %q", app.ApplicantName)
	}

	g, err := svc.repo.GetGrant(ctx, "3")
	if err != nil {
		t.Fatalf("get grant: %v", err)
	}
	if g.CurrentApplications != 3 {
		t.Fatalf("expected counter bump to 3, got %d", g.CurrentApplications)
	}
}

func TestApplyDenials(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	dir := identity.NewDemoDirectory()

	donor := dir.All()[0]
	if _, err := svc.Apply(ctx, ApplyInput{GrantID: "1", Applicant: donor}); !errors.Is(err, ErrRoleCannotApply) {
		t.Fatalf("expected ErrRoleCannotApply, got %v", err)
	}

	individual := dir.All()[1]
	if _, err := svc.Apply(ctx, ApplyInput{GrantID: "99", Applicant: individual}); !errors.Is(err, ErrGrantNotFound) {
		t.Fatalf("expected ErrGrantNotFound, got %v", err)
	}

	// Fill grant 3 (cap 5, currently 2) and verify the cap is enforced.
	for i := 0; i < 3; i++ {
		if _, err := svc.Apply(ctx, ApplyInput{GrantID: "3", Applicant: individual}); err != nil {
			t.Fatalf("fill apply %d: %v", i, err)
		}
	}
	if _, err := svc.Apply(ctx, ApplyInput{GrantID: "3", Applicant: individual}); !errors.Is(err, ErrApplicationsFull) {
		t.Fatalf("expected ErrApplicationsFull, got %v", err)
	}
}

func TestCreateGrant(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	dir := identity.NewDemoDirectory()

	donor := dir.All()[0]
	grant, err := svc.CreateGrant(ctx, donor, GrantDraft{
		Title:           "Winter Relief Fund",
		Description:     "Emergency support for displaced families.",
		Amount:          20000,
		Currency:        "USD",
		Category:        CategoryEmergency,
		Deadline:        "2024-12-01",
		MaxApplications: 20,
	})
	if err != nil {
		t.Fatalf("create grant: %v", err)
	}
	if grant.Status != StatusActive {
		t.Fatalf("new grant must be active, got %s", grant.Status)
	}
	if grant.DonorName != donor.DisplayName() {
		t.Fatalf("donor name mismatch: %q", grant.DonorName)
	}

	if _, err := svc.CreateGrant(ctx, dir.All()[1], GrantDraft{Deadline: "2024-12-01"}); !errors.Is(err, ErrRoleCannotPublish) {
		t.Fatalf("expected ErrRoleCannotPublish, got %v", err)
	}
}

func TestDonorDashboard(t *testing.T) {
	svc := newTestService()

	dash, err := svc.DonorDashboard(context.Background(), "1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.Stats.TotalDonated != 145000 || dash.Stats.Rating != 4.8 {
		t.Fatalf("unexpected stats: %+v", dash.Stats)
	}
	if len(dash.Grants) != 4 {
		t.Fatalf("expected 4 donor grants, got %d", len(dash.Grants))
	}
	if len(dash.Applications) != 2 {
		t.Fatalf("expected 2 incoming applications, got %d", len(dash.Applications))
	}
}
