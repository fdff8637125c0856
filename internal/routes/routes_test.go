package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/hopechain/hopechain/internal/config"
	"github.com/hopechain/hopechain/internal/identity"
	"github.com/hopechain/hopechain/internal/logging"
	"github.com/hopechain/hopechain/internal/session"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := session.New(identity.NewDemoDirectory(), session.NewMemoryPersister(),
		logging.Discard(), session.WithDelays(0, 0))
	store.Initialize(context.Background())

	app := fiber.New()
	err := Setup(app, Deps{
		Cfg:    config.Config{AppName: "HopeChain"},
		Logger: logging.Discard(),
		Store:  store,
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode body %q: %v", payload, err)
	}
	return decoded
}

func login(t *testing.T, app *fiber.App, email string) {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login",
		`{"email":"`+email+`","password":"demo123"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", email, resp.StatusCode)
	}
	resp.Body.Close()
}

func TestLandingWhenLoggedOut(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["view"] != "landing" {
		t.Fatalf("expected landing view, got %v", body["view"])
	}

	for _, path := range []string{"/dashboard", "/marketplace"} {
		resp := doJSON(t, app, fiber.MethodGet, path, "")
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("%s: expected 302, got %d", path, resp.StatusCode)
		}
		if loc := resp.Header.Get(fiber.HeaderLocation); loc != "/" {
			t.Fatalf("%s: expected redirect to /, got %q", path, loc)
		}
		resp.Body.Close()
	}
}

func TestLoginFailure(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login",
		`{"email":"donor@demo.com","password":"nope"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body)
	}

	// Session must remain empty: gated views still bounce.
	resp = doJSON(t, app, fiber.MethodGet, "/dashboard", "")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 after failed login, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestDonorNavigation(t *testing.T) {
	app := setupTestApp(t)
	login(t, app, "donor@demo.com")

	resp := doJSON(t, app, fiber.MethodGet, "/", "")
	if resp.StatusCode != http.StatusFound || resp.Header.Get(fiber.HeaderLocation) != "/dashboard" {
		t.Fatalf("donor at root must bounce to /dashboard, got %d %q",
			resp.StatusCode, resp.Header.Get(fiber.HeaderLocation))
	}
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, "/dashboard", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected dashboard 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["view"] != "dashboard" {
		t.Fatalf("expected dashboard view, got %v", body["view"])
	}
}

// A donor requesting the marketplace is denied to root, and root forwards to
// the dashboard: two hops, dashboard at the end.
func TestDonorMarketplaceTwoHopRedirect(t *testing.T) {
	app := setupTestApp(t)
	login(t, app, "donor@demo.com")

	first := doJSON(t, app, fiber.MethodGet, "/marketplace", "")
	if first.StatusCode != http.StatusFound || first.Header.Get(fiber.HeaderLocation) != "/" {
		t.Fatalf("first hop must target /, got %d %q",
			first.StatusCode, first.Header.Get(fiber.HeaderLocation))
	}
	first.Body.Close()

	second := doJSON(t, app, fiber.MethodGet, "/", "")
	if second.StatusCode != http.StatusFound || second.Header.Get(fiber.HeaderLocation) != "/dashboard" {
		t.Fatalf("second hop must target /dashboard, got %d %q",
			second.StatusCode, second.Header.Get(fiber.HeaderLocation))
	}
	second.Body.Close()

	final := doJSON(t, app, fiber.MethodGet, "/dashboard", "")
	if final.StatusCode != http.StatusOK {
		t.Fatalf("final view must render, got %d", final.StatusCode)
	}
	final.Body.Close()
}

func TestOrganizationScenario(t *testing.T) {
	app := setupTestApp(t)
	login(t, app, "org@demo.com")

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/auth/me", "")
	body := decodeBody(t, resp)
	id, _ := body["identity"].(map[string]any)
	if id["role"] != "organization" {
		t.Fatalf("expected organization role, got %v", id["role"])
	}
	if id["organization_name"] != "Hope Medical Center" {
		t.Fatalf("expected organization name, got %v", id["organization_name"])
	}

	root := doJSON(t, app, fiber.MethodGet, "/", "")
	if root.StatusCode != http.StatusFound || root.Header.Get(fiber.HeaderLocation) != "/marketplace" {
		t.Fatalf("organization at root must bounce to /marketplace, got %d %q",
			root.StatusCode, root.Header.Get(fiber.HeaderLocation))
	}
	root.Body.Close()

	market := doJSON(t, app, fiber.MethodGet, "/marketplace", "")
	if market.StatusCode != http.StatusOK {
		t.Fatalf("expected marketplace 200, got %d", market.StatusCode)
	}
	view := decodeBody(t, market)
	if view["view"] != "marketplace" {
		t.Fatalf("expected marketplace view, got %v", view["view"])
	}
}

func TestLogoutBouncesGatedViews(t *testing.T) {
	app := setupTestApp(t)
	login(t, app, "donor@demo.com")

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/logout", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: status %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, "/dashboard", "")
	if resp.StatusCode != http.StatusFound || resp.Header.Get(fiber.HeaderLocation) != "/" {
		t.Fatalf("dashboard after logout must bounce to /, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestProtectedAPIRequiresSession(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/grants", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	login(t, app, "individual@demo.com")

	resp = doJSON(t, app, fiber.MethodGet, "/api/v1/grants?category=healthcare", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with session, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	grants, _ := body["grants"].([]any)
	if len(grants) != 2 {
		t.Fatalf("expected 2 healthcare grants, got %d", len(grants))
	}
}

func TestApplyEndpoint(t *testing.T) {
	app := setupTestApp(t)
	login(t, app, "individual@demo.com")

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/grants/2/apply",
		`{"message":"Requesting treatment support.","documents":["medical-reports.pdf"]}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["status"] != "pending" {
		t.Fatalf("expected pending application, got %v", body["status"])
	}
	if body["applicant_name"] != "Afeez Flower" {
		t.Fatalf("expected display name, got %v", body["applicant_name"])
	}
}

func TestConvertAndAirdropEndpoints(t *testing.T) {
	app := setupTestApp(t)
	login(t, app, "org@demo.com")

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/currency/convert",
		`{"amount":100,"from":"USD","to":"NGN"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("convert: expected 201, got %d", resp.StatusCode)
	}
	tx := decodeBody(t, resp)
	if tx["converted"].(float64) != 160000 {
		t.Fatalf("expected 160000 NGN, got %v", tx["converted"])
	}

	resp = doJSON(t, app, fiber.MethodGet, "/api/v1/airdrop", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("airdrop: expected 200, got %d", resp.StatusCode)
	}
	sum := decodeBody(t, resp)
	if sum["balance"].(float64) != 500 {
		t.Fatalf("expected balance 500, got %v", sum["balance"])
	}

	resp = doJSON(t, app, fiber.MethodPost, "/api/v1/airdrop/claim", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("claim: expected 200, got %d", resp.StatusCode)
	}
	claim := decodeBody(t, resp)
	if claim["claimed"].(float64) != 500 {
		t.Fatalf("expected claim of 500, got %v", claim["claimed"])
	}
}

func TestUnknownRouteRedirectsToRoot(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/nowhere", "")
	if resp.StatusCode != http.StatusFound || resp.Header.Get(fiber.HeaderLocation) != "/" {
		t.Fatalf("unknown route must bounce to /, got %d %q",
			resp.StatusCode, resp.Header.Get(fiber.HeaderLocation))
	}
	resp.Body.Close()

	api := doJSON(t, app, fiber.MethodGet, "/api/v1/nowhere", "")
	if api.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown API route must 404, got %d", api.StatusCode)
	}
	api.Body.Close()
}

func TestHealthWithoutBackends(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/healthz", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	status, _ := body["status"].(map[string]any)
	if status["postgres"] != "skipped" || status["redis"] != "skipped" {
		t.Fatalf("expected skipped backends, got %v", status)
	}
}

func TestRegisterEndpoint(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/register",
		`{"role":"organization","organization_name":"Relief Works","email":"new@relief.org","phone":"+15550100"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	id, _ := body["identity"].(map[string]any)
	if id["reward_balance"].(float64) != 100 {
		t.Fatalf("expected organization seed 100, got %v", id["reward_balance"])
	}
	if body["redirect"] != "/marketplace" {
		t.Fatalf("expected marketplace redirect, got %v", body["redirect"])
	}

	bad := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/register", `{"role":"admin"}`)
	if bad.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown role must 400, got %d", bad.StatusCode)
	}
	bad.Body.Close()
}
