package folio

import (
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/hsayar/folio/content"
	"github.com/hsayar/folio/i18n"
	"github.com/hsayar/folio/views"
)

func assertContains(t *testing.T, body string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

func assertNotContains(t *testing.T, body string, unwanted ...string) {
	t.Helper()
	for _, u := range unwanted {
		if strings.Contains(body, u) {
			t.Errorf("expected body not to contain %q", u)
		}
	}
}

func withCSRF(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: "_csrf", Value: token})
		r.Header.Set("X-CSRF-Token", token)
	}
}

func withHeader(key, value string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

func withCookies(cookies []*http.Cookie) func(*http.Request) {
	return func(r *http.Request) {
		for _, c := range cookies {
			r.AddCookie(c)
		}
	}
}

func TestHomeRendersAllProjects(t *testing.T) {
	a := newTestApp(t)
	rec := doRequest(a, http.MethodGet, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.String()
	assertContains(t, body,
		`data-theme="dark"`,
		`data-title="A"`,
		`data-title="B"`,
		`<a href="/#projects" class="chip chip-active" data-partial="/" aria-current="true">All</a>`,
		`name="csrf-token"`,
		`7+ years of software/AI experience`,
		`href="https://github.com/test"`,
		`data-kind="repo"`,
		`<link rel="canonical" href="https://folio.example/">`,
		`content="https://folio.example/og.png"`,
	)
	assertNotContains(t, body, "Download CV", `data-kind="demo"`)
	if got := rec.Header().Get("Cache-Control"); got != "private, no-cache" {
		t.Errorf("Cache-Control = %q", got)
	}
}

func TestHomeFiltersByQuery(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		target  string
		want    []string
		notWant []string
	}{
		{"/?tag=Z", []string{`data-title="B"`}, []string{`data-title="A"`}},
		{"/?tag=X", []string{`data-title="A"`}, []string{`data-title="B"`}},
		{"/?tag=Y", []string{`data-title="A"`, `data-title="B"`}, nil},
		{"/?tag=Q", []string{"No projects carry this tag yet."}, []string{"project-card"}},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := doRequest(a, http.MethodGet, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			assertContains(t, rec.Body.String(), tt.want...)
			assertNotContains(t, rec.Body.String(), tt.notWant...)
		})
	}
}

func TestTagPage(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(a, http.MethodGet, "/tag/z/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	assertContains(t, body,
		`data-title="B"`,
		`class="chip chip-active" data-partial="/tag/z/" aria-current="true">Z</a>`,
		`<link rel="canonical" href="https://folio.example/tag/z/">`,
		`<title>Z · Test Person | Engineer</title>`,
	)
	assertNotContains(t, body, `data-title="A"`)
}

func collidingPortfolio() *content.Portfolio {
	p := scenarioPortfolio()
	p.Projects = []content.Project{
		{Title: "Engine", Tags: []string{"C++"}},
		{Title: "Service", Tags: []string{"C#"}},
	}
	return p
}

func TestTagPageCollidingSlugs(t *testing.T) {
	a := newTestApp(t, WithPortfolio(collidingPortfolio()))

	home := doRequest(a, http.MethodGet, "/").Body.String()
	assertContains(t, home,
		`<a href="/tag/c/#projects" class="chip" data-partial="/tag/c/">C++</a>`,
		`<a href="/tag/c-2/#projects" class="chip" data-partial="/tag/c-2/">C#</a>`,
	)

	rec := doRequest(a, http.MethodGet, "/tag/c-2/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	assertContains(t, rec.Body.String(), `data-title="Service"`)
	assertNotContains(t, rec.Body.String(), `data-title="Engine"`)

	rec = doRequest(a, http.MethodGet, "/tag/c/")
	assertContains(t, rec.Body.String(), `data-title="Engine"`)
	assertNotContains(t, rec.Body.String(), `data-title="Service"`)

	if got, want := a.pagePaths(), []string{"/", "/tag/c/", "/tag/c-2/"}; !reflect.DeepEqual(got, want) {
		t.Errorf("pagePaths() = %v, want %v", got, want)
	}
}

func TestTagPageUnknownSlug(t *testing.T) {
	a := newTestApp(t)
	rec := doRequest(a, http.MethodGet, "/tag/nope/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	assertContains(t, rec.Body.String(), "Page not found")
}

func TestTagPageAddsTrailingSlash(t *testing.T) {
	a := newTestApp(t)
	rec := doRequest(a, http.MethodGet, "/tag/z")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/tag/z/" {
		t.Errorf("Location = %q", loc)
	}
}

func TestProjectsPartial(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(a, http.MethodGet, "/tag/z/?partial=projects", withHeader(headerScript, "true"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, `<div id="projects-body" data-active-tag="Z">`) {
		t.Errorf("partial body = %q", body)
	}
	assertNotContains(t, body, "<html", `data-title="A"`)

	// without the header the full page is served
	rec = doRequest(a, http.MethodGet, "/tag/z/?partial=projects")
	assertContains(t, rec.Body.String(), "<!DOCTYPE html>")
}

func TestThemeToggleRequiresCSRF(t *testing.T) {
	a := newTestApp(t)
	rec := doRequest(a, http.MethodPost, "/theme/")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestThemeToggleRoundTrip(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(a, http.MethodPost, "/theme/",
		withCSRF("test-token"),
		withHeader("Referer", "https://folio.example/tag/z/"),
	)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/tag/z/" {
		t.Errorf("Location = %q, want /tag/z/", loc)
	}
	cookies := rec.Result().Cookies()

	page := doRequest(a, http.MethodGet, "/", withCookies(cookies))
	assertContains(t, page.Body.String(), `data-theme="light"`)

	// toggling again returns to dark
	var prefs []*http.Cookie
	for _, c := range cookies {
		if c.Name == sessionName {
			prefs = append(prefs, c)
		}
	}
	rec = doRequest(a, http.MethodPost, "/theme/", withCSRF("test-token"), withCookies(prefs))
	page = doRequest(a, http.MethodGet, "/", withCookies(rec.Result().Cookies()))
	assertContains(t, page.Body.String(), `data-theme="dark"`)
}

func TestThemeToggleScriptRequest(t *testing.T) {
	a := newTestApp(t)
	rec := doRequest(a, http.MethodPost, "/theme/", withCSRF("tok"), withHeader(headerScript, "true"))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestThemeToggleRateLimited(t *testing.T) {
	a := newTestApp(t)
	for i := 0; i < a.Config.ToggleLimit; i++ {
		rec := doRequest(a, http.MethodPost, "/theme/", withCSRF("tok"), withHeader(headerScript, "true"))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("toggle %d: status = %d", i, rec.Code)
		}
	}
	rec := doRequest(a, http.MethodPost, "/theme/", withCSRF("tok"), withHeader(headerScript, "true"))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
}

func TestBackPath(t *testing.T) {
	tests := map[string]string{
		"":                                  "/",
		"https://folio.example/tag/go/":     "/tag/go/",
		"https://folio.example/?tag=Go":     "/?tag=Go",
		"/tag/go/#projects":                 "/tag/go/",
		"https://evil.example//other.host/": "/",
		"::bad::":                           "/",
	}
	for in, want := range tests {
		if got := backPath(in); got != want {
			t.Errorf("backPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLanguageSelection(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(a, http.MethodGet, "/?lang=tr")
	assertContains(t, rec.Body.String(), `lang="tr"`, "7+ yıl yazılım/AI deneyimi")

	rec = doRequest(a, http.MethodGet, "/", withHeader("Accept-Language", "tr-TR,tr;q=0.9"))
	assertContains(t, rec.Body.String(), `lang="tr"`)

	rec = doRequest(a, http.MethodGet, "/", withHeader("Accept-Language", "de-DE"))
	assertContains(t, rec.Body.String(), `lang="en"`)
}

func TestAPI(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(a, http.MethodGet, "/api/tags")
	var tags []string
	if err := json.Unmarshal(rec.Body.Bytes(), &tags); err != nil {
		t.Fatalf("decode tags: %v", err)
	}
	if strings.Join(tags, ",") != "All,X,Y,Z" {
		t.Errorf("tags = %v", tags)
	}

	for target, want := range map[string][]string{
		"/api/projects":       {"A", "B"},
		"/api/projects?tag=Y": {"A", "B"},
		"/api/projects?tag=Z": {"B"},
		"/api/projects?tag=Q": {},
	} {
		rec := doRequest(a, http.MethodGet, target)
		var projects []struct {
			Title string `json:"title"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &projects); err != nil {
			t.Fatalf("%s: decode: %v", target, err)
		}
		var titles []string
		for _, p := range projects {
			titles = append(titles, p.Title)
		}
		if strings.Join(titles, ",") != strings.Join(want, ",") {
			t.Errorf("%s = %v, want %v", target, titles, want)
		}
	}

	rec = doRequest(a, http.MethodGet, "/api/profile")
	var pf struct {
		Profile struct {
			Name string `json:"name"`
		} `json:"profile"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &pf); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if pf.Profile.Name != "Test Person" {
		t.Errorf("profile name = %q", pf.Profile.Name)
	}
}

func TestHealthz(t *testing.T) {
	a := newTestApp(t)
	rec := doRequest(a, http.MethodGet, "/healthz")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != `{"status":"ok"}` {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestSitemapAndRobots(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(a, http.MethodGet, "/sitemap.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("sitemap status = %d", rec.Code)
	}
	assertContains(t, rec.Body.String(),
		"<loc>https://folio.example/</loc>",
		"<loc>https://folio.example/tag/x/</loc>",
		"<loc>https://folio.example/tag/y/</loc>",
		"<loc>https://folio.example/tag/z/</loc>",
	)
	assertNotContains(t, rec.Body.String(), "/tag/all/")

	rec = doRequest(a, http.MethodGet, "/robots.txt")
	assertContains(t, rec.Body.String(), "Sitemap: https://folio.example/sitemap.xml")
}

func TestOGImage(t *testing.T) {
	a := newTestApp(t)
	rec := doRequest(a, http.MethodGet, "/og.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "image/png" {
		t.Errorf("content type = %q", ct)
	}
	cfg, err := png.DecodeConfig(rec.Body)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != ogWidth || cfg.Height != ogHeight {
		t.Errorf("size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestAssets(t *testing.T) {
	a := newTestApp(t)

	rec := doRequest(a, http.MethodGet, "/public/folio.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("css status = %d", rec.Code)
	}
	assertContains(t, rec.Body.String(), `[data-theme="light"]`)
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=86400" {
		t.Errorf("Cache-Control = %q", cc)
	}

	rec = doRequest(a, http.MethodGet, "/public/folio.js")
	assertContains(t, rec.Body.String(), "X-Folio-Partial")

	rec = doRequest(a, http.MethodGet, "/public/missing.js")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing asset status = %d", rec.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	a := newTestApp(t)
	rec := doRequest(a, http.MethodGet, "/")
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := rec.Header().Get("Content-Security-Policy"); !strings.Contains(got, "script-src 'self'") {
		t.Errorf("CSP = %q", got)
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Error("missing request id")
	}
}

func TestServerErrorPage(t *testing.T) {
	a := newTestApp(t, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/boom/", func(c echo.Context) error { return errors.New("boom") })
	}))
	rec := doRequest(a, http.MethodGet, "/boom/")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	assertContains(t, rec.Body.String(), "Something went wrong")
}

func TestMetrics(t *testing.T) {
	disabled := newTestApp(t)
	if rec := doRequest(disabled, http.MethodGet, "/metrics"); rec.Code != http.StatusNotFound {
		t.Errorf("metrics disabled: status = %d", rec.Code)
	}

	a := newTestApp(t, func(a *App) { a.Config.MetricsEnabled = true })
	doRequest(a, http.MethodPost, "/theme/", withCSRF("tok"), withHeader(headerScript, "true"))
	doRequest(a, http.MethodGet, "/")

	rec := doRequest(a, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	assertContains(t, rec.Body.String(),
		`folio_theme_toggles_total{theme="light"} 1`,
		"folio_http_requests_total",
	)
}

func TestCustomViews(t *testing.T) {
	a := newTestApp(t, WithViews(ViewFuncs{
		NotFound: func(c i18n.Copy, theme views.Theme, routes views.Routes) templ.Component {
			return templ.Raw("custom 404")
		},
	}))
	rec := doRequest(a, http.MethodGet, "/tag/nope/")
	if rec.Code != http.StatusNotFound || rec.Body.String() != "custom 404" {
		t.Fatalf("custom not found = %d %q", rec.Code, rec.Body.String())
	}
	// the remaining views fall back to the defaults
	assertContains(t, doRequest(a, http.MethodGet, "/").Body.String(), `data-title="A"`)
}
