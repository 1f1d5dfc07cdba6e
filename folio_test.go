package folio

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/relay"
)

const (
	testCSRF     = "test-csrf-token-0123456789abcdef"
	testPassword = "hunter2"
	browserUA    = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"
)

type fakeSender struct {
	mu   sync.Mutex
	err  error
	sent []relay.Submission
}

func (f *fakeSender) Send(_ context.Context, s relay.Submission) (relay.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, s)
	if f.err != nil {
		return relay.Response{}, f.err
	}
	return relay.Response{Success: true}, nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newTestApp(t *testing.T, sender relay.Sender, mutate ...func(*SiteConfig)) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := SiteConfig{
		AdminPassword:         testPassword,
		SessionSecret:         "0123456789abcdef0123456789abcdef",
		DatabasePath:          filepath.Join(dir, "folio.db"),
		AnalyticsEnabled:      true,
		AnalyticsDatabasePath: filepath.Join(dir, "analytics.db"),
		MetricsEnabled:        true,
		LogLevel:              "error",
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	app := New(cfg, WithSender(sender), WithStaticDir(filepath.Join(dir, "public")))
	if err := app.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

func newRequest(method, target string, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		form.Set("_csrf", testCSRF)
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("X-CSRF-Token", testCSRF)
	req.AddCookie(&http.Cookie{Name: "_csrf", Value: testCSRF})
	return req
}

func htmx(req *http.Request) *http.Request {
	req.Header.Set("HX-Request", "true")
	return req
}

func serve(app *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, app *App) *http.Cookie {
	t.Helper()
	rec := serve(app, newRequest(http.MethodPost, "/admin/login/", url.Values{"password": {testPassword}}))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login status = %d, body %q", rec.Code, rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionName {
			return c
		}
	}
	t.Fatalf("login did not set %s", sessionName)
	return nil
}

func contactForm() url.Values {
	return url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"subject": {"Engines"},
		"message": {"Let's build an analytical engine."},
	}
}

func firstProjectSlug(t *testing.T) string {
	t.Helper()
	p := content.Default()
	p.Normalize()
	if len(p.Projects) == 0 {
		t.Fatalf("built-in portfolio has no projects")
	}
	return p.Projects[0].Slug
}

func TestHomePage(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	rec := serve(app, newRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`id="loading-screen"`, `id="about"`, `id="contact-form"`, `src="/public/folio.js"`} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %s", want)
		}
	}
	if got := rec.Header().Get("Cache-Control"); got != "private, max-age=0, must-revalidate" {
		t.Errorf("Cache-Control = %q", got)
	}

	rec = serve(app, newRequest(http.MethodGet, "/?section=about", nil))
	if strings.Contains(rec.Body.String(), `id="loading-screen"`) {
		t.Errorf("deep links skip the loading screen")
	}
}

func TestSectionPartial(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	rec := serve(app, htmx(newRequest(http.MethodGet, "/sections/about/", nil)))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `id="about"`) {
		t.Fatalf("about partial: %d %q", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "<html") {
		t.Errorf("partial should not include the layout")
	}

	rec = serve(app, newRequest(http.MethodGet, "/sections/nope/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown section status = %d", rec.Code)
	}
}

func TestProjectsCarousel(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	rec := serve(app, newRequest(http.MethodGet, "/projects/?start=0&move=next", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("non-htmx status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/?start=3#projects" {
		t.Errorf("Location = %q", loc)
	}

	rec = serve(app, htmx(newRequest(http.MethodGet, "/projects/?start=0&move=next", nil)))
	if rec.Code != http.StatusOK {
		t.Fatalf("htmx status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `id="projects-carousel"`) {
		t.Errorf("expected the carousel fragment")
	}
}

func TestProjectDetailPage(t *testing.T) {
	app := newTestApp(t, &fakeSender{})
	slug := firstProjectSlug(t)

	rec := serve(app, newRequest(http.MethodGet, "/projects/"+slug+"/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `id="related-projects"`) {
		t.Errorf("expected related projects")
	}

	rec = serve(app, newRequest(http.MethodGet, "/projects/does-not-exist/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing project status = %d", rec.Code)
	}
}

func TestContactSent(t *testing.T) {
	sender := &fakeSender{}
	app := newTestApp(t, sender, func(c *SiteConfig) { c.ContactResetAfter = 2 * time.Second })

	rec := serve(app, htmx(newRequest(http.MethodPost, "/contact/", contactForm())))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Your message has been sent successfully.") {
		t.Errorf("expected the success banner")
	}
	if !strings.Contains(body, `hx-trigger="load delay:2000ms"`) {
		t.Errorf("banner should reset after the configured delay")
	}
	if strings.Contains(body, "Ada Lovelace") {
		t.Errorf("fields should be cleared after a successful send")
	}
	if sender.count() != 1 {
		t.Fatalf("sent %d messages, want 1", sender.count())
	}

	subs, err := app.Store.ListSubmissions(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListSubmissions: %v", err)
	}
	if len(subs) != 1 || subs[0].Status != StatusSent || subs[0].Email != "ada@example.com" {
		t.Fatalf("stored submissions = %+v", subs)
	}
	if got := testutil.ToFloat64(app.Metrics.ContactSubmissions.WithLabelValues(resultSent)); got != 1 {
		t.Errorf("sent counter = %v", got)
	}
}

func TestContactInvalid(t *testing.T) {
	sender := &fakeSender{}
	app := newTestApp(t, sender)

	form := contactForm()
	form.Set("email", "not-an-address")
	rec := serve(app, htmx(newRequest(http.MethodPost, "/contact/", form)))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `aria-invalid="true"`) {
		t.Errorf("expected the email field to be flagged")
	}
	if sender.count() != 0 {
		t.Fatalf("invalid input must not be relayed")
	}
}

func TestContactHoneypot(t *testing.T) {
	sender := &fakeSender{}
	app := newTestApp(t, sender)

	form := contactForm()
	form.Set("botcheck", "on")
	rec := serve(app, htmx(newRequest(http.MethodPost, "/contact/", form)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if sender.count() != 0 {
		t.Fatalf("spam must not be relayed")
	}
	subs, _ := app.Store.ListSubmissions(context.Background(), 10)
	if len(subs) != 0 {
		t.Fatalf("spam must not be stored")
	}
}

func TestContactRelayFailureKeepsFields(t *testing.T) {
	sender := &fakeSender{err: &relay.RejectedError{StatusCode: 400, Message: "bad key"}}
	app := newTestApp(t, sender)

	rec := serve(app, htmx(newRequest(http.MethodPost, "/contact/", contactForm())))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, msgSendFailed) || !strings.Contains(body, "Ada Lovelace") {
		t.Errorf("expected the error and the kept fields, got %q", body)
	}

	subs, _ := app.Store.ListSubmissions(context.Background(), 10)
	if len(subs) != 1 || subs[0].Status != StatusFailed || !strings.Contains(subs[0].Error, "bad key") {
		t.Fatalf("stored submissions = %+v", subs)
	}
	if got := testutil.ToFloat64(app.Metrics.ContactSubmissions.WithLabelValues(resultRejected)); got != 1 {
		t.Errorf("rejected counter = %v", got)
	}
}

func TestContactRateLimit(t *testing.T) {
	sender := &fakeSender{}
	app := newTestApp(t, sender, func(c *SiteConfig) { c.ContactLimit = 2 })

	for i := 0; i < 2; i++ {
		rec := serve(app, htmx(newRequest(http.MethodPost, "/contact/", contactForm())))
		if rec.Code != http.StatusOK {
			t.Fatalf("submission %d status = %d", i+1, rec.Code)
		}
	}
	rec := serve(app, htmx(newRequest(http.MethodPost, "/contact/", contactForm())))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third submission status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), msgRateLimited) {
		t.Errorf("expected the rate limit message")
	}
	if sender.count() != 2 {
		t.Fatalf("sent %d, want 2", sender.count())
	}
}

func TestContactRequiresCSRF(t *testing.T) {
	sender := &fakeSender{}
	app := newTestApp(t, sender)

	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(contactForm().Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := serve(app, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d", rec.Code)
	}
	if sender.count() != 0 {
		t.Fatalf("forged post was relayed")
	}
}

func TestAdminLogin(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	rec := serve(app, newRequest(http.MethodGet, "/admin/", nil))
	if !strings.Contains(rec.Body.String(), "Sign in") {
		t.Fatalf("expected the login form")
	}

	rec = serve(app, newRequest(http.MethodPost, "/admin/login/", url.Values{"password": {"wrong"}}))
	if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), "Wrong password.") {
		t.Fatalf("wrong password: %d", rec.Code)
	}

	cookie := login(t, app)
	req := newRequest(http.MethodGet, "/admin/", nil)
	req.AddCookie(cookie)
	rec = serve(app, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Dashboard") {
		t.Fatalf("dashboard: %d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("admin Cache-Control = %q", got)
	}
}

func TestAdminDeleteSubmission(t *testing.T) {
	app := newTestApp(t, &fakeSender{})
	sub, err := app.Store.SaveSubmission(context.Background(), relay.Submission{
		Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "hello",
	}, StatusSent, nil)
	if err != nil {
		t.Fatalf("SaveSubmission: %v", err)
	}
	cookie := login(t, app)

	del := func() int {
		req := newRequest(http.MethodDelete, "/admin/submissions/"+sub.ID+"/", nil)
		req.AddCookie(cookie)
		return serve(app, req).Code
	}
	if code := del(); code != http.StatusOK {
		t.Fatalf("delete status = %d", code)
	}
	if code := del(); code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", code)
	}
}

func TestAdminReload(t *testing.T) {
	app := newTestApp(t, &fakeSender{})
	cookie := login(t, app)

	req := newRequest(http.MethodPost, "/admin/reload/", url.Values{})
	req.AddCookie(cookie)
	rec := serve(app, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Location"), "Content+reloaded") {
		t.Errorf("Location = %q", rec.Header().Get("Location"))
	}
	if got := testutil.ToFloat64(app.Metrics.ContentReloads.WithLabelValues("ok")); got != 1 {
		t.Errorf("reload counter = %v", got)
	}
}

func TestRevealBeacon(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	post := func(body string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/reveal", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("User-Agent", browserUA)
		return serve(app, req).Code
	}

	if code := post(`{"section":"about"}`); code != http.StatusNoContent {
		t.Fatalf("beacon status = %d", code)
	}
	if code := post(`{"section":"nowhere"}`); code != http.StatusBadRequest {
		t.Fatalf("unknown section status = %d", code)
	}

	seen := map[string]bool{}
	for _, s := range app.reveals.seen() {
		seen[s.Section] = s.Seen
	}
	if !seen["about"] || seen["projects"] {
		t.Fatalf("seen = %v", seen)
	}
	if got := testutil.ToFloat64(app.Metrics.SectionReveals.WithLabelValues("about")); got != 1 {
		t.Errorf("reveal counter = %v", got)
	}
}

func TestMetricsRequireAdmin(t *testing.T) {
	app := newTestApp(t, &fakeSender{})

	rec := serve(app, newRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("anonymous status = %d", rec.Code)
	}

	req := newRequest(http.MethodGet, "/metrics", nil)
	req.AddCookie(login(t, app))
	rec = serve(app, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Fatalf("metrics: %d", rec.Code)
	}
}

func TestSiteMetadata(t *testing.T) {
	app := newTestApp(t, &fakeSender{})
	slug := firstProjectSlug(t)

	rec := serve(app, newRequest(http.MethodGet, "/sitemap.xml", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "http://localhost:3000/projects/"+slug+"/") {
		t.Fatalf("sitemap: %d %q", rec.Code, rec.Body.String())
	}

	rec = serve(app, newRequest(http.MethodGet, "/feed.xml", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `<rss version="2.0">`) {
		t.Fatalf("feed: %d", rec.Code)
	}

	rec = serve(app, newRequest(http.MethodGet, "/robots.txt", nil))
	if !strings.Contains(rec.Body.String(), "Sitemap: http://localhost:3000/sitemap.xml") {
		t.Fatalf("robots: %q", rec.Body.String())
	}

	rec = serve(app, newRequest(http.MethodGet, "/public/folio.js", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "IntersectionObserver") {
		t.Fatalf("folio.js: %d", rec.Code)
	}

	rec = serve(app, newRequest(http.MethodGet, "/public/styles.css", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), ".reveal.is-visible") {
		t.Fatalf("styles.css: %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("styles.css Content-Type = %q", ct)
	}
}

func TestStylesheetOverride(t *testing.T) {
	app := newTestApp(t, &fakeSender{})
	if err := os.MkdirAll(app.staticDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(app.staticDir, "styles.css"), []byte("body{color:red}"), 0o644); err != nil {
		t.Fatal(err)
	}
	rec := serve(app, newRequest(http.MethodGet, "/public/styles.css", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "body{color:red}" {
		t.Fatalf("styles.css: %d %q", rec.Code, rec.Body.String())
	}
}

func TestTypewriterStreamDisabled(t *testing.T) {
	app := newTestApp(t, &fakeSender{})
	rec := serve(app, newRequest(http.MethodGet, "/hero/typed", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestTypewriterStream(t *testing.T) {
	app := newTestApp(t, &fakeSender{}, func(c *SiteConfig) {
		c.StreamTypewriter = true
		c.TypeDelay = 5 * time.Millisecond
	})
	srv := httptest.NewServer(app.Echo)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/hero/typed", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("User-Agent", browserUA)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if ct := res.Header.Get(echo.HeaderContentType); ct != "text/event-stream" {
		t.Fatalf("Content-Type = %q", ct)
	}

	var texts []string
	sc := bufio.NewScanner(res.Body)
	for len(texts) < 3 && sc.Scan() {
		line, ok := strings.CutPrefix(sc.Text(), "data: ")
		if !ok {
			continue
		}
		var f typedFrame
		if err := json.Unmarshal([]byte(line), &f); err != nil {
			t.Fatalf("frame %q: %v", line, err)
		}
		if f.Phase != "typing" {
			t.Errorf("phase = %q", f.Phase)
		}
		texts = append(texts, f.Text)
	}
	if want := []string{"", "A", "AI"}; !slices.Equal(texts, want) {
		t.Fatalf("frames = %q, want %q", texts, want)
	}
	if got := testutil.ToFloat64(app.Metrics.TypewriterStreams); got != 1 {
		t.Errorf("open streams = %v", got)
	}

	cancel()
	deadline := time.Now().Add(2 * time.Second)
	for testutil.ToFloat64(app.Metrics.TypewriterStreams) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("stream gauge not released after disconnect")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestInitRequiresSecrets(t *testing.T) {
	app := New(SiteConfig{DatabasePath: filepath.Join(t.TempDir(), "x.db")})
	if err := app.Init(); err == nil {
		t.Fatalf("expected an error without an admin password")
	}
}
