package folio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/carousel"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/markdown"
	"github.com/eringen/folio/reveal"
	"github.com/eringen/folio/typewriter"
	"github.com/eringen/folio/views"
)

// page builds the view model shared by every public page.
func (a *App) page(c echo.Context, p content.Portfolio) views.Page {
	site := views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
	if site.Name == "" {
		site.Name = p.Profile.FullName()
	}
	if site.Description == "" {
		site.Description = markdown.Plain(p.Profile.Summary)
	}
	if site.Author == "" {
		site.Author = p.Profile.FullName()
	}

	tw := typewriter.Config{
		Words:       p.Profile.Roles,
		TypeDelay:   a.Config.TypeDelay,
		DeleteDelay: a.Config.DeleteDelay,
		Pause:       a.Config.TypePause,
	}
	hero := views.HeroView{Typewriter: tw, Initial: typewriter.Simulate(tw, fullyTyped(tw))}
	if a.Config.StreamTypewriter {
		hero.StreamURL = "/hero/typed"
	}

	revealOpts := make(map[string]reveal.Options, len(views.Sections))
	for _, s := range views.Sections {
		revealOpts[s] = a.Config.revealFor(s)
	}

	return views.Page{
		Site: site,
		Meta: views.PageMeta{
			Title:       p.Profile.Title,
			Description: site.Description,
			URL:         BuildURL(a.Config.URL),
			OGType:      "profile",
			Image:       AbsoluteURL(a.Config.URL, p.Profile.Avatar),
		},
		Portfolio: p,
		Theme:     views.ThemeByName(a.Config.Theme),
		Active:    "hero",
		Year:      a.now().Year(),
		CSRFToken: CsrfToken(c),
		Hero:      hero,
		Contact:   views.ContactView{ResetAfter: a.Config.ContactResetAfter},
		Reveal:    revealOpts,
	}
}

// fullyTyped is how long the first word takes to type, so the pre-rendered
// hero shows a whole word before the browser takes over.
func fullyTyped(cfg typewriter.Config) time.Duration {
	if len(cfg.Words) == 0 {
		return 0
	}
	return cfg.TypeDelay * time.Duration(utf8.RuneCountInString(cfg.Words[0]))
}

// projectsView positions the carousel from the start, move and page query
// parameters. A foreign start index is clamped.
func (a *App) projectsView(c echo.Context, items []content.Project) views.ProjectsView {
	start, _ := strconv.Atoi(c.QueryParam("start"))
	pager := carousel.Restore(items, a.Config.PageSize, start)
	switch c.QueryParam("move") {
	case "next":
		pager.Next()
	case "prev":
		pager.Previous()
	}
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			pager.JumpTo(n)
		}
	}
	return views.ProjectsView{
		Items:     pager.Page(),
		Start:     pager.Index(),
		PageSize:  pager.PageSize(),
		Page:      pager.CurrentPage(),
		PageCount: pager.PageCount(),
		Total:     pager.Len(),
		Direction: pager.Direction(),
	}
}

// activeSection reads ?section=, falling back to the hero.
func activeSection(c echo.Context, p *content.Portfolio) string {
	if s := c.QueryParam("section"); s != "" && p.HasSection(s) {
		return s
	}
	return "hero"
}

func (a *App) handleHome(c echo.Context) error {
	p, err := a.Content.Get()
	if err != nil {
		return err
	}
	pg := a.page(c, p)
	pg.Active = activeSection(c, &p)
	pg.Projects = a.projectsView(c, p.Projects)
	pg.Loading = len(c.QueryParams()) == 0 && !isHTMX(c)
	return Render(c, views.Home(pg))
}

func (a *App) handleSection(c echo.Context) error {
	name := c.Param("name")
	p, err := a.Content.Get()
	if err != nil {
		return err
	}
	if !views.HasSection(name) || !p.HasSection(name) {
		return echo.ErrNotFound
	}
	pg := a.page(c, p)
	pg.Active = activeSection(c, &p)
	pg.Projects = a.projectsView(c, p.Projects)
	return Render(c, views.SectionPartial(name, pg))
}

func (a *App) handleProjects(c echo.Context) error {
	p, err := a.Content.Get()
	if err != nil {
		return err
	}
	pg := a.page(c, p)
	pg.Projects = a.projectsView(c, p.Projects)
	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/?start=%d#projects", pg.Projects.Start))
	}
	return Render(c, views.ProjectsPartial(pg))
}

func (a *App) handleProject(c echo.Context) error {
	p, err := a.Content.Get()
	if err != nil {
		return err
	}
	pr, err := p.Project(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	pg := a.page(c, p)
	pg.Active = "projects"
	pg.Meta = views.PageMeta{
		Title:       pr.Title,
		Description: markdown.Plain(pr.Description),
		URL:         BuildURL(a.Config.URL, "projects", pr.Slug),
		OGType:      "article",
		Image:       AbsoluteURL(a.Config.URL, pr.Image),
	}
	pg.Projects = views.ProjectsView{Items: RelatedProjects(pr, p.Projects, 2)}
	return Render(c, views.ProjectDetail(pg, pr))
}

// typedFrame is one server-sent typewriter update.
type typedFrame struct {
	Text  string `json:"text"`
	Word  int    `json:"word"`
	Phase string `json:"phase"`
}

// handleTyped streams the typewriter as server-sent events until the client
// goes away.
func (a *App) handleTyped(c echo.Context) error {
	if !a.Config.StreamTypewriter {
		return echo.ErrNotFound
	}
	p, err := a.Content.Get()
	if err != nil {
		return err
	}
	tw := typewriter.New(typewriter.Config{
		Words:       p.Profile.Roles,
		TypeDelay:   a.Config.TypeDelay,
		DeleteDelay: a.Config.DeleteDelay,
		Pause:       a.Config.TypePause,
	})

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-store")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	a.Metrics.TypewriterStreams.Inc()
	defer a.Metrics.TypewriterStreams.Dec()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()
	err = tw.Run(ctx, func(s typewriter.State) {
		b, _ := json.Marshal(typedFrame{Text: s.Text, Word: s.Word, Phase: s.Phase.String()})
		if _, werr := fmt.Fprintf(res, "data: %s\n\n", b); werr != nil {
			cancel()
			return
		}
		res.Flush()
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// handleResume serves the configured resume, or the profile's resume file
// from the static dir.
func (a *App) handleResume(c echo.Context) error {
	path := a.Config.ResumePath
	if path == "" {
		p, err := a.Content.Get()
		if err != nil {
			return err
		}
		if p.Profile.ResumePath == "" {
			return echo.ErrNotFound
		}
		path = filepath.Join(a.staticDir, filepath.Clean("/"+p.Profile.ResumePath))
	}
	if !fileExists(path) {
		return echo.ErrNotFound
	}
	return c.Attachment(path, filepath.Base(path))
}

func (a *App) handleSitemap(c echo.Context) error {
	p, err := a.Content.Get()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, p.Projects)
}

func (a *App) handleFeed(c echo.Context) error {
	p, err := a.Content.Get()
	if err != nil {
		return err
	}
	return a.renderRSS(c, p)
}

func (a *App) handleFavicon(c echo.Context) error {
	if path := filepath.Join(a.staticDir, "favicon.svg"); fileExists(path) {
		return c.File(path)
	}
	return c.Blob(http.StatusOK, "image/svg+xml", mustAsset("favicon.svg"))
}

// handleStyles serves public/styles.css when the site ships its own build,
// otherwise the stylesheet compiled into the binary.
func (a *App) handleStyles(c echo.Context) error {
	if path := filepath.Join(a.staticDir, "styles.css"); fileExists(path) {
		return c.File(path)
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", mustAsset("styles.css"))
}

func (a *App) handleRobots(c echo.Context) error {
	if path := filepath.Join(a.staticDir, "robots.txt"); fileExists(path) {
		return c.File(path)
	}
	body := fmt.Sprintf("User-agent: *\nDisallow: /admin/\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code != http.StatusNotFound && code < 500 {
		a.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}

	p, cerr := a.Content.Get()
	if cerr != nil {
		a.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}
	pg := a.page(c, p)
	if code == http.StatusNotFound {
		pg.Meta.Title = "Not found"
		_ = RenderStatus(c, code, views.NotFound(pg))
		return
	}
	pg.Meta.Title = "Error"
	_ = RenderStatus(c, code, views.ServerError(pg))
}
