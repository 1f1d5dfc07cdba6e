// Package folio is a self-hosted portfolio site built with Go, Echo and
// gomponents. It serves a single-page portfolio from YAML content, relays
// contact form messages to a form-submission API, and ships a small admin
// dashboard with submission history and section reach analytics.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/analytics"
	"github.com/eringen/folio/relay"
	"github.com/eringen/folio/views"
)

// App is the central folio application. It wires together the store,
// content cache, handlers, middleware and views.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Content *ContentCache
	Metrics *Metrics

	sender         relay.Sender
	loginLimiter   *Limiter
	contactLimiter *Limiter
	analyticsStore *analytics.Store
	analytics      *analytics.Handler
	reveals        *revealTracker
	customRoutes   []func(*App)
	staticDir      string
	now            func() time.Time
	stops          []func()
	initialized    bool
}

// New creates a folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
		now:       time.Now,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init opens the stores, loads content and registers middleware and routes.
// Start calls it; tests call it directly and drive a.Echo.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if err := a.Config.validate(); err != nil {
		return err
	}
	lvl, _ := parseLogLevel(a.Config.LogLevel)
	a.Echo.Logger.SetLevel(lvl)

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store
	a.Store.now = a.now

	a.Content = NewContentCache(a.Config.ContentDir, a.Config.ContentCacheTTL)
	a.Content.now = a.now
	if err := a.Content.Reload(); err != nil {
		return fmt.Errorf("folio: load content: %w", err)
	}

	if a.sender == nil {
		a.sender = relay.NewClient(a.Config.RelayAccessKey,
			relay.WithEndpoint(a.Config.RelayEndpoint),
			relay.WithTimeout(a.Config.RelayTimeout),
		)
	}

	a.Metrics = NewMetrics()
	a.loginLimiter = NewLimiter(5, time.Minute)
	a.contactLimiter = NewLimiter(a.Config.ContactLimit, a.Config.ContactWindow)
	a.stops = append(a.stops, a.loginLimiter.Stop, a.contactLimiter.Stop)

	a.reveals, err = newRevealTracker(&a.Config, views.Sections)
	if err != nil {
		return fmt.Errorf("folio: reveal options: %w", err)
	}
	a.stops = append(a.stops, a.reveals.close)

	if a.Config.AnalyticsEnabled {
		analyticsStore, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("folio: init analytics: %w", err)
		}
		a.analyticsStore = analyticsStore
		if err := analytics.InitSalt(analyticsStore); err != nil {
			return fmt.Errorf("folio: init analytics salt: %w", err)
		}
		a.analytics = analytics.NewHandler(analyticsStore,
			analytics.WithSections(views.HasSection),
			analytics.OnReveal(a.onReveal),
		)
		a.stops = append(a.stops,
			a.analytics.Close,
			analyticsStore.StartCleanupScheduler(a.Config.AnalyticsRetentionDays, 24*time.Hour, a.Echo.Logger),
		)
	}

	if a.Config.WatchContent && a.Config.ContentDir != "" {
		stop, err := a.watchContent(a.Config.ContentDir)
		if err != nil {
			a.Echo.Logger.Warnf("content watcher disabled: %v", err)
		} else {
			a.stops = append(a.stops, stop)
		}
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

// Start initializes the app and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("serving %s on %s", a.Config.URL, a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) onReveal(section string) {
	a.Metrics.SectionReveals.WithLabelValues(section).Inc()
	a.reveals.publish(section)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework assets are served from the binary; everything else under
	// /public comes from the site's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/folio.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/styles.css", a.handleStyles)
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/sections/:name/", a.handleSection)
	e.GET("/projects/", a.handleProjects)
	e.GET("/projects/:slug/", a.handleProject)
	e.GET("/hero/typed", a.handleTyped)
	e.GET("/resume/", a.handleResume)
	e.GET("/contact/", a.handleContactForm)
	e.POST("/contact/", a.handleContact)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/reload/", a.handleAdminReload)
	e.DELETE("/admin/submissions/:id/", a.handleSubmissionDelete)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.POST("/admin/images/:filename/delete/", a.handleImageDelete)

	admin := e.Group("/admin", requireAdmin)
	if a.Config.MetricsEnabled {
		e.GET("/metrics", a.Metrics.handler(), requireAdmin)
	}
	if a.analytics != nil {
		a.analytics.RegisterRoutes(e.Group(""), admin)
	}
}

// Close stops background work and closes the databases.
func (a *App) Close() error {
	for i := len(a.stops) - 1; i >= 0; i-- {
		a.stops[i]()
	}
	a.stops = nil
	var errs []error
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	if a.analyticsStore != nil {
		errs = append(errs, a.analyticsStore.Close())
	}
	return errors.Join(errs...)
}
