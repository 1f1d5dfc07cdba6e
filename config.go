package folio

import (
	"fmt"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/eringen/folio/relay"
	"github.com/eringen/folio/reveal"
	"github.com/eringen/folio/typewriter"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default: the profile's full name)
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Meta description (default: the profile summary)
	Author      string `mapstructure:"author"`      // Author name for JSON-LD and RSS

	Addr         string `mapstructure:"addr"`          // Listen address (default ":3000")
	DatabasePath string `mapstructure:"database_path"` // SQLite path for submissions and images (default "data/folio.db")
	LogLevel     string `mapstructure:"log_level"`     // debug, info, warn, error (default "info")

	ContentDir      string        `mapstructure:"content_dir"`       // YAML content directory; empty serves the built-in portfolio
	ContentCacheTTL time.Duration `mapstructure:"content_cache_ttl"` // Content cache TTL (default 5min)
	WatchContent    bool          `mapstructure:"watch_content"`     // Reload content when files under ContentDir change

	ResumePath string `mapstructure:"resume_path"` // Resume file served at /resume/
	Theme      string `mapstructure:"theme"`       // "dark" (default) or "light"
	PageSize   int    `mapstructure:"page_size"`   // Projects per carousel page (default 3)

	TypeDelay        time.Duration `mapstructure:"type_delay"` // Typewriter timings (defaults 100ms / 50ms / 2s)
	DeleteDelay      time.Duration `mapstructure:"delete_delay"`
	TypePause        time.Duration `mapstructure:"type_pause"`
	StreamTypewriter bool          `mapstructure:"stream_typewriter"` // Offer /hero/typed as a server-sent events source

	Reveal map[string]reveal.Options `mapstructure:"reveal"` // Per-section visibility trigger options

	RelayAccessKey    string        `mapstructure:"relay_access_key"`    // Form relay access key; without it submissions are stored as failed
	RelayEndpoint     string        `mapstructure:"relay_endpoint"`      // Form relay URL (default relay.DefaultEndpoint)
	RelayTimeout      time.Duration `mapstructure:"relay_timeout"`       // Per-submission timeout (default 15s)
	ContactResetAfter time.Duration `mapstructure:"contact_reset_after"` // Success banner lifetime (default 5s)
	ContactLimit      int           `mapstructure:"contact_limit"`       // Submissions per IP per ContactWindow (default 5)
	ContactWindow     time.Duration `mapstructure:"contact_window"`      // (default 1h)

	AnalyticsEnabled       bool   `mapstructure:"analytics_enabled"`        // Record section reveal beacons
	AnalyticsDatabasePath  string `mapstructure:"analytics_database_path"`  // Analytics SQLite path (default "data/analytics.db")
	AnalyticsRetentionDays int    `mapstructure:"analytics_retention_days"` // Reveal rows older than this are purged (default 365)

	MetricsEnabled bool `mapstructure:"metrics_enabled"` // Expose Prometheus metrics at /metrics (admin only)

	AdminPassword string `mapstructure:"admin_password"` // Required: admin login password
	SessionSecret string `mapstructure:"session_secret"` // Required: session encryption secret
	CookieSecure  bool   `mapstructure:"cookie_secure"`  // Set true for HTTPS
}

// defaultReveal is used for sections without explicit options. Cards only
// animate in once.
func defaultReveal() reveal.Options {
	return reveal.Options{Threshold: 0.1, RootMargin: "0px", Once: true}
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/folio.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ContentCacheTTL == 0 {
		c.ContentCacheTTL = 5 * time.Minute
	}
	if c.Theme == "" {
		c.Theme = "dark"
	}
	if c.PageSize < 1 {
		c.PageSize = 3
	}
	if c.TypeDelay <= 0 {
		c.TypeDelay = typewriter.DefaultTypeDelay
	}
	if c.DeleteDelay <= 0 {
		c.DeleteDelay = typewriter.DefaultDeleteDelay
	}
	if c.TypePause <= 0 {
		c.TypePause = typewriter.DefaultPause
	}
	if c.RelayEndpoint == "" {
		c.RelayEndpoint = relay.DefaultEndpoint
	}
	if c.RelayTimeout == 0 {
		c.RelayTimeout = 15 * time.Second
	}
	if c.ContactResetAfter == 0 {
		c.ContactResetAfter = relay.DefaultResetAfter
	}
	if c.ContactLimit == 0 {
		c.ContactLimit = 5
	}
	if c.ContactWindow == 0 {
		c.ContactWindow = time.Hour
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
	if c.AnalyticsRetentionDays == 0 {
		c.AnalyticsRetentionDays = 365
	}
}

// validate checks the settings that have no usable default.
func (c *SiteConfig) validate() error {
	if c.AdminPassword == "" {
		return fmt.Errorf("folio: AdminPassword is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}
	for section, opts := range c.Reveal {
		if err := opts.Validate(); err != nil {
			return fmt.Errorf("folio: reveal options for %s: %w", section, err)
		}
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// revealFor returns the options for section.
func (c *SiteConfig) revealFor(section string) reveal.Options {
	if opts, ok := c.Reveal[section]; ok {
		if opts.RootMargin == "" {
			opts.RootMargin = "0px"
		}
		return opts
	}
	return defaultReveal()
}

func parseLogLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG, nil
	case "", "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, fmt.Errorf("folio: unknown log level %q", s)
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithSender replaces the form relay client, e.g. with a fake in tests.
func WithSender(s relay.Sender) Option {
	return func(a *App) {
		a.sender = s
	}
}

// WithClock overrides time.Now for the footer year and stored timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
