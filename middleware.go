package folio

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// pathKind groups request paths by how the middleware chain treats them.
type pathKind int

const (
	kindPage    pathKind = iota // HTML pages, trailing slash enforced
	kindAsset                   // files under /public and the favicon
	kindFeed                    // sitemap, feed and robots
	kindStream                  // the typewriter event stream
	kindAPI                     // JSON endpoints and /metrics
	kindPrivate                 // admin and contact, never cached
)

func classify(path string) pathKind {
	switch {
	case strings.HasPrefix(path, "/public"), path == "/favicon.svg":
		return kindAsset
	case path == "/sitemap.xml", path == "/feed.xml", path == "/robots.txt":
		return kindFeed
	case path == "/hero/typed":
		return kindStream
	case strings.HasPrefix(path, "/api/"), path == "/metrics",
		strings.HasPrefix(path, "/admin/analytics/"):
		return kindAPI
	case strings.HasPrefix(path, "/admin"), strings.HasPrefix(path, "/contact"):
		return kindPrivate
	}
	return kindPage
}

// cacheHeaders keeps pages private because they embed a per-visitor CSRF
// token.
var cacheHeaders = map[pathKind]string{
	kindPage:    "private, max-age=0, must-revalidate",
	kindAsset:   "public, max-age=31536000, immutable",
	kindFeed:    "public, max-age=86400",
	kindStream:  "no-store",
	kindAPI:     "no-store",
	kindPrivate: "no-store",
}

// contentSecurityPolicy allows the htmx and iconify CDNs and nothing else
// off-site.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self' 'unsafe-inline' https://unpkg.com https://code.iconify.design",
	"style-src 'self' 'unsafe-inline'",
	"img-src 'self' https: data:",
	"font-src 'self'",
	"connect-src 'self' https://api.iconify.design https://api.simplesvg.com https://api.unisvg.com",
	"frame-ancestors 'none'",
}, "; ")

func (a *App) setupMiddleware() {
	e := a.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)
	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(a.Metrics.middleware())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			// event streams must not be buffered
			k := classify(c.Request().URL.Path)
			return k == kindAsset || k == kindStream
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: contentSecurityPolicy,
		HSTSMaxAge:            31536000,
	}))

	e.Use(a.sessionMiddleware())

	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieSameSite: http.SameSiteLaxMode,
		CookieSecure:   a.Config.CookieSecure,
		Skipper: func(c echo.Context) bool {
			// the reveal beacon carries no form fields
			return c.Request().URL.Path == "/api/reveal"
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return c.String(http.StatusForbidden, "Forbidden")
		},
	}))

	e.Use(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			k := classify(c.Request().URL.Path)
			return k != kindPage && k != kindPrivate
		},
	}))

	e.Use(cacheControlMiddleware)
}

func cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", cacheHeaders[classify(c.Request().URL.Path)])
		return next(c)
	}
}

// CsrfToken extracts the CSRF token from the Echo context.
func CsrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
