package folio

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/analytics"
	"github.com/eringen/folio/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	c.Logger().Warnf("failed admin login from %s", ip)
	return RenderStatus(c, http.StatusUnauthorized, views.AdminLogin(true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// handleAdminReload reloads content from disk now instead of waiting for
// the cache TTL.
func (a *App) handleAdminReload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	msg := "Content reloaded."
	if err := a.reloadContent(); err != nil {
		msg = "Reload failed: " + err.Error()
	}
	return c.Redirect(http.StatusSeeOther, "/admin/?msg="+url.QueryEscape(msg))
}

// reloadContent refreshes the content cache and counts the outcome.
func (a *App) reloadContent() error {
	if err := a.Content.Reload(); err != nil {
		a.Metrics.ContentReloads.WithLabelValues("error").Inc()
		return err
	}
	a.Metrics.ContentReloads.WithLabelValues("ok").Inc()
	return nil
}

func (a *App) handleSubmissionDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := a.Store.DeleteSubmission(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	// htmx swaps the row with this empty body.
	return c.HTML(http.StatusOK, "")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	ctx := c.Request().Context()
	subs, err := a.Store.ListSubmissions(ctx, 100)
	if err != nil {
		return err
	}
	counts, err := a.Store.CountSubmissions(ctx)
	if err != nil {
		return err
	}

	d := views.Dashboard{
		Submissions: subs,
		Counts:      counts,
		Seen:        a.reveals.seen(),
		ContentFrom: a.Content.Sources(),
		Message:     msg,
		CSRFToken:   CsrfToken(c),
	}
	if err := a.Content.Err(); err != nil && msg == "" {
		d.Message = "Serving the last good content; latest load failed: " + err.Error()
	}

	if a.analyticsStore != nil {
		period, days := analytics.ParsePeriod(c.QueryParam("period"))
		from, to := analytics.TimeRange(a.now().UTC(), days)
		stats, err := a.analyticsStore.Stats(ctx, from, to)
		if err != nil {
			c.Logger().Errorf("reveal stats: %v", err)
		} else {
			stats.Period = period
			d.Stats = stats
			d.Funnel = analytics.Funnel(stats, views.Sections)
		}
		d.Period = period
	}
	return Render(c, views.AdminDashboard(d))
}
