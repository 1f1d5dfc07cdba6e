package folio

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/relay"
	"github.com/eringen/folio/views"
)

// Messages shown above the contact form.
const (
	msgSendFailed  = "Failed to send message. Please try again."
	msgRateLimited = "Too many messages. Please try again later."
)

var contactFields = []string{"name", "email", "subject", "message"}

func (a *App) contactPage(c echo.Context, v views.ContactView) (views.Page, error) {
	p, err := a.Content.Get()
	if err != nil {
		return views.Page{}, err
	}
	pg := a.page(c, p)
	if v.ResetAfter == 0 {
		v.ResetAfter = a.Config.ContactResetAfter
	}
	pg.Contact = v
	return pg, nil
}

func (a *App) renderContact(c echo.Context, code int, v views.ContactView) error {
	pg, err := a.contactPage(c, v)
	if err != nil {
		return err
	}
	if !isHTMX(c) {
		// Plain form posts get the whole page, scrolled to the form.
		pg.Active = "contact"
		pg.Projects = a.projectsView(c, pg.Portfolio.Projects)
		return RenderStatus(c, code, views.Home(pg))
	}
	return RenderStatus(c, code, views.ContactForm(pg))
}

// handleContactForm returns an empty form. The success banner requests it
// to reset itself.
func (a *App) handleContactForm(c echo.Context) error {
	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/?section=contact#contact")
	}
	return a.renderContact(c, http.StatusOK, views.ContactView{})
}

// handleContact validates a submission, relays it and records the outcome.
// Invalid input never leaves the server; relay failures keep the fields so
// the visitor can retry.
func (a *App) handleContact(c echo.Context) error {
	if c.FormValue("botcheck") != "" {
		a.Metrics.ContactSubmissions.WithLabelValues(resultSpam).Inc()
		return a.renderContact(c, http.StatusOK, views.ContactView{Submitted: true})
	}

	form := relay.NewForm(a.Config.ContactResetAfter)
	defer form.Close()
	for _, f := range contactFields {
		if err := form.Set(f, c.FormValue(f)); err != nil {
			return err
		}
	}
	values := form.State().Submission

	if !a.contactLimiter.Allow(c.RealIP()) {
		a.Metrics.ContactSubmissions.WithLabelValues(resultLimited).Inc()
		return a.renderContact(c, http.StatusTooManyRequests, views.ContactView{Values: values, Error: msgRateLimited})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), a.Config.RelayTimeout)
	defer cancel()
	started := time.Now()
	err := form.Submit(ctx, a.sender)

	var invalid *relay.ValidationError
	if errors.As(err, &invalid) {
		a.Metrics.ContactSubmissions.WithLabelValues(resultInvalid).Inc()
		return a.renderContact(c, http.StatusUnprocessableEntity, views.ContactView{Values: values, Errors: invalid.Fields})
	}
	a.Metrics.RelayDuration.Observe(time.Since(started).Seconds())

	status := StatusSent
	if err != nil {
		status = StatusFailed
	}
	if _, serr := a.Store.SaveSubmission(c.Request().Context(), values.Trimmed(), status, err); serr != nil {
		c.Logger().Errorf("store submission: %v", serr)
	}

	if err != nil {
		var rejected *relay.RejectedError
		if errors.As(err, &rejected) {
			a.Metrics.ContactSubmissions.WithLabelValues(resultRejected).Inc()
		} else {
			a.Metrics.ContactSubmissions.WithLabelValues(resultError).Inc()
		}
		c.Logger().Warnf("relay contact submission: %v", err)
		st := form.State()
		return a.renderContact(c, http.StatusBadGateway, views.ContactView{Values: st.Submission, Error: msgSendFailed})
	}

	a.Metrics.ContactSubmissions.WithLabelValues(resultSent).Inc()
	st := form.State()
	return a.renderContact(c, http.StatusOK, views.ContactView{Values: st.Submission, Submitted: st.Submitted, ResetAfter: form.ResetAfter()})
}
