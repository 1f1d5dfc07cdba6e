package folio

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const sessionName = "admin_session"

// sessionMaxAge is how long an admin stays signed in. The cookie carries the
// sign-in time too, so a replayed cookie expires on the server as well.
const sessionMaxAge = 12 * time.Hour

const (
	keyAuthenticated = "authenticated"
	keySignedInAt    = "signed_in_at"
)

func (a *App) sessionMiddleware() echo.MiddlewareFunc {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(sessionMaxAge / time.Second),
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return session.Middleware(store)
}

// requireAdmin sends anonymous visitors to the login page.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdmin(c) {
			return c.Redirect(http.StatusSeeOther, "/admin/")
		}
		return next(c)
	}
}

// IsAdmin reports whether the request carries a live admin session.
func IsAdmin(c echo.Context) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return false
	}
	auth, _ := sess.Values[keyAuthenticated].(bool)
	since, _ := sess.Values[keySignedInAt].(int64)
	return auth && time.Since(time.Unix(since, 0)) < sessionMaxAge
}

func setAdminSession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values[keyAuthenticated] = true
	sess.Values[keySignedInAt] = time.Now().Unix()
	return sess.Save(c.Request(), c.Response())
}

func clearAdminSession(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}
