package analytics

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const maxSectionLen = 64

// Handler serves the reveal beacon and the stats API.
type Handler struct {
	store   *Store
	limiter *rateLimiter
	known   func(section string) bool
	onSave  func(section string)
	now     func() time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithSections restricts beacons to sections known reports true for.
func WithSections(known func(string) bool) HandlerOption {
	return func(h *Handler) { h.known = known }
}

// OnReveal registers a callback run after a new reveal row is written.
func OnReveal(fn func(section string)) HandlerOption {
	return func(h *Handler) { h.onSave = fn }
}

// NewHandler creates a handler. Beacons are limited to 60 per IP per minute.
func NewHandler(store *Store, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:   store,
		limiter: newRateLimiter(60, time.Minute),
		known:   func(string) bool { return true },
		now:     time.Now,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Close stops the limiter sweep.
func (h *Handler) Close() {
	h.limiter.stop()
}

// CollectRequest is the beacon body.
type CollectRequest struct {
	Section string `json:"section" form:"section"`
}

// Collect records a section reveal. It always answers 204 for requests it
// chooses to ignore (DNT, bots) so the browser never retries.
func (h *Handler) Collect(c echo.Context) error {
	if !h.limiter.allow(c.RealIP()) {
		return c.NoContent(http.StatusTooManyRequests)
	}
	if c.Request().Header.Get("DNT") == "1" {
		return c.NoContent(http.StatusNoContent)
	}

	var req CollectRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request")
	}
	section := strings.TrimSpace(req.Section)
	if section == "" || len(section) > maxSectionLen || !h.known(section) {
		return c.String(http.StatusBadRequest, "Invalid request")
	}

	ua := c.Request().UserAgent()
	if IsBot(ua) {
		return c.NoContent(http.StatusNoContent)
	}

	now := h.now().UTC()
	r := Reveal{
		VisitorID: VisitorID(c.RealIP(), ua, now),
		Section:   section,
		Device:    Device(ua),
		Timestamp: now,
	}
	saved, err := h.store.SaveReveal(c.Request().Context(), r)
	if err != nil {
		c.Logger().Errorf("save reveal: %v", err)
		return c.NoContent(http.StatusNoContent)
	}
	if saved && h.onSave != nil {
		h.onSave(section)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetStats returns reveal stats for ?period=today|week|month|year as JSON.
func (h *Handler) GetStats(c echo.Context) error {
	period, days := ParsePeriod(c.QueryParam("period"))
	from, to := TimeRange(h.now().UTC(), days)

	stats, err := h.store.Stats(c.Request().Context(), from, to)
	if err != nil {
		c.Logger().Errorf("reveal stats: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"period": period,
		"days":   days,
		"stats":  stats,
	})
}

// ParsePeriod maps a period name to a day count. Unknown names mean week.
func ParsePeriod(period string) (string, int) {
	switch period {
	case "today":
		return period, 1
	case "month":
		return period, 30
	case "year":
		return period, 365
	default:
		return "week", 7
	}
}

// TimeRange returns [from, to) covering the last days calendar days,
// including today.
func TimeRange(now time.Time, days int) (time.Time, time.Time) {
	today := now.Truncate(24 * time.Hour)
	return today.AddDate(0, 0, -(days - 1)), today.Add(24 * time.Hour)
}

// RegisterRoutes mounts the beacon on public and the stats API on admin.
func (h *Handler) RegisterRoutes(public *echo.Group, admin *echo.Group) {
	public.POST("/api/reveal", h.Collect)
	admin.GET("/analytics/stats", h.GetStats)
}
