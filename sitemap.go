package folio

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string  `xml:"loc"`
	Priority float64 `xml:"priority,omitempty"`
}

// renderSitemap lists the portfolio page and one page per project.
func (a *App) renderSitemap(c echo.Context, projects []content.Project) error {
	base := a.Config.URL
	urls := []sitemapURL{{Loc: BuildURL(base), Priority: 1}}
	for _, p := range projects {
		urls = append(urls, sitemapURL{
			Loc:      BuildURL(base, "projects", p.Slug),
			Priority: 0.6,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
