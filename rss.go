package folio

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/markdown"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Categories  []string `xml:"category,omitempty"`
	GUID        string   `xml:"guid"`
}

// renderRSS publishes the project list as a feed.
func (a *App) renderRSS(c echo.Context, p content.Portfolio) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(p.Projects))
	for _, pr := range p.Projects {
		link := BuildURL(base, "projects", pr.Slug)
		items = append(items, rssItem{
			Title:       pr.Title,
			Link:        link,
			Description: markdown.Plain(pr.Description),
			Categories:  pr.Tags,
			GUID:        link,
		})
	}
	title := a.Config.Name
	if title == "" {
		title = p.Profile.FullName()
	}
	description := a.Config.Description
	if description == "" {
		description = markdown.Plain(p.Profile.Summary)
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       strings.TrimSpace(title + " projects"),
			Link:        BuildURL(base),
			Description: description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
