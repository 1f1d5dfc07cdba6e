package views

import (
	"time"

	"github.com/eringen/folio/analytics"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/relay"
	"github.com/eringen/folio/reveal"
	"github.com/eringen/folio/typewriter"
)

// SiteConfig holds site-wide settings every page needs.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// PageMeta carries per-page OpenGraph and SEO metadata into <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "profile"
	Image       string
}

// Page is everything the portfolio page renders from. Active is owned by
// the page; sections only read it.
type Page struct {
	Site      SiteConfig
	Meta      PageMeta
	Portfolio content.Portfolio
	Theme     Theme
	Active    string
	Year      int
	CSRFToken string
	Loading   bool // render the loading screen (full page loads only)

	Hero     HeroView
	Projects ProjectsView
	Contact  ContactView
	Reveal   map[string]reveal.Options
}

// RevealFor returns the reveal options for a section, or the defaults.
func (p Page) RevealFor(section string) reveal.Options {
	if opts, ok := p.Reveal[section]; ok {
		return opts
	}
	return reveal.DefaultOptions()
}

// HeroView is the typewriter setup plus the text rendered before the
// browser takes over.
type HeroView struct {
	Typewriter typewriter.Config
	Initial    typewriter.State
	StreamURL  string // optional server-sent events source
}

// ProjectsView is one window of the projects carousel.
type ProjectsView struct {
	Items     []content.Project
	Start     int
	PageSize  int
	Page      int
	PageCount int
	Total     int
	Direction int
}

// ContactView is the contact form's rendered state.
type ContactView struct {
	Values     relay.Submission
	Errors     map[string]string
	Submitting bool
	Submitted  bool
	Error      string
	ResetAfter time.Duration
}

// Submission is a stored contact message shown in the admin dashboard.
type Submission struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    string
	Error     string
	CreatedAt time.Time
}

// Image is an uploaded project thumbnail.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}

// SectionSeen reports whether a section has been revealed since start-up.
type SectionSeen struct {
	Section string
	Seen    bool
}

// Dashboard is the admin overview.
type Dashboard struct {
	Submissions []Submission
	Counts      map[string]int
	Funnel      []analytics.SectionStat
	Stats       *analytics.Stats
	Period      string
	Seen        []SectionSeen
	ContentFrom []string
	Message     string
	CSRFToken   string
}
