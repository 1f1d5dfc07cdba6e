package folio

import (
	"github.com/eringen/folio/reveal"
	"github.com/eringen/folio/views"
)

// revealTracker remembers which sections visitors have reached since the
// server started. Each section has a once-trigger observing an in-process
// feed; the reveal beacon publishes into the feed.
type revealTracker struct {
	feed     *reveal.Feed
	sections []string
	triggers map[string]*reveal.Trigger
	releases []func()
}

func newRevealTracker(cfg *SiteConfig, sections []string) (*revealTracker, error) {
	rt := &revealTracker{
		feed:     reveal.NewFeed(),
		sections: sections,
		triggers: make(map[string]*reveal.Trigger, len(sections)),
	}
	for _, s := range sections {
		opts := cfg.revealFor(s)
		opts.Once = true
		tr, err := reveal.New(opts)
		if err != nil {
			rt.close()
			return nil, err
		}
		rt.triggers[s] = tr
		rt.releases = append(rt.releases, tr.Attach(rt.feed, s))
	}
	return rt, nil
}

// publish reports that a visitor revealed section.
func (rt *revealTracker) publish(section string) {
	rt.feed.Publish(section, reveal.Entry{Ratio: 1, Intersecting: true})
}

// seen lists the sections in page order with their latch state.
func (rt *revealTracker) seen() []views.SectionSeen {
	out := make([]views.SectionSeen, 0, len(rt.sections))
	for _, s := range rt.sections {
		out = append(out, views.SectionSeen{Section: s, Seen: rt.triggers[s].State().Triggered})
	}
	return out
}

func (rt *revealTracker) close() {
	for _, release := range rt.releases {
		release()
	}
	rt.releases = nil
}
