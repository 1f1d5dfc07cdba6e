package views

import (
	"encoding/json"
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/folio/content"
)

func typewriterAttrs(h HeroView) g.Node {
	words, err := json.Marshal(h.Typewriter.Words)
	if err != nil {
		words = []byte("[]")
	}
	ms := func(d time.Duration) string {
		return strconv.FormatInt(d.Milliseconds(), 10)
	}
	return g.Group([]g.Node{
		g.Attr("data-typewriter", string(words)),
		g.Attr("data-type-delay", ms(h.Typewriter.TypeDelay)),
		g.Attr("data-delete-delay", ms(h.Typewriter.DeleteDelay)),
		g.Attr("data-pause", ms(h.Typewriter.Pause)),
		g.Attr("data-word", strconv.Itoa(h.Initial.Word)),
		g.Attr("data-char", strconv.Itoa(h.Initial.Char)),
		g.Attr("data-phase", h.Initial.Phase.String()),
		g.If(h.StreamURL != "", g.Attr("data-typewriter-src", h.StreamURL)),
	})
}

func hero(p Page) g.Node {
	t := p.Theme
	prof := p.Portfolio.Profile
	return Section(
		ID("hero"),
		revealAttrs(p, "hero"),
		Class("relative flex min-h-screen items-center justify-center overflow-hidden px-6"),
		Div(Class("pointer-events-none absolute inset-0 -z-10 bg-[radial-gradient(ellipse_at_top,rgba(14,165,233,0.15),transparent_60%)]")),
		Div(
			Class("reveal mx-auto max-w-4xl text-center"),
			g.If(prof.Avatar != "", Img(
				Src(prof.Avatar),
				Alt(prof.FullName()),
				Width("160"), Height("160"),
				g.Attr("fetchpriority", "high"),
				Class("mx-auto mb-8 size-40 rounded-full border-4 border-sky-500/40 object-cover"),
			)),
			H1(
				classes("text-5xl font-bold md:text-7xl", t.Heading),
				g.Text("Hi, I'm "),
				Span(classes("bg-gradient-to-r bg-clip-text text-transparent", t.Accent), g.Text(prof.FirstName)),
			),
			P(
				classes("mt-6 h-10 text-2xl font-semibold md:text-3xl", t.Text),
				Span(typewriterAttrs(p.Hero), g.Attr("aria-live", "polite"), g.Text(p.Hero.Initial.Text)),
				Span(Class("typewriter-caret ml-1 inline-block w-[2px] animate-pulse bg-current"), g.Raw("&nbsp;")),
			),
			P(classes("mx-auto mt-6 max-w-2xl text-lg", t.Muted), inline(prof.Tagline)),
			Div(
				Class("mt-10 flex flex-wrap items-center justify-center gap-4"),
				A(Href("#contact"), Class(t.Button), icon("mail", "size-5"), g.Text("Get in touch")),
				g.If(prof.ResumePath != "", A(
					Href("/resume/"),
					classes("inline-flex items-center gap-2 rounded-full border px-6 py-3 font-semibold transition hover:scale-105", t.Text, "border-current"),
					icon("download", "size-5"),
					g.Text("Download Resume"),
				)),
			),
			Div(
				Class("mt-8 flex justify-center gap-4"),
				g.Group(g.Map(p.Portfolio.Social, func(s content.SocialLink) g.Node {
					return A(
						Href(s.Href),
						g.If(s.External(), external()),
						g.Attr("aria-label", s.Label),
						classes("rounded-full p-3 transition hover:scale-110", t.Card),
						icon(s.Icon, "size-5"),
					)
				})),
			),
		),
		A(
			Href("#about"),
			classes("absolute bottom-10 left-1/2 flex -translate-x-1/2 flex-col items-center gap-2 text-sm", t.Muted),
			g.Text("Scroll to explore"),
			icon("chevron-down", "size-5 animate-bounce"),
		),
	)
}
