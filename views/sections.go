package views

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/markdown"
)

// Card delays between consecutive items.
const (
	skillStagger       = 100 * time.Millisecond
	experienceStagger  = 200 * time.Millisecond
	projectStagger     = 100 * time.Millisecond
	achievementStagger = 150 * time.Millisecond
)

func sectionShell(p Page, id string, surface bool, children ...g.Node) g.Node {
	bg := ""
	if surface {
		bg = p.Theme.Surface
	}
	return Section(
		ID(id),
		revealAttrs(p, id),
		classes("relative scroll-mt-20 px-6 py-24", bg),
		Div(Class("mx-auto max-w-6xl"), g.Group(children)),
	)
}

func about(p Page) g.Node {
	t := p.Theme
	return sectionShell(p, "about", false,
		Div(Class("reveal"), sectionTitle(t, "About Me", "")),
		Div(
			Class("grid items-center gap-12 md:grid-cols-2"),
			Div(
				Class("reveal space-y-6"),
				markdownBlock(markdown.Paragraphs(p.Portfolio.Profile.About, "text-lg leading-relaxed "+t.Muted)),
				g.If(p.Portfolio.Profile.Location != "", P(
					classes("flex items-center gap-2", t.Text),
					icon("map-pin", "size-5"),
					g.Text(p.Portfolio.Profile.Location),
				)),
			),
			Div(
				Class("grid gap-6"),
				g.Group(g.Map(indexed(p.Portfolio.Highlights), func(h item[content.Highlight]) g.Node {
					return Div(
						classes("reveal flex items-start gap-4 p-6", t.Card),
						stagger(h.i, skillStagger),
						Div(classes("shrink-0 rounded-xl bg-gradient-to-r p-3 text-white", t.Accent), icon(h.v.Icon, "size-6")),
						Div(
							H3(classes("text-lg font-semibold", t.Heading), g.Text(h.v.Title)),
							P(classes("mt-1 text-sm", t.Muted), inline(h.v.Description)),
						),
					)
				})),
			),
		),
	)
}

func skills(p Page) g.Node {
	t := p.Theme
	return sectionShell(p, "skills", true,
		Div(Class("reveal"), sectionTitle(t, "Technical Skills", "Technologies and tools I work with")),
		Div(
			Class("grid gap-6 sm:grid-cols-2 lg:grid-cols-4"),
			g.Group(g.Map(indexed(p.Portfolio.Skills), func(s item[content.SkillCategory]) g.Node {
				color := s.v.Color
				if color == "" {
					color = t.Accent
				}
				return Div(
					classes("reveal p-6 transition hover:-translate-y-1", t.Card),
					stagger(s.i, skillStagger),
					Div(
						Class("mb-4 flex items-center gap-3"),
						Div(classes("rounded-lg bg-gradient-to-r p-2 text-white", color), icon(s.v.Icon, "size-5")),
						H3(classes("font-semibold", t.Heading), g.Text(s.v.Title)),
					),
					Ul(
						Class("flex flex-wrap gap-2"),
						g.Group(g.Map(s.v.Skills, func(name string) g.Node {
							return Li(Class(t.Pill), g.Text(name))
						})),
					),
				)
			})),
		),
	)
}

func experience(p Page) g.Node {
	t := p.Theme
	return sectionShell(p, "experience", false,
		Div(Class("reveal"), sectionTitle(t, "Experience", "")),
		Ol(
			Class("relative space-y-12 border-l border-white/10 pl-8"),
			g.Group(g.Map(indexed(p.Portfolio.Experience), func(e item[content.Experience]) g.Node {
				grad := e.v.Gradient
				if grad == "" {
					grad = t.Accent
				}
				return Li(
					Class("reveal relative"),
					stagger(e.i, experienceStagger),
					Span(classes("absolute -left-[2.85rem] flex size-10 items-center justify-center rounded-full bg-gradient-to-r text-white", grad), icon(e.v.Icon, "size-5")),
					Div(
						Class(t.Card+" p-6"),
						Div(
							Class("flex flex-wrap items-baseline justify-between gap-2"),
							H3(classes("text-xl font-semibold", t.Heading), g.Text(e.v.Title)),
							Span(classes("text-sm", t.Muted), g.Text(e.v.Period)),
						),
						P(classes("mt-1 font-medium", t.Text), g.Text(e.v.Company)),
						Ul(
							Class("mt-4 list-disc space-y-2 pl-5"),
							g.Group(g.Map(e.v.Achievements, func(a string) g.Node {
								return Li(classes("text-sm leading-relaxed", t.Muted), inline(a))
							})),
						),
					),
				)
			})),
		),
	)
}

func achievements(p Page) g.Node {
	t := p.Theme
	return sectionShell(p, "achievements", true,
		Div(Class("reveal"), sectionTitle(t, "Achievements", "Recognition and milestones along the way")),
		Div(
			Class("grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
			g.Group(g.Map(indexed(p.Portfolio.Achievements), func(a item[content.Achievement]) g.Node {
				return Article(
					classes("reveal p-6", t.Card),
					stagger(a.i, achievementStagger),
					Div(
						Class("mb-4 flex items-center gap-3"),
						Div(classes("rounded-lg bg-gradient-to-r p-2 text-white", t.Accent), icon("trophy", "size-5")),
						H3(classes("font-semibold", t.Heading), g.Text(a.v.Title)),
					),
					Ul(
						Class("space-y-2"),
						g.Group(g.Map(a.v.Description, func(d string) g.Node {
							return Li(classes("flex gap-2 text-sm", t.Muted), icon("check", "mt-0.5 size-4 shrink-0 "+t.Text), Span(inline(d)))
						})),
					),
				)
			})),
		),
	)
}

func pageFooter(p Page) g.Node {
	t := p.Theme
	prof := p.Portfolio.Profile
	return Footer(
		classes("border-t border-white/10 px-6 py-12", t.Surface),
		Div(
			Class("mx-auto grid max-w-6xl gap-10 md:grid-cols-3"),
			Div(
				H3(classes("text-xl font-bold bg-gradient-to-r bg-clip-text text-transparent", t.Accent), g.Text(prof.FullName())),
				P(classes("mt-3 text-sm", t.Muted), inline(prof.Summary)),
			),
			Div(
				H4(classes("mb-3 font-semibold", t.Heading), g.Text("Quick Links")),
				Ul(
					Class("space-y-2 text-sm"),
					g.Group(g.Map(p.Portfolio.Nav, func(n content.NavLink) g.Node {
						return Li(A(Href("#"+n.Href), Class(t.NavIdle), g.Text(n.Name)))
					})),
				),
			),
			Div(
				H4(classes("mb-3 font-semibold", t.Heading), g.Text("Connect")),
				Div(
					Class("flex gap-3"),
					g.Group(g.Map(p.Portfolio.Social, func(s content.SocialLink) g.Node {
						return A(Href(s.Href), g.If(s.External(), external()), g.Attr("aria-label", s.Label),
							classes("rounded-full p-2", t.Card), icon(s.Icon, "size-5"))
					})),
				),
			),
		),
		Div(
			classes("mx-auto mt-10 flex max-w-6xl items-center justify-between border-t border-white/10 pt-6 text-sm", t.Muted),
			P(g.Textf("© %d %s. All rights reserved.", p.Year, prof.FullName())),
			A(Href("#hero"), Class("inline-flex items-center gap-1 "+t.NavIdle), g.Text("Back to top"), icon("arrow-up", "size-4")),
		),
	)
}

type item[T any] struct {
	i int
	v T
}

func indexed[T any](vs []T) []item[T] {
	out := make([]item[T], len(vs))
	for i, v := range vs {
		out[i] = item[T]{i: i, v: v}
	}
	return out
}
