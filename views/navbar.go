package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/folio/content"
)

// navHref is the server URL that makes section the active one. The
// fragment keeps in-page scrolling when the browser handles the click.
func navHref(section string) string {
	return "/?section=" + section + "#" + section
}

func navbar(p Page) g.Node {
	t := p.Theme
	link := func(n content.NavLink) g.Node {
		active := n.Href == p.Active
		return A(
			Href(navHref(n.Href)),
			g.Attr("data-nav", n.Href),
			g.If(active, g.Attr("aria-current", "true")),
			classes("relative text-sm font-medium transition-colors", pick(active, t.NavOn, t.NavIdle)),
			g.Text(n.Name),
		)
	}

	return Nav(
		ID("navbar"),
		g.Attr("data-navbar", ""),
		g.Attr("data-active", p.Active),
		Class("fixed inset-x-0 top-0 z-50 transition-all duration-300 data-[scrolled=true]:bg-black/80 data-[scrolled=true]:backdrop-blur-md"),
		Div(
			Class("mx-auto flex max-w-6xl items-center justify-between px-6 py-4"),
			A(
				Href("/#hero"),
				classes("text-xl font-bold bg-gradient-to-r bg-clip-text text-transparent", t.Accent),
				g.Text(p.Portfolio.Profile.FullName()),
			),
			Div(
				Class("hidden items-center gap-8 md:flex"),
				g.Group(g.Map(p.Portfolio.Nav, link)),
			),
			Details(
				Class("relative md:hidden"),
				Summary(
					Class("cursor-pointer list-none p-2"),
					g.Attr("aria-label", "Toggle menu"),
					icon("menu", "size-6"),
				),
				Div(
					classes("absolute right-0 mt-2 flex w-48 flex-col gap-4 p-4", t.Card),
					g.Group(g.Map(p.Portfolio.Nav, link)),
				),
			),
		),
	)
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
