package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Third-party scripts every page loads.
const (
	IconifyScript = "https://code.iconify.design/1/1.0.7/iconify.min.js"
	HTMXScript    = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
)

// Layout wraps body in the document shell shared by every public page.
func Layout(site SiteConfig, meta PageMeta, t Theme, jsonLD string, csrf string, body ...g.Node) g.Node {
	title := site.Name
	if meta.Title != "" {
		title = meta.Title + " | " + site.Name
	}
	description := meta.Description
	if description == "" {
		description = site.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", t.Name),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				Meta(Name("description"), Content(description)),
				g.If(csrf != "", Meta(Name("csrf-token"), Content(csrf))),
				g.If(meta.URL != "", Link(Rel("canonical"), Href(meta.URL))),

				Meta(g.Attr("property", "og:title"), Content(title)),
				Meta(g.Attr("property", "og:description"), Content(description)),
				Meta(g.Attr("property", "og:type"), Content(ogType)),
				g.If(meta.URL != "", Meta(g.Attr("property", "og:url"), Content(meta.URL))),
				g.If(meta.Image != "", Meta(g.Attr("property", "og:image"), Content(meta.Image))),

				Link(Rel("icon"), Href("/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("alternate"), Type("application/rss+xml"), Href("/feed.xml"), g.Attr("title", site.Name+" projects")),
				Link(Rel("stylesheet"), Href("/public/styles.css")),
				g.If(jsonLD != "", Script(Type("application/ld+json"), g.Raw(jsonLD))),

				Script(Src(IconifyScript), Defer()),
				Script(Src(HTMXScript), Defer()),
				Script(Src("/public/folio.js"), Defer()),
				NoScript(StyleEl(g.Raw(noScriptCSS))),
			),
			Body(
				classes("min-h-screen antialiased", t.Body),
				g.Group(body),
			),
		),
	})
}

// noScriptCSS undoes the parts of the page that wait on folio.js.
const noScriptCSS = `.reveal{opacity:1;--tw-translate-y:0}#loading-screen,#scroll-progress{display:none}`

// backdrop is the fixed grid and drifting colour blobs behind the home page.
func backdrop(t Theme) g.Node {
	return Div(
		ID("backdrop"),
		g.Attr("aria-hidden", "true"),
		classes("pointer-events-none fixed inset-0 -z-10 overflow-hidden", "backdrop-"+t.Name),
		Div(Class("backdrop-grid")),
		Div(Class("backdrop-vignette")),
		Div(Class("backdrop-blob")),
		Div(Class("backdrop-blob")),
		Div(Class("backdrop-blob")),
	)
}

// loadingScreen is the full-page splash; the browser runtime fills the bar
// and removes it.
func loadingScreen(t Theme, name string) g.Node {
	return Div(
		ID("loading-screen"),
		g.Attr("data-loading", ""),
		classes("fixed inset-0 z-[100] flex flex-col items-center justify-center transition-opacity duration-500", t.Body),
		Div(
			classes("mb-8 text-3xl font-bold bg-gradient-to-r bg-clip-text text-transparent", t.Accent),
			g.Text(name),
		),
		Div(
			Class("h-1 w-64 overflow-hidden rounded-full bg-white/10"),
			Div(
				ID("loading-bar"),
				classes("h-full w-0 transition-[width] duration-100", t.Progress),
			),
		),
		P(classes("mt-4 text-sm", t.Muted), Span(ID("loading-percent"), g.Text("0")), g.Text("%")),
	)
}

// scrollProgress is the thin bar along the top edge.
func scrollProgress(t Theme) g.Node {
	return Div(
		ID("scroll-progress"),
		classes("fixed left-0 top-0 z-[70] h-1 w-full origin-left scale-x-0", t.Progress),
		g.Attr("aria-hidden", "true"),
	)
}
