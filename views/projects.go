package views

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/markdown"
)

// carouselURL is the partial endpoint; pageURL is the full-page fallback.
func carouselURL(v ProjectsView, query string) string {
	return fmt.Sprintf("/projects/?start=%d&%s", v.Start, query)
}

func pageURL(v ProjectsView, query string) string {
	return fmt.Sprintf("/?start=%d&%s#projects", v.Start, query)
}

// carouselControl is a link that htmx upgrades to an in-place swap.
func carouselControl(v ProjectsView, query, label string, children ...g.Node) g.Node {
	return A(
		Href(pageURL(v, query)),
		g.Attr("hx-get", carouselURL(v, query)),
		g.Attr("hx-target", "#projects-carousel"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("aria-label", label),
		g.Group(children),
	)
}

func projectCard(t Theme, i int, pr content.Project) g.Node {
	grad := pr.Gradient
	if grad == "" {
		grad = t.Accent
	}
	return Article(
		classes("reveal is-visible group flex flex-col overflow-hidden", t.Card),
		stagger(i, projectStagger),
		Div(
			Class("relative aspect-video overflow-hidden"),
			g.If(pr.Image != "", Img(
				Src(pr.Image),
				Alt(pr.Title),
				g.Attr("loading", "lazy"),
				g.Attr("decoding", "async"),
				Class("size-full object-cover transition duration-500 group-hover:scale-105"),
			)),
			g.If(pr.Image == "", Div(classes("flex size-full items-center justify-center bg-gradient-to-br text-white", grad), icon(pr.Icon, "size-12"))),
		),
		Div(
			Class("flex flex-1 flex-col p-6"),
			H3(classes("text-xl font-semibold", t.Heading),
				A(Href(pr.Link()), Class("hover:underline"), g.Text(pr.Title)),
			),
			P(classes("mt-3 flex-1 text-sm leading-relaxed", t.Muted), inline(pr.Description)),
			Ul(
				Class("mt-4 flex flex-wrap gap-2"),
				g.Group(g.Map(pr.Tags, func(tag string) g.Node {
					return Li(Class(t.Pill), g.Text(tag))
				})),
			),
			Div(
				Class("mt-6 flex gap-4 text-sm font-medium"),
				g.If(pr.GitHub != "", A(Href(pr.GitHub), external(), classes("inline-flex items-center gap-1", t.Text), icon("github", "size-4"), g.Text("Code"))),
				g.If(pr.Demo != "", A(Href(pr.Demo), external(), classes("inline-flex items-center gap-1", t.Text), icon("external-link", "size-4"), g.Text("Demo"))),
			),
		),
	)
}

func carousel(t Theme, v ProjectsView) g.Node {
	return Div(
		ID("projects-carousel"),
		g.Attr("data-start", strconv.Itoa(v.Start)),
		g.Attr("data-direction", strconv.Itoa(v.Direction)),
		Class("relative"),
		g.If(v.Total == 0, P(classes("text-center", t.Muted), g.Text("No projects yet."))),
		Div(
			Class("carousel-track grid gap-8 md:grid-cols-2 lg:grid-cols-3"),
			g.Group(g.Map(indexed(v.Items), func(it item[content.Project]) g.Node {
				return projectCard(t, it.i, it.v)
			})),
		),
		g.If(v.PageCount > 1, Div(
			Class("mt-10 flex items-center justify-center gap-6"),
			carouselControl(v, "move=prev", "Previous projects",
				classes("rounded-full p-3 transition hover:scale-110", t.Card),
				icon("chevron-left", "size-5"),
			),
			Div(
				Class("flex gap-2"),
				g.Group(g.Map(pageNumbers(v.PageCount), func(i int) g.Node {
					active := i == v.Page
					return carouselControl(v, "page="+strconv.Itoa(i), fmt.Sprintf("Go to page %d", i+1),
						classes("h-2 rounded-full transition-all", pick(active, "w-8 bg-sky-500", "w-2 bg-white/30")),
						g.If(active, g.Attr("aria-current", "true")),
					)
				})),
			),
			carouselControl(v, "move=next", "Next projects",
				classes("rounded-full p-3 transition hover:scale-110", t.Card),
				icon("chevron-right", "size-5"),
			),
		)),
		P(classes("mt-4 text-center text-xs", t.Muted), g.Textf("%d of %d", min(v.Page+1, max(v.PageCount, 1)), max(v.PageCount, 1))),
	)
}

func pageNumbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func projects(p Page) g.Node {
	return sectionShell(p, "projects", false,
		Div(Class("reveal"), sectionTitle(p.Theme, "Featured Projects", "A selection of things I have built")),
		carousel(p.Theme, p.Projects),
	)
}

// ProjectDetail is the standalone page for one project.
func ProjectDetail(p Page, pr content.Project) templ.Component {
	t := p.Theme
	jsonLD := CreativeWorkJsonLD(p.Site, p.Portfolio.Profile.FullName(), pr)
	return Component(Layout(p.Site, p.Meta, t, jsonLD, p.CSRFToken,
		navbar(p),
		Main(
			Class("mx-auto max-w-4xl px-6 pb-24 pt-32"),
			A(Href("/#projects"), classes("inline-flex items-center gap-1 text-sm", t.NavIdle), icon("arrow-left", "size-4"), g.Text("All projects")),
			H1(classes("mt-6 text-4xl font-bold md:text-5xl", t.Heading), g.Text(pr.Title)),
			g.If(pr.Image != "", Img(Src(pr.Image), Alt(pr.Title), Class("mt-10 w-full rounded-2xl border border-white/10"))),
			Div(classes("prose mt-10 max-w-none text-lg leading-relaxed", t.Muted), markdownBlock(markdown.Block(pr.Description))),
			Ul(
				Class("mt-8 flex flex-wrap gap-2"),
				g.Group(g.Map(pr.Tags, func(tag string) g.Node { return Li(Class(t.Pill), g.Text(tag)) })),
			),
			Div(
				Class("mt-10 flex flex-wrap gap-4"),
				g.If(pr.GitHub != "", A(Href(pr.GitHub), external(), Class(t.Button), icon("github", "size-5"), g.Text("View Code"))),
				g.If(pr.Demo != "", A(Href(pr.Demo), external(), Class(t.Button), icon("external-link", "size-5"), g.Text("Live Demo"))),
			),
			// Projects.Items holds related projects on this page.
			g.If(len(p.Projects.Items) > 0, Div(
				ID("related-projects"),
				Class("mt-20"),
				H2(classes("mb-8 text-2xl font-semibold", t.Heading), g.Text("Related projects")),
				Div(
					Class("grid gap-8 md:grid-cols-2"),
					g.Group(g.Map(indexed(p.Projects.Items), func(it item[content.Project]) g.Node {
						return projectCard(t, it.i, it.v)
					})),
				),
			)),
		),
		pageFooter(p),
	))
}
