package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Sections lists the portfolio sections in page order.
var Sections = []string{"hero", "about", "skills", "experience", "projects", "achievements", "contact"}

var sectionRenderers = map[string]func(Page) g.Node{
	"hero":         hero,
	"about":        about,
	"skills":       skills,
	"experience":   experience,
	"projects":     projects,
	"achievements": achievements,
	"contact":      contact,
}

// HasSection reports whether name is a renderable section.
func HasSection(name string) bool {
	_, ok := sectionRenderers[name]
	return ok
}

// Home is the full single-page portfolio.
func Home(p Page) templ.Component {
	body := []g.Node{
		g.If(p.Loading, loadingScreen(p.Theme, p.Portfolio.Profile.FullName())),
		backdrop(p.Theme),
		scrollProgress(p.Theme),
		navbar(p),
	}
	parts := make([]g.Node, 0, len(Sections))
	for _, s := range Sections {
		if s != "hero" && !p.Portfolio.HasSection(s) {
			continue
		}
		parts = append(parts, sectionRenderers[s](p))
	}
	body = append(body, Main(ID("main"), g.Group(parts)), pageFooter(p))
	return Component(Layout(p.Site, p.Meta, p.Theme, PersonJsonLD(p.Site, p.Portfolio), p.CSRFToken, body...))
}

// SectionPartial renders a single section for htmx requests. Unknown names
// render nothing.
func SectionPartial(name string, p Page) templ.Component {
	render, ok := sectionRenderers[name]
	if !ok {
		return Component(g.Group(nil))
	}
	return Component(render(p))
}

// ProjectsPartial renders only the carousel window.
func ProjectsPartial(p Page) templ.Component {
	return Component(carousel(p.Theme, p.Projects))
}

func errorPage(p Page, code, heading, message string) templ.Component {
	t := p.Theme
	return Component(Layout(p.Site, p.Meta, t, "", p.CSRFToken,
		navbar(p),
		Main(
			Class("mx-auto flex min-h-screen max-w-2xl flex-col items-center justify-center px-6 text-center"),
			P(classes("text-8xl font-bold bg-gradient-to-r bg-clip-text text-transparent", t.Accent), g.Text(code)),
			H1(classes("mt-6 text-3xl font-semibold", t.Heading), g.Text(heading)),
			P(classes("mt-4", t.Muted), g.Text(message)),
			A(Href("/"), Class(t.Button+" mt-10"), icon("home", "size-5"), g.Text("Back home")),
		),
	))
}

// NotFound is the 404 page.
func NotFound(p Page) templ.Component {
	return errorPage(p, "404", "Page not found", "The page you are looking for does not exist or has moved.")
}

// ServerError is the 500 page.
func ServerError(p Page) templ.Component {
	return errorPage(p, "500", "Something went wrong", "Please try again in a moment.")
}
