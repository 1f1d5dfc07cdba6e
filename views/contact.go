package views

import (
	"fmt"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/folio/content"
)

func field(t Theme, v ContactView, name, label, kind, placeholder, value string) g.Node {
	errMsg := v.Errors[name]
	id := "contact-" + name
	var input g.Node
	if kind == "textarea" {
		input = Textarea(
			ID(id), Name(name), Required(), g.Attr("rows", "6"),
			Placeholder(placeholder),
			Class(t.Input+" resize-none"),
			g.If(errMsg != "", g.Attr("aria-invalid", "true")),
			g.Text(value),
		)
	} else {
		input = Input(
			ID(id), Name(name), Type(kind), Required(),
			Placeholder(placeholder), Value(value),
			Class(t.Input),
			g.If(errMsg != "", g.Attr("aria-invalid", "true")),
		)
	}
	return Div(
		Label(g.Attr("for", id), classes("mb-2 block text-sm font-medium", t.Heading), g.Text(label)),
		input,
		g.If(errMsg != "", P(Class("mt-1 text-sm text-red-400"), g.Textf("%s %s", label, errMsg))),
	)
}

func contactForm(t Theme, v ContactView, csrf string) g.Node {
	return g.El("form",
		ID("contact-form"),
		Method("post"),
		Action("/contact/"),
		g.Attr("hx-post", "/contact/"),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type=submit]"),
		g.Attr("data-submit-guard", ""),
		classes("space-y-6 p-8", t.Card),
		Input(Type("hidden"), Name("_csrf"), Value(csrf)),
		// honeypot; hidden without relying on the stylesheet
		Input(Type("checkbox"), Name("botcheck"), g.Attr("hidden"), g.Attr("aria-hidden", "true"), g.Attr("tabindex", "-1"), g.Attr("autocomplete", "off")),

		g.If(v.Submitted, Div(
			g.Attr("role", "status"),
			// the banner clears itself by reloading an empty form
			g.Attr("hx-get", "/contact/"),
			g.Attr("hx-target", "#contact-form"),
			g.Attr("hx-swap", "outerHTML"),
			g.Attr("hx-trigger", fmt.Sprintf("load delay:%dms", resetMillis(v.ResetAfter))),
			Class("rounded-lg border border-green-500/30 bg-green-500/10 p-4 text-green-400"),
			g.Text("Thank you! Your message has been sent successfully."),
		)),
		g.If(v.Error != "", Div(
			g.Attr("role", "alert"),
			Class("rounded-lg border border-red-500/30 bg-red-500/10 p-4 text-red-400"),
			g.Text(v.Error),
		)),

		Div(
			Class("grid gap-6 md:grid-cols-2"),
			field(t, v, "name", "Name", "text", "Your name", v.Values.Name),
			field(t, v, "email", "Email", "email", "your.email@example.com", v.Values.Email),
		),
		field(t, v, "subject", "Subject", "text", "What's this about?", v.Values.Subject),
		field(t, v, "message", "Message", "textarea", "Your message...", v.Values.Message),

		Button(
			Type("submit"),
			Class(t.Button+" w-full justify-center"),
			g.If(v.Submitting, Disabled()),
			Span(Class("submit-idle inline-flex items-center gap-2"), icon("send", "size-5"), g.Text("Send Message")),
			Span(Class("submit-busy hidden items-center gap-2"), icon("loader-2", "size-5 animate-spin"), g.Text("Sending...")),
		),
	)
}

func resetMillis(d time.Duration) int64 {
	if d <= 0 {
		return 5000
	}
	return d.Milliseconds()
}

func contact(p Page) g.Node {
	t := p.Theme
	return sectionShell(p, "contact", true,
		Div(Class("reveal"), sectionTitle(t, "Get In Touch", "Have a project in mind or just want to say hello? Drop me a message.")),
		Div(
			Class("grid gap-12 lg:grid-cols-2"),
			Div(
				Class("reveal space-y-6"),
				H3(classes("text-2xl font-semibold", t.Heading), g.Text("Let's talk")),
				P(Class(t.Muted), g.Text("I'm always open to discussing new projects, creative ideas, or opportunities to be part of your vision.")),
				g.Group(g.Map(p.Portfolio.Contact, func(ci content.ContactInfo) g.Node {
					grad := ci.Gradient
					if grad == "" {
						grad = t.Accent
					}
					return A(
						Href(ci.Href),
						classes("flex items-center gap-4 p-4 transition hover:-translate-y-0.5", t.Card),
						Div(classes("rounded-lg bg-gradient-to-r p-3 text-white", grad), icon(ci.Icon, "size-5")),
						Div(
							P(classes("text-sm", t.Muted), g.Text(ci.Label)),
							P(classes("font-medium", t.Heading), g.Text(ci.Value)),
						),
					)
				})),
			),
			Div(Class("reveal"), contactForm(t, p.Contact, p.CSRFToken)),
		),
	)
}

// ContactForm renders just the form, for htmx swaps.
func ContactForm(p Page) templ.Component {
	return Component(contactForm(p.Theme, p.Contact, p.CSRFToken))
}
