package views

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/folio/analytics"
)

func adminShell(title, csrf string, body ...g.Node) g.Node {
	return Layout(SiteConfig{Name: "folio admin"}, PageMeta{Title: title}, Dark, "", csrf,
		Main(Class("mx-auto max-w-5xl px-6 py-16"), g.Group(body)),
	)
}

func csrfField(token string) g.Node {
	return Input(Type("hidden"), Name("_csrf"), Value(token))
}

// AdminLogin is the password form.
func AdminLogin(showError bool, csrf string) templ.Component {
	t := Dark
	return Component(adminShell("Sign in", csrf,
		Div(
			classes("mx-auto max-w-sm p-8", t.Card),
			H1(classes("text-2xl font-bold", t.Heading), g.Text("Admin")),
			g.If(showError, P(g.Attr("role", "alert"), Class("mt-4 text-sm text-red-400"), g.Text("Wrong password."))),
			g.El("form",
				Method("post"), Action("/admin/login/"),
				Class("mt-6 space-y-4"),
				csrfField(csrf),
				Label(g.Attr("for", "password"), classes("block text-sm", t.Muted), g.Text("Password")),
				Input(ID("password"), Name("password"), Type("password"), Required(), g.Attr("autocomplete", "current-password"), Class(t.Input)),
				Button(Type("submit"), Class(t.Button+" w-full justify-center"), g.Text("Sign in")),
			),
		),
	))
}

func adminNav(csrf string) g.Node {
	t := Dark
	return Div(
		Class("mb-10 flex flex-wrap items-center justify-between gap-4"),
		H1(classes("text-3xl font-bold", t.Heading), g.Text("Dashboard")),
		Div(
			Class("flex flex-wrap items-center gap-3 text-sm"),
			A(Href("/"), Class(t.NavIdle), g.Text("View site")),
			A(Href("/admin/images/"), Class(t.NavIdle), g.Text("Images")),
			A(Href("/metrics"), Class(t.NavIdle), g.Text("Metrics")),
			g.El("form", Method("post"), Action("/admin/reload/"), csrfField(csrf),
				Button(Type("submit"), Class(t.NavIdle), g.Text("Reload content"))),
			g.El("form", Method("post"), Action("/admin/logout/"), csrfField(csrf),
				Button(Type("submit"), Class(t.NavIdle), g.Text("Log out"))),
		),
	)
}

func statCard(label, value string) g.Node {
	t := Dark
	return Div(
		classes("p-5", t.Card),
		P(classes("text-xs uppercase tracking-wide", t.Muted), g.Text(label)),
		P(classes("mt-2 text-3xl font-bold", t.Heading), g.Text(value)),
	)
}

func funnelTable(rows []analytics.SectionStat) g.Node {
	t := Dark
	if len(rows) == 0 {
		return P(Class(t.Muted), g.Text("No reveals recorded yet."))
	}
	return Table(
		Class("w-full text-left text-sm"),
		THead(Tr(
			classes("border-b border-white/10", t.Muted),
			Th(Class("py-2"), g.Text("Section")),
			Th(Class("py-2"), g.Text("Reveals")),
			Th(Class("py-2"), g.Text("Visitors")),
			Th(Class("py-2"), g.Text("Reach")),
		)),
		TBody(g.Group(g.Map(rows, func(s analytics.SectionStat) g.Node {
			return Tr(
				Class("border-b border-white/5"),
				Td(classes("py-2 font-medium", t.Heading), g.Text(s.Section)),
				Td(Class("py-2"), g.Text(strconv.Itoa(s.Reveals))),
				Td(Class("py-2"), g.Text(strconv.Itoa(s.Visitors))),
				Td(Class("py-2"), g.Textf("%.0f%%", s.Reach)),
			)
		}))),
	)
}

func periodLinks(active string) g.Node {
	t := Dark
	return Div(
		Class("flex gap-2 text-xs"),
		g.Group(g.Map([]string{"today", "week", "month", "year"}, func(p string) g.Node {
			return A(Href("/admin/?period="+p), classes("rounded-full px-3 py-1", pick(p == active, t.Pill, t.NavIdle)), g.Text(p))
		})),
	)
}

func submissionRow(s Submission, csrf string) g.Node {
	t := Dark
	status := "text-green-400"
	if s.Status != "sent" {
		status = "text-red-400"
	}
	return Li(
		ID("submission-"+s.ID),
		classes("p-5", t.Card),
		Div(
			Class("flex flex-wrap items-baseline justify-between gap-2"),
			P(classes("font-semibold", t.Heading), g.Text(s.Subject)),
			Span(classes("text-xs", t.Muted), g.Text(s.CreatedAt.Format("2006-01-02 15:04"))),
		),
		P(classes("mt-1 text-sm", t.Text), g.Textf("%s <%s>", s.Name, s.Email)),
		P(classes("mt-3 whitespace-pre-line text-sm", t.Muted), g.Text(s.Message)),
		Div(
			Class("mt-3 flex items-center justify-between text-xs"),
			Span(Class(status), g.Text(s.Status), g.If(s.Error != "", g.Text(": "+s.Error))),
			Button(
				g.Attr("hx-delete", fmt.Sprintf("/admin/submissions/%s/", s.ID)),
				g.Attr("hx-target", "#submission-"+s.ID),
				g.Attr("hx-swap", "outerHTML"),
				g.Attr("hx-confirm", "Delete this message?"),
				g.Attr("hx-headers", fmt.Sprintf(`{"X-CSRF-Token":%q}`, csrf)),
				Class("text-red-400 hover:underline"),
				g.Text("Delete"),
			),
		),
	)
}

// AdminDashboard lists contact submissions and section reveal stats.
func AdminDashboard(d Dashboard) templ.Component {
	t := Dark
	total, visitors := 0, 0
	if d.Stats != nil {
		total, visitors = d.Stats.TotalReveals, d.Stats.UniqueVisitors
	}
	return Component(adminShell("Dashboard", d.CSRFToken,
		adminNav(d.CSRFToken),
		g.If(d.Message != "", P(g.Attr("role", "status"), classes("mb-6 p-4 text-sm", t.Card, t.Text), g.Text(d.Message))),

		Div(
			Class("grid gap-4 sm:grid-cols-2 lg:grid-cols-4"),
			statCard("Messages sent", strconv.Itoa(d.Counts["sent"])),
			statCard("Messages failed", strconv.Itoa(d.Counts["failed"])),
			statCard("Reveals", strconv.Itoa(total)),
			statCard("Visitors", strconv.Itoa(visitors)),
		),

		Div(
			classes("mt-10 p-6", t.Card),
			Div(
				Class("mb-4 flex items-center justify-between"),
				H2(classes("text-xl font-semibold", t.Heading), g.Text("Section reach")),
				periodLinks(d.Period),
			),
			funnelTable(d.Funnel),
			Div(
				Class("mt-4 flex flex-wrap gap-2 text-xs"),
				g.Group(g.Map(d.Seen, func(s SectionSeen) g.Node {
					return Span(
						g.Attr("data-seen", strconv.FormatBool(s.Seen)),
						classes("rounded-full px-3 py-1", pick(s.Seen, t.Pill, "border border-white/10 text-gray-500")),
						g.Text(s.Section),
					)
				})),
			),
		),

		H2(classes("mt-12 mb-4 text-xl font-semibold", t.Heading), g.Text("Messages")),
		g.If(len(d.Submissions) == 0, P(Class(t.Muted), g.Text("No messages yet."))),
		Ul(Class("space-y-4"), g.Group(g.Map(d.Submissions, func(s Submission) g.Node {
			return submissionRow(s, d.CSRFToken)
		}))),

		g.If(len(d.ContentFrom) > 0, Div(
			classes("mt-12 text-xs", t.Muted),
			P(g.Text("Content loaded from:")),
			Ul(Class("mt-1 list-disc pl-5"), g.Group(g.Map(d.ContentFrom, func(f string) g.Node { return Li(g.Text(f)) }))),
		)),
	))
}

// AdminImages is the project thumbnail manager.
func AdminImages(images []Image, csrf string) templ.Component {
	t := Dark
	return Component(adminShell("Images", csrf,
		Div(
			ID("admin-images"),
			A(Href("/admin/"), classes("text-sm", t.NavIdle), g.Text("Back to dashboard")),
			H1(classes("mt-4 text-3xl font-bold", t.Heading), g.Text("Images")),
			g.El("form",
				Method("post"), Action("/admin/images/upload/"),
				g.Attr("enctype", "multipart/form-data"),
				classes("mt-8 flex flex-wrap items-center gap-4 p-6", t.Card),
				csrfField(csrf),
				Input(Type("file"), Name("image"), Accept("image/*"), Required(), Class("text-sm")),
				Button(Type("submit"), Class(t.Button), g.Text("Upload")),
			),
			g.If(len(images) == 0, P(classes("mt-8", t.Muted), g.Text("No images uploaded."))),
			Div(
				Class("mt-8 grid gap-6 sm:grid-cols-2 lg:grid-cols-3"),
				g.Group(g.Map(images, func(img Image) g.Node {
					src := "/public/uploads/" + img.Filename
					return Div(
						classes("overflow-hidden", t.Card),
						Img(Src(src), Alt(img.OriginalName), g.Attr("loading", "lazy"), Class("aspect-video w-full object-cover")),
						Div(
							Class("p-4 text-xs"),
							P(classes("truncate font-medium", t.Heading), g.Text(img.Filename)),
							P(Class(t.Muted), g.Textf("%dx%d, %d KB", img.Width, img.Height, img.Size/1024)),
							Input(Type("text"), g.Attr("readonly", ""), Value(src), Class(t.Input+" mt-2 text-xs")),
							g.El("form",
								Method("post"), Action("/admin/images/"+img.Filename+"/delete/"),
								Class("mt-2"),
								csrfField(csrf),
								Button(Type("submit"), Class("text-red-400 hover:underline"), g.Text("Delete")),
							),
						),
					)
				})),
			),
		),
	))
}
