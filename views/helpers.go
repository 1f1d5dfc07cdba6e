package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/markdown"
	"github.com/eringen/folio/reveal"
)

// Component adapts a gomponents node to templ.Component.
func Component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// markdownBlock embeds a templ component in a node tree.
func markdownBlock(c templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(context.Background(), w)
	})
}

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// icon renders a lucide icon through iconify.
func icon(name, class string) g.Node {
	return Span(
		Class(strings.TrimSpace("iconify inline-block "+class)),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

// inline renders s as inline markdown.
func inline(s string) g.Node {
	return g.Raw(markdown.FormatInline(s))
}

// attrs turns a map into attribute nodes in a stable order.
func attrs(m map[string]string) g.Node {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	nodes := make([]g.Node, len(keys))
	for i, k := range keys {
		nodes[i] = g.Attr(k, m[k])
	}
	return g.Group(nodes)
}

// revealAttrs marks an element for the browser's visibility trigger.
func revealAttrs(p Page, section string) g.Node {
	return attrs(reveal.Attrs(section, p.RevealFor(section)))
}

// stagger sets the per-card transition delay.
func stagger(i int, step time.Duration) g.Node {
	return Style(fmt.Sprintf("--reveal-delay:%dms", int(step/time.Millisecond)*i))
}

// external marks a link that opens in a new tab.
func external() g.Node {
	return g.Group([]g.Node{Target("_blank"), Rel("noopener noreferrer")})
}

func classes(parts ...string) g.Node {
	var keep []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keep = append(keep, p)
		}
	}
	return Class(strings.Join(keep, " "))
}

// PersonJsonLD produces a Schema.org Person block for the profile.
func PersonJsonLD(site SiteConfig, p content.Portfolio) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     p.Profile.FullName(),
		"jobTitle": p.Profile.Title,
		"url":      buildURL(site.URL),
	}
	if p.Profile.Summary != "" {
		data["description"] = markdown.Plain(p.Profile.Summary)
	}
	if p.Profile.Email != "" {
		data["email"] = "mailto:" + p.Profile.Email
	}
	var sameAs []string
	for _, s := range p.Social {
		if s.External() {
			sameAs = append(sameAs, s.Href)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// CreativeWorkJsonLD produces a Schema.org CreativeWork block for a project.
func CreativeWorkJsonLD(site SiteConfig, author string, pr content.Project) string {
	projectURL := buildURL(site.URL, "projects", pr.Slug)
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "CreativeWork",
		"name":        pr.Title,
		"description": markdown.Plain(pr.Description),
		"url":         projectURL,
	}
	if author != "" {
		data["author"] = map[string]string{"@type": "Person", "name": author}
	}
	if len(pr.Tags) > 0 {
		data["keywords"] = strings.Join(pr.Tags, ", ")
	}
	if pr.GitHub != "" {
		data["codeRepository"] = pr.GitHub
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// sectionTitle is the heading with an accent underline.
func sectionTitle(t Theme, title, subtitle string) g.Node {
	return Div(
		Class("mb-16 text-center"),
		H2(
			classes("text-4xl font-bold md:text-5xl", t.Heading),
			g.Text(title),
		),
		Div(classes("mx-auto mt-4 h-1 w-24 rounded-full bg-gradient-to-r", t.Accent)),
		g.If(subtitle != "", P(classes("mx-auto mt-6 max-w-2xl text-lg", t.Muted), g.Text(subtitle))),
	)
}
