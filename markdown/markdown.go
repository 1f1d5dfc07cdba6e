// Package markdown renders the small Markdown subset used in portfolio
// copy: paragraphs, bullet lists, and inline bold, italic, code and links.
package markdown

import (
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic = regexp.MustCompile(`\*([^*]+)\*`)
	reCode   = regexp.MustCompile("`([^`]+)`")
	// [text](url) and [text](url)^ for a new tab
	reLink = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
)

// Inline returns a component rendering s as a single line of inline
// Markdown, with no wrapping element.
func Inline(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, FormatInline(s))
		return err
	})
}

// Block returns a component rendering md as paragraphs and lists.
func Block(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, RenderBlock(md))
		return err
	})
}

// Paragraphs renders each entry as its own <p> with the given class.
func Paragraphs(paras []string, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		for _, p := range paras {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			b.WriteString("<p")
			if class != "" {
				b.WriteString(` class="` + html.EscapeString(class) + `"`)
			}
			b.WriteString(">")
			b.WriteString(FormatInline(p))
			b.WriteString("</p>")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

type blockWriter struct {
	b      strings.Builder
	inPara bool
	inList bool
}

func (w *blockWriter) closePara() {
	if w.inPara {
		w.b.WriteString("</p>")
		w.inPara = false
	}
}

func (w *blockWriter) closeList() {
	if w.inList {
		w.b.WriteString("</ul>")
		w.inList = false
	}
}

// RenderBlock converts md to HTML. Blank lines end a paragraph or list;
// lines starting with "- " or "* " are list items.
func RenderBlock(md string) string {
	var w blockWriter
	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		switch {
		case line == "":
			w.closePara()
			w.closeList()
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			w.closePara()
			if !w.inList {
				w.b.WriteString("<ul>")
				w.inList = true
			}
			w.b.WriteString("<li>")
			w.b.WriteString(FormatInline(strings.TrimSpace(line[2:])))
			w.b.WriteString("</li>")
		default:
			w.closeList()
			if w.inPara {
				w.b.WriteString(" ")
			} else {
				w.b.WriteString("<p>")
				w.inPara = true
			}
			w.b.WriteString(FormatInline(line))
		}
	}
	w.closePara()
	w.closeList()
	return w.b.String()
}

// outsideTags applies fn only to text between HTML tags, so formatting
// never rewrites attribute values.
func outsideTags(s string, fn func(string) string) string {
	var b strings.Builder
	for len(s) > 0 {
		lt := strings.IndexByte(s, '<')
		if lt < 0 {
			b.WriteString(fn(s))
			break
		}
		b.WriteString(fn(s[:lt]))
		gt := strings.IndexByte(s[lt:], '>')
		if gt < 0 {
			b.WriteString(s[lt:])
			break
		}
		b.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return b.String()
}

// FormatInline escapes s and applies inline formatting.
func FormatInline(s string) string {
	out := html.EscapeString(s)

	// Code spans are parked behind placeholders so emphasis skips them.
	var spans []string
	out = reCode.ReplaceAllStringFunc(out, func(m string) string {
		spans = append(spans, "<code>"+reCode.FindStringSubmatch(m)[1]+"</code>")
		return "\x00" + strconv.Itoa(len(spans)-1) + "\x00"
	})

	out = reLink.ReplaceAllStringFunc(out, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := `class="link"`
		if match[3] == "^" {
			attrs += ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `" ` + attrs + `>` + match[1] + `</a>`
	})

	out = outsideTags(out, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		return reItalic.ReplaceAllString(seg, "<em>$1</em>")
	})

	for i, span := range spans {
		out = strings.Replace(out, "\x00"+strconv.Itoa(i)+"\x00", span, 1)
	}
	return out
}

// Plain strips inline markers, for meta descriptions and feeds.
func Plain(s string) string {
	s = reLink.ReplaceAllString(s, "$1")
	s = reCode.ReplaceAllString(s, "$1")
	s = reBold.ReplaceAllString(s, "$1")
	return reItalic.ReplaceAllString(s, "$1")
}

// SafeURL returns an escaped href for raw, or "" when its scheme is not
// one of http, https, mailto or tel. Relative paths and fragments pass.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	u, err := url.Parse(val)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	}
	return ""
}
