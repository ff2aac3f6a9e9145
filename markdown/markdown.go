// Package markdown renders the small subset of Markdown used in portfolio
// copy (paragraphs, bullet lists, emphasis, links and inline code) as templ
// components.
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
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`__(.+?)__`)
	reItalic           = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnderscore = regexp.MustCompile(`(^|\s)_([^_]+)_`)
	reInlineCode       = regexp.MustCompile("`([^`]+)`")
	reLink             = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Block returns a component rendering md as paragraphs and lists.
func Block(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		RenderBlock(&b, md)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Inline returns a component rendering a single run of text with inline
// formatting and no wrapping element.
func Inline(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, FormatInline(s))
		return err
	})
}

// RenderBlock writes the HTML for md to b. Blank lines separate paragraphs;
// lines starting with "- " form a bullet list.
func RenderBlock(b *strings.Builder, md string) {
	inList := false
	inPara := false

	closePara := func() {
		if inPara {
			b.WriteString("</p>")
			inPara = false
		}
	}
	closeList := func() {
		if inList {
			b.WriteString("</ul>")
			inList = false
		}
	}

	for _, raw := range strings.Split(md, "\n") {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		switch {
		case line == "":
			closePara()
			closeList()
		case strings.HasPrefix(line, "- "):
			closePara()
			if !inList {
				b.WriteString(`<ul class="md-list">`)
				inList = true
			}
			b.WriteString("<li>")
			b.WriteString(FormatInline(strings.TrimSpace(line[2:])))
			b.WriteString("</li>")
		default:
			closeList()
			if inPara {
				b.WriteString(" ")
			} else {
				b.WriteString("<p>")
				inPara = true
			}
			b.WriteString(FormatInline(line))
		}
	}
	closePara()
	closeList()
}

// ApplyOutsideTags applies fn only to text segments outside HTML tags, so
// formatting never touches attribute values such as href URLs.
func ApplyOutsideTags(s string, fn func(string) string) string {
	var b strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			b.WriteString(fn(s))
			break
		}
		if lt > 0 {
			b.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			b.WriteString(s[lt:])
			break
		}
		b.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return b.String()
}

// FormatInline escapes s and applies links, inline code, bold and italic.
func FormatInline(s string) string {
	escaped := html.EscapeString(s)

	var code []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reInlineCode.FindStringSubmatch(m)
		code = append(code, "<code>"+match[1]+"</code>")
		return "\x00C" + strconv.Itoa(len(code)-1) + "\x00"
	})

	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := `class="link"`
		if external(href) {
			attrs += ` target="_blank" rel="noreferrer"`
		}
		return `<a href="` + href + `" ` + attrs + `>` + match[1] + `</a>`
	})

	escaped = ApplyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldUnderscore.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = reItalicUnderscore.ReplaceAllString(seg, "$1<em>$2</em>")
		return seg
	})

	for i, c := range code {
		escaped = strings.Replace(escaped, "\x00C"+strconv.Itoa(i)+"\x00", c, 1)
	}
	return escaped
}

func external(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// SafeURL returns raw escaped for an attribute when it is a relative path,
// a fragment, or uses http, https, mailto or tel. Anything else yields "".
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
