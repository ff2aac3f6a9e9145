package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup writes HTML to w and keeps the first write error.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func component(fn func(m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{ctx: ctx, w: w}
		fn(m)
		return m.err
	})
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// open writes a start tag. attrs are name/value pairs; values are escaped.
func (m *markup) open(tag string, attrs ...string) {
	m.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		m.raw(" " + attrs[i] + `="` + templ.EscapeString(attrs[i+1]) + `"`)
	}
	m.raw(">")
}

// voidElements never take an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// close writes an end tag. Void elements are skipped.
func (m *markup) close(tag string) {
	if voidElements[tag] {
		return
	}
	m.raw("</" + tag + ">")
}

// elem writes a complete element with escaped text content.
func (m *markup) elem(tag, class, text string) {
	if class == "" {
		m.open(tag)
	} else {
		m.open(tag, "class", class)
	}
	m.text(text)
	m.close(tag)
}

func (m *markup) render(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

// href sanitises a URL for an href attribute.
func href(u string) string {
	return string(templ.URL(u))
}

// group renders components one after another.
func group(cs ...templ.Component) templ.Component {
	return component(func(m *markup) {
		for _, c := range cs {
			m.render(c)
		}
	})
}
