package views

import (
	"github.com/a-h/templ"

	"github.com/hsayar/folio/content"
	"github.com/hsayar/folio/i18n"
	"github.com/hsayar/folio/markdown"
)

// Section wraps a titled page section.
func Section(id, title, subtitle string, body templ.Component) templ.Component {
	return component(func(m *markup) {
		m.open("section", "id", id, "class", "section container")
		m.open("div", "class", "reveal")
		m.open("h2", "class", "section-title")
		m.render(IconSparkles.SVG("icon icon-lg"))
		m.raw(" ")
		m.text(title)
		m.close("h2")
		if subtitle != "" {
			m.elem("p", "section-subtitle", subtitle)
		}
		m.close("div")
		m.open("div", "class", "section-body")
		m.render(body)
		m.close("div")
		m.close("section")
	})
}

// ChipClass returns the CSS classes for a filter chip.
func ChipClass(active bool) string {
	if active {
		return "chip chip-active"
	}
	return "chip"
}

// Chip is a tag filter link. Following it selects the tag.
func Chip(label, target string, active bool) templ.Component {
	return component(func(m *markup) {
		attrs := []string{
			"href", href(target + "#projects"),
			"class", ChipClass(active),
			"data-partial", target,
		}
		if active {
			attrs = append(attrs, "aria-current", "true")
		}
		m.open("a", attrs...)
		m.text(label)
		m.close("a")
	})
}

// Stat is a small icon tile with a label and a value.
func Stat(icon Icon, label, value string) templ.Component {
	return component(func(m *markup) {
		m.open("div", "class", "card stat")
		m.open("div", "class", "stat-icon")
		m.render(icon.SVG("icon"))
		m.close("div")
		m.open("div")
		m.elem("div", "stat-label", label)
		m.elem("div", "stat-value", value)
		m.close("div")
		m.close("div")
	})
}

// Badge is a pill with a sparkles glyph.
func Badge(label string) templ.Component {
	return component(func(m *markup) {
		m.open("span", "class", "badge")
		m.render(IconSparkles.SVG("icon icon-xs"))
		m.raw(" ")
		m.text(label)
		m.close("span")
	})
}

// NavLink is a header navigation entry.
func NavLink(target, label string) templ.Component {
	return component(func(m *markup) {
		m.open("a", "href", href(target), "class", "nav-link")
		m.text(label)
		m.close("a")
	})
}

// ExternalLink opens target in a new tab.
func ExternalLink(target, class string, body templ.Component) templ.Component {
	return component(func(m *markup) {
		m.open("a", "class", class, "href", href(target), "target", "_blank", "rel", "noreferrer")
		m.render(body)
		m.close("a")
	})
}

func linkLabel(c i18n.Copy, kind content.LinkKind) string {
	switch kind {
	case content.LinkDemo:
		return c.LinkDemo
	case content.LinkRepo:
		return c.LinkRepo
	default:
		return c.LinkDoc
	}
}

// ProjectCard renders one project. Links that are absent produce no anchor.
func ProjectCard(p content.Project, c i18n.Copy) templ.Component {
	return component(func(m *markup) {
		m.open("article", "class", "card project-card", "data-title", p.Title)
		m.open("div", "class", "project-head")
		m.elem("h3", "project-title", p.Title)
		m.open("div", "class", "project-tags")
		for _, t := range p.Tags {
			m.elem("span", "tag", t)
		}
		m.close("div")
		m.close("div")
		if p.Badge != "" {
			m.elem("div", "project-badge", p.Badge)
		}
		m.open("div", "class", "project-description")
		m.render(markdown.Block(p.Description))
		m.close("div")
		if len(p.Highlights) > 0 {
			m.open("ul", "class", "project-highlights")
			for _, h := range p.Highlights {
				m.open("li")
				m.render(markdown.Inline(h))
				m.close("li")
			}
			m.close("ul")
		}
		m.open("div", "class", "project-links")
		for _, kind := range content.LinkKinds {
			url, ok := p.Link(kind)
			if !ok {
				continue
			}
			m.open("a", "class", "link", "href", href(url), "target", "_blank", "rel", "noreferrer", "data-kind", string(kind))
			m.text(linkLabel(c, kind))
			m.close("a")
		}
		m.close("div")
		m.close("article")
	})
}

// ThemeToggle is a form posting to the toggle endpoint. Both glyphs are
// emitted; the stylesheet shows the one matching the current theme so the
// button stays correct when a script flips the theme client side.
func ThemeToggle(action, csrfToken string, c i18n.Copy) templ.Component {
	return component(func(m *markup) {
		m.open("form", "method", "post", "action", action, "class", "theme-form", "data-theme-toggle", "")
		if csrfToken != "" {
			m.open("input", "type", "hidden", "name", "_csrf", "value", csrfToken)
		}
		m.open("button", "type", "submit", "class", "btn btn-small", "aria-label", c.ThemeLabel)
		m.open("span", "class", "when-dark")
		m.render(IconSun.SVG("icon icon-sm"))
		m.raw(" ")
		m.text(c.ThemeToLight)
		m.close("span")
		m.open("span", "class", "when-light")
		m.render(IconMoon.SVG("icon icon-sm"))
		m.raw(" ")
		m.text(c.ThemeToDark)
		m.close("span")
		m.close("button")
		m.close("form")
	})
}
