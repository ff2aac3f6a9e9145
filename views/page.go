package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/hsayar/folio/i18n"
	"github.com/hsayar/folio/markdown"
)

// Page renders the complete portfolio document in its fixed section order.
func Page(d PageData) templ.Component {
	return layout(d.Copy.Lang, d.Theme, d.Meta, d.Routes, d.CSRFToken, personJSONLD(d), group(
		Header(d),
		component(func(m *markup) { m.open("main") }),
		Hero(d),
		About(d),
		Projects(d),
		Skills(d),
		Education(d),
		Contact(d),
		component(func(m *markup) { m.close("main") }),
		Footer(d),
	))
}

func layout(lang string, theme Theme, meta Meta, routes Routes, csrfToken, jsonLD string, body templ.Component) templ.Component {
	return component(func(m *markup) {
		m.raw("<!DOCTYPE html>")
		m.open("html", "lang", lang, "data-theme", string(theme))
		m.open("head")
		m.raw(`<meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.elem("title", "", meta.Title)
		if meta.Description != "" {
			m.open("meta", "name", "description", "content", meta.Description)
			m.open("meta", "property", "og:description", "content", meta.Description)
		}
		m.open("meta", "property", "og:title", "content", meta.Title)
		m.open("meta", "property", "og:type", "content", "profile")
		if meta.URL != "" {
			m.open("link", "rel", "canonical", "href", href(meta.URL))
			m.open("meta", "property", "og:url", "content", meta.URL)
		}
		if meta.Image != "" {
			m.open("meta", "property", "og:image", "content", meta.Image)
			m.open("meta", "name", "twitter:card", "content", "summary_large_image")
		}
		if csrfToken != "" {
			m.open("meta", "name", "csrf-token", "content", csrfToken)
		}
		m.open("link", "rel", "stylesheet", "href", routes.Asset("folio.css"))
		m.open("script", "src", routes.Asset("folio.js"), "defer", "")
		m.close("script")
		if jsonLD != "" {
			m.open("script", "type", "application/ld+json")
			m.raw(jsonLD)
			m.close("script")
		}
		m.close("head")
		m.open("body")
		m.raw(`<div class="backdrop" aria-hidden="true"><div class="glow"></div><div class="orb"></div></div>`)
		m.render(body)
		m.close("body")
		m.close("html")
	})
}

// Header is the sticky navigation bar with the theme toggle.
func Header(d PageData) templ.Component {
	c := d.Copy
	return component(func(m *markup) {
		m.open("header", "class", "site-header")
		m.open("div", "class", "container header-row")
		m.open("a", "class", "brand", "href", href(d.Routes.Home()))
		m.text(d.Portfolio.Profile.Name)
		m.close("a")
		m.open("nav", "class", "nav")
		m.render(NavLink("#about", c.NavAbout))
		m.render(NavLink("#projects", c.NavProjects))
		m.render(NavLink("#skills", c.NavSkills))
		m.render(NavLink("#education", c.NavEducation))
		m.render(NavLink("#contact", c.NavContact))
		m.close("nav")
		m.render(ThemeToggle(d.Routes.Theme(), d.CSRFToken, c))
		m.close("div")
		m.close("header")
	})
}

// Hero is the banner with headline, summary, calls to action and stats.
func Hero(d PageData) templ.Component {
	p := d.Portfolio.Profile
	c := d.Copy
	return component(func(m *markup) {
		m.open("section", "class", "hero container")
		m.open("div", "class", "hero-main reveal")
		if p.Tagline != "" {
			m.open("div", "class", "kicker")
			m.render(IconRocket.SVG("icon icon-xs"))
			m.raw(" ")
			m.text(p.Tagline)
			m.close("div")
		}
		m.elem("h1", "hero-title", p.Headline)
		m.open("div", "class", "hero-summary")
		m.render(markdown.Block(p.Summary))
		m.close("div")

		m.open("div", "class", "hero-actions")
		m.open("a", "href", "#projects", "class", "btn btn-primary")
		m.text(c.ExploreProjects)
		m.raw(" ")
		m.render(IconArrowRight.SVG("icon icon-sm"))
		m.close("a")
		if cv, ok := p.CV.Get(); ok {
			m.render(ExternalLink(cv, "btn btn-outline", group(
				IconDownload.SVG("icon icon-sm"),
				templ.Raw(" "+templ.EscapeString(c.DownloadCV)),
			)))
		}
		m.close("div")

		if len(p.Focus) > 0 {
			m.open("div", "class", "badges")
			for _, f := range p.Focus {
				m.render(Badge(f))
			}
			m.close("div")
		}

		m.open("div", "class", "hero-meta")
		if p.CareerStart > 0 {
			m.text(c.Years(d.Years))
			if p.Location != "" {
				m.raw(" • ")
			}
		}
		m.text(p.Location)
		m.close("div")
		m.close("div")

		if len(p.Stats) > 0 {
			m.open("div", "class", "hero-stats reveal")
			m.open("div", "class", "grid grid-3")
			for _, s := range p.Stats {
				m.render(Stat(IconByName(s.Icon), s.Label, s.Value))
			}
			m.close("div")
			m.close("div")
		}
		m.close("section")
	})
}

// About shows the long-form introduction and the contact card.
func About(d PageData) templ.Component {
	p := d.Portfolio.Profile
	c := d.Copy
	body := component(func(m *markup) {
		m.open("div", "class", "grid about-grid")
		m.open("div", "class", "about-text reveal")
		m.render(markdown.Block(p.About))
		m.close("div")
		m.open("div", "class", "card reveal")
		m.elem("div", "card-title", c.ContactCardTitle)
		m.open("div", "class", "contact-links")
		if p.Email != "" {
			m.open("a", "class", "link", "href", href("mailto:"+p.Email))
			m.render(IconMail.SVG("icon icon-sm"))
			m.raw(" ")
			m.text(p.Email)
			m.close("a")
		}
		if u, ok := p.LinkedIn.Get(); ok {
			m.render(ExternalLink(u, "link", group(IconLinkedIn.SVG("icon icon-sm"), templ.Raw(" LinkedIn"))))
		}
		if u, ok := p.GitHub.Get(); ok {
			m.render(ExternalLink(u, "link", group(IconGitHub.SVG("icon icon-sm"), templ.Raw(" GitHub"))))
		}
		m.close("div")
		m.close("div")
		m.close("div")
	})
	return Section("about", c.AboutTitle, c.AboutSubtitle, body)
}

// ProjectsBody is the swappable part of the projects section: the filter
// chips and the filtered cards.
func ProjectsBody(d PageData) templ.Component {
	return component(func(m *markup) {
		m.open("div", "id", "projects-body", "data-active-tag", d.ActiveTag)
		m.open("div", "class", "chips reveal")
		for _, t := range d.Tags {
			m.render(Chip(t, d.Routes.Tag(t), t == d.ActiveTag))
		}
		m.close("div")
		if len(d.Projects) == 0 {
			m.elem("p", "empty", d.Copy.ProjectsEmpty)
		} else {
			m.open("div", "class", "grid grid-2")
			for _, p := range d.Projects {
				m.render(ProjectCard(p, d.Copy))
			}
			m.close("div")
		}
		m.close("div")
	})
}

// Projects is the filterable project section.
func Projects(d PageData) templ.Component {
	return Section("projects", d.Copy.ProjectsTitle, d.Copy.ProjectsSubtitle, ProjectsBody(d))
}

// Skills renders the skill cloud, the skill stats and the interests list.
func Skills(d PageData) templ.Component {
	pf := d.Portfolio
	c := d.Copy
	body := component(func(m *markup) {
		m.open("div", "class", "chips reveal")
		for _, s := range pf.Skills {
			m.elem("span", "chip chip-static", s)
		}
		m.close("div")
		if len(pf.SkillStats) > 0 {
			m.open("div", "class", "grid grid-3 spaced")
			for _, s := range pf.SkillStats {
				m.render(Stat(IconByName(s.Icon), s.Label, s.Value))
			}
			m.close("div")
		}
		if len(pf.Interests) > 0 {
			m.open("div", "class", "interests")
			m.elem("h3", "card-title", c.InterestsTitle)
			m.open("ul", "class", "interest-list")
			for _, in := range pf.Interests {
				m.elem("li", "", in)
			}
			m.close("ul")
			m.close("div")
		}
	})
	return Section("skills", c.SkillsTitle, c.SkillsSubtitle, body)
}

// Education lists schools in content order.
func Education(d PageData) templ.Component {
	c := d.Copy
	body := component(func(m *markup) {
		m.open("div", "class", "grid")
		for _, e := range d.Portfolio.Education {
			m.open("div", "class", "card reveal")
			m.elem("div", "card-title", e.School)
			m.elem("div", "muted", e.Degree)
			if e.Details != "" {
				m.elem("div", "small", e.Details)
			}
			if e.Period != "" {
				m.elem("div", "small", e.Period)
			}
			m.close("div")
		}
		m.close("div")
	})
	return Section("education", c.EducationTitle, c.EducationSubtitle, body)
}

// Contact is the closing call to action.
func Contact(d PageData) templ.Component {
	p := d.Portfolio.Profile
	c := d.Copy
	body := component(func(m *markup) {
		m.open("div", "class", "card contact-card reveal")
		m.open("div")
		m.elem("div", "contact-prompt", c.ContactPrompt)
		m.elem("p", "muted", c.ContactBody)
		m.close("div")
		m.open("div", "class", "contact-actions")
		if p.Email != "" {
			m.open("a", "class", "btn btn-primary", "href", href("mailto:"+p.Email))
			m.render(IconMail.SVG("icon icon-sm"))
			m.raw(" ")
			m.text(c.EmailButton)
			m.close("a")
		}
		if u, ok := p.LinkedIn.Get(); ok {
			m.render(ExternalLink(u, "btn btn-outline", group(IconLinkedIn.SVG("icon icon-sm"), templ.Raw(" LinkedIn"))))
		}
		m.close("div")
		m.close("div")
	})
	return Section("contact", c.ContactTitle, c.ContactSubtitle, body)
}

// Footer carries the copyright line.
func Footer(d PageData) templ.Component {
	return component(func(m *markup) {
		m.open("footer", "class", "site-footer")
		m.text("© " + strconv.Itoa(d.Year) + " " + d.Portfolio.Profile.Name + ". " + d.Copy.FooterRights)
		m.close("footer")
	})
}

// NotFound is the 404 page.
func NotFound(c i18n.Copy, theme Theme, routes Routes) templ.Component {
	return errorPage(c.NotFoundTitle, c.NotFoundBody, c, theme, routes)
}

// ServerError is the 500 page.
func ServerError(c i18n.Copy, theme Theme, routes Routes) templ.Component {
	return errorPage(c.ServerErrorTitle, c.ServerErrorBody, c, theme, routes)
}

func errorPage(title, body string, c i18n.Copy, theme Theme, routes Routes) templ.Component {
	lang := c.Lang
	if lang == "" {
		lang = "en"
	}
	return layout(lang, theme, Meta{Title: title}, routes, "", "", component(func(m *markup) {
		m.open("main", "class", "container error-page")
		m.elem("h1", "hero-title", title)
		m.elem("p", "muted", body)
		m.open("a", "class", "btn btn-primary", "href", href(routes.Home()))
		m.text(c.BackHome)
		m.close("a")
		m.close("main")
	}))
}
