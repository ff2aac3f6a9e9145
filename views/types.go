package views

import (
	"net/url"
	"strings"

	"github.com/hsayar/folio/content"
	"github.com/hsayar/folio/i18n"
)

// Theme is the page colour scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a stored value to a Theme, defaulting to dark.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Site holds site-wide settings the templates need.
type Site struct {
	URL         string // canonical base URL
	Description string
}

// Meta carries per-page OpenGraph and SEO metadata into the <head> template.
type Meta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	Image       string // og:image
}

// Routes builds the internal URLs a page links to. Prefix lets an exported
// site live under a sub-path. Slugs maps tags to their assigned URL slugs;
// tags missing from it fall back to content.TagSlug.
type Routes struct {
	Prefix string
	Slugs  map[string]string
}

// Home is the unfiltered page.
func (r Routes) Home() string {
	return r.Prefix + "/"
}

// Tag is the page filtered by tag. The "All" tag links home.
func (r Routes) Tag(tag string) string {
	if tag == content.AllTag {
		return r.Home()
	}
	slug, ok := r.Slugs[tag]
	if !ok {
		slug = content.TagSlug(tag)
	}
	return r.Prefix + "/tag/" + url.PathEscape(slug) + "/"
}

// Asset is the URL of an embedded static file.
func (r Routes) Asset(name string) string {
	return r.Prefix + "/public/" + strings.TrimPrefix(name, "/")
}

// Theme is the toggle endpoint.
func (r Routes) Theme() string {
	return r.Prefix + "/theme/"
}

// PageData is everything the root composition renders from: the read-only
// portfolio plus the derived view state for this request.
type PageData struct {
	Site      Site
	Meta      Meta
	Portfolio *content.Portfolio
	Tags      []string
	ActiveTag string
	Projects  []content.Project
	Theme     Theme
	Years     int
	Year      int
	Copy      i18n.Copy
	CSRFToken string
	Routes    Routes
}
