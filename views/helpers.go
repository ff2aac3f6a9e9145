package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/hsayar/folio/content"
)

// BuildURL joins path segments onto a base URL, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// personJSONLD produces a Schema.org Person block for the page owner.
func personJSONLD(d PageData) string {
	if d.Portfolio == nil {
		return ""
	}
	p := d.Portfolio.Profile
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     p.Name,
	}
	if d.Site.URL != "" {
		data["url"] = BuildURL(d.Site.URL)
	}
	if p.Headline != "" {
		data["jobTitle"] = p.Headline
	}
	if p.Email != "" {
		data["email"] = "mailto:" + p.Email
	}
	if p.Location != "" {
		data["address"] = map[string]string{
			"@type":           "PostalAddress",
			"addressLocality": p.Location,
		}
	}
	var sameAs []string
	for _, l := range []content.Link{p.LinkedIn, p.GitHub} {
		if u, ok := l.Get(); ok {
			sameAs = append(sameAs, u)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	if len(d.Portfolio.Skills) > 0 {
		data["knowsAbout"] = []string(d.Portfolio.Skills)
	}
	if len(d.Portfolio.Education) > 0 {
		data["alumniOf"] = map[string]string{
			"@type": "CollegeOrUniversity",
			"name":  d.Portfolio.Education[0].School,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
