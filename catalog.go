package folio

import (
	"slices"

	"github.com/hsayar/folio/content"
	"github.com/hsayar/folio/views"
)

// ErrNotFound is returned when a tag slug matches no tag.
var ErrNotFound = content.ErrUnknownTag

// Catalog is the read-only view of the portfolio shared by every request. The
// tag list is derived once; nothing is written after construction, so no
// locking is needed.
type Catalog struct {
	portfolio *content.Portfolio
	tags      []string
	slugs     map[string]string // tag -> slug
	bySlug    map[string]string // slug -> tag
}

// NewCatalog derives the tag list of p and gives every tag a distinct slug.
func NewCatalog(p *content.Portfolio) *Catalog {
	tags := content.Tags(p.Projects)
	slugs := content.TagSlugs(tags)
	bySlug := make(map[string]string, len(slugs))
	for t, s := range slugs {
		bySlug[s] = t
	}
	return &Catalog{portfolio: p, tags: tags, slugs: slugs, bySlug: bySlug}
}

// Portfolio returns the underlying content.
func (c *Catalog) Portfolio() *content.Portfolio {
	return c.portfolio
}

// ListProjects returns projects carrying tag in content order. An empty tag
// or "All" returns every project.
func (c *Catalog) ListProjects(tag string) []content.Project {
	if tag == "" {
		tag = content.AllTag
	}
	return content.Filter(c.portfolio.Projects, tag)
}

// ListTags returns "All" followed by every distinct tag in first-occurrence
// order. The slice is a copy.
func (c *Catalog) ListTags() []string {
	return slices.Clone(c.tags)
}

// TagSlug returns the URL slug assigned to tag.
func (c *Catalog) TagSlug(tag string) string {
	if s, ok := c.slugs[tag]; ok {
		return s
	}
	return content.TagSlug(tag)
}

// TagBySlug resolves a URL slug to its tag.
func (c *Catalog) TagBySlug(slug string) (string, error) {
	t, ok := c.bySlug[slug]
	if !ok {
		return "", ErrNotFound
	}
	return t, nil
}

// Routes returns page routes that link tags by their assigned slugs.
func (c *Catalog) Routes() views.Routes {
	return views.Routes{Slugs: c.slugs}
}
