package content

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// AllTag is the filter value that selects every project.
const AllTag = "All"

// ErrUnknownTag is returned when a tag slug matches no derived tag.
var ErrUnknownTag = errors.New("content: unknown tag")

// Tags returns AllTag followed by every distinct project tag in order of
// first occurrence.
func Tags(projects []Project) []string {
	seen := make(map[string]struct{})
	tags := []string{AllTag}
	for _, p := range projects {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// Filter returns the projects carrying tag, keeping their order. AllTag
// returns projects unchanged.
func Filter(projects []Project, tag string) []Project {
	if tag == AllTag {
		return projects
	}
	filtered := []Project{}
	for _, p := range projects {
		if p.HasTag(tag) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// YearsSince returns the whole years between start and now's calendar year.
// A clock set before start yields zero.
func YearsSince(start int, now time.Time) int {
	if start <= 0 {
		return 0
	}
	return max(now.Year()-start, 0)
}

// TagSlug converts a tag to a URL path segment: letters and digits are kept
// lowercased, every other run of characters becomes a single dash.
func TagSlug(tag string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.TrimSpace(tag) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "tag"
	}
	return slug
}

// TagSlugs assigns every tag except AllTag a distinct slug. Tags whose
// slugs collide keep first-occurrence order: the first gets the plain slug,
// later ones get "-2", "-3" and so on.
func TagSlugs(tags []string) map[string]string {
	slugs := make(map[string]string, len(tags))
	used := make(map[string]bool, len(tags))
	for _, t := range tags {
		if t == AllTag {
			continue
		}
		if _, ok := slugs[t]; ok {
			continue
		}
		base := TagSlug(t)
		slug := base
		for n := 2; used[slug]; n++ {
			slug = base + "-" + strconv.Itoa(n)
		}
		used[slug] = true
		slugs[t] = slug
	}
	return slugs
}

// TagBySlug returns the tag in tags that TagSlugs assigns slug to. The
// AllTag entry never matches.
func TagBySlug(tags []string, slug string) (string, error) {
	for t, s := range TagSlugs(tags) {
		if s == slug {
			return t, nil
		}
	}
	return "", ErrUnknownTag
}
