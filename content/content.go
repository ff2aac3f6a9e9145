// Package content holds the portfolio data tree: the person, their projects,
// skills and education. A Portfolio is built once at startup and shared
// read-only by every page render.
package content

import "slices"

// LinkKind identifies the role of a project link.
type LinkKind string

const (
	LinkDemo LinkKind = "demo"
	LinkRepo LinkKind = "repo"
	LinkDoc  LinkKind = "doc"
)

// LinkKinds lists the recognized kinds in display order.
var LinkKinds = []LinkKind{LinkDemo, LinkRepo, LinkDoc}

// placeholderURL is the marker older content files use for "not provided yet".
const placeholderURL = "#"

// Link is an outbound URL that may be absent. The zero value is absent.
type Link string

// Get returns the URL and whether it is present. Empty values and the "#"
// placeholder both count as absent.
func (l Link) Get() (string, bool) {
	if l == "" || l == placeholderURL {
		return "", false
	}
	return string(l), true
}

// Present reports whether the link carries a real URL.
func (l Link) Present() bool {
	_, ok := l.Get()
	return ok
}

// Portfolio is the root of the content tree.
type Portfolio struct {
	Profile    Profile          `koanf:"profile"     json:"profile"`
	Education  []EducationEntry `koanf:"education"   json:"education"   validate:"dive"`
	Skills     SkillSet         `koanf:"skills"      json:"skills"`
	SkillStats []Stat           `koanf:"skill_stats" json:"skill_stats" validate:"dive"`
	Projects   []Project        `koanf:"projects"    json:"projects"    validate:"unique=Title,dive"`
	Interests  InterestSet      `koanf:"interests"   json:"interests"`
}

// Profile describes the person the page is about.
type Profile struct {
	Name        string   `koanf:"name"         json:"name"      validate:"required"`
	Headline    string   `koanf:"headline"     json:"headline"`
	Tagline     string   `koanf:"tagline"      json:"tagline"`
	Summary     string   `koanf:"summary"      json:"summary"`
	About       string   `koanf:"about"        json:"about"`
	Location    string   `koanf:"location"     json:"location"`
	Email       string   `koanf:"email"        json:"email"`
	LinkedIn    Link     `koanf:"linkedin"     json:"linkedin,omitempty"`
	GitHub      Link     `koanf:"github"       json:"github,omitempty"`
	CV          Link     `koanf:"cv"           json:"cv,omitempty"`
	CareerStart int      `koanf:"career_start" json:"career_start" validate:"omitempty,min=1900"`
	Focus       []string `koanf:"focus"        json:"focus"`
	Stats       []Stat   `koanf:"stats"        json:"stats"        validate:"dive"`
}

// EducationEntry is one school in the education list.
type EducationEntry struct {
	School  string `koanf:"school"  json:"school" validate:"required"`
	Degree  string `koanf:"degree"  json:"degree"`
	Details string `koanf:"details" json:"details"`
	Period  string `koanf:"period"  json:"period"`
}

// Stat is a small labelled tile with an icon.
type Stat struct {
	Icon  string `koanf:"icon"  json:"icon"  validate:"omitempty,oneof=cpu smartphone database sparkles rocket mail github linkedin download"`
	Label string `koanf:"label" json:"label" validate:"required"`
	Value string `koanf:"value" json:"value"`
}

// Project is a portfolio card. Title doubles as its display key.
type Project struct {
	Title       string            `koanf:"title"       json:"title"  validate:"required"`
	Tags        []string          `koanf:"tags"        json:"tags"`
	Description string            `koanf:"description" json:"description"`
	Highlights  []string          `koanf:"highlights"  json:"highlights"`
	Links       map[LinkKind]Link `koanf:"links"       json:"links,omitempty" validate:"dive,keys,oneof=demo repo doc,endkeys"`
	Badge       string            `koanf:"badge"       json:"badge,omitempty"`
}

// Link returns the project's URL for kind, if one was provided.
func (p Project) Link(kind LinkKind) (string, bool) {
	return p.Links[kind].Get()
}

// HasTag reports whether the project carries tag exactly.
func (p Project) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// SkillSet is rendered verbatim as a chip cloud.
type SkillSet []string

// InterestSet is a free-text list shown under the skills section.
type InterestSet []string
