package views

import "github.com/a-h/templ"

// Icon is a glyph the page can draw. Content files refer to icons by name;
// the name is resolved to an Icon once, when the page is composed.
type Icon int

const (
	IconSparkles Icon = iota
	IconCPU
	IconSmartphone
	IconDatabase
	IconRocket
	IconMail
	IconGitHub
	IconLinkedIn
	IconDownload
	IconSun
	IconMoon
	IconArrowRight
)

var iconNames = map[string]Icon{
	"sparkles":    IconSparkles,
	"cpu":         IconCPU,
	"smartphone":  IconSmartphone,
	"database":    IconDatabase,
	"rocket":      IconRocket,
	"mail":        IconMail,
	"github":      IconGitHub,
	"linkedin":    IconLinkedIn,
	"download":    IconDownload,
	"sun":         IconSun,
	"moon":        IconMoon,
	"arrow-right": IconArrowRight,
}

// lucide outlines, 24x24 viewBox.
var iconPaths = map[Icon]string{
	IconSparkles:   `<path d="m12 3-1.9 5.8a2 2 0 0 1-1.3 1.3L3 12l5.8 1.9a2 2 0 0 1 1.3 1.3L12 21l1.9-5.8a2 2 0 0 1 1.3-1.3L21 12l-5.8-1.9a2 2 0 0 1-1.3-1.3Z"/>`,
	IconCPU:        `<rect x="4" y="4" width="16" height="16" rx="2"/><rect x="9" y="9" width="6" height="6"/><path d="M15 2v2M15 20v2M2 15h2M2 9h2M20 15h2M20 9h2M9 2v2M9 20v2"/>`,
	IconSmartphone: `<rect x="5" y="2" width="14" height="20" rx="2" ry="2"/><path d="M12 18h.01"/>`,
	IconDatabase:   `<ellipse cx="12" cy="5" rx="9" ry="3"/><path d="M3 5v14a9 3 0 0 0 18 0V5"/><path d="M3 12a9 3 0 0 0 18 0"/>`,
	IconRocket:     `<path d="M4.5 16.5c-1.5 1.26-2 5-2 5s3.74-.5 5-2c.71-.84.7-2.13-.09-2.91a2.18 2.18 0 0 0-2.91-.09z"/><path d="m12 15-3-3a22 22 0 0 1 2-3.95A12.88 12.88 0 0 1 22 2c0 2.72-.78 7.5-6 11a22.35 22.35 0 0 1-4 2z"/>`,
	IconMail:       `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	IconGitHub:     `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.4 5.4 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/>`,
	IconLinkedIn:   `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"/><rect width="4" height="12" x="2" y="9"/><circle cx="4" cy="4" r="2"/>`,
	IconDownload:   `<path d="M21 15v4a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-4"/><polyline points="7 10 12 15 17 10"/><line x1="12" x2="12" y1="15" y2="3"/>`,
	IconSun:        `<circle cx="12" cy="12" r="4"/><path d="M12 2v2M12 20v2M4.93 4.93l1.41 1.41M17.66 17.66l1.41 1.41M2 12h2M20 12h2M6.34 17.66l-1.41 1.41M19.07 4.93l-1.41 1.41"/>`,
	IconMoon:       `<path d="M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"/>`,
	IconArrowRight: `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
}

// IconByName resolves a content icon name. Unknown names draw sparkles.
func IconByName(name string) Icon {
	if icon, ok := iconNames[name]; ok {
		return icon
	}
	return IconSparkles
}

// SVG renders the icon inline with the given CSS class.
func (i Icon) SVG(class string) templ.Component {
	return component(func(m *markup) {
		m.open("svg",
			"class", class,
			"xmlns", "http://www.w3.org/2000/svg",
			"viewBox", "0 0 24 24",
			"fill", "none",
			"stroke", "currentColor",
			"stroke-width", "2",
			"stroke-linecap", "round",
			"stroke-linejoin", "round",
			"aria-hidden", "true",
		)
		m.raw(iconPaths[i])
		m.close("svg")
	})
}
