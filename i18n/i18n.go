// Package i18n holds the interface copy of the portfolio page and resolves
// which language a request should be served in.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Copy is the translatable text surrounding the portfolio content.
type Copy struct {
	Lang string

	NavAbout     string
	NavProjects  string
	NavSkills    string
	NavEducation string
	NavContact   string

	ThemeToLight string
	ThemeToDark  string
	ThemeLabel   string

	ExploreProjects string
	DownloadCV      string

	AboutTitle        string
	AboutSubtitle     string
	ContactCardTitle  string
	ProjectsTitle     string
	ProjectsSubtitle  string
	ProjectsEmpty     string
	SkillsTitle       string
	SkillsSubtitle    string
	InterestsTitle    string
	EducationTitle    string
	EducationSubtitle string
	ContactTitle      string
	ContactSubtitle   string
	ContactPrompt     string
	ContactBody       string
	EmailButton       string

	LinkDemo string
	LinkRepo string
	LinkDoc  string

	FooterRights string

	NotFoundTitle    string
	NotFoundBody     string
	ServerErrorTitle string
	ServerErrorBody  string
	BackHome         string

	tag language.Tag
}

// Years formats the experience line, e.g. "7+ years of software/AI experience".
func (c Copy) Years(n int) string {
	return message.NewPrinter(c.tag).Sprintf(yearsKey, n)
}

const yearsKey = "%d+ years of software/AI experience"

func init() {
	_ = message.SetString(language.Turkish, yearsKey, "%d+ yıl yazılım/AI deneyimi")
}

var english = Copy{
	Lang:              "en",
	NavAbout:          "About",
	NavProjects:       "Projects",
	NavSkills:         "Skills",
	NavEducation:      "Education",
	NavContact:        "Contact",
	ThemeToLight:      "Light",
	ThemeToDark:       "Dark",
	ThemeLabel:        "Toggle theme",
	ExploreProjects:   "Explore Projects",
	DownloadCV:        "Download CV",
	AboutTitle:        "About",
	AboutSubtitle:     "Short profile and contact",
	ContactCardTitle:  "Contact",
	ProjectsTitle:     "Projects",
	ProjectsSubtitle:  "Filterable cards and highlights",
	ProjectsEmpty:     "No projects carry this tag yet.",
	SkillsTitle:       "Skills",
	SkillsSubtitle:    "Technology cloud and capabilities",
	InterestsTitle:    "Interests",
	EducationTitle:    "Education",
	EducationSubtitle: "Academic background",
	ContactTitle:      "Contact",
	ContactSubtitle:   "For projects, opportunities or collaborations",
	ContactPrompt:     "Shall we work together?",
	ContactBody:       "Leave a quick message and I will get back to you.",
	EmailButton:       "Email",
	LinkDemo:          "Demo",
	LinkRepo:          "Repo",
	LinkDoc:           "Doc",
	FooterRights:      "All rights reserved.",
	NotFoundTitle:     "Page not found",
	NotFoundBody:      "The page you are looking for does not exist.",
	ServerErrorTitle:  "Something went wrong",
	ServerErrorBody:   "The page could not be rendered. Please try again later.",
	BackHome:          "Back to the portfolio",
	tag:               language.English,
}

var turkish = Copy{
	Lang:              "tr",
	NavAbout:          "Hakkımda",
	NavProjects:       "Projeler",
	NavSkills:         "Yetkinlikler",
	NavEducation:      "Eğitim",
	NavContact:        "İletişim",
	ThemeToLight:      "Açık",
	ThemeToDark:       "Koyu",
	ThemeLabel:        "Temayı değiştir",
	ExploreProjects:   "Projeleri Keşfet",
	DownloadCV:        "CV’yi İndir",
	AboutTitle:        "About",
	AboutSubtitle:     "Kısa profil ve iletişim",
	ContactCardTitle:  "İletişim",
	ProjectsTitle:     "Projects",
	ProjectsSubtitle:  "Filtrelenebilir kartlar ve öne çıkanlar",
	ProjectsEmpty:     "Bu etikete sahip proje henüz yok.",
	SkillsTitle:       "Skills",
	SkillsSubtitle:    "Teknoloji bulutu ve yetkinlikler",
	InterestsTitle:    "İlgi alanları",
	EducationTitle:    "Education",
	EducationSubtitle: "Akademik geçmiş",
	ContactTitle:      "Contact",
	ContactSubtitle:   "Projeler, iş fırsatları veya işbirlikleri için",
	ContactPrompt:     "Beraber çalışalım mı?",
	ContactBody:       "Hızlı bir mesaj bırakın; uygun zamanda dönüş yapayım.",
	EmailButton:       "E‑posta",
	LinkDemo:          "Demo",
	LinkRepo:          "Repo",
	LinkDoc:           "Doc",
	FooterRights:      "Tüm hakları saklıdır.",
	NotFoundTitle:     "Sayfa bulunamadı",
	NotFoundBody:      "Aradığınız sayfa mevcut değil.",
	ServerErrorTitle:  "Bir şeyler ters gitti",
	ServerErrorBody:   "Sayfa oluşturulamadı. Lütfen daha sonra tekrar deneyin.",
	BackHome:          "Portfolyoya dön",
	tag:               language.Turkish,
}

var (
	supported = []language.Tag{language.English, language.Turkish}
	catalogs  = map[language.Tag]Copy{
		language.English: english,
		language.Turkish: turkish,
	}
	matcher = language.NewMatcher(supported)
)

// Supported returns the language codes that have a catalog.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for _, t := range supported {
		out = append(out, t.String())
	}
	return out
}

// For returns the copy for tag, falling back to English.
func For(tag language.Tag) Copy {
	_, idx, _ := matcher.Match(tag)
	return catalogs[supported[idx]]
}

// Resolve picks a language from an explicit choice (a query parameter), the
// Accept-Language header and finally the site default, in that order.
func Resolve(explicit, acceptLanguage, fallback string) language.Tag {
	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			if t, ok := exact(tag); ok {
				return t
			}
		}
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			t, _, conf := matcher.Match(tags...)
			if conf != language.No {
				base, _ := t.Base()
				return language.Make(base.String())
			}
		}
	}
	if tag, err := language.Parse(fallback); err == nil {
		if t, ok := exact(tag); ok {
			return t
		}
	}
	return language.English
}

func exact(tag language.Tag) (language.Tag, bool) {
	base, _ := tag.Base()
	for _, s := range supported {
		sb, _ := s.Base()
		if sb == base {
			return s, true
		}
	}
	return language.Und, false
}
