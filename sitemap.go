package folio

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hsayar/folio/content"
	"github.com/hsayar/folio/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string  `xml:"loc"`
	Priority float64 `xml:"priority,omitempty"`
}

// pagePaths lists the site-relative path of every rendered page: the home
// page followed by one page per tag.
func (a *App) pagePaths() []string {
	paths := []string{"/"}
	for _, t := range a.Catalog.ListTags() {
		if t == content.AllTag {
			continue
		}
		paths = append(paths, "/tag/"+a.Catalog.TagSlug(t)+"/")
	}
	return paths
}

func (a *App) sitemap() ([]byte, error) {
	set := sitemapURLSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for i, p := range a.pagePaths() {
		priority := 0.5
		if i == 0 {
			priority = 1.0
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: views.BuildURL(a.Config.URL, p), Priority: priority})
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return buf.Bytes(), nil
}

func (a *App) robots() []byte {
	return []byte("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: " + a.Config.URL + "/sitemap.xml\n")
}

func (a *App) handleSitemap(c echo.Context) error {
	b, err := a.sitemap()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", b)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, a.robots())
}

func (a *App) handleAsset(c echo.Context) error {
	return echo.StaticFileHandler(c.Param("*"), assetFS())(c)
}
