package folio

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"

	"github.com/hsayar/folio/content"
	"github.com/hsayar/folio/i18n"
	"github.com/hsayar/folio/logging"
	"github.com/hsayar/folio/views"
)

const partialProjects = "projects"

func (a *App) handleHome(c echo.Context) error {
	tag := c.QueryParam("tag")
	if tag == "" {
		tag = content.AllTag
	}
	return a.renderPage(c, tag, "/")
}

func (a *App) handleTag(c echo.Context) error {
	tag, err := a.Catalog.TagBySlug(c.Param("slug"))
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return a.renderPage(c, tag, "/tag/"+a.Catalog.TagSlug(tag)+"/")
}

func (a *App) renderPage(c echo.Context, tag, path string) error {
	d := a.pageData(a.language(c), ThemeFromSession(c), tag, path, a.Catalog.Routes())
	d.CSRFToken = CsrfToken(c)

	if c.QueryParam("partial") == partialProjects && isScriptRequest(c) {
		return Render(c, a.Views.ProjectsPartial(d))
	}
	return Render(c, a.Views.Page(d))
}

// pageData derives the view state for one rendering of the page.
func (a *App) pageData(lang language.Tag, theme views.Theme, tag, path string, routes views.Routes) views.PageData {
	pf := a.Catalog.Portfolio()
	now := a.now()
	return views.PageData{
		Site:      views.Site{URL: a.Config.URL, Description: a.description()},
		Meta:      a.pageMeta(tag, path),
		Portfolio: pf,
		Tags:      a.Catalog.ListTags(),
		ActiveTag: tag,
		Projects:  a.Catalog.ListProjects(tag),
		Theme:     theme,
		Years:     content.YearsSince(pf.Profile.CareerStart, now),
		Year:      now.Year(),
		Copy:      i18n.For(lang),
		Routes:    routes,
	}
}

func (a *App) pageMeta(tag, path string) views.Meta {
	p := a.Catalog.Portfolio().Profile
	title := p.Name
	if p.Headline != "" {
		title += " | " + p.Headline
	}
	if tag != content.AllTag {
		title = tag + " · " + title
	}
	return views.Meta{
		Title:       title,
		Description: a.description(),
		URL:         views.BuildURL(a.Config.URL, path),
		Image:       a.Config.URL + "/og.png",
	}
}

func (a *App) description() string {
	if a.Config.Description != "" {
		return a.Config.Description
	}
	p := a.Catalog.Portfolio().Profile
	if p.Tagline != "" {
		return p.Headline + " · " + p.Tagline
	}
	return p.Headline
}

func (a *App) language(c echo.Context) language.Tag {
	return i18n.Resolve(c.QueryParam("lang"), c.Request().Header.Get("Accept-Language"), a.Config.Lang)
}

func (a *App) handleTheme(c echo.Context) error {
	if !a.toggleLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many requests")
	}
	theme := ThemeFromSession(c).Toggle()
	if err := saveTheme(c, theme); err != nil {
		return err
	}
	a.toggles.WithLabelValues(string(theme)).Inc()

	if isScriptRequest(c) {
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, backPath(c.Request().Referer()))
}

// backPath returns the local path of a same-site referer, or "/".
func backPath(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	back := &url.URL{Path: u.Path, RawQuery: u.RawQuery}
	return back.String()
}

func (a *App) handleAPIProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Catalog.Portfolio())
}

func (a *App) handleAPIProjects(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Catalog.ListProjects(c.QueryParam("tag")))
}

func (a *App) handleAPITags(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Catalog.ListTags())
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	uiCopy := i18n.For(a.language(c))
	theme := ThemeFromSession(c)

	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(uiCopy, theme, a.Catalog.Routes()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= http.StatusInternalServerError {
		logging.FromContext(c.Request().Context()).Error("server error",
			slog.String("uri", c.Request().RequestURI),
			slog.String("error", err.Error()),
		)
		_ = RenderStatus(c, code, a.Views.ServerError(uiCopy, theme, a.Catalog.Routes()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
