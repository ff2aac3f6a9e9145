package folio

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/hsayar/folio/content"
	"github.com/hsayar/folio/i18n"
	"github.com/hsayar/folio/views"
)

// Export writes the site as static files under dir: index.html, one
// tag/<slug>/index.html per tag, the public assets, og.png, sitemap.xml and
// robots.txt. Pages are rendered in the configured language and the dark
// theme; folio.js toggles the theme client side.
func (a *App) Export(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	lang := language.Make(a.Config.Lang)
	routes := a.Catalog.Routes()

	for _, p := range a.pagePaths() {
		if err := ctx.Err(); err != nil {
			return err
		}
		tag, err := a.tagForPath(p)
		if err != nil {
			return err
		}
		d := a.pageData(lang, views.ThemeDark, tag, p, routes)
		var buf bytes.Buffer
		if err := a.Views.Page(d).Render(ctx, &buf); err != nil {
			return fmt.Errorf("export: render %s: %w", p, err)
		}
		if err := writeFile(dir, path.Join(p, "index.html"), buf.Bytes()); err != nil {
			return err
		}
	}

	var notFound bytes.Buffer
	if err := a.Views.NotFound(i18n.For(lang), views.ThemeDark, routes).Render(ctx, &notFound); err != nil {
		return fmt.Errorf("export: render 404: %w", err)
	}
	if err := writeFile(dir, "404.html", notFound.Bytes()); err != nil {
		return err
	}

	assets := assetFS()
	err := fs.WalkDir(assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := fs.ReadFile(assets, name)
		if err != nil {
			return err
		}
		return writeFile(dir, path.Join("public", name), b)
	})
	if err != nil {
		return fmt.Errorf("export: assets: %w", err)
	}

	og, err := a.ogImage()
	if err != nil {
		return fmt.Errorf("export: og image: %w", err)
	}
	sitemap, err := a.sitemap()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	for name, b := range map[string][]byte{
		"og.png":      og,
		"sitemap.xml": sitemap,
		"robots.txt":  a.robots(),
	} {
		if err := writeFile(dir, name, b); err != nil {
			return err
		}
	}

	a.Logger.Info("exported site", slog.String("dir", dir), slog.Int("pages", len(a.pagePaths())))
	return nil
}

func (a *App) tagForPath(p string) (string, error) {
	slug, ok := strings.CutPrefix(p, "/tag/")
	if !ok {
		return content.AllTag, nil
	}
	return a.Catalog.TagBySlug(strings.TrimSuffix(slug, "/"))
}

func writeFile(dir, name string, b []byte) error {
	target := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(name, "/")))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(target, b, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
