package folio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"
	"unicode"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hsayar/folio/content"
)

const (
	ogWidth   = 1200
	ogHeight  = 630
	ogPadding = 80
)

var (
	ogBackground = color.RGBA{R: 0x0b, G: 0x10, B: 0x20, A: 0xff}
	ogAccent     = color.RGBA{R: 0x7c, G: 0x5c, B: 0xff, A: 0xff}
	ogText       = color.RGBA{R: 0xf5, G: 0xf7, B: 0xff, A: 0xff}
	ogMuted      = color.RGBA{R: 0xa7, G: 0xb0, B: 0xc8, A: 0xff}
)

// renderOGImage draws the 1200x630 social preview card: name, headline and
// the first few project tags.
func renderOGImage(p *content.Portfolio, tags []string) ([]byte, error) {
	dst := image.NewRGBA(image.Rect(0, 0, ogWidth, ogHeight))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(ogBackground), image.Point{}, draw.Src)

	// accent bar on the left edge and a glow band at the bottom
	draw.Draw(dst, image.Rect(0, 0, 16, ogHeight), image.NewUniform(ogAccent), image.Point{}, draw.Src)
	for y := ogHeight - 120; y < ogHeight; y++ {
		alpha := uint8((y - (ogHeight - 120)) * 60 / 120)
		band := color.NRGBA{R: ogAccent.R, G: ogAccent.G, B: ogAccent.B, A: alpha}
		draw.Draw(dst, image.Rect(16, y, ogWidth, y+1), image.NewUniform(band), image.Point{}, draw.Over)
	}

	maxWidth := ogWidth - 2*ogPadding
	y := ogPadding + 40
	y += drawTextLine(dst, p.Profile.Name, ogText, ogPadding, y, 8, maxWidth) + 40
	if p.Profile.Headline != "" {
		y += drawTextLine(dst, p.Profile.Headline, ogMuted, ogPadding, y, 4, maxWidth) + 30
	}
	if p.Profile.Tagline != "" {
		y += drawTextLine(dst, p.Profile.Tagline, ogMuted, ogPadding, y, 3, maxWidth) + 30
	}

	var shown []string
	for _, t := range tags {
		if t == content.AllTag {
			continue
		}
		if len(shown) == 5 {
			break
		}
		shown = append(shown, t)
	}
	if len(shown) > 0 {
		drawTextLine(dst, strings.Join(shown, "  /  "), ogAccent, ogPadding, ogHeight-ogPadding-40, 3, maxWidth)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawTextLine renders s with the built-in bitmap face, scales it up by
// scale (less if the line would exceed maxWidth) and draws it with its top
// left corner at (x, y). It returns the drawn height.
func drawTextLine(dst draw.Image, s string, col color.Color, x, y, scale, maxWidth int) int {
	s = asciiFold(s)
	face := basicfont.Face7x13
	width := font.MeasureString(face, s).Ceil()
	if width == 0 {
		return 0
	}
	height := face.Metrics().Height.Ceil()

	src := image.NewRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	for scale > 1 && width*scale > maxWidth {
		scale--
	}
	target := image.Rect(x, y, x+width*scale, y+height*scale)
	draw.NearestNeighbor.Scale(dst, target, src, src.Bounds(), draw.Over, nil)
	return height * scale
}

// asciiFold strips diacritics so text renders with the ASCII bitmap face.
func asciiFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case 'ı':
			return 'i'
		case 'İ':
			return 'I'
		}
		if r > unicode.MaxASCII {
			return '?'
		}
		return r
	}, folded)
}

func (a *App) ogImage() ([]byte, error) {
	a.ogOnce.Do(func() {
		a.ogPNG, a.ogErr = renderOGImage(a.Catalog.Portfolio(), a.Catalog.ListTags())
	})
	return a.ogPNG, a.ogErr
}

func (a *App) handleOGImage(c echo.Context) error {
	b, err := a.ogImage()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", b)
}
