package folio

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRenderOGImage(t *testing.T) {
	p := scenarioPortfolio()
	p.Profile.Name = "Hüseyin Sayar"
	p.Profile.Tagline = "Yapay zekâ ve yazılım"

	b, err := renderOGImage(p, []string{"All", "X", "Y", "Z"})
	if err != nil {
		t.Fatalf("renderOGImage() = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != ogWidth || img.Bounds().Dy() != ogHeight {
		t.Fatalf("size = %v", img.Bounds())
	}
	// the name is drawn in the text colour somewhere in the top half
	found := false
	for y := ogPadding; y < ogHeight/2 && !found; y++ {
		for x := ogPadding; x < ogWidth-ogPadding; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r>>8 == uint32(ogText.R) && g>>8 == uint32(ogText.G) && b>>8 == uint32(ogText.B) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no text pixels drawn")
	}
}

func TestASCIIFold(t *testing.T) {
	tests := map[string]string{
		"Hüseyin":      "Huseyin",
		"yazılım":      "yazilim",
		"İstanbul":     "Istanbul",
		"Çağrı Şahin":  "Cagri Sahin",
		"plain ascii":  "plain ascii",
		"emoji 🚀 here": "emoji ? here",
	}
	for in, want := range tests {
		if got := asciiFold(in); got != want {
			t.Errorf("asciiFold(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOGImageIsCached(t *testing.T) {
	a := newTestApp(t)
	first, err := a.ogImage()
	if err != nil {
		t.Fatal(err)
	}
	second, _ := a.ogImage()
	if &first[0] != &second[0] {
		t.Error("og image rendered twice")
	}
}
