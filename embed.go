package folio

import (
	"embed"
	"io/fs"
)

// EmbeddedAssets contains the stylesheet and script shipped with folio:
// folio.css and folio.js.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

func assetFS() fs.FS {
	sub, err := fs.Sub(EmbeddedAssets, "embedded")
	if err != nil {
		panic(err)
	}
	return sub
}
