package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the binary:
// folio.js (the browser runtime), styles.css and the fallback favicon.svg.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// mustAsset returns an embedded file. The names are fixed at build time.
func mustAsset(name string) []byte {
	b, err := EmbeddedAssets.ReadFile("embedded/" + name)
	if err != nil {
		panic(err)
	}
	return b
}
