package manifest

import (
	"embed"
	"io/fs"
)

//go:embed themes/*
var embeddedThemes embed.FS

// EmbeddedFS returns the bundled manifest themes. Pass it to LoadFS to
// register the defaults.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedThemes, "themes")
	if err != nil {
		panic(err)
	}
	return sub
}
