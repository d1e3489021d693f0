package web

import (
	"embed"
	"io/fs"
)

//go:embed static/flags
var staticFS embed.FS

func flagsFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static/flags")
	if err != nil {
		panic(err)
	}
	return sub
}
