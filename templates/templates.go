// Package templates embeds the HTML views and static assets so the binary and tests need no working directory.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed *.html
var FS embed.FS

//go:embed static
var static embed.FS

// Static returns the static asset tree rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
