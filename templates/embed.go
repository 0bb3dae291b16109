// Package templates holds the server-rendered pages.
package templates

import "embed"

//go:embed *.tmpl
var FS embed.FS
