// Package web embeds the page script and stylesheet served under /static.
package web

import "embed"

//go:embed static
var Static embed.FS
