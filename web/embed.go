// Package web embeds the dashboard client served by the API process.
package web

import "embed"

//go:embed static
var Static embed.FS
