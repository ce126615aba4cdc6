// Package wardrobe embeds the goose migrations for the wardrobe storage slot table.
package wardrobe

import "embed"

//go:embed *.sql
var FS embed.FS
