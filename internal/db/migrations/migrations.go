// Package migrations embeds the goose SQL migrations of the layout store.
package migrations

import "embed"

// FS holds all *.sql migration files.
//
//go:embed *.sql
var FS embed.FS
