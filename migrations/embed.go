// Package migrations embeds the goose SQL migrations so binaries and tests share one source.
package migrations

import "embed"

// FS holds every *.sql migration at its root.
//
//go:embed *.sql
var FS embed.FS
