// Package migrations embeds the goose SQL migrations of the note server.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
