// Package migrations embeds the goose SQL migrations for the portal store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
