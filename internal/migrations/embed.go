// Package migrations embeds the goose SQL migrations that manage the
// database schema. They are applied at startup, so a fresh database is
// brought to the current schema without external tooling.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
