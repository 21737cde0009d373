// Package migrations embeds the SQL migration files for the profile store
// schema; they are applied with goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
