// Package migrations embeds the local database schema applied by goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
