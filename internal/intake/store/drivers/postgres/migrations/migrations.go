package migrations

import "embed"

// Migrations holds the postgres schema, applied through golang-migrate's iofs source.
//
//go:embed *.sql
var Migrations embed.FS
